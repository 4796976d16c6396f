package main

import "os"

// fileStore is a DocumentStore over a file on disk. The dirty flag is
// meaningful for in-memory hosts that defer saving; a file store persists
// immediately either way.
type fileStore struct {
	path string
}

func (s *fileStore) CurrentText() (string, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *fileStore) SetText(text string, dirty bool) error {
	return os.WriteFile(s.path, []byte(text+"\n"), 0o644)
}
