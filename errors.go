package jsonedit

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a failed save attempt.
type ErrorKind int

const (
	// KindInvalidDraft: the draft does not parse as JSON and the node has
	// object/array children, so the raw-string fallback is not available.
	// Recoverable; the draft is kept so the user can fix it or cancel.
	KindInvalidDraft ErrorKind = iota
	// KindDocumentCorrupt: the authoritative snapshot does not parse. Should
	// be unreachable if the store only ever holds valid JSON; surfaced with
	// the generic apply-failure message.
	KindDocumentCorrupt
	// KindApplyFailed: any failure resolving the path, merging, serializing,
	// or writing back. Recoverable; nothing was applied.
	KindApplyFailed
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidDraft:
		return "invalid JSON for a node with nested children"
	case KindDocumentCorrupt:
		return "document snapshot is not valid JSON"
	default:
		return "could not apply the change"
	}
}

// EditError is the single error type the engine reports. All failures are
// caught at the commit boundary; none escape as panics.
type EditError struct {
	Kind ErrorKind
	Err  error
}

func (e *EditError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("jsonedit: %s: %v", e.Kind, e.Err)
	}
	return "jsonedit: " + e.Kind.String()
}

func (e *EditError) Unwrap() error { return e.Err }

func editErr(kind ErrorKind, err error) *EditError {
	return &EditError{Kind: kind, Err: err}
}

// KindOf extracts the ErrorKind from an engine error, defaulting to
// KindApplyFailed for anything unrecognized.
func KindOf(err error) ErrorKind {
	var ee *EditError
	if errors.As(err, &ee) {
		return ee.Kind
	}
	return KindApplyFailed
}
