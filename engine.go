// Package jsonedit edits a single node of a large JSON document, addressed
// by a structural path, and writes the mutation back without disturbing
// anything outside that path.
package jsonedit

import (
	"errors"
	"fmt"

	jsonpatch "github.com/evanphx/json-patch/v5"
)

// DocumentStore holds the authoritative document text. The engine reads a
// fresh snapshot at the start of every commit and hands back the full new
// text; it never keeps a reference to store internals across calls.
type DocumentStore interface {
	CurrentText() (string, error)
	// SetText replaces the document. dirty marks it as having unsaved
	// changes so downstream views refresh.
	SetText(text string, dirty bool) error
}

// EngineState is the edit dialog's lifecycle state.
type EngineState int

const (
	// StateViewing: no draft in flight. Entered on node selection, dialog
	// open/close, cancel, and after a successful save.
	StateViewing EngineState = iota
	// StateEditing: a draft exists. A failed save stays here with the draft
	// and error preserved so the user can retry or cancel.
	StateEditing
)

// Engine orchestrates the commit protocol. All other components in this
// package are pure; the engine is the only thing that talks to the store.
// Single-threaded by contract: every operation runs synchronously on a user
// interaction.
type Engine struct {
	store   DocumentStore
	node    *SelectedNode
	state   EngineState
	draft   string
	lastErr *EditError
}

// NewEngine builds an engine around the given store.
func NewEngine(store DocumentStore) *Engine {
	return &Engine{store: store}
}

// Select records the node under edit and resets any pending draft state.
func (e *Engine) Select(node *SelectedNode) {
	e.node = node
	e.reset()
}

// DialogOpened resets pending state when the host dialog opens.
func (e *Engine) DialogOpened() { e.reset() }

// DialogClosed resets pending state when the host dialog closes.
func (e *Engine) DialogClosed() { e.reset() }

func (e *Engine) reset() {
	e.state = StateViewing
	e.draft = ""
	e.lastErr = nil
}

// BeginEdit enters editing, seeding the draft from the node's rows.
func (e *Engine) BeginEdit() {
	if e.node == nil {
		return
	}
	e.draft = NormalizeRows(e.node.Rows)
	e.state = StateEditing
	e.lastErr = nil
}

// SetDraft replaces the in-flight draft text.
func (e *Engine) SetDraft(text string) {
	if e.state == StateEditing {
		e.draft = text
	}
}

// Cancel discards the draft and returns to viewing. It never touches the
// store.
func (e *Engine) Cancel() { e.reset() }

// State reports the current lifecycle state.
func (e *Engine) State() EngineState { return e.state }

// Draft returns the in-flight draft text.
func (e *Engine) Draft() string { return e.draft }

// LastError returns the error from the most recent failed save, or nil.
func (e *Engine) LastError() *EditError { return e.lastErr }

// Save commits the current draft.
func (e *Engine) Save() error { return e.AttemptSave(e.draft) }

// AttemptSave runs the commit protocol for the given draft text against the
// selected node. On success the engine returns to viewing (the host closes
// the dialog); on failure it stays in editing with the draft preserved and
// the error recorded. The store is only written after the full new document
// has serialized, so a failure never applies partially.
func (e *Engine) AttemptSave(draft string) error {
	if e.node == nil {
		err := editErr(KindApplyFailed, errors.New("no node selected"))
		e.lastErr = err
		return err
	}
	err := e.commit(draft, e.node)
	if err != nil {
		e.draft = draft
		e.state = StateEditing
		e.lastErr = err
		return err
	}
	e.reset()
	return nil
}

func (e *Engine) commit(draft string, node *SelectedNode) (err *EditError) {
	// Nothing past draft validation may escape as a fault; everything folds
	// into the apply-failed taxonomy.
	defer func() {
		if r := recover(); r != nil {
			err = editErr(KindApplyFailed, fmt.Errorf("panic: %v", r))
		}
	}()

	newVal, perr := parseDraft(draft, node)
	if perr != nil {
		return perr
	}

	snapshot, serr := e.store.CurrentText()
	if serr != nil {
		return editErr(KindApplyFailed, serr)
	}
	root, rerr := ParseValue([]byte(snapshot))
	if rerr != nil {
		return editErr(KindDocumentCorrupt, rerr)
	}

	original, _ := Read(root, node.Path)
	root = Write(root, node.Path, mergeValues(original, newVal))

	newText := EncodeJSON(root)
	if jsonpatch.Equal([]byte(newText), []byte(snapshot)) {
		// Structurally unchanged; don't dirty the store for nothing.
		return nil
	}
	if werr := e.store.SetText(newText, true); werr != nil {
		return editErr(KindApplyFailed, werr)
	}
	return nil
}

// parseDraft turns the draft text into the candidate value. Unparseable text
// is an error only for nodes with object/array children; for purely scalar
// nodes the raw text itself becomes the value (the unquoted-scalar seeding in
// NormalizeRows relies on this fallback).
func parseDraft(draft string, node *SelectedNode) (interface{}, *EditError) {
	v, err := ParseValue([]byte(draft))
	if err == nil {
		return v, nil
	}
	if node.HasComplexChild() {
		return nil, editErr(KindInvalidDraft, err)
	}
	return draft, nil
}
