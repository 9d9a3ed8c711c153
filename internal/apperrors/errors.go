package apperrors

import (
	"errors"
	"strings"
)

type Kind string

const (
	// KindParse marks filenames that do not follow the serial_iteration naming contract.
	KindParse Kind = "parse"
	// KindMissingLabel marks a label sub-directory that is absent at move time.
	KindMissingLabel Kind = "missing_label"
	// KindNothingToUndo marks an undo call with no pending record.
	KindNothingToUndo Kind = "nothing_to_undo"
	// KindAlreadyUndone marks an undo call whose recorded file is gone.
	KindAlreadyUndone Kind = "already_undone"
	// KindExhausted marks input arriving after the queue has been completed.
	KindExhausted Kind = "exhausted"
	// KindUsage marks invalid command-line input.
	KindUsage Kind = "usage"
)

type Error struct {
	Kind Kind
	// SafeMessage is intended for user-facing output and dialogs.
	SafeMessage string
	// Cause keeps the original internal error for troubleshooting.
	Cause error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if msg := strings.TrimSpace(e.SafeMessage); msg != "" {
		return msg
	}
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "unknown error"
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func defaultSafeMessage(kind Kind) string {
	switch kind {
	case KindParse:
		return "Filename does not match the serial_iteration naming convention."
	case KindMissingLabel:
		return "Label directory does not exist. Create it and retry."
	case KindNothingToUndo:
		return "Nothing to undo."
	case KindAlreadyUndone:
		return "Sorry, you can only undo once!"
	case KindExhausted:
		return "All images have been labeled."
	case KindUsage:
		return "Invalid arguments."
	default:
		return "Operation failed."
	}
}

func New(kind Kind, safeMessage string, cause error) error {
	msg := strings.TrimSpace(safeMessage)
	if msg == "" {
		msg = defaultSafeMessage(kind)
	}
	return &Error{
		Kind:        kind,
		SafeMessage: msg,
		Cause:       cause,
	}
}

func Parse(err error) error {
	return New(KindParse, "", err)
}

func MissingLabel(err error) error {
	return New(KindMissingLabel, "", err)
}

func NothingToUndo() error {
	return New(KindNothingToUndo, "", nil)
}

func AlreadyUndone() error {
	return New(KindAlreadyUndone, "", nil)
}

func Exhausted() error {
	return New(KindExhausted, "", nil)
}

func KindOf(err error) (Kind, bool) {
	var e *Error
	if !errors.As(err, &e) {
		return "", false
	}
	return e.Kind, true
}

func Is(err error, kind Kind) bool {
	k, ok := KindOf(err)
	return ok && k == kind
}

func PublicMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if errors.As(err, &e) {
		return e.Error()
	}
	return err.Error()
}

// IsWarning reports whether the error is a non-fatal condition the user is
// simply told about, with no state mutated.
func IsWarning(err error) bool {
	k, ok := KindOf(err)
	if !ok {
		return false
	}
	return k == KindNothingToUndo || k == KindAlreadyUndone || k == KindExhausted
}
