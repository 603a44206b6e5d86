package domain

import (
	"errors"
	"fmt"
)

// Kind classifies a business error so the HTTP boundary can map it to a status
// code without inspecting message text.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindForbidden
	KindInvalidState
	KindInsufficientFunds
	KindConflict
	KindUnavailable
)

// Error is a classified business error with a user-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func InvalidState(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidState, Message: fmt.Sprintf(format, args...)}
}

// InsufficientFunds reports a debit that would drive the balance negative.
// The message always carries the current balance and the requested amount.
func InsufficientFunds(balance, requested int64) *Error {
	return &Error{
		Kind:    KindInsufficientFunds,
		Message: fmt.Sprintf("insufficient funds: balance %d, requested %d", balance, requested),
	}
}

func Conflict(format string, args ...any) *Error {
	return &Error{Kind: KindConflict, Message: fmt.Sprintf(format, args...)}
}

func Unavailable(format string, args ...any) *Error {
	return &Error{Kind: KindUnavailable, Message: fmt.Sprintf(format, args...)}
}

// KindOf extracts the Kind from err, or KindUnknown for unclassified errors.
func KindOf(err error) Kind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}
