package common

import (
	"errors"
	"fmt"
)

var (
	ErrorKeyMismatch           = errors.New("lowess: x and y key sets are not equivalent")
	ErrorDuplicateKey          = errors.New("lowess: duplicate key")
	ErrorInsufficientData      = errors.New("lowess: not enough data points")
	ErrorInvalidBandwidth      = errors.New("lowess: bandwidth out of range (0, 1]")
	ErrorInvalidDegree         = errors.New("lowess: polynomial degree is negative")
	ErrorUnderdeterminedWindow = errors.New("lowess: regression window is under determined")
	ErrorSingularMatrix        = errors.New("lowess: regression matrix is singular")
	ErrorInvalidValue          = errors.New("lowess: invalid value")
)

// Error tags one of the sentinel kinds above with the offending key or
// sorted index so callers can diagnose which point failed.
// errors.Is(err, kind) resolves the kind through Unwrap.
type Error struct {
	Kind   error
	Key    string
	Index  int // position in x-sorted order, -1 when not applicable
	Detail string
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Key != "" {
		msg = fmt.Sprintf("%s, key: %q", msg, e.Key)
	}
	if e.Index >= 0 {
		msg = fmt.Sprintf("%s, sorted index: %d", msg, e.Index)
	}
	if e.Detail != "" {
		msg = fmt.Sprintf("%s, %s", msg, e.Detail)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Kind
}

func NewError(kind error, detail string) *Error {
	return &Error{Kind: kind, Index: -1, Detail: detail}
}

func NewKeyError(kind error, key string, detail string) *Error {
	return &Error{Kind: kind, Key: key, Index: -1, Detail: detail}
}

func NewIndexError(kind error, index int, detail string) *Error {
	return &Error{Kind: kind, Index: index, Detail: detail}
}
