package outline

import (
	"errors"
	"fmt"
)

var (
	// ErrIOFailure is wrapped by Load when the document cannot be read as text.
	ErrIOFailure = errors.New("document could not be loaded")

	// ErrNotFound matches every *NotFoundError via errors.Is.
	ErrNotFound = errors.New("not found")
)

// Reason says why a query did not resolve.
type Reason string

const (
	ReasonStartMissing    Reason = "start_missing"
	ReasonEndMissing      Reason = "end_missing"
	ReasonEndBeforeStart  Reason = "end_before_start"
	ReasonTitleNotFound   Reason = "title_not_found"
	ReasonIndexOutOfRange Reason = "index_out_of_range"
)

// NotFoundError is returned by resolvers when a heading or range cannot be
// resolved. It is a recoverable value: the document is unaffected.
type NotFoundError struct {
	Reason Reason
	Query  string
}

func (e *NotFoundError) Error() string {
	if e.Query == "" {
		return fmt.Sprintf("not found: %s", e.Reason)
	}
	return fmt.Sprintf("not found: %s (%q)", e.Reason, e.Query)
}

// Is reports whether target is ErrNotFound.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// ReasonOf returns the Reason carried by err, or "" if err is not a
// *NotFoundError.
func ReasonOf(err error) Reason {
	var nf *NotFoundError
	if errors.As(err, &nf) {
		return nf.Reason
	}
	return ""
}

func notFound(reason Reason, query string) error {
	return &NotFoundError{Reason: reason, Query: query}
}
