package kolam

import (
	"errors"
	"fmt"
)

// Sentinel errors for broad classification.
var (
	ErrEmptyCurve   = errors.New("empty curve")
	ErrNonFinite    = errors.New("non-finite coordinate")
	ErrInvalidColor = errors.New("invalid color")
)

// ErrorKind is a coarse-grained categorization for generation failures.
type ErrorKind string

const (
	KindGeometry ErrorKind = "geometry"
	KindRender   ErrorKind = "render"
	KindResource ErrorKind = "resource"
	KindCanceled ErrorKind = "canceled"
)

// Error wraps an underlying error with the failing operation and a kind.
type Error struct {
	Op   string
	Kind ErrorKind
	Err  error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	base := fmt.Sprintf("%s: %s", e.Op, e.Kind)
	if e.Err != nil {
		base += fmt.Sprintf(": %v", e.Err)
	}
	return base
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var ke *Error
	if errors.As(err, &ke) {
		return ke.Kind == kind
	}
	return false
}
