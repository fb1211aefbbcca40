package swipe

import "fmt"

// ErrorKind classifies a structural binding failure.
type ErrorKind uint8

// Structural error kinds reported by Container.Bind.
const (
	ErrWrongChildCount ErrorKind = iota + 1
	ErrMissingContainerID
	ErrMissingBackgroundID
	ErrMissingForegroundID
	ErrInvalidBackgroundHeight
)

func (k ErrorKind) String() string {
	switch k {
	case ErrWrongChildCount:
		return "wrong child count"
	case ErrMissingContainerID:
		return "missing container id"
	case ErrMissingBackgroundID:
		return "missing background id"
	case ErrMissingForegroundID:
		return "missing foreground id"
	case ErrInvalidBackgroundHeight:
		return "invalid background height"
	default:
		return "unknown"
	}
}

// StructureError reports a malformed container. It is returned by Bind and
// is never retried: the container stays unbound.
type StructureError struct {
	Kind   ErrorKind
	Detail string
}

func (e *StructureError) Error() string {
	if e.Detail == "" {
		return "swipe: structure error: " + e.Kind.String()
	}
	return fmt.Sprintf("swipe: structure error: %s: %s", e.Kind.String(), e.Detail)
}

// Is matches another *StructureError with the same kind, or the kind itself,
// so callers can write errors.Is(err, swipe.ErrWrongChildCount).
func (e *StructureError) Is(target error) bool {
	switch t := target.(type) {
	case *StructureError:
		return t.Kind == e.Kind
	case ErrorKind:
		return t == e.Kind
	}
	return false
}

// Error lets an ErrorKind be used directly as an errors.Is target.
func (k ErrorKind) Error() string {
	return "swipe: structure error: " + k.String()
}

func structureErr(kind ErrorKind, format string, args ...any) *StructureError {
	return &StructureError{Kind: kind, Detail: fmt.Sprintf(format, args...)}
}
