package errs

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// Kind classifies codec and session failures so callers can
// tell a corrupted stream from data the codec does not understand.
type Kind uint8

const (
	// KindUnknown is the kind of errors that are not an *Error.
	KindUnknown Kind = iota
	// KindDesync means the byte stream can no longer be trusted:
	// a read ran past the available bytes or a declared count
	// disagrees with the actual number of records.
	KindDesync
	// KindUnsupported means a tag, component id or protocol
	// version is not known to the codec.
	KindUnsupported
	// KindMissingField means a presence flag is set but the
	// value it gates is missing.
	KindMissingField
	// KindConnection means a socket level failure or a
	// rejection by the server.
	KindConnection
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindDesync:
		return "desync"
	case KindUnsupported:
		return "unsupported"
	case KindMissingField:
		return "missing field"
	case KindConnection:
		return "connection"
	}
	return "unknown"
}

// Error is the single error type returned by the codec.
// Match categories with errors.Is against the Err* sentinels
// or with KindOf.
type Error struct {
	Kind Kind
	Op   string // operation or field path that failed, optional
	Err  error  // underlying error, optional
}

// Sentinels matching any *Error of the same kind.
var (
	ErrDesync       = &Error{Kind: KindDesync}
	ErrUnsupported  = &Error{Kind: KindUnsupported}
	ErrMissingField = &Error{Kind: KindMissingField}
	ErrConnection   = &Error{Kind: KindConnection}
)

func (e *Error) Error() string {
	b := new(strings.Builder)
	b.WriteString(e.Kind.String())
	if e.Op != "" {
		b.WriteString(": ")
		b.WriteString(e.Op)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is a sentinel of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Err == nil && t.Kind == e.Kind
}

// KindOf returns the kind of the outermost *Error in err's chain.
// Plain EOF errors are reported as KindDesync.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return KindDesync
	}
	return KindUnknown
}

// Wrap returns err wrapped into an *Error of the given kind.
// An err that already is an *Error keeps its kind and gets op prefixed.
func Wrap(kind Kind, op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		if op == "" {
			return err
		}
		return &Error{Kind: e.Kind, Op: op, Err: err}
	}
	return &Error{Kind: kind, Op: op, Err: err}
}

// Desync wraps err as a stream desync, mapping io.EOF to io.ErrUnexpectedEOF.
func Desync(op string, err error) error {
	if errors.Is(err, io.EOF) && !errors.Is(err, io.ErrUnexpectedEOF) {
		err = io.ErrUnexpectedEOF
	}
	return Wrap(KindDesync, op, err)
}

// Desyncf returns a new desync error.
func Desyncf(format string, a ...any) error {
	return &Error{Kind: KindDesync, Err: fmt.Errorf(format, a...)}
}

// Unsupportedf returns a new unsupported error.
func Unsupportedf(format string, a ...any) error {
	return &Error{Kind: KindUnsupported, Err: fmt.Errorf(format, a...)}
}

// Missing returns a missing field error for the named field.
func Missing(field string) error {
	return &Error{Kind: KindMissingField, Op: field, Err: errors.New("flag is set but value is missing")}
}

// Connection wraps err as a connection failure.
func Connection(op string, err error) error {
	return Wrap(KindConnection, op, err)
}
