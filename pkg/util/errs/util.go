package errs

import (
	"errors"
	"fmt"
	"net"
	"syscall"
)

// SilentError marks an error that is only logged at debug verbosity,
// e.g. a packet the session does not need failing to decode.
type SilentError struct{ error }

func (e *SilentError) Error() string { return e.error.Error() }

func (e *SilentError) Unwrap() error { return e.error }

func NewSilentErr(format string, a ...any) error {
	return &SilentError{fmt.Errorf(format, a...)}
}

// IsSilent reports whether err is or wraps a SilentError.
func IsSilent(err error) bool {
	var s *SilentError
	return errors.As(err, &s)
}

// IsConnClosedErr reports whether err comes from using a connection
// that was closed locally or reset by the peer.
func IsConnClosedErr(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, net.ErrClosed) || errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.EPIPE) {
		return true
	}
	// see https://github.com/golang/go/issues/4373 for details
	return err.Error() == "use of closed network connection" ||
		err.Error() == "read: connection reset by peer"
}
