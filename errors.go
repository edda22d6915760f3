package ad57xx

import "errors"

var (
	// ErrInvalidArgument reports a command/data pair whose data kind does
	// not match the register being addressed, or a channel value outside
	// the variant's topology. It is detected before any bus activity.
	ErrInvalidArgument = errors.New("ad57xx: argument does not match command")

	// ErrReadback reports a register that cannot be read back, or a
	// readback payload that cannot be interpreted for the issued command.
	ErrReadback = errors.New("ad57xx: register not readable")

	// ErrClosed reports an operation issued after Destroy released the
	// transport.
	ErrClosed = errors.New("ad57xx: device destroyed")
)

// TransportError wraps an error returned by the underlying Transport. The
// wrapped error is surfaced unchanged and never retried.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return "ad57xx: transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
