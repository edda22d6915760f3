package ad57xx

// Data is the payload half of a command/data pair. Exactly one kind is
// accepted per register; Frame rejects any other pairing with
// ErrInvalidArgument. The concrete kinds are DACValue, OutputRange,
// Config, PowerValue, and None.
type Data interface {
	data()
}

// DACValue is a raw 16-bit DAC code. Devices with a native resolution
// below 16 bits use a left-aligned format; the driver does not rescale.
type DACValue uint16

// PowerValue is the raw 16-bit image of the power control register. The
// variant packages wrap it in their bit-exact PowerConfig types.
type PowerValue uint16

// None is the empty payload carried by the Nop, Clear, and Load control
// register functions.
type None struct{}

func (DACValue) data()   {}
func (PowerValue) data() {}
func (None) data()       {}
