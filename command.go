package ad57xx

import "encoding/binary"

// reg is the 3-bit register kind field of the command byte.
type reg byte

// Constants for all recognized register kinds. The register field of the
// command byte is fully determined by the command constructor used, never
// by caller input.
const (
	regDAC     reg = 0x0 // per-channel DAC register
	regRange   reg = 0x1 // per-channel output range select register
	regPower   reg = 0x2 // power control register (all channels at once)
	regControl reg = 0x3 // control register functions
)

// Function addresses one of the control register functions.
type Function byte

// Constants for all recognized control register functions.
const (
	FuncNop    Function = 0x0 // no operation, used as clock source during readback
	FuncConfig Function = 0x1 // configuration register
	FuncClear  Function = 0x4 // set DAC registers to the clear code
	FuncLoad   Function = 0x5 // load the DAC register values
)

// Command selects the internal register targeted by a frame. Construct
// values with DACRegister, RangeSelectRegister, PowerControlRegister, or
// ControlRegister; the zero Command addresses the DAC register of the
// first channel.
type Command struct {
	reg  reg
	addr byte
}

// DACRegister addresses the DAC register of the channel with the given
// address code.
func DACRegister(addr byte) Command {
	return Command{reg: regDAC, addr: addr & 0x7}
}

// RangeSelectRegister addresses the output range select register of the
// channel with the given address code.
func RangeSelectRegister(addr byte) Command {
	return Command{reg: regRange, addr: addr & 0x7}
}

// PowerControlRegister addresses the power control register. The register
// always covers all channels at once and carries no channel address.
func PowerControlRegister() Command {
	return Command{reg: regPower}
}

// ControlRegister addresses the control register function fn.
func ControlRegister(fn Function) Command {
	return Command{reg: regControl, addr: byte(fn) & 0x7}
}

// Byte builds the command byte, the first byte of every frame. Bit layout
// (MSB to LSB): rw(1) | zero(1) | reg(3) | addr(3). The read flag is set
// for the first phase of a register read.
func (c Command) Byte(read bool) byte {
	b := (byte(c.reg) << 3) | (c.addr & 0x7)
	if read {
		b |= 1 << 7
	}
	return b
}

// Frame encodes a command and its payload into one 3-byte frame. The data
// kind must match the register being addressed:
//
//	DACRegister          DACValue
//	RangeSelectRegister  OutputRange
//	PowerControlRegister PowerValue
//	ControlRegister(Config)      Config
//	ControlRegister(other)       None
//
// Returns ErrInvalidArgument on any mismatch, before any bus activity.
// Bytes 1-2 carry the 16-bit payload big-endian.
func Frame(cmd Command, data Data) ([FrameSz]byte, error) {
	var f [FrameSz]byte
	var payload uint16

	switch cmd.reg {

	case regDAC:
		v, ok := data.(DACValue)
		if !ok {
			return f, ErrInvalidArgument
		}
		payload = uint16(v)

	case regRange:
		r, ok := data.(OutputRange)
		if !ok || !r.valid() {
			return f, ErrInvalidArgument
		}
		payload = uint16(r)

	case regPower:
		p, ok := data.(PowerValue)
		if !ok {
			return f, ErrInvalidArgument
		}
		payload = uint16(p)

	case regControl:
		if FuncConfig == Function(cmd.addr) {
			c, ok := data.(Config)
			if !ok {
				return f, ErrInvalidArgument
			}
			// Reserved high bits always write as zero.
			payload = uint16(c & cfgMask)
		} else {
			if _, ok := data.(None); !ok {
				return f, ErrInvalidArgument
			}
		}
	}

	f[0] = cmd.Byte(false)
	binary.BigEndian.PutUint16(f[1:], payload)
	return f, nil
}

// Decode interprets a 16-bit readback payload according to the command
// that selected the register:
//
//	DACRegister          DACValue(raw)
//	RangeSelectRegister  OutputRange (unrecognized codes decode to
//	                     RangeInvalidReadback, not an error)
//	PowerControlRegister PowerValue(raw)
//	ControlRegister(Config)      Config
//	ControlRegister(other)       ErrReadback (no other function is readable)
func Decode(cmd Command, raw uint16) (Data, error) {
	switch cmd.reg {
	case regDAC:
		return DACValue(raw), nil
	case regRange:
		return RangeFromCode(raw), nil
	case regPower:
		return PowerValue(raw), nil
	case regControl:
		if FuncConfig == Function(cmd.addr) {
			return Config(raw) & cfgMask, nil
		}
	}
	return nil, ErrReadback
}
