// Package shared implements the register protocol core common to the dual
// and quad channel AD57xx topologies. It is internal so that only the two
// supported variant packages (ad57x2, ad57x4) can bind a channel
// enumeration and power register layout to it.
package shared

import (
	"encoding/binary"

	"github.com/ardnew/ad57xx"
)

// Dev is the protocol core owned by a variant device handle. It holds the
// transport and the two shadow registers, both defaulted at construction.
// The handle exclusively owns the transport until Destroy releases it.
type Dev struct {
	t        ad57xx.Transport
	cfg      ad57xx.Config
	pcfg     uint16
	readback bool
}

// New returns a protocol core bound to the given transport. Called by the
// variant constructors only.
func New(t ad57xx.Transport, opt ad57xx.Options) *Dev {
	return &Dev{
		t:        t,
		cfg:      ad57xx.DefaultConfig(),
		pcfg:     0,
		readback: opt.Readback,
	}
}

// valid verifies the transport has not been released by Destroy.
//
// Returns a descriptive error otherwise.
func (d *Dev) valid() error {
	if nil == d.t {
		return ad57xx.ErrClosed
	}
	return nil
}

// Destroy releases ownership of the transport back to the caller. No
// further operations may be issued on the handle afterward; they return
// ErrClosed without bus activity.
func (d *Dev) Destroy() ad57xx.Transport {
	t := d.t
	d.t = nil
	return t
}

// Write encodes the command/data pair and performs one exclusive 3-byte
// write transaction. On success the relevant shadow register is updated so
// subsequent non-readback gets can be served from cache.
//
// Returns ErrInvalidArgument with zero bus transactions if the data kind
// does not match the command, or a TransportError wrapping the transport
// failure verbatim. Transport failures leave the shadows untouched.
func (d *Dev) Write(cmd ad57xx.Command, data ad57xx.Data) error {
	if err := d.valid(); nil != err {
		return err
	}

	frame, err := ad57xx.Frame(cmd, data)
	if nil != err {
		return err
	}

	ad57xx.LogFrame("W", frame[:])

	if err := d.t.Write(frame[:]); nil != err {
		return &ad57xx.TransportError{Err: err}
	}

	switch v := data.(type) {
	case ad57xx.Config:
		d.cfg = v
	case ad57xx.PowerValue:
		d.pcfg = uint16(v)
	}

	return nil
}

// Read performs the two-phase register read required by the device: the
// command byte with the read bit set selects the register, then a
// full-duplex exchange of a Nop control frame clocks the 16-bit register
// contents out of the device. Both phases are grouped into one exclusive
// access span when the transport implements Transactor.
//
// The captured payload is decoded according to the command kind and, for
// the power and configuration registers, refreshes the shadow copy.
//
// Returns ErrReadback for a register that cannot be read (any control
// register function other than Config), or a TransportError wrapping a
// transport failure verbatim.
func (d *Dev) Read(cmd ad57xx.Command) (ad57xx.Data, error) {
	if err := d.valid(); nil != err {
		return nil, err
	}

	// Reject unreadable registers before touching the bus.
	if _, err := ad57xx.Decode(cmd, 0); nil != err {
		return nil, err
	}

	req := [ad57xx.FrameSz]byte{cmd.Byte(true), 0x00, 0x00}

	// The Nop frame is transmitted purely as a clock source for the
	// second phase.
	nop, err := ad57xx.Frame(ad57xx.ControlRegister(ad57xx.FuncNop), ad57xx.None{})
	if nil != err {
		return nil, err
	}

	var rx [ad57xx.FrameSz]byte

	ad57xx.LogFrame("W", req[:])

	if tr, ok := d.t.(ad57xx.Transactor); ok {
		ops := []ad57xx.Op{
			{TX: req[:]},
			{TX: nop[:], RX: rx[:]},
		}
		if err := tr.Transact(ops); nil != err {
			return nil, &ad57xx.TransportError{Err: err}
		}
	} else {
		if err := d.t.Write(req[:]); nil != err {
			return nil, &ad57xx.TransportError{Err: err}
		}
		if err := d.t.Transfer(nop[:], rx[:]); nil != err {
			return nil, &ad57xx.TransportError{Err: err}
		}
	}

	ad57xx.LogFrame("R", rx[:])

	// The register contents occupy frame bytes 1-2, big-endian, mirroring
	// the write framing.
	raw := binary.BigEndian.Uint16(rx[1:])

	data, err := ad57xx.Decode(cmd, raw)
	if nil != err {
		return nil, err
	}

	switch v := data.(type) {
	case ad57xx.Config:
		d.cfg = v
	case ad57xx.PowerValue:
		d.pcfg = uint16(v)
	}

	return data, nil
}

// SetConfig writes cfg to the control register and refreshes the shadow
// copy.
func (d *Dev) SetConfig(cfg ad57xx.Config) error {
	return d.Write(ad57xx.ControlRegister(ad57xx.FuncConfig), cfg)
}

// GetConfig returns the shadow copy of the device configuration, or
// re-reads the device and refreshes the shadow when readback is enabled.
func (d *Dev) GetConfig() (ad57xx.Config, error) {
	if err := d.valid(); nil != err {
		return 0, err
	}

	if !d.readback {
		return d.cfg, nil
	}

	data, err := d.Read(ad57xx.ControlRegister(ad57xx.FuncConfig))
	if nil != err {
		return 0, err
	}

	cfg, ok := data.(ad57xx.Config)
	if !ok {
		return 0, ad57xx.ErrReadback
	}
	return cfg, nil
}

// PowerRaw returns the raw power control register image, from the shadow
// copy or from the device when readback is enabled.
func (d *Dev) PowerRaw() (uint16, error) {
	if err := d.valid(); nil != err {
		return 0, err
	}

	if !d.readback {
		return d.pcfg, nil
	}

	data, err := d.Read(ad57xx.PowerControlRegister())
	if nil != err {
		return 0, err
	}

	pv, ok := data.(ad57xx.PowerValue)
	if !ok {
		return 0, ad57xx.ErrReadback
	}
	return uint16(pv), nil
}

// SetPowerRaw writes the whole power control register and refreshes the
// shadow copy. The register is a single atomic 16-bit entity; it is never
// written with a partially-stale value.
func (d *Dev) SetPowerRaw(raw uint16) error {
	return d.Write(ad57xx.PowerControlRegister(), ad57xx.PowerValue(raw))
}

// SetPowerBits sets or clears the masked bits of the power control
// register image and writes the full register back. The base image is the
// shadow copy, or a just-completed device read when readback is enabled.
func (d *Dev) SetPowerBits(mask uint16, on bool) error {
	raw, err := d.PowerRaw()
	if nil != err {
		return err
	}

	if on {
		raw |= mask
	} else {
		raw &^= mask
	}

	return d.SetPowerRaw(raw)
}

// ClearDACs sets the DAC registers to the clear code selected by the
// configuration ClrSelect bit and updates the outputs.
func (d *Dev) ClearDACs() error {
	return d.Write(ad57xx.ControlRegister(ad57xx.FuncClear), ad57xx.None{})
}

// LoadDACs loads the DAC register values and, consequently, updates the
// DAC outputs.
func (d *Dev) LoadDACs() error {
	return d.Write(ad57xx.ControlRegister(ad57xx.FuncLoad), ad57xx.None{})
}
