// Package ad57x4 provides the quad-channel topology of the AD57xx driver,
// covering the AD5724, AD5734, and AD5754. All four channels are
// independently addressable and independently powered.
package ad57x4

import (
	"github.com/ardnew/ad57xx"
	"github.com/ardnew/ad57xx/internal/shared"
)

// Channel addresses one, or all, of the four DAC outputs.
type Channel byte

// Constants for all addressable channels. AllDACs always encodes as
// address 4.
const (
	DACA    Channel = 0x0
	DACB    Channel = 0x1
	DACC    Channel = 0x2
	DACD    Channel = 0x3
	AllDACs Channel = 0x4
)

// valid verifies ch is one of the recognized channel codes.
func (ch Channel) valid() bool {
	return ch <= AllDACs
}

// mask returns the power-up bit(s) of the power control register
// controlled by ch.
func (ch Channel) mask() uint16 {
	if AllDACs == ch {
		return puA | puB | puC | puD
	}
	return 1 << ch
}

// Power control register bit positions.
const (
	puA uint16 = 1 << 0 // power up channel A
	puB uint16 = 1 << 1 // power up channel B
	puC uint16 = 1 << 2 // power up channel C
	puD uint16 = 1 << 3 // power up channel D
	// bit 4 reserved
	tsd uint16 = 1 << 5 // thermal shutdown occurred
	// bit 6 reserved
	ocA uint16 = 1 << 7  // overcurrent on channel A
	ocB uint16 = 1 << 8  // overcurrent on channel B
	ocC uint16 = 1 << 9  // overcurrent on channel C
	ocD uint16 = 1 << 10 // overcurrent on channel D
	// bits 11-15 reserved
)

// PowerConfig is the bit-exact image of the power control register:
// power-up flags in bits 0-3, the thermal shutdown flag in bit 5, and the
// mirrored overcurrent flags in bits 7-10. The remaining bits are
// reserved. The thermal and overcurrent flags are status reported by the
// device and carry no setters.
type PowerConfig uint16

// PUA reports whether channel A is powered up (bit 0).
func (p PowerConfig) PUA() bool { return 0 != uint16(p)&puA }

// SetPUA powers channel A up or down (bit 0).
func (p *PowerConfig) SetPUA(on bool) { p.set(puA, on) }

// PUB reports whether channel B is powered up (bit 1).
func (p PowerConfig) PUB() bool { return 0 != uint16(p)&puB }

// SetPUB powers channel B up or down (bit 1).
func (p *PowerConfig) SetPUB(on bool) { p.set(puB, on) }

// PUC reports whether channel C is powered up (bit 2).
func (p PowerConfig) PUC() bool { return 0 != uint16(p)&puC }

// SetPUC powers channel C up or down (bit 2).
func (p *PowerConfig) SetPUC(on bool) { p.set(puC, on) }

// PUD reports whether channel D is powered up (bit 3).
func (p PowerConfig) PUD() bool { return 0 != uint16(p)&puD }

// SetPUD powers channel D up or down (bit 3).
func (p *PowerConfig) SetPUD(on bool) { p.set(puD, on) }

// TSD reports whether the device has shut down thermally (bit 5).
func (p PowerConfig) TSD() bool { return 0 != uint16(p)&tsd }

// OCA reports an overcurrent condition on channel A (bit 7).
func (p PowerConfig) OCA() bool { return 0 != uint16(p)&ocA }

// OCB reports an overcurrent condition on channel B (bit 8).
func (p PowerConfig) OCB() bool { return 0 != uint16(p)&ocB }

// OCC reports an overcurrent condition on channel C (bit 9).
func (p PowerConfig) OCC() bool { return 0 != uint16(p)&ocC }

// OCD reports an overcurrent condition on channel D (bit 10).
func (p PowerConfig) OCD() bool { return 0 != uint16(p)&ocD }

func (p *PowerConfig) set(bit uint16, on bool) {
	if on {
		*p = PowerConfig(uint16(*p) | bit)
	} else {
		*p = PowerConfig(uint16(*p) &^ bit)
	}
}

// Dev is the handle for a quad-channel device. It exclusively owns the
// transport until Destroy releases it, and remains valid and usable after
// any operation error.
type Dev struct {
	*shared.Dev
}

// New returns a quad-channel device handle bound to the given transport,
// with both shadow registers at their power-on defaults.
func New(t ad57xx.Transport, opts ...ad57xx.Option) *Dev {
	var o ad57xx.Options
	for _, opt := range opts {
		opt(&o)
	}
	return &Dev{shared.New(t, o)}
}

// SetPower powers a single channel, or all channels, up or down. The full
// power control register is rewritten from the shadow copy (or from a
// fresh device read when readback is enabled), so the register never
// carries partially-stale bits.
//
// After a power-up transition the device requires PowerUpSettle before the
// corresponding DAC register is loaded; the caller must insert that delay.
func (d *Dev) SetPower(ch Channel, on bool) error {
	if !ch.valid() {
		return ad57xx.ErrInvalidArgument
	}
	return d.SetPowerBits(ch.mask(), on)
}

// SetDACOutput writes a 16-bit value to the DAC register of the selected
// channel(s). Devices with a resolution below 16 bits accept a
// left-aligned value; the driver does not rescale.
//
// The value reaches the output once loaded through the ~LDAC and ~SYNC
// pins or through LoadDACs. The output voltage depends on the reference
// voltage, the output range, and for bipolar ranges on the state of the
// BIN/~2sCOMPLEMENT pin.
func (d *Dev) SetDACOutput(ch Channel, val uint16) error {
	if !ch.valid() {
		return ad57xx.ErrInvalidArgument
	}
	return d.Write(ad57xx.DACRegister(byte(ch)), ad57xx.DACValue(val))
}

// GetDACOutput reads back the DAC register of the selected channel.
func (d *Dev) GetDACOutput(ch Channel) (uint16, error) {
	if !ch.valid() {
		return 0, ad57xx.ErrInvalidArgument
	}
	data, err := d.Read(ad57xx.DACRegister(byte(ch)))
	if nil != err {
		return 0, err
	}
	val, ok := data.(ad57xx.DACValue)
	if !ok {
		return 0, ad57xx.ErrReadback
	}
	return uint16(val), nil
}

// SetOutputRange selects the output range of the selected channel(s).
func (d *Dev) SetOutputRange(ch Channel, r ad57xx.OutputRange) error {
	if !ch.valid() {
		return ad57xx.ErrInvalidArgument
	}
	return d.Write(ad57xx.RangeSelectRegister(byte(ch)), r)
}

// GetOutputRange reads back the output range of the selected channel.
// An unrecognized code decodes to RangeInvalidReadback, not an error.
func (d *Dev) GetOutputRange(ch Channel) (ad57xx.OutputRange, error) {
	if !ch.valid() {
		return ad57xx.RangeInvalidReadback, ad57xx.ErrInvalidArgument
	}
	data, err := d.Read(ad57xx.RangeSelectRegister(byte(ch)))
	if nil != err {
		return ad57xx.RangeInvalidReadback, err
	}
	r, ok := data.(ad57xx.OutputRange)
	if !ok {
		return ad57xx.RangeInvalidReadback, ad57xx.ErrReadback
	}
	return r, nil
}

// SetPowerConfig writes the whole power control register at once.
func (d *Dev) SetPowerConfig(p PowerConfig) error {
	return d.SetPowerRaw(uint16(p))
}

// GetPowerConfig returns the power control register image, from the
// shadow copy or from the device when readback is enabled.
func (d *Dev) GetPowerConfig() (PowerConfig, error) {
	raw, err := d.PowerRaw()
	if nil != err {
		return 0, err
	}
	return PowerConfig(raw), nil
}
