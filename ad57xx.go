// Package ad57xx provides a high-level interface to the Analog Devices
// AD57xx family of multi-channel digital-to-analog converters. The family
// covers a dual-channel topology (AD5722/AD5732/AD5752, package ad57x2) and
// a quad-channel topology (AD5724/AD5734/AD5754, package ad57x4), which
// share one register protocol and differ only in channel count and the bit
// layout of the power control register.
//
// Every register access is one fixed 3-byte frame exchanged over a
// full-duplex serial bus in SPI mode 2. This package only builds and
// decodes those frames; the physical bus is consumed through the Transport
// interface, with ready-made bindings for periph.io (driver/periphspi) and
// golang.org/x/exp/io/spi (driver/xspi).
//
// Datasheet: https://www.analog.com/media/en/technical-documentation/data-sheets/AD5724_5734_5754.pdf
package ad57xx

import (
	"log"
	"time"
)

// FrameSz is the size (in bytes) of every command and readback frame.
const FrameSz = 3

// PowerUpSettle is the time the device needs between a channel power-up
// transition and loading the corresponding DAC register. The driver does
// not insert this delay itself; the caller must.
const PowerUpSettle = 10 * time.Microsecond

// Transport is the bus capability consumed by a device handle. Each method
// call is one exclusive bus transaction: the implementation owns chip
// select, clocking, and any sharing arbitration.
type Transport interface {
	// Write transmits p in a single exclusive transaction.
	Write(p []byte) error

	// Transfer performs a single full-duplex exchange, transmitting tx
	// while filling rx. Both slices have the same length.
	Transfer(tx, rx []byte) error
}

// Op is one bus operation inside a grouped transaction. RX is nil for a
// write-only operation, otherwise it has the same length as TX.
type Op struct {
	TX []byte
	RX []byte
}

// Transactor is an optional Transport extension that groups several
// operations into one exclusive access span. The two-phase register read
// is issued through it when the transport provides it.
type Transactor interface {
	Transact(ops []Op) error
}

// Options holds the construction parameters shared by both chip variants.
// It is populated through Option values passed to ad57x2.New or ad57x4.New.
type Options struct {
	// Readback re-reads the device on every get operation instead of
	// trusting the shadow registers.
	Readback bool
}

// Option configures a device handle at construction.
type Option func(*Options)

// WithReadback enables readback mode: every get operation performs a
// two-phase register read and refreshes the shadow copy, instead of
// returning the cached value. Requires the SDO line to be wired.
func WithReadback() Option {
	return func(o *Options) { o.Readback = true }
}

// Debug enables frame tracing on the default log object.
var Debug bool

// logFrame pretty-prints a single frame using the default log object, one
// line per frame with the following format:
//
//	DIR: [0bBIN 0bBIN 0bBIN] {0xHEX}
func logFrame(dir string, f []byte) {
	if len(f) < FrameSz {
		return
	}
	log.Printf("%s: [0b%08b 0b%08b 0b%08b] {0x%02X%02X%02X}",
		dir, f[0], f[1], f[2], f[0], f[1], f[2])
}

// LogFrame traces a frame when Debug is enabled. dir names the direction
// of travel ("W", "R", or similar).
func LogFrame(dir string, f []byte) {
	if Debug {
		logFrame(dir, f)
	}
}
