// Package periphspi binds the ad57xx Transport capability to a periph.io
// SPI connection. Each Tx call asserts chip select for the duration of the
// frame, which satisfies the one-exclusive-transaction-per-call contract;
// any bus sharing is arbitrated by periph.io itself.
//
// The AD57xx family clocks data in SPI mode 2:
//
//	port, _ := spireg.Open("")
//	conn, _ := port.Connect(physic.MegaHertz, spi.Mode2, 8)
//	dac := ad57x4.New(periphspi.Wrap(conn))
package periphspi

import (
	"periph.io/x/conn/v3/spi"

	"github.com/ardnew/ad57xx"
)

// Conn adapts an spi.Conn to the ad57xx Transport capability.
type Conn struct {
	c spi.Conn
}

// Wrap returns a Transport backed by the given SPI connection.
func Wrap(c spi.Conn) *Conn {
	return &Conn{c: c}
}

// Write transmits p in one chip-select-asserted transaction.
func (c *Conn) Write(p []byte) error {
	return c.c.Tx(p, nil)
}

// Transfer performs one full-duplex exchange of len(tx) bytes.
func (c *Conn) Transfer(tx, rx []byte) error {
	return c.c.Tx(tx, rx)
}

var _ ad57xx.Transport = (*Conn)(nil)
