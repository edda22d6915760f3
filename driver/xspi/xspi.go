// Package xspi binds the ad57xx Transport capability to a
// golang.org/x/exp/io/spi device, typically opened through the Linux devfs
// driver. Each Transfer call is one chip-select-asserted transaction.
//
// The AD57xx family clocks data in SPI mode 2:
//
//	dev, _ := spi.Open(&spi.Devfs{Dev: "/dev/spidev0.0", Mode: spi.Mode2, MaxSpeed: 1000000})
//	dac := ad57x2.New(xspi.Wrap(dev))
package xspi

import (
	"golang.org/x/exp/io/spi"

	"github.com/ardnew/ad57xx"
)

// Device adapts an x/exp SPI device to the ad57xx Transport capability.
type Device struct {
	d *spi.Device
}

// Wrap returns a Transport backed by the given SPI device.
func Wrap(d *spi.Device) *Device {
	return &Device{d: d}
}

// Write transmits p in one transaction. The device only exposes duplex
// transfers, so the bytes shifted in alongside are discarded.
func (d *Device) Write(p []byte) error {
	return d.d.Tx(p, make([]byte, len(p)))
}

// Transfer performs one full-duplex exchange of len(tx) bytes.
func (d *Device) Transfer(tx, rx []byte) error {
	return d.d.Tx(tx, rx)
}

var _ ad57xx.Transport = (*Device)(nil)
