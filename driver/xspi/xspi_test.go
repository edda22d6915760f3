package xspi

import (
	"testing"

	"golang.org/x/exp/io/spi"
	"golang.org/x/exp/io/spi/driver"
)

// fakeConn records transfers and replays queued responses.
type fakeConn struct {
	tx  [][]byte
	rsp [][]byte
	cfg map[int]int
}

func (c *fakeConn) Configure(k, v int) error {
	if nil == c.cfg {
		c.cfg = map[int]int{}
	}
	c.cfg[k] = v
	return nil
}

func (c *fakeConn) Tx(w, r []byte) error {
	c.tx = append(c.tx, append([]byte(nil), w...))
	if 0 < len(c.rsp) {
		copy(r, c.rsp[0])
		c.rsp = c.rsp[1:]
	}
	return nil
}

func (c *fakeConn) Close() error { return nil }

type fakeOpener struct {
	c driver.Conn
}

func (o *fakeOpener) Open() (driver.Conn, error) { return o.c, nil }

func open(t *testing.T, c *fakeConn) *spi.Device {
	t.Helper()
	dev, err := spi.Open(&fakeOpener{c: c})
	if nil != err {
		t.Fatalf("Open(): %v", err)
	}
	if err := dev.SetMode(spi.Mode2); nil != err {
		t.Fatalf("SetMode(): %v", err)
	}
	return dev
}

func TestWrite(t *testing.T) {

	c := &fakeConn{}
	tp := Wrap(open(t, c))

	if err := tp.Write([]byte{0x01, 0xF0, 0x0F}); nil != err {
		t.Fatalf("Write(): %v", err)
	}

	if 1 != len(c.tx) || 3 != len(c.tx[0]) || 0x01 != c.tx[0][0] {
		t.Fatalf("Write() tx == %v, want [[1 240 15]]", c.tx)
	}
}

func TestTransfer(t *testing.T) {

	c := &fakeConn{
		rsp: [][]byte{{0x00, 0xBE, 0xEF}},
	}
	tp := Wrap(open(t, c))

	rx := make([]byte, 3)
	if err := tp.Transfer([]byte{0x18, 0x00, 0x00}, rx); nil != err {
		t.Fatalf("Transfer(): %v", err)
	}

	if 0xBE != rx[1] || 0xEF != rx[2] {
		t.Errorf("Transfer() rx == %v, want [0 190 239]", rx)
	}
}
