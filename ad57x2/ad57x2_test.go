package ad57x2

import (
	"bytes"
	"errors"
	"fmt"
	"testing"

	"github.com/ardnew/ad57xx"
)

// mockTransport records every transaction issued by the handle and replays
// queued responses on full-duplex exchanges.
type mockTransport struct {
	writes [][]byte
	xfers  [][]byte
	rsp    [][]byte
}

func (m *mockTransport) Write(p []byte) error {
	m.writes = append(m.writes, append([]byte(nil), p...))
	return nil
}

func (m *mockTransport) Transfer(tx, rx []byte) error {
	m.xfers = append(m.xfers, append([]byte(nil), tx...))
	if 0 < len(m.rsp) {
		copy(rx, m.rsp[0])
		m.rsp = m.rsp[1:]
	}
	return nil
}

func (m *mockTransport) count() int {
	return len(m.writes) + len(m.xfers)
}

func TestSetDACOutput(t *testing.T) {

	type TC struct {
		ch    Channel
		val   uint16
		frame []byte
	}

	// channel B sits at the reserved-compatible address 2
	tc := []TC{
		{ch: DACA, val: 0xF00F, frame: []byte{0b00000000, 0xF0, 0x0F}},
		{ch: DACB, val: 0xF00F, frame: []byte{0b00000010, 0xF0, 0x0F}},
		{ch: AllDACs, val: 0x8000, frame: []byte{0b00000100, 0x80, 0x00}},
	}

	for _, c := range tc {

		m := &mockTransport{}
		dac := New(m)

		err := dac.SetDACOutput(c.ch, c.val)
		d := fmt.Sprintf("SetDACOutput(%d, 0x%04X) -> %v", c.ch, c.val, m.writes)

		if nil == err && 1 == len(m.writes) && bytes.Equal(m.writes[0], c.frame) {
			t.Logf("[ ] PASS: %s", d)
		} else {
			t.Errorf("[ ] FAIL: %s | want [%v], err %v", d, c.frame, err)
		}
	}
}

func TestReservedChannelSlots(t *testing.T) {

	m := &mockTransport{}
	dac := New(m)

	// the quad part's B/D slots are reserved on the dual part
	for _, ch := range []Channel{Channel(1), Channel(3), Channel(5)} {

		err := dac.SetDACOutput(ch, 0)
		d := fmt.Sprintf("SetDACOutput(%d, 0) == %v", ch, err)

		if errors.Is(err, ad57xx.ErrInvalidArgument) {
			t.Logf("[ ] PASS: %s", d)
		} else {
			t.Errorf("[ ] FAIL: %s | want %v", d, ad57xx.ErrInvalidArgument)
		}
	}

	if 0 != m.count() {
		t.Errorf("[ ] FAIL: %d transactions, want 0", m.count())
	}
}

func TestSetPowerAggregation(t *testing.T) {

	m := &mockTransport{}
	dac := New(m)

	// seed the shadow with reserved bit positions set
	if err := dac.SetPowerConfig(PowerConfig(0x00A2)); nil != err {
		t.Fatalf("SetPowerConfig(): %v", err)
	}

	// AllDACs touches only the two meaningful pu bits; reserved positions
	// keep their prior values
	if err := dac.SetPower(AllDACs, true); nil != err {
		t.Fatalf("SetPower(): %v", err)
	}

	want := []byte{0b00010000, 0x00, 0xA7}
	if 2 != len(m.writes) || !bytes.Equal(m.writes[1], want) {
		t.Fatalf("[ ] FAIL: SetPower(AllDACs, true) -> %v, want [%v]", m.writes, want)
	}

	if err := dac.SetPower(DACB, false); nil != err {
		t.Fatalf("SetPower(): %v", err)
	}

	want = []byte{0b00010000, 0x00, 0xA3}
	if 3 != len(m.writes) || !bytes.Equal(m.writes[2], want) {
		t.Errorf("[ ] FAIL: SetPower(DACB, false) -> %v, want [%v]", m.writes[2:], want)
	}

	pc, err := dac.GetPowerConfig()
	if nil != err {
		t.Fatalf("GetPowerConfig(): %v", err)
	}
	if !pc.PUA() || pc.PUB() {
		t.Errorf("[ ] FAIL: power config == 0x%04X, want A up, B down", uint16(pc))
	}
}

func TestGetConfigReadbackFrames(t *testing.T) {

	m := &mockTransport{
		rsp: [][]byte{{0x00, 0x00, 0x04}},
	}
	dac := New(m, ad57xx.WithReadback())

	cfg, err := dac.GetConfig()
	if nil != err {
		t.Fatalf("GetConfig(): %v", err)
	}

	// identical frames to the quad part: the protocol is shared
	wantReq := []byte{0b10011001, 0x00, 0x00}
	wantNop := []byte{0b00011000, 0x00, 0x00}

	if 1 != len(m.writes) || !bytes.Equal(m.writes[0], wantReq) {
		t.Errorf("[ ] FAIL: readback phase 1 -> %v, want [%v]", m.writes, wantReq)
	}
	if 1 != len(m.xfers) || !bytes.Equal(m.xfers[0], wantNop) {
		t.Errorf("[ ] FAIL: readback phase 2 -> %v, want [%v]", m.xfers, wantNop)
	}
	if ad57xx.DefaultConfig() != cfg {
		t.Errorf("[ ] FAIL: GetConfig() == 0b%04b, want 0b%04b", uint8(cfg), uint8(ad57xx.DefaultConfig()))
	}
}

func TestPowerConfigAccessors(t *testing.T) {

	var pc PowerConfig

	pc.SetPUA(true)
	pc.SetPUB(true)

	if 0b0101 != uint16(pc) {
		t.Fatalf("[ ] FAIL: power config == 0x%04X, want 0x0005", uint16(pc))
	}

	pc = PowerConfig(0x02A0) // tsd + both oc flags
	if !pc.TSD() || !pc.OCA() || !pc.OCB() {
		t.Errorf("[ ] FAIL: status accessors on 0x%04X", uint16(pc))
	}
	if pc.PUA() || pc.PUB() {
		t.Errorf("[ ] FAIL: pu accessors on 0x%04X", uint16(pc))
	}
}
