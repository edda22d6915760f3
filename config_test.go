package ad57xx

import (
	"fmt"
	"testing"
)

func TestDefaultConfig(t *testing.T) {

	cfg := DefaultConfig()

	// power-on defaults: only the clamp bit (bit 2) set
	if 0b0100 != uint8(cfg) {
		t.Errorf("[ ] FAIL: DefaultConfig() == 0b%04b, want 0b0100", uint8(cfg))
	}

	if cfg.SDODisable() || cfg.ClrSelect() || !cfg.ClampEnable() || cfg.TSDEnable() {
		t.Errorf("[ ] FAIL: DefaultConfig() accessors == (%t, %t, %t, %t), want (false, false, true, false)",
			cfg.SDODisable(), cfg.ClrSelect(), cfg.ClampEnable(), cfg.TSDEnable())
	}
}

func TestConfigMutators(t *testing.T) {

	type TC struct {
		name string
		set  func(*Config, bool)
		get  func(Config) bool
		bit  uint8
	}

	tc := []TC{
		{name: "SDODisable", set: (*Config).SetSDODisable, get: Config.SDODisable, bit: 1 << 0},
		{name: "ClrSelect", set: (*Config).SetClrSelect, get: Config.ClrSelect, bit: 1 << 1},
		{name: "ClampEnable", set: (*Config).SetClampEnable, get: Config.ClampEnable, bit: 1 << 2},
		{name: "TSDEnable", set: (*Config).SetTSDEnable, get: Config.TSDEnable, bit: 1 << 3},
	}

	for _, c := range tc {

		var cfg Config

		c.set(&cfg, true)
		d := fmt.Sprintf("Set%s(true) == 0b%04b", c.name, uint8(cfg))

		if c.get(cfg) && uint8(cfg) == c.bit {
			t.Logf("[ ] PASS: %s", d)
		} else {
			t.Errorf("[ ] FAIL: %s | want bit 0b%04b", d, c.bit)
		}

		c.set(&cfg, false)
		if 0 != uint8(cfg) {
			t.Errorf("[ ] FAIL: Set%s(false) == 0b%04b, want 0", c.name, uint8(cfg))
		}
	}
}
