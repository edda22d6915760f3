package ad57xx

// Config is the value of the control register configuration function. The
// semantic bits occupy the low nibble; the remaining bits are reserved and
// always zero.
//
//	bit 0  SDO disable       (default clear: SDO enabled)
//	bit 1  CLR select        (default clear: clear to 0V)
//	bit 2  clamp enable      (default set: output current clamped at 20mA)
//	bit 3  TSD enable        (default clear: thermal shutdown disabled)
type Config uint8

const (
	cfgSDODisable  Config = 1 << 0
	cfgClrSelect   Config = 1 << 1
	cfgClampEnable Config = 1 << 2
	cfgTSDEnable   Config = 1 << 3

	cfgMask Config = 0x0F
)

func (Config) data() {}

// DefaultConfig returns the power-on register defaults: SDO enabled,
// clear-to-zero, current clamp enabled, thermal shutdown disabled.
func DefaultConfig() Config {
	return cfgClampEnable
}

// SDODisable reports whether the SDO output is disabled (bit 0).
func (c Config) SDODisable() bool { return 0 != c&cfgSDODisable }

// SetSDODisable disables or enables the SDO output (bit 0). Readback
// requires SDO to remain enabled.
func (c *Config) SetSDODisable(on bool) { c.set(cfgSDODisable, on) }

// ClrSelect reports the voltage selected for a clear operation (bit 1):
// clear when the DACs clear to 0V, set when unipolar ranges clear to
// midscale and bipolar ranges to negative full scale.
func (c Config) ClrSelect() bool { return 0 != c&cfgClrSelect }

// SetClrSelect selects the output voltage after a clear operation (bit 1).
func (c *Config) SetClrSelect(on bool) { c.set(cfgClrSelect, on) }

// ClampEnable reports whether the current-limit clamp is enabled (bit 2).
func (c Config) ClampEnable() bool { return 0 != c&cfgClampEnable }

// SetClampEnable enables or disables the current-limit clamp (bit 2).
// While enabled a channel does not power down on overcurrent; the current
// is clamped at 20mA.
func (c *Config) SetClampEnable(on bool) { c.set(cfgClampEnable, on) }

// TSDEnable reports whether thermal shutdown is enabled (bit 3).
func (c Config) TSDEnable() bool { return 0 != c&cfgTSDEnable }

// SetTSDEnable enables or disables the thermal shutdown feature (bit 3).
func (c *Config) SetTSDEnable(on bool) { c.set(cfgTSDEnable, on) }

func (c *Config) set(bit Config, on bool) {
	if on {
		*c |= bit
	} else {
		*c &^= bit
	}
}
