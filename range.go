package ad57xx

// OutputRange selects the analog span of a DAC channel. The quoted spans
// assume a 2.5V reference input; consult the datasheet for the gains
// associated with each setting under other references.
type OutputRange byte

// Constants for all recognized output range codes.
const (
	RangeUnipolar5V   OutputRange = 0x0 // gain 2,    0V to +5V
	RangeUnipolar10V  OutputRange = 0x1 // gain 4,    0V to +10V
	RangeUnipolar10V8 OutputRange = 0x2 // gain 4.32, 0V to +10.8V
	RangeBipolar5V    OutputRange = 0x3 // gain 4,    -5V to +5V
	RangeBipolar10V   OutputRange = 0x4 // gain 8,    -10V to +10V
	RangeBipolar10V8  OutputRange = 0x5 // gain 8.64, -10.8V to +10.8V

	// RangeInvalidReadback flags an unrecognized code returned by the
	// device during readback. It is a sentinel, not an error, and is
	// rejected if written back.
	RangeInvalidReadback OutputRange = 0xFF
)

// RangeFromCode decodes a readback payload into an output range.
// Unrecognized codes decode to RangeInvalidReadback.
func RangeFromCode(raw uint16) OutputRange {
	if raw > uint16(RangeBipolar10V8) {
		return RangeInvalidReadback
	}
	return OutputRange(raw)
}

// valid reports whether r is one of the writable 3-bit range codes.
func (r OutputRange) valid() bool {
	return r <= RangeBipolar10V8
}

func (OutputRange) data() {}

func (r OutputRange) String() string {
	switch r {
	case RangeUnipolar5V:
		return "0V..+5V"
	case RangeUnipolar10V:
		return "0V..+10V"
	case RangeUnipolar10V8:
		return "0V..+10.8V"
	case RangeBipolar5V:
		return "-5V..+5V"
	case RangeBipolar10V:
		return "-10V..+10V"
	case RangeBipolar10V8:
		return "-10.8V..+10.8V"
	}
	return "invalid readback"
}
