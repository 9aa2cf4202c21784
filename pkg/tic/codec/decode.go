package codec

import "fmt"

// DecodeKind selects how raw bytes are turned into a value.
type DecodeKind int

const (
	// DecodeRaw returns the bytes as-is ([]byte).
	DecodeRaw DecodeKind = iota
	// DecodeUnsigned returns a uint64.
	DecodeUnsigned
	// DecodeSigned returns an int64.
	DecodeSigned
	// DecodeBit returns a bool of bit Start.
	DecodeBit
	// DecodeBitRange returns bits [Start, End] as a uint64.
	DecodeBitRange
)

// Decoder describes the decoding of a variable or setting.
// The zero value decodes to raw bytes.
type Decoder struct {
	Kind  DecodeKind
	Start uint
	End   uint
}

// Predefined decoders.
var (
	Raw      = Decoder{Kind: DecodeRaw}
	Unsigned = Decoder{Kind: DecodeUnsigned}
	Signed   = Decoder{Kind: DecodeSigned}
)

// Bit decodes a single bit.
func Bit(index uint) Decoder {
	return Decoder{Kind: DecodeBit, Start: index}
}

// Bits decodes the inclusive bit range [start, end].
func Bits(start, end uint) Decoder {
	return Decoder{Kind: DecodeBitRange, Start: start, End: end}
}

// Decode converts b into a typed value.
func (d Decoder) Decode(b []byte) interface{} {
	switch d.Kind {
	case DecodeUnsigned:
		return UnsignedInt(b)
	case DecodeSigned:
		return SignedInt(b)
	case DecodeBit:
		return Boolean(d.Start, b)
	case DecodeBitRange:
		return BitRange(d.Start, d.End, b)
	}
	return append([]byte(nil), b...)
}

// String implements fmt.Stringer.
func (d Decoder) String() string {
	switch d.Kind {
	case DecodeRaw:
		return "raw"
	case DecodeUnsigned:
		return "unsigned"
	case DecodeSigned:
		return "signed"
	case DecodeBit:
		return fmt.Sprintf("bit(%d)", d.Start)
	case DecodeBitRange:
		return fmt.Sprintf("bits(%d..%d)", d.Start, d.End)
	}
	return fmt.Sprintf("decoder(%d)", int(d.Kind))
}
