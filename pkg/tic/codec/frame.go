package codec

import (
	"encoding/binary"
	"fmt"
)

// Format is the parameter format of a command.
type Format int

const (
	// FormatNone is a quick command without parameter.
	FormatNone Format = iota
	// FormatBits7 carries a single 7-bit parameter.
	FormatBits7
	// FormatBits32 carries a 32-bit parameter.
	FormatBits32
	// FormatBlock carries a raw block, used for block read requests.
	FormatBlock
)

// String implements fmt.Stringer.
func (f Format) String() string {
	switch f {
	case FormatNone:
		return "quick"
	case FormatBits7:
		return "7-bit"
	case FormatBits32:
		return "32-bit"
	case FormatBlock:
		return "block"
	}
	return fmt.Sprintf("format(%d)", int(f))
}

// Packing32 selects how a 32-bit parameter is laid out on the wire.
type Packing32 int

const (
	// Packing7BitClean is the 5-byte serial packing.
	Packing7BitClean Packing32 = iota
	// PackingLittleEndian is 4 raw little-endian bytes (I²C).
	PackingLittleEndian
)

// Pack7BitClean encodes v into the 5-byte serial form.
func Pack7BitClean(v uint32) []byte {
	return []byte{
		byte((v>>7)&1 | (v>>14)&2 | (v>>21)&4 | (v>>28)&8),
		byte(v) & 0x7f,
		byte(v>>8) & 0x7f,
		byte(v>>16) & 0x7f,
		byte(v>>24) & 0x7f,
	}
}

// Unpack7BitClean reverses Pack7BitClean.
func Unpack7BitClean(b []byte) uint32 {
	var v uint32
	for i := 0; i < 4; i++ {
		n := uint32(b[i+1] & 0x7f)
		if b[0]&(1<<uint(i)) != 0 {
			n |= 0x80
		}
		v |= n << (8 * uint(i))
	}
	return v
}

// Payload returns the parameter bytes appended after the command header.
// value is used by FormatBits7 and FormatBits32, block by FormatBlock.
func Payload(format Format, value uint32, block []byte, packing Packing32) []byte {
	switch format {
	case FormatBits7:
		return []byte{byte(value)}
	case FormatBits32:
		if packing == Packing7BitClean {
			return Pack7BitClean(value)
		}
		b := make([]byte, 4)
		binary.LittleEndian.PutUint32(b, value)
		return b
	case FormatBlock:
		return append([]byte(nil), block...)
	}
	return nil
}

// highHalfFlag is set in the length byte of a serial block read to address
// offsets 128-255 with a 7-bit offset field.
const highHalfFlag byte = 0x40

// BlockRequest returns the [offset, length] payload of a block read.
// With highHalf, offsets >= 128 are sent as offset-128 with bit 6 of the
// length byte set, as the serial interface requires.
func BlockRequest(offset uint8, length int, highHalf bool) []byte {
	if highHalf && offset >= 128 {
		return []byte{offset - 128, byte(length) | highHalfFlag}
	}
	return []byte{offset, byte(length)}
}
