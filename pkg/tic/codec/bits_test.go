package codec

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leBytes(v uint64, n int) []byte {
	b := make([]byte, 8)
	binary.LittleEndian.PutUint64(b, v)
	return b[:n]
}

func TestUnsignedInt(t *testing.T) {
	testCases := []struct {
		name   string
		in     []byte
		expect uint64
	}{
		{"empty", nil, 0},
		{"one byte", []byte{0xfe}, 0xfe},
		{"two bytes", []byte{0x34, 0x12}, 0x1234},
		{"four bytes", []byte{0x9d, 0xff, 0xff, 0xff}, 4294967197},
		{"eight bytes", []byte{1, 2, 3, 4, 5, 6, 7, 8}, 0x0807060504030201},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, UnsignedInt(tc.in))
		})
	}
}

func TestSignedIntRoundTrip(t *testing.T) {
	for _, n := range []int{1, 2, 4} {
		bits := uint(n * 8)
		lo, hi := -(int64(1) << (bits - 1)), int64(1)<<(bits-1)-1
		values := []int64{lo, lo + 1, -99, -1, 0, 1, 42, hi - 1, hi}
		for _, v := range values {
			b := leBytes(uint64(v), n)
			require.Equal(t, v, SignedInt(b), "len=%d v=%d", n, v)
			require.Equal(t, uint64(v)&(1<<bits-1), UnsignedInt(b), "len=%d v=%d", n, v)
		}
	}
	// exhaustive for a single byte
	for v := -128; v < 128; v++ {
		require.Equal(t, int64(v), SignedInt([]byte{byte(v)}))
	}
}

func TestBoolean(t *testing.T) {
	samples := [][]byte{
		{0x04},
		{0x08},
		{0xa5, 0x5a},
		{0x01, 0x00, 0x80, 0x7f},
	}
	for _, b := range samples {
		v := UnsignedInt(b)
		for i := uint(0); i < uint(len(b))*8; i++ {
			assert.Equal(t, v&(1<<i) != 0, Boolean(i, b), "bit %d of % x", i, b)
		}
	}
	assert.False(t, Boolean(3, []byte{0x04}))
	assert.True(t, Boolean(3, []byte{0x08}))
	assert.True(t, Boolean(15, []byte{0x00, 0x80}))
}

func TestBitRange(t *testing.T) {
	samples := [][]byte{
		{0x02},
		{0xff},
		{0xb7},
		{0x34, 0x92},
		{0x78, 0x56, 0x34, 0x12},
	}
	for _, b := range samples {
		v := UnsignedInt(b)
		width := uint(len(b)) * 8
		for start := uint(0); start < width; start++ {
			for end := start; end < width; end++ {
				expect := (v >> start) & (1<<(end-start+1) - 1)
				require.Equal(t, expect, BitRange(start, end, b), "[%d,%d] of % x", start, end, b)
			}
		}
	}
	require.Equal(t, uint64(0x7f), BitRange(0, 6, []byte{0xff}))
	require.Equal(t, uint64(0x0b), BitRange(0, 3, []byte{0x4b}))
}

func TestDecoder(t *testing.T) {
	testCases := []struct {
		name    string
		decoder Decoder
		in      []byte
		expect  interface{}
	}{
		{"raw", Raw, []byte{1, 2}, []byte{1, 2}},
		{"zero value is raw", Decoder{}, []byte{3}, []byte{3}},
		{"unsigned", Unsigned, []byte{0x9d, 0xff, 0xff, 0xff}, uint64(4294967197)},
		{"signed", Signed, []byte{0x9d, 0xff, 0xff, 0xff}, int64(-99)},
		{"bit set", Bit(3), []byte{0x08}, true},
		{"bit clear", Bit(3), []byte{0x04}, false},
		{"bit range", Bits(0, 3), []byte{0xc5}, uint64(5)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, tc.decoder.Decode(tc.in))
		})
	}

	in := []byte{7}
	out := Raw.Decode(in).([]byte)
	out[0] = 9
	require.Equal(t, byte(7), in[0], "raw decode must not alias its input")
}
