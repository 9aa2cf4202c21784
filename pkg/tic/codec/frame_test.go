package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPayload(t *testing.T) {
	testCases := []struct {
		name    string
		format  Format
		value   uint32
		block   []byte
		packing Packing32
		expect  []byte
	}{
		{"quick", FormatNone, 0, nil, Packing7BitClean, nil},
		{"7-bit", FormatBits7, 1, nil, Packing7BitClean, []byte{1}},
		{"7-bit le", FormatBits7, 127, nil, PackingLittleEndian, []byte{127}},
		{"32-bit serial", FormatBits32, 0x12345678, nil, Packing7BitClean, []byte{0x00, 0x78, 0x56, 0x34, 0x12}},
		{"32-bit serial negative", FormatBits32, uint32(0xffffff9d), nil, Packing7BitClean, []byte{0x0f, 0x1d, 0x7f, 0x7f, 0x7f}},
		{"32-bit serial msb of byte 1", FormatBits32, 0x8000, nil, Packing7BitClean, []byte{0x02, 0, 0, 0, 0}},
		{"32-bit le", FormatBits32, 0x12345678, nil, PackingLittleEndian, []byte{0x78, 0x56, 0x34, 0x12}},
		{"32-bit le negative", FormatBits32, uint32(0xffffff9d), nil, PackingLittleEndian, []byte{0x9d, 0xff, 0xff, 0xff}},
		{"block", FormatBlock, 0, []byte{0x22, 0x04}, Packing7BitClean, []byte{0x22, 0x04}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			out := Payload(tc.format, tc.value, tc.block, tc.packing)
			if tc.expect == nil {
				require.Empty(t, out)
				return
			}
			require.Equal(t, tc.expect, out)
		})
	}
}

func TestPack7BitCleanIsClean(t *testing.T) {
	values := []uint32{0, 1, 0x7f, 0x80, 0xff, 0x8080, 0x808080, 0x80808080, 0xffffffff, 0x12345678, uint32(0xffffff9d)}
	for _, v := range values {
		b := Pack7BitClean(v)
		require.Len(t, b, 5)
		for _, c := range b {
			require.Zero(t, c&0x80, "value %#x byte %#x", v, c)
		}
		require.Equal(t, v, Unpack7BitClean(b))
	}
}

func TestBlockRequest(t *testing.T) {
	require.Equal(t, []byte{0x22, 0x04}, BlockRequest(0x22, 4, true))
	require.Equal(t, []byte{0x7f, 0x01}, BlockRequest(0x7f, 1, true))
	require.Equal(t, []byte{0x00, 0x41}, BlockRequest(0x80, 1, true))
	require.Equal(t, []byte{0x7f, 0x41}, BlockRequest(0xff, 1, true))
	require.Equal(t, []byte{0xff, 0x01}, BlockRequest(0xff, 1, false))
}

func TestFormatString(t *testing.T) {
	require.Equal(t, "quick", FormatNone.String())
	require.Equal(t, "32-bit", FormatBits32.String())
	require.Equal(t, "format(9)", Format(9).String())
}
