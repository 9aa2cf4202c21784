package codec

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCRC7(t *testing.T) {
	testCases := []struct {
		name   string
		msg    []byte
		expect byte
	}{
		{"empty", nil, 0x00},
		{"zero", []byte{0x00}, 0x00},
		{"exit safe start", []byte{0x83}, 0x1a},
		{"halt and hold", []byte{0x89}, 0x45},
		{"pololu header", []byte{0xaa, 0x0e, 0x03}, 0x22},
		{"get variable", []byte{0xa1, 0x22, 0x04}, 0x1a},
		{"set target position", []byte{0xe0, 0x01, 0x78, 0x56, 0x34, 0x12}, 0x6d},
		{"check string", []byte("123456789"), 0x25},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.expect, CRC7(tc.msg))
			require.Equal(t, tc.expect, CRC7(tc.msg), "deterministic")
		})
	}
}

func TestCRC7AppendAndCheck(t *testing.T) {
	msgs := [][]byte{
		{0x83},
		{0xaa, 0x0e, 0x03},
		{0x2a, 0x00, 0x00, 0x00},
		[]byte("123456789"),
	}
	for _, msg := range msgs {
		framed := AppendCRC7(append([]byte(nil), msg...))
		require.Len(t, framed, len(msg)+1)
		require.True(t, CheckCRC7(framed[:len(msg)], framed[len(msg)]))
	}
}

func TestCRC7DetectsSingleBitErrors(t *testing.T) {
	msg := []byte{0xaa, 0x0e, 0xe0, 0x0f, 0x1d, 0x7f, 0x7f, 0x7f}
	crc := CRC7(msg)
	for i := range msg {
		for bit := uint(0); bit < 8; bit++ {
			flipped := append([]byte(nil), msg...)
			flipped[i] ^= 1 << bit
			require.NotEqual(t, crc, CRC7(flipped), "byte %d bit %d", i, bit)
		}
	}
}
