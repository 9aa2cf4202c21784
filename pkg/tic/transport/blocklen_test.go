package transport

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBlockLengthLimit(t *testing.T) {
	transports := []struct {
		name string
		new  func() (Transport, func() int)
	}{
		{"serial", func() (Transport, func() int) {
			ch := &queueChannel{}
			return NewSerial(ch), func() int { return len(ch.writes) }
		}},
		{"i2c", func() (Transport, func() int) {
			ch := &queueChannel{}
			return NewI2C(ch), func() int { return len(ch.writes) }
		}},
		{"usb", func() (Transport, func() int) {
			rec := &controlRecorder{}
			return NewUSB(rec), func() int { return len(rec.calls) }
		}},
	}
	for _, tr := range transports {
		for _, length := range []int{0, -1, MaxBlockLength + 1, 64, 128} {
			tp, sent := tr.new()
			_, err := tp.BlockRead(0xa1, 0x10, length)
			var lenErr *BlockLengthError
			require.True(t, errors.As(err, &lenErr), "%s length %d", tr.name, length)
			require.Equal(t, length, lenErr.Length)
			require.Zero(t, sent(), "%s length %d must not reach the channel", tr.name, length)
		}
	}
}

func TestSerialBlockReadMaxLength(t *testing.T) {
	ch := (&queueChannel{}).respond(make([]byte, MaxBlockLength))
	data, err := NewSerial(ch).BlockRead(0xa1, 0x90, MaxBlockLength)
	require.NoError(t, err)
	require.Len(t, data, MaxBlockLength)
	require.Equal(t, []byte{0xa1, 0x10, 0x4f}, ch.lastWrite())
}
