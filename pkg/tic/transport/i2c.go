package transport

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/robotalks/tic.go/pkg/tic/codec"
)

// I2C implements Transport over an I²C device channel. Addressing is done by
// the channel, frames are [code][payload...] without CRC.
type I2C struct {
	Channel Channel
}

// NewI2C creates an I2C transport.
func NewI2C(ch Channel) *I2C {
	return &I2C{Channel: ch}
}

// Send implements Transport.
func (t *I2C) Send(code uint8, format codec.Format, value uint32) error {
	return t.write(code, codec.Payload(format, value, nil, codec.PackingLittleEndian))
}

// BlockRead implements Transport.
func (t *I2C) BlockRead(code uint8, offset uint8, length int) ([]byte, error) {
	if err := checkBlockLength(length); err != nil {
		return nil, err
	}
	if err := t.write(code, codec.BlockRequest(offset, length, false)); err != nil {
		return nil, err
	}
	resp, err := t.Channel.Read(length)
	if glog.V(3) {
		glog.Infof("i2c RX % x", resp)
	}
	if err != nil {
		return nil, fmt.Errorf("i2c read: %w", err)
	}
	if len(resp) != length {
		return nil, &ShortReadError{Expected: length, Actual: len(resp)}
	}
	return resp, nil
}

func (t *I2C) write(code uint8, payload []byte) error {
	frame := append([]byte{code}, payload...)
	if glog.V(3) {
		glog.Infof("i2c TX % x", frame)
	}
	if err := t.Channel.Write(frame); err != nil {
		return fmt.Errorf("i2c write: %w", err)
	}
	return nil
}
