package transport

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/robotalks/tic.go/pkg/tic/codec"
)

// PololuSync is the first byte of a command in the Pololu protocol.
const PololuSync byte = 0xaa

// Serial implements Transport over a TTL serial / RS-232 channel.
//
// With a DeviceNumber the addressed Pololu protocol is used:
//
//	[0xAA][device number][code & 0x7F][payload...][CRC?]
//
// otherwise the compact protocol:
//
//	[code][payload...][CRC?]
type Serial struct {
	Channel Channel
	// DeviceNumber selects the Pololu protocol when not nil.
	DeviceNumber *uint8
	// CRCCommands appends a CRC-7 byte to every command.
	CRCCommands bool
	// CRCResponses expects a CRC-7 byte after every response.
	CRCResponses bool
}

// NewSerial creates a Serial transport using the compact protocol.
func NewSerial(ch Channel) *Serial {
	return &Serial{Channel: ch}
}

// WithDeviceNumber switches to the Pololu protocol addressing num.
func (s *Serial) WithDeviceNumber(num uint8) *Serial {
	s.DeviceNumber = &num
	return s
}

// WithCRC enables CRC on commands and/or responses.
func (s *Serial) WithCRC(commands, responses bool) *Serial {
	s.CRCCommands, s.CRCResponses = commands, responses
	return s
}

// Frame builds the bytes of a command with the given payload.
func (s *Serial) Frame(code uint8, payload []byte) []byte {
	frame := make([]byte, 0, 4+len(payload))
	if s.DeviceNumber == nil {
		frame = append(frame, code)
	} else {
		frame = append(frame, PololuSync, *s.DeviceNumber, code&0x7f)
	}
	frame = append(frame, payload...)
	if s.CRCCommands {
		frame = codec.AppendCRC7(frame)
	}
	return frame
}

// Send implements Transport.
func (s *Serial) Send(code uint8, format codec.Format, value uint32) error {
	return s.write(s.Frame(code, codec.Payload(format, value, nil, codec.Packing7BitClean)))
}

// BlockRead implements Transport.
func (s *Serial) BlockRead(code uint8, offset uint8, length int) ([]byte, error) {
	if err := checkBlockLength(length); err != nil {
		return nil, err
	}
	req := codec.BlockRequest(offset, length, true)
	if err := s.write(s.Frame(code, codec.Payload(codec.FormatBlock, 0, req, codec.Packing7BitClean))); err != nil {
		return nil, err
	}
	return s.readResponse(length)
}

func (s *Serial) write(frame []byte) error {
	if glog.V(3) {
		glog.Infof("serial TX % x", frame)
	}
	if err := s.Channel.Write(frame); err != nil {
		return fmt.Errorf("serial write: %w", err)
	}
	return nil
}

func (s *Serial) readResponse(length int) ([]byte, error) {
	expected := length
	if s.CRCResponses {
		expected++
	}
	resp, err := s.Channel.Read(expected)
	if glog.V(3) {
		glog.Infof("serial RX % x", resp)
	}
	if err != nil {
		return nil, fmt.Errorf("serial read: %w", err)
	}
	if !s.CRCResponses {
		if len(resp) != length {
			return nil, &ShortReadError{Expected: length, Actual: len(resp)}
		}
		return resp, nil
	}
	if len(resp) != expected {
		return nil, &MissingFramingError{Expected: expected, Actual: len(resp)}
	}
	msg, crc := resp[:length], resp[length]
	if !codec.CheckCRC7(msg, crc) {
		return nil, ErrChecksumMismatch
	}
	return msg, nil
}
