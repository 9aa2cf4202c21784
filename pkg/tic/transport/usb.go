package transport

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/robotalks/tic.go/pkg/tic/codec"
)

// USB implements Transport with vendor control transfers. The request is
// the command code; parameters go into the value and index fields.
type USB struct {
	Channel ControlChannel
}

// NewUSB creates a USB transport.
func NewUSB(ch ControlChannel) *USB {
	return &USB{Channel: ch}
}

// Send implements Transport.
func (t *USB) Send(code uint8, format codec.Format, value uint32) error {
	var wValue, wIndex uint16
	switch format {
	case codec.FormatBits7:
		wValue = uint16(value)
	case codec.FormatBits32:
		wValue, wIndex = uint16(value), uint16(value>>16)
	}
	if glog.V(3) {
		glog.Infof("usb OUT req=%#02x value=%#04x index=%#04x", code, wValue, wIndex)
	}
	if _, err := t.Channel.ControlTransfer(RequestTypeVendorOut, code, wValue, wIndex, 0); err != nil {
		return fmt.Errorf("usb control transfer: %w", err)
	}
	return nil
}

// BlockRead implements Transport.
func (t *USB) BlockRead(code uint8, offset uint8, length int) ([]byte, error) {
	if err := checkBlockLength(length); err != nil {
		return nil, err
	}
	resp, err := t.Channel.ControlTransfer(RequestTypeVendorIn, code, 0, uint16(offset), length)
	if glog.V(3) {
		glog.Infof("usb IN req=%#02x index=%#04x: % x", code, offset, resp)
	}
	if err != nil {
		return nil, fmt.Errorf("usb control transfer: %w", err)
	}
	if len(resp) != length {
		return nil, &ShortReadError{Expected: length, Actual: len(resp)}
	}
	return resp, nil
}
