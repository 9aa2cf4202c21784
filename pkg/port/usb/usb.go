// Package usb opens a Tic over native USB using vendor control transfers.
package usb

import (
	"errors"
	"fmt"

	"github.com/golang/glog"
	"github.com/google/gousb"

	"github.com/robotalks/tic.go/pkg/tic/protocol"
)

// ErrDeviceNotFound indicates no attached device matches Config.
var ErrDeviceNotFound = errors.New("tic usb device not found")

// Config selects the device to open.
type Config struct {
	// Product is the USB product ID, 0 matches any Tic model.
	Product uint16 `yaml:"product"`
	// Serial is the serial number, empty matches any.
	Serial string `yaml:"serial"`
}

// Device is an open Tic USB device.
type Device struct {
	ctx *gousb.Context
	dev *gousb.Device
	cfg *gousb.Config
}

func (c Config) matchDesc(desc *gousb.DeviceDesc) bool {
	if desc.Vendor != gousb.ID(protocol.VendorID) {
		return false
	}
	if c.Product != 0 {
		return desc.Product == gousb.ID(c.Product)
	}
	for _, m := range protocol.Models {
		if desc.Product == gousb.ID(m.ProductID()) {
			return true
		}
	}
	return false
}

// Open opens the first device matching c and selects configuration 1.
func Open(c Config) (*Device, error) {
	ctx := gousb.NewContext()
	devs, err := ctx.OpenDevices(c.matchDesc)
	if err != nil && len(devs) == 0 {
		ctx.Close()
		return nil, fmt.Errorf("enumerate usb: %w", err)
	}
	var found *gousb.Device
	for _, dev := range devs {
		if found == nil && c.matchSerial(dev) {
			found = dev
			continue
		}
		dev.Close()
	}
	if found == nil {
		ctx.Close()
		return nil, ErrDeviceNotFound
	}
	cfg, err := found.Config(1)
	if err != nil {
		found.Close()
		ctx.Close()
		return nil, fmt.Errorf("usb set configuration: %w", err)
	}
	glog.Infof("usb %s opened", found)
	return &Device{ctx: ctx, dev: found, cfg: cfg}, nil
}

func (c Config) matchSerial(dev *gousb.Device) bool {
	if c.Serial == "" {
		return true
	}
	sn, err := dev.SerialNumber()
	if err != nil {
		if glog.V(2) {
			glog.Infof("usb %s serial number: %v", dev, err)
		}
		return false
	}
	return sn == c.Serial
}

// ControlTransfer implements transport.ControlChannel.
func (d *Device) ControlTransfer(requestType, request uint8, value, index uint16, length int) ([]byte, error) {
	var data []byte
	if length > 0 {
		data = make([]byte, length)
	}
	n, err := d.dev.Control(requestType, request, value, index, data)
	if err != nil {
		return nil, err
	}
	return data[:n], nil
}

// SerialNumber returns the serial number of the device.
func (d *Device) SerialNumber() (string, error) {
	return d.dev.SerialNumber()
}

// Close implements io.Closer.
func (d *Device) Close() error {
	d.cfg.Close()
	err := d.dev.Close()
	d.ctx.Close()
	return err
}
