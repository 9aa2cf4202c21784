package tic

import (
	"errors"
	"fmt"
	"math"

	"github.com/robotalks/tic.go/pkg/tic/codec"
	"github.com/robotalks/tic.go/pkg/tic/protocol"
	"github.com/robotalks/tic.go/pkg/tic/transport"
)

var (
	// ErrValueOutOfRange indicates a command parameter doesn't fit its format.
	ErrValueOutOfRange = errors.New("value out of range")
	// ErrUnknownName indicates a lookup by name failed.
	ErrUnknownName = errors.New("unknown name")
)

// Names of the settings synthesized from two bytes each.
const (
	SerialDeviceNumberName    = "serial_device_number"
	SerialAltDeviceNumberName = "serial_alt_device_number"
)

// Setting offsets of the 7-bit halves of the device numbers.
const (
	offsetDeviceNumberLow     uint8 = 0x07
	offsetDeviceNumberHigh    uint8 = 0x69
	offsetAltDeviceNumberLow  uint8 = 0x6a
	offsetAltDeviceNumberHigh uint8 = 0x6b
)

// Device is a Tic controller reached through a Transport.
type Device struct {
	Transport transport.Transport
}

// New creates a Device.
func New(t transport.Transport) *Device {
	return &Device{Transport: t}
}

// Command sends the command k. value is ignored by quick commands, must be
// within 0..127 for 7-bit commands and fit in 32 bits (signed or unsigned)
// otherwise.
func (d *Device) Command(k protocol.CommandKind, value int64) error {
	if !k.IsValid() {
		return fmt.Errorf("%w: command %d", ErrUnknownName, int(k))
	}
	spec := k.Spec()
	var raw uint32
	switch spec.Format {
	case codec.FormatBits7:
		if value < 0 || value > 0x7f {
			return fmt.Errorf("%s: %w: %d not in 0..127", spec.Name, ErrValueOutOfRange, value)
		}
		raw = uint32(value)
	case codec.FormatBits32:
		if value < math.MinInt32 || value > math.MaxUint32 {
			return fmt.Errorf("%s: %w: %d exceeds 32 bits", spec.Name, ErrValueOutOfRange, value)
		}
		raw = uint32(value)
	}
	if err := d.Transport.Send(spec.Code, spec.Format, raw); err != nil {
		return fmt.Errorf("%s: %w", spec.Name, err)
	}
	return nil
}

// CommandByName sends a command looked up by name.
func (d *Device) CommandByName(name string, value int64) error {
	k, ok := protocol.CommandByName(name)
	if !ok {
		return fmt.Errorf("%w: command %q", ErrUnknownName, name)
	}
	return d.Command(k, value)
}

// Variable reads and decodes variable k.
func (d *Device) Variable(k protocol.VariableKind) (interface{}, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: variable %d", ErrUnknownName, int(k))
	}
	return d.read(protocol.GetVariable, k.Spec())
}

// VariableAndClearErrors reads variable k and clears the latched
// "errors occurred" bits.
func (d *Device) VariableAndClearErrors(k protocol.VariableKind) (interface{}, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: variable %d", ErrUnknownName, int(k))
	}
	return d.read(protocol.GetVariableAndClearErrors, k.Spec())
}

// VariableByName reads a variable looked up by name.
func (d *Device) VariableByName(name string) (interface{}, error) {
	k, ok := protocol.VariableByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: variable %q", ErrUnknownName, name)
	}
	return d.Variable(k)
}

// Setting reads and decodes setting k.
func (d *Device) Setting(k protocol.SettingKind) (interface{}, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: setting %d", ErrUnknownName, int(k))
	}
	return d.read(protocol.GetSetting, k.Spec())
}

// SettingByName reads a setting looked up by name, including the
// synthesized device numbers.
func (d *Device) SettingByName(name string) (interface{}, error) {
	switch name {
	case SerialDeviceNumberName:
		return d.SerialDeviceNumber()
	case SerialAltDeviceNumberName:
		return d.SerialAltDeviceNumber()
	}
	k, ok := protocol.SettingByName(name)
	if !ok {
		return nil, fmt.Errorf("%w: setting %q", ErrUnknownName, name)
	}
	return d.Setting(k)
}

// ReadVariables reads length raw bytes of variables at offset.
func (d *Device) ReadVariables(offset uint8, length int) ([]byte, error) {
	return d.Transport.BlockRead(protocol.GetVariable, offset, length)
}

// ReadSettings reads length raw bytes of settings at offset.
func (d *Device) ReadSettings(offset uint8, length int) ([]byte, error) {
	return d.Transport.BlockRead(protocol.GetSetting, offset, length)
}

// SerialDeviceNumber reads the 14-bit serial device number.
func (d *Device) SerialDeviceNumber() (uint16, error) {
	return d.deviceNumber(offsetDeviceNumberLow, offsetDeviceNumberHigh)
}

// SerialAltDeviceNumber reads the 14-bit alternative serial device number.
func (d *Device) SerialAltDeviceNumber() (uint16, error) {
	return d.deviceNumber(offsetAltDeviceNumberLow, offsetAltDeviceNumberHigh)
}

// Variables reads all variables into a map keyed by name.
func (d *Device) Variables() (map[string]interface{}, error) {
	kinds := protocol.Variables()
	values := make(map[string]interface{}, len(kinds))
	for _, k := range kinds {
		v, err := d.Variable(k)
		if err != nil {
			return nil, err
		}
		values[k.String()] = v
	}
	return values, nil
}

// Settings reads all settings into a map keyed by name, including
// serial_device_number and serial_alt_device_number.
func (d *Device) Settings() (map[string]interface{}, error) {
	kinds := protocol.Settings()
	values := make(map[string]interface{}, len(kinds)+2)
	for _, k := range kinds {
		v, err := d.Setting(k)
		if err != nil {
			return nil, err
		}
		values[k.String()] = v
	}
	num, err := d.SerialDeviceNumber()
	if err != nil {
		return nil, err
	}
	values[SerialDeviceNumberName] = num
	if num, err = d.SerialAltDeviceNumber(); err != nil {
		return nil, err
	}
	values[SerialAltDeviceNumberName] = num
	return values, nil
}

func (d *Device) read(code uint8, spec protocol.MemorySpec) (interface{}, error) {
	data, err := d.Transport.BlockRead(code, spec.Offset, spec.Length)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", spec.Name, err)
	}
	return spec.Decoder.Decode(data), nil
}

// deviceNumber combines the low 7 bits of two setting bytes.
func (d *Device) deviceNumber(lowOffset, highOffset uint8) (uint16, error) {
	low, err := d.ReadSettings(lowOffset, 1)
	if err != nil {
		return 0, fmt.Errorf("get device number: %w", err)
	}
	high, err := d.ReadSettings(highOffset, 1)
	if err != nil {
		return 0, fmt.Errorf("get device number: %w", err)
	}
	return uint16(codec.BitRange(0, 6, low) | codec.BitRange(0, 6, high)<<7), nil
}
