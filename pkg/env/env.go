// Package env provides the common configuration to open a Tic device.
package env

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/robotalks/tic.go/pkg/port/i2c"
	"github.com/robotalks/tic.go/pkg/port/serial"
	"github.com/robotalks/tic.go/pkg/port/usb"
	"github.com/robotalks/tic.go/pkg/tic"
	"github.com/robotalks/tic.go/pkg/tic/transport"
)

// Transport names.
const (
	TransportSerial = "serial"
	TransportI2C    = "i2c"
	TransportUSB    = "usb"
)

// SerialConfig extends the port config with framing options.
type SerialConfig struct {
	serial.Config `yaml:",inline"`
	// DeviceNumber selects the Pololu protocol when >= 0,
	// the compact protocol otherwise.
	DeviceNumber int  `yaml:"device_number"`
	CRCCommands  bool `yaml:"crc_commands"`
	CRCResponses bool `yaml:"crc_responses"`
}

// Config provides common options to open a device.
type Config struct {
	Transport string       `yaml:"transport"`
	Serial    SerialConfig `yaml:"serial"`
	I2C       i2c.Config   `yaml:"i2c"`
	USB       usb.Config   `yaml:"usb"`
}

var (
	defaultConfig = Config{
		Transport: TransportUSB,
		Serial: SerialConfig{
			Config:       serial.Config{Name: "/dev/ttyACM0", Baud: serial.DefaultBaud, ReadTimeout: serial.DefaultReadTimeout},
			DeviceNumber: -1,
		},
	}

	configFile string
)

func init() {
	if val := os.Getenv("TIC_CONFIG"); val != "" {
		configFile = val
	}
	if val := os.Getenv("TIC_TRANSPORT"); val != "" {
		defaultConfig.Transport = val
	}
	if val := os.Getenv("TIC_SERIAL_PORT"); val != "" {
		defaultConfig.Serial.Name = val
	}
	if val, err := strconv.Atoi(os.Getenv("TIC_SERIAL_BAUD")); err == nil {
		defaultConfig.Serial.Baud = val
	}
	if val, err := strconv.Atoi(os.Getenv("TIC_DEVICE_NUMBER")); err == nil {
		defaultConfig.Serial.DeviceNumber = val
	}
	if val := os.Getenv("TIC_I2C_BUS"); val != "" {
		defaultConfig.I2C.Bus = val
	}
	if val := os.Getenv("TIC_USB_SERIAL"); val != "" {
		defaultConfig.USB.Serial = val
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&configFile, "config", configFile, "YAML config file, applied before flags.")
	flag.StringVar(&defaultConfig.Transport, "transport", defaultConfig.Transport, "Transport: serial, i2c or usb.")
	flag.StringVar(&defaultConfig.Serial.Name, "serial-port", defaultConfig.Serial.Name, "Serial port name.")
	flag.IntVar(&defaultConfig.Serial.Baud, "serial-baud", defaultConfig.Serial.Baud, "Serial baud rate.")
	flag.DurationVar(&defaultConfig.Serial.ReadTimeout, "serial-timeout", defaultConfig.Serial.ReadTimeout, "Serial read timeout.")
	flag.IntVar(&defaultConfig.Serial.DeviceNumber, "device-number", defaultConfig.Serial.DeviceNumber, "Pololu protocol device number, -1 for compact protocol.")
	flag.BoolVar(&defaultConfig.Serial.CRCCommands, "crc-commands", defaultConfig.Serial.CRCCommands, "Append CRC to serial commands.")
	flag.BoolVar(&defaultConfig.Serial.CRCResponses, "crc-responses", defaultConfig.Serial.CRCResponses, "Expect CRC on serial responses.")
	flag.StringVar(&defaultConfig.I2C.Bus, "i2c-bus", defaultConfig.I2C.Bus, "I2C bus name.")
	flag.Var(hexUint16{&defaultConfig.I2C.Addr}, "i2c-addr", "I2C address, 0 for default 0x0e.")
	flag.Var(hexUint16{&defaultConfig.USB.Product}, "usb-product", "USB product ID, 0 for any Tic.")
	flag.StringVar(&defaultConfig.USB.Serial, "usb-serial", defaultConfig.USB.Serial, "USB serial number.")
}

// NewConfig creates a Config from defaults, the config file and flags.
// Flags explicitly set on the command line take precedence over the file.
func NewConfig() (*Config, error) {
	conf := defaultConfig
	if configFile == "" {
		return &conf, nil
	}
	f, err := os.Open(configFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	if err := conf.Load(f); err != nil {
		return nil, fmt.Errorf("%s: %w", configFile, err)
	}
	if flag.Parsed() {
		flag.Visit(func(f *flag.Flag) {
			conf.applyFlag(f.Name, &defaultConfig)
		})
	}
	return &conf, nil
}

// MustNewConfig creates a Config and fails on error.
func MustNewConfig() *Config {
	conf, err := NewConfig()
	if err != nil {
		log.Fatalln(err)
	}
	return conf
}

// Load merges YAML from r into c.
func (c *Config) Load(r io.Reader) error {
	if err := yaml.NewDecoder(r).Decode(c); err != nil && err != io.EOF {
		return err
	}
	return nil
}

func (c *Config) applyFlag(name string, from *Config) {
	switch name {
	case "transport":
		c.Transport = from.Transport
	case "serial-port":
		c.Serial.Name = from.Serial.Name
	case "serial-baud":
		c.Serial.Baud = from.Serial.Baud
	case "serial-timeout":
		c.Serial.ReadTimeout = from.Serial.ReadTimeout
	case "device-number":
		c.Serial.DeviceNumber = from.Serial.DeviceNumber
	case "crc-commands":
		c.Serial.CRCCommands = from.Serial.CRCCommands
	case "crc-responses":
		c.Serial.CRCResponses = from.Serial.CRCResponses
	case "i2c-bus":
		c.I2C.Bus = from.I2C.Bus
	case "i2c-addr":
		c.I2C.Addr = from.I2C.Addr
	case "usb-product":
		c.USB.Product = from.USB.Product
	case "usb-serial":
		c.USB.Serial = from.USB.Serial
	}
}

// Handle is an open device with its underlying port.
type Handle struct {
	*tic.Device
	Closer io.Closer
}

// Close closes the underlying port.
func (h *Handle) Close() error {
	return h.Closer.Close()
}

// MaxDeviceNumber is the largest device number of the Pololu protocol.
const MaxDeviceNumber = 127

// Validate checks the serial framing options.
func (c SerialConfig) Validate() error {
	if c.DeviceNumber > MaxDeviceNumber {
		return fmt.Errorf("device number %d not in 0..%d", c.DeviceNumber, MaxDeviceNumber)
	}
	return nil
}

// Open opens the configured port and wraps it as a Device.
func (c *Config) Open() (*Handle, error) {
	switch c.Transport {
	case TransportSerial:
		if err := c.Serial.Validate(); err != nil {
			return nil, err
		}
		port, err := serial.Open(c.Serial.Config)
		if err != nil {
			return nil, err
		}
		return &Handle{Device: tic.New(c.Serial.transport(port)), Closer: port}, nil
	case TransportI2C:
		bus, err := i2c.Open(c.I2C)
		if err != nil {
			return nil, err
		}
		return &Handle{Device: tic.New(transport.NewI2C(bus)), Closer: bus}, nil
	case TransportUSB:
		dev, err := usb.Open(c.USB)
		if err != nil {
			return nil, err
		}
		return &Handle{Device: tic.New(transport.NewUSB(dev)), Closer: dev}, nil
	default:
		return nil, fmt.Errorf("unknown transport: %q", c.Transport)
	}
}

// MustOpen opens the device and fails on error.
func (c *Config) MustOpen() *Handle {
	h, err := c.Open()
	if err != nil {
		log.Fatalln(err)
	}
	return h
}

func (c SerialConfig) transport(ch transport.Channel) *transport.Serial {
	s := transport.NewSerial(ch).WithCRC(c.CRCCommands, c.CRCResponses)
	if c.DeviceNumber >= 0 {
		s = s.WithDeviceNumber(uint8(c.DeviceNumber))
	}
	return s
}

type hexUint16 struct {
	val *uint16
}

func (h hexUint16) String() string {
	if h.val == nil {
		return "0"
	}
	return fmt.Sprintf("0x%04x", *h.val)
}

func (h hexUint16) Set(s string) error {
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return err
	}
	*h.val = uint16(v)
	return nil
}
