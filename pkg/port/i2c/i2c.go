// Package i2c opens a Tic on an I²C bus as a channel.
package i2c

import (
	"fmt"

	"github.com/golang/glog"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/robotalks/tic.go/pkg/tic/protocol"
)

// Config specifies the bus and the device address.
type Config struct {
	// Bus is the periph bus name, empty for the first available bus.
	Bus  string `yaml:"bus"`
	Addr uint16 `yaml:"address"`
}

// Bus is a Tic on an open I²C bus.
type Bus struct {
	dev *i2c.Dev
	bus i2c.BusCloser
}

// Open initializes the host drivers and opens the bus.
func Open(c Config) (*Bus, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("periph init: %w", err)
	}
	bus, err := i2creg.Open(c.Bus)
	if err != nil {
		return nil, fmt.Errorf("open i2c bus %q: %w", c.Bus, err)
	}
	addr := c.Addr
	if addr == 0 {
		addr = protocol.I2CAddr
	}
	glog.Infof("i2c %s opened, address 0x%02x", bus, addr)
	return New(bus, addr), nil
}

// New wraps an already open bus.
func New(bus i2c.BusCloser, addr uint16) *Bus {
	return &Bus{dev: &i2c.Dev{Bus: bus, Addr: addr}, bus: bus}
}

// Write implements transport.Channel.
func (b *Bus) Write(p []byte) error {
	return b.dev.Tx(p, nil)
}

// Read implements transport.Channel.
func (b *Bus) Read(n int) ([]byte, error) {
	buf := make([]byte, n)
	if err := b.dev.Tx(nil, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

// Close implements io.Closer.
func (b *Bus) Close() error {
	return b.bus.Close()
}
