// Package serial opens a TTL serial or USB virtual COM port as a Tic channel.
package serial

import (
	"fmt"
	"io"
	"time"

	"github.com/golang/glog"
	"github.com/tarm/serial"

	"github.com/robotalks/tic.go/pkg/tic/transport"
)

// Config specifies the serial port.
type Config struct {
	Name        string        `yaml:"port"`
	Baud        int           `yaml:"baud"`
	ReadTimeout time.Duration `yaml:"timeout"`
}

// Defaults used for zero fields of Config.
const (
	DefaultBaud        = 9600
	DefaultReadTimeout = 100 * time.Millisecond
)

// Port is an open serial port.
type Port struct {
	*transport.StreamChannel
	port rawPort
}

// rawPort is the part of *serial.Port used by Port.
type rawPort interface {
	io.ReadWriteCloser
	Flush() error
}

func (c Config) portConfig() *serial.Config {
	conf := &serial.Config{
		Name:        c.Name,
		Baud:        c.Baud,
		Size:        8,
		Parity:      serial.ParityNone,
		StopBits:    serial.Stop1,
		ReadTimeout: c.ReadTimeout,
	}
	if conf.Baud == 0 {
		conf.Baud = DefaultBaud
	}
	if conf.ReadTimeout == 0 {
		conf.ReadTimeout = DefaultReadTimeout
	}
	return conf
}

// Open opens the port, 8N1.
func Open(c Config) (*Port, error) {
	if c.Name == "" {
		return nil, fmt.Errorf("serial port name required")
	}
	conf := c.portConfig()
	port, err := serial.OpenPort(conf)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", c.Name, err)
	}
	glog.Infof("serial %s opened at %d baud", conf.Name, conf.Baud)
	p, err := newPort(port)
	if err != nil {
		return nil, fmt.Errorf("flush %s: %w", c.Name, err)
	}
	return p, nil
}

// newPort wraps an open port. Pending input is discarded first, stale bytes
// from a previous session would be taken as a response.
func newPort(port rawPort) (*Port, error) {
	p := &Port{StreamChannel: transport.NewStreamChannel(port), port: port}
	if err := p.Flush(); err != nil {
		port.Close()
		return nil, err
	}
	return p, nil
}

// Flush discards unread input.
func (p *Port) Flush() error {
	return p.port.Flush()
}

// Close implements io.Closer.
func (p *Port) Close() error {
	return p.port.Close()
}
