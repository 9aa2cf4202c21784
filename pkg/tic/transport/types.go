package transport

import (
	"github.com/robotalks/tic.go/pkg/tic/codec"
)

// Channel is a raw duplex byte channel, e.g. a serial port or an I²C device.
type Channel interface {
	// Write sends p as a single transaction.
	Write(p []byte) error
	// Read reads up to n bytes. It returns fewer bytes on timeout.
	Read(n int) ([]byte, error)
}

// USB control request types used by the Tic.
const (
	RequestTypeVendorOut uint8 = 0x40
	RequestTypeVendorIn  uint8 = 0xc0
)

// ControlChannel performs USB control transfers.
type ControlChannel interface {
	// ControlTransfer issues a control transfer. For IN transfers, up to
	// length bytes are returned.
	ControlTransfer(requestType, request uint8, value, index uint16, length int) ([]byte, error)
}

// Transport sends commands and performs block reads over a specific
// interface. Implementations are not safe for concurrent use.
type Transport interface {
	// Send sends a command with its parameter, no response is expected.
	Send(code uint8, format codec.Format, value uint32) error
	// BlockRead issues the block read command code for length bytes at
	// offset and returns exactly length bytes.
	BlockRead(code uint8, offset uint8, length int) ([]byte, error)
}
