package transport

import (
	"io"
	"os"
)

// StreamChannel adapts an io.ReadWriter (serial port, pipe) to Channel.
//
// The underlying Read is expected to time out (returning no data, io.EOF or a
// timeout error) when the peer has nothing more to send; a timeout ends Read
// early and results in a short read.
type StreamChannel struct {
	io.ReadWriter
}

// NewStreamChannel wraps rw.
func NewStreamChannel(rw io.ReadWriter) *StreamChannel {
	return &StreamChannel{ReadWriter: rw}
}

// Write implements Channel.
func (c *StreamChannel) Write(p []byte) error {
	for len(p) > 0 {
		n, err := c.ReadWriter.Write(p)
		if err != nil {
			return err
		}
		p = p[n:]
	}
	return nil
}

// Read implements Channel.
func (c *StreamChannel) Read(n int) ([]byte, error) {
	buf := make([]byte, n)
	var recv int
	for recv < n {
		r, err := c.ReadWriter.Read(buf[recv:])
		recv += r
		if err != nil {
			if err == io.EOF || os.IsTimeout(err) {
				break
			}
			return buf[:recv], err
		}
		if r == 0 {
			break
		}
	}
	return buf[:recv], nil
}
