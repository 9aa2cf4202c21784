package transport

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

type timeoutError struct{}

func (timeoutError) Error() string { return "i/o timeout" }
func (timeoutError) Timeout() bool { return true }

// chunkedPort returns at most one chunk per Read, then err.
type chunkedPort struct {
	chunks [][]byte
	err    error
	out    bytes.Buffer
}

func (p *chunkedPort) Read(b []byte) (int, error) {
	if len(p.chunks) == 0 {
		return 0, p.err
	}
	n := copy(b, p.chunks[0])
	if n < len(p.chunks[0]) {
		p.chunks[0] = p.chunks[0][n:]
	} else {
		p.chunks = p.chunks[1:]
	}
	return n, nil
}

func (p *chunkedPort) Write(b []byte) (int, error) {
	return p.out.Write(b)
}

func TestStreamChannelRead(t *testing.T) {
	testCases := []struct {
		name   string
		chunks [][]byte
		err    error
		n      int
		expect []byte
	}{
		{"single chunk", [][]byte{{1, 2, 3, 4}}, io.EOF, 4, []byte{1, 2, 3, 4}},
		{"split chunks", [][]byte{{1}, {2, 3}, {4}}, io.EOF, 4, []byte{1, 2, 3, 4}},
		{"eof short", [][]byte{{1, 2}}, io.EOF, 4, []byte{1, 2}},
		{"timeout short", [][]byte{{1}}, timeoutError{}, 4, []byte{1}},
		{"zero read short", [][]byte{{1}}, nil, 2, []byte{1}},
		{"extra data left", [][]byte{{1, 2, 3}}, io.EOF, 2, []byte{1, 2}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ch := NewStreamChannel(&chunkedPort{chunks: tc.chunks, err: tc.err})
			b, err := ch.Read(tc.n)
			require.NoError(t, err)
			require.Equal(t, tc.expect, b)
		})
	}
}

func TestStreamChannelReadError(t *testing.T) {
	ioErr := errors.New("device unplugged")
	ch := NewStreamChannel(&chunkedPort{chunks: [][]byte{{1}}, err: ioErr})
	b, err := ch.Read(2)
	require.Equal(t, ioErr, err)
	require.Equal(t, []byte{1}, b)
}

func TestStreamChannelWrite(t *testing.T) {
	port := &chunkedPort{}
	require.NoError(t, NewStreamChannel(port).Write([]byte{0xaa, 0x0e, 0x03}))
	require.Equal(t, []byte{0xaa, 0x0e, 0x03}, port.out.Bytes())
}

func TestSerialOverStream(t *testing.T) {
	port := &chunkedPort{chunks: [][]byte{{0x2a, 0}, {0, 0, 0x57}}, err: io.EOF}
	s := NewSerial(NewStreamChannel(port)).WithCRC(true, true)
	data, err := s.BlockRead(0xa1, 0x22, 4)
	require.NoError(t, err)
	require.Equal(t, []byte{0x2a, 0, 0, 0}, data)
	require.Equal(t, []byte{0xa1, 0x22, 0x04, 0x1a}, port.out.Bytes())
}
