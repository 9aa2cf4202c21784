package transport

import (
	"github.com/stretchr/testify/mock"
)

// queueChannel records writes and replays queued responses.
type queueChannel struct {
	writes    [][]byte
	responses [][]byte
	readSizes []int
}

func (c *queueChannel) respond(resps ...[]byte) *queueChannel {
	c.responses = append(c.responses, resps...)
	return c
}

func (c *queueChannel) Write(p []byte) error {
	c.writes = append(c.writes, append([]byte(nil), p...))
	return nil
}

func (c *queueChannel) Read(n int) ([]byte, error) {
	c.readSizes = append(c.readSizes, n)
	if len(c.responses) == 0 {
		return nil, nil
	}
	resp := c.responses[0]
	c.responses = c.responses[1:]
	if len(resp) > n {
		resp = resp[:n]
	}
	return resp, nil
}

func (c *queueChannel) lastWrite() []byte {
	if len(c.writes) == 0 {
		return nil
	}
	return c.writes[len(c.writes)-1]
}

type controlCall struct {
	requestType uint8
	request     uint8
	value       uint16
	index       uint16
	length      int
}

// controlRecorder records control transfers and replays queued IN data.
type controlRecorder struct {
	calls     []controlCall
	responses [][]byte
}

func (c *controlRecorder) ControlTransfer(requestType, request uint8, value, index uint16, length int) ([]byte, error) {
	c.calls = append(c.calls, controlCall{requestType, request, value, index, length})
	if requestType&0x80 == 0 || len(c.responses) == 0 {
		return nil, nil
	}
	resp := c.responses[0]
	c.responses = c.responses[1:]
	return resp, nil
}

func (c *controlRecorder) lastCall() controlCall {
	return c.calls[len(c.calls)-1]
}

// mockChannel is a testify mock of Channel.
type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) Write(p []byte) error {
	return m.Called(p).Error(0)
}

func (m *mockChannel) Read(n int) ([]byte, error) {
	args := m.Called(n)
	b, _ := args.Get(0).([]byte)
	return b, args.Error(1)
}
