package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/golang/protobuf/proto"
	structpb "github.com/golang/protobuf/ptypes/struct"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type fakeDevice struct {
	vars     map[string]interface{}
	settings map[string]interface{}
	err      error
	reads    int
}

func (d *fakeDevice) Variables() (map[string]interface{}, error) {
	d.reads++
	if d.err != nil {
		return nil, d.err
	}
	vars := make(map[string]interface{}, len(d.vars))
	for k, v := range d.vars {
		vars[k] = v
	}
	return vars, nil
}

func (d *fakeDevice) Settings() (map[string]interface{}, error) {
	return d.settings, d.err
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		vars: map[string]interface{}{
			"current_position": int64(-99),
			"max_speed":        uint64(5550000),
			"error_status":     []byte{0x10, 0x00},
		},
		settings: map[string]interface{}{
			"serial_14bit_device_number": true,
			"serial_device_number":       uint16(514),
		},
	}
}

func TestTake(t *testing.T) {
	s, err := Take(newFakeDevice(), false)
	require.NoError(t, err)
	_, err = uuid.Parse(s.ID)
	require.NoError(t, err)
	assert.Equal(t, "1000", s.Variables["error_status"])
	assert.Equal(t, int64(-99), s.Variables["current_position"])
	assert.Nil(t, s.Settings)

	s, err = Take(newFakeDevice(), true)
	require.NoError(t, err)
	assert.Equal(t, true, s.Settings["serial_14bit_device_number"])

	dev := newFakeDevice()
	dev.err = errors.New("expected to read 4 bytes, got 0")
	_, err = Take(dev, false)
	require.Equal(t, dev.err, err)
}

func TestEncode(t *testing.T) {
	s, err := Take(newFakeDevice(), true)
	require.NoError(t, err)
	s.Node = "bench"

	data, err := s.Encode(FormatJSON)
	require.NoError(t, err)
	var fromJSON map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &fromJSON))
	assert.Equal(t, s.ID, fromJSON["id"])
	assert.Equal(t, "bench", fromJSON["node"])
	assert.Equal(t, float64(-99), fromJSON["variables"].(map[string]interface{})["current_position"])

	data, err = s.Encode(FormatYAML)
	require.NoError(t, err)
	var fromYAML struct {
		ID        string                 `yaml:"id"`
		Variables map[string]interface{} `yaml:"variables"`
	}
	require.NoError(t, yaml.Unmarshal(data, &fromYAML))
	assert.Equal(t, s.ID, fromYAML.ID)
	assert.Equal(t, 5550000, fromYAML.Variables["max_speed"])

	data, err = s.Encode(FormatCBOR)
	require.NoError(t, err)
	var fromCBOR struct {
		ID        string                 `cbor:"id"`
		Variables map[string]interface{} `cbor:"variables"`
	}
	require.NoError(t, cbor.Unmarshal(data, &fromCBOR))
	assert.Equal(t, s.ID, fromCBOR.ID)
	assert.Equal(t, "1000", fromCBOR.Variables["error_status"])

	data, err = s.Encode(FormatProtobuf)
	require.NoError(t, err)
	var fromPB structpb.Struct
	require.NoError(t, proto.Unmarshal(data, &fromPB))
	assert.Equal(t, s.ID, fromPB.Fields["id"].GetStringValue())
	vars := fromPB.Fields["variables"].GetStructValue()
	require.NotNil(t, vars)
	assert.Equal(t, float64(5550000), vars.Fields["max_speed"].GetNumberValue())
	settings := fromPB.Fields["settings"].GetStructValue()
	require.NotNil(t, settings)
	assert.True(t, settings.Fields["serial_14bit_device_number"].GetBoolValue())
	assert.Equal(t, float64(514), settings.Fields["serial_device_number"].GetNumberValue())

	_, err = s.Encode("xml")
	var unknown *UnknownFormatError
	require.True(t, errors.As(err, &unknown))
}

func TestFormatValue(t *testing.T) {
	var f formatValue
	require.NoError(t, f.Set("cbor"))
	assert.Equal(t, "cbor", f.String())
	assert.True(t, Format(f).Binary())
	require.Error(t, f.Set("msgpack"))
	assert.False(t, FormatYAML.Binary())
}

func TestPoll(t *testing.T) {
	var got []*Snapshot
	failing := SinkFunc(func(*Snapshot) error { return errors.New("broker down") })
	recorder := SinkFunc(func(s *Snapshot) error {
		got = append(got, s)
		return nil
	})
	p := NewPoller(newFakeDevice(), failing, recorder)
	p.Node = "bench"
	s, err := p.Poll()
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, s, got[0])
	assert.Equal(t, "bench", s.Node)
}

func TestPollerRun(t *testing.T) {
	dev := newFakeDevice()
	published := make(chan *Snapshot, 10)
	p := NewPoller(dev, SinkFunc(func(s *Snapshot) error {
		published <- s
		return nil
	}))
	p.Interval = time.Millisecond
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(ctx) }()
	<-published
	<-published
	cancel()
	require.Equal(t, context.Canceled, <-errCh)
}

func TestPollerRunKeepsGoingOnError(t *testing.T) {
	dev := newFakeDevice()
	dev.err = errors.New("response CRC check failed")
	p := NewPoller(dev)
	p.Interval = time.Millisecond
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Equal(t, context.DeadlineExceeded, p.Run(ctx))
	assert.True(t, dev.reads > 1)
}

func TestSortedKeys(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, SortedKeys(map[string]interface{}{"c": 1, "a": 2, "b": 3}))
}
