package i2c

import (
	"testing"

	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"

	"github.com/robotalks/tic.go/pkg/tic"
	"github.com/robotalks/tic.go/pkg/tic/protocol"
	"github.com/robotalks/tic.go/pkg/tic/transport"
)

func TestBusCommandAndRead(t *testing.T) {
	bus := &i2ctest.Playback{
		Ops: []i2ctest.IO{
			{Addr: 0x0e, W: []byte{0xe0, 0x9d, 0xff, 0xff, 0xff}},
			{Addr: 0x0e, W: []byte{0xa1, 0x22, 0x04}},
			{Addr: 0x0e, R: []byte{0x38, 0xff, 0xff, 0xff}},
		},
	}
	dev := tic.New(transport.NewI2C(New(bus, protocol.I2CAddr)))
	require.NoError(t, dev.SetTargetPosition(-99))
	pos, err := dev.Variable(protocol.VarCurrentPosition)
	require.NoError(t, err)
	require.Equal(t, int64(-200), pos)
	require.NoError(t, bus.Close())
}
