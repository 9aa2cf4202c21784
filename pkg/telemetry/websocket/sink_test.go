package websocket

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/net/websocket"

	"github.com/robotalks/tic.go/pkg/telemetry"
)

func TestBroadcast(t *testing.T) {
	sink := NewSink(telemetry.FormatJSON)
	srv := httptest.NewServer(sink.Handler())
	defer srv.Close()

	wsURL := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, err := websocket.Dial(wsURL, "", srv.URL)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return sink.Clients() == 1 }, time.Second, 5*time.Millisecond)

	snap := &telemetry.Snapshot{ID: "1", Variables: map[string]interface{}{"uptime": uint64(1000)}}
	require.NoError(t, sink.Publish(snap))

	var msg string
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	require.NoError(t, websocket.Message.Receive(conn, &msg))
	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(msg), &decoded))
	require.Equal(t, "1", decoded["id"])

	conn.Close()
	require.Eventually(t, func() bool { return sink.Clients() == 0 }, time.Second, 5*time.Millisecond)
}

func TestPublishWithoutClients(t *testing.T) {
	sink := NewSink(telemetry.FormatCBOR)
	require.NoError(t, sink.Publish(&telemetry.Snapshot{ID: "2"}))
}
