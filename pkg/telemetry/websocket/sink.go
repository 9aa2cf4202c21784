// Package websocket streams telemetry snapshots to websocket clients.
package websocket

import (
	"context"
	"net"
	"net/http"
	"sync"

	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/robotalks/tic.go/pkg/framework"
	"github.com/robotalks/tic.go/pkg/telemetry"
)

// Sink broadcasts every snapshot to all connected clients.
type Sink struct {
	Format telemetry.Format

	lock    sync.Mutex
	clients map[*websocket.Conn]chan []byte
}

// clientBacklog is the number of pending snapshots per client before
// snapshots to that client are dropped.
const clientBacklog = 4

// NewSink creates a Sink.
func NewSink(format telemetry.Format) *Sink {
	return &Sink{Format: format, clients: make(map[*websocket.Conn]chan []byte)}
}

// Handler returns the websocket handler to be mounted on a server.
func (s *Sink) Handler() http.Handler {
	return websocket.Handler(s.serve)
}

// Clients returns the number of connected clients.
func (s *Sink) Clients() int {
	s.lock.Lock()
	defer s.lock.Unlock()
	return len(s.clients)
}

func (s *Sink) serve(conn *websocket.Conn) {
	ch := make(chan []byte, clientBacklog)
	s.lock.Lock()
	s.clients[conn] = ch
	s.lock.Unlock()
	glog.V(2).Infof("websocket client %s connected", conn.Request().RemoteAddr)
	defer func() {
		s.lock.Lock()
		delete(s.clients, conn)
		s.lock.Unlock()
		conn.Close()
		glog.V(2).Infof("websocket client %s disconnected", conn.Request().RemoteAddr)
	}()

	done := make(chan struct{})
	go func() {
		// drain incoming frames to detect the close from the client.
		var msg []byte
		for websocket.Message.Receive(conn, &msg) == nil {
		}
		close(done)
	}()
	for {
		select {
		case payload := <-ch:
			if err := s.send(conn, payload); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (s *Sink) send(conn *websocket.Conn, payload []byte) error {
	if s.Format.Binary() {
		return websocket.Message.Send(conn, payload)
	}
	return websocket.Message.Send(conn, string(payload))
}

// Publish implements telemetry.Sink.
func (s *Sink) Publish(snap *telemetry.Snapshot) error {
	payload, err := snap.Encode(s.Format)
	if err != nil {
		return err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	for conn, ch := range s.clients {
		select {
		case ch <- payload:
		default:
			glog.Warningf("websocket client %s is slow, snapshot dropped", conn.Request().RemoteAddr)
		}
	}
	return nil
}

// Server serves the sink on an address.
type Server struct {
	Addr string
	Sink *Sink
}

// Name implements framework.Named.
func (s *Server) Name() string {
	return "websocket"
}

// Run implements framework.Runnable.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.Addr)
	if err != nil {
		return err
	}
	glog.Infof("websocket listening on %s", ln.Addr())
	srv := &http.Server{Handler: s.Sink.Handler()}
	return framework.RunWithContextCloser(ctx, srv, func() error {
		err := srv.Serve(ln)
		if err == http.ErrServerClosed {
			err = nil
		}
		return err
	})
}
