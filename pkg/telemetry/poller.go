package telemetry

import (
	"context"
	"time"

	"github.com/golang/glog"
)

// Sink receives snapshots.
type Sink interface {
	Publish(*Snapshot) error
}

// SinkFunc is the func form of Sink.
type SinkFunc func(*Snapshot) error

// Publish implements Sink.
func (f SinkFunc) Publish(s *Snapshot) error {
	return f(s)
}

// DefaultInterval is the default polling interval.
const DefaultInterval = time.Second

// Poller takes snapshots periodically and publishes them to all sinks.
// All device access happens on the goroutine calling Run.
type Poller struct {
	Device   DeviceReader
	Interval time.Duration
	// Settings includes settings in every snapshot.
	Settings bool
	Node     string
	Sinks    []Sink
}

// NewPoller creates a Poller.
func NewPoller(dev DeviceReader, sinks ...Sink) *Poller {
	return &Poller{Device: dev, Interval: DefaultInterval, Sinks: sinks}
}

// Name implements framework.Named.
func (p *Poller) Name() string {
	return "poller"
}

// Poll takes one snapshot and publishes it.
func (p *Poller) Poll() (*Snapshot, error) {
	s, err := Take(p.Device, p.Settings)
	if err != nil {
		return nil, err
	}
	s.Node = p.Node
	for _, sink := range p.Sinks {
		if err := sink.Publish(s); err != nil {
			glog.Warningf("publish snapshot %s: %v", s.ID, err)
		}
	}
	return s, nil
}

// Run implements framework.Runnable. Device errors are logged and the next
// tick tries again.
func (p *Poller) Run(ctx context.Context) error {
	interval := p.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		if _, err := p.Poll(); err != nil {
			glog.Warningf("snapshot: %v", err)
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
