package mqtt

import (
	"strings"

	"github.com/robotalks/tic.go/pkg/telemetry"
)

// SnapshotTopic is the topic suffix of snapshots under a node.
const SnapshotTopic = "snapshot"

// Sink publishes snapshots to <prefix><node>/snapshot.
type Sink struct {
	Queue  *Queue
	Format telemetry.Format
	// Retain keeps the last snapshot on the broker.
	Retain bool
}

// NewSink creates a Sink.
func NewSink(q *Queue, format telemetry.Format) *Sink {
	return &Sink{Queue: q, Format: format, Retain: true}
}

// Topic returns the topic of snapshots from node.
func Topic(node string) string {
	return node + "/" + SnapshotTopic
}

// Publish implements telemetry.Sink.
func (s *Sink) Publish(snap *telemetry.Snapshot) error {
	payload, err := snap.Encode(s.Format)
	if err != nil {
		return err
	}
	// publishing is asynchronous, the token is not waited.
	s.Queue.Pub(Topic(snap.Node), payload, s.Retain)
	return nil
}

// SubSnapshots subscribes snapshots of all nodes. The handler receives the
// node name and the raw payload.
func SubSnapshots(q *Queue, handler func(node string, payload []byte)) *Subscription {
	return q.Sub(Topic("+"), func(topic string, payload []byte) {
		handler(strings.TrimSuffix(topic, "/"+SnapshotTopic), payload)
	})
}
