// Package telemetry samples Tic variables and settings into snapshots and
// publishes them to sinks.
package telemetry

import (
	"encoding/hex"
	"time"

	"github.com/google/uuid"
)

// DeviceReader reads all variables and settings of a device.
type DeviceReader interface {
	Variables() (map[string]interface{}, error)
	Settings() (map[string]interface{}, error)
}

// Snapshot is the state of a device at a point in time.
type Snapshot struct {
	ID        string                 `json:"id" yaml:"id"`
	Node      string                 `json:"node,omitempty" yaml:"node,omitempty"`
	Time      time.Time              `json:"time" yaml:"time"`
	Variables map[string]interface{} `json:"variables" yaml:"variables"`
	Settings  map[string]interface{} `json:"settings,omitempty" yaml:"settings,omitempty"`
}

// Take reads variables, and settings if withSettings, from dev.
func Take(dev DeviceReader, withSettings bool) (*Snapshot, error) {
	s := &Snapshot{ID: uuid.New().String(), Time: time.Now().UTC()}
	vars, err := dev.Variables()
	if err != nil {
		return nil, err
	}
	s.Variables = normalize(vars)
	if withSettings {
		settings, err := dev.Settings()
		if err != nil {
			return nil, err
		}
		s.Settings = normalize(settings)
	}
	return s, nil
}

// normalize converts raw byte entries to hex strings so every encoding
// renders them the same way.
func normalize(values map[string]interface{}) map[string]interface{} {
	for name, val := range values {
		if b, ok := val.([]byte); ok {
			values[name] = hex.EncodeToString(b)
		}
	}
	return values
}
