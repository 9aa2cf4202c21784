package telemetry

import (
	"flag"
	"os"
	"time"

	"github.com/denisbrodbeck/machineid"
)

// Config provides options of telemetry publishing.
type Config struct {
	// MQTTURL is the broker URL, e.g. mqtt://host:port/topic-prefix
	MQTTURL  string
	WSAddr   string
	Interval time.Duration
	Format   Format
	Settings bool
	Node     string
}

var defaultConfig = Config{
	Interval: DefaultInterval,
	Format:   FormatJSON,
}

func init() {
	if val := os.Getenv("TIC_MQTT_URL"); val != "" {
		defaultConfig.MQTTURL = val
	}
	if val := os.Getenv("TIC_WS_ADDR"); val != "" {
		defaultConfig.WSAddr = val
	}
	if val := os.Getenv("TIC_NODE"); val != "" {
		defaultConfig.Node = val
	}
}

// SetupFlags sets up command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.MQTTURL, "mqtt", defaultConfig.MQTTURL, "MQTT broker URL to publish snapshots.")
	flag.StringVar(&defaultConfig.WSAddr, "ws", defaultConfig.WSAddr, "Listen address of websocket snapshot stream.")
	flag.DurationVar(&defaultConfig.Interval, "interval", defaultConfig.Interval, "Polling interval.")
	flag.Var((*formatValue)(&defaultConfig.Format), "format", "Snapshot format: json, yaml, cbor or protobuf.")
	flag.BoolVar(&defaultConfig.Settings, "with-settings", defaultConfig.Settings, "Include settings in snapshots.")
	flag.StringVar(&defaultConfig.Node, "node", defaultConfig.Node, "Node name in topics, defaults to a machine ID.")
}

// NewConfig creates a Config with default configurations.
func NewConfig() *Config {
	conf := defaultConfig
	if conf.Node == "" {
		conf.Node = NodeName()
	}
	return &conf
}

// NodeName derives a stable name of this machine.
func NodeName() string {
	if id, err := machineid.ProtectedID("tic"); err == nil && len(id) >= 12 {
		return id[:12]
	}
	if name, err := os.Hostname(); err == nil {
		return name
	}
	return "tic"
}

type formatValue Format

func (f *formatValue) String() string {
	return string(*f)
}

func (f *formatValue) Set(s string) error {
	for _, format := range Formats() {
		if string(format) == s {
			*f = formatValue(format)
			return nil
		}
	}
	return &UnknownFormatError{Format: s}
}

// UnknownFormatError indicates an unsupported format name.
type UnknownFormatError struct {
	Format string
}

func (e *UnknownFormatError) Error() string {
	return "unknown format: " + e.Format
}
