package telemetry

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/golang/protobuf/proto"
	structpb "github.com/golang/protobuf/ptypes/struct"
	"gopkg.in/yaml.v3"
)

// Format is a snapshot encoding.
type Format string

// Supported formats.
const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatCBOR     Format = "cbor"
	FormatProtobuf Format = "protobuf"
)

// Formats lists supported formats.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatCBOR, FormatProtobuf}
}

// Binary reports whether the encoding is not printable text.
func (f Format) Binary() bool {
	return f == FormatCBOR || f == FormatProtobuf
}

// Encode serializes the snapshot. Protobuf encodes a google.protobuf.Struct.
func (s *Snapshot) Encode(f Format) ([]byte, error) {
	switch f {
	case FormatJSON, "":
		return json.Marshal(s)
	case FormatYAML:
		return yaml.Marshal(s)
	case FormatCBOR:
		return cbor.Marshal(s)
	case FormatProtobuf:
		return proto.Marshal(s.Struct())
	}
	return nil, &UnknownFormatError{Format: string(f)}
}

// Struct converts the snapshot to a protobuf Struct.
func (s *Snapshot) Struct() *structpb.Struct {
	fields := map[string]*structpb.Value{
		"id":        stringValue(s.ID),
		"time":      stringValue(s.Time.Format(time.RFC3339Nano)),
		"variables": structValue(s.Variables),
	}
	if s.Node != "" {
		fields["node"] = stringValue(s.Node)
	}
	if s.Settings != nil {
		fields["settings"] = structValue(s.Settings)
	}
	return &structpb.Struct{Fields: fields}
}

func stringValue(str string) *structpb.Value {
	return &structpb.Value{Kind: &structpb.Value_StringValue{StringValue: str}}
}

func numberValue(n float64) *structpb.Value {
	return &structpb.Value{Kind: &structpb.Value_NumberValue{NumberValue: n}}
}

func structValue(m map[string]interface{}) *structpb.Value {
	fields := make(map[string]*structpb.Value, len(m))
	for key, val := range m {
		fields[key] = toValue(val)
	}
	return &structpb.Value{Kind: &structpb.Value_StructValue{StructValue: &structpb.Struct{Fields: fields}}}
}

func toValue(val interface{}) *structpb.Value {
	switch v := val.(type) {
	case nil:
		return &structpb.Value{Kind: &structpb.Value_NullValue{}}
	case bool:
		return &structpb.Value{Kind: &structpb.Value_BoolValue{BoolValue: v}}
	case string:
		return stringValue(v)
	case uint64:
		return numberValue(float64(v))
	case int64:
		return numberValue(float64(v))
	case uint16:
		return numberValue(float64(v))
	case int:
		return numberValue(float64(v))
	case float64:
		return numberValue(v)
	case map[string]interface{}:
		return structValue(v)
	}
	return stringValue(fmt.Sprint(val))
}

// SortedKeys returns the keys of m in order, for stable printing.
func SortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
