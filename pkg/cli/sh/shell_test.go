package sh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	testCases := []struct {
		name   string
		json   bool
		val    interface{}
		expect string
	}{
		{"scalar", false, int64(-99), "-99\n"},
		{"bytes", false, []byte{0x10, 0x00}, "0x1000\n"},
		{"map sorted", false, map[string]interface{}{"b": true, "a": uint64(3)}, "a: 3\nb: true\n"},
		{"json scalar", true, uint16(514), "514\n"},
		{"json bytes", true, map[string]interface{}{"error_status": []byte{0x10, 0x00}}, "{\"error_status\":\"1000\"}\n"},
		{"json text", true, "OK", "\"OK\"\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out strings.Builder
			require.NoError(t, Format(&out, tc.json, tc.val))
			require.Equal(t, tc.expect, out.String())
		})
	}
}
