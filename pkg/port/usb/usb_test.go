package usb

import (
	"testing"

	"github.com/google/gousb"
	"github.com/stretchr/testify/require"
)

func TestMatchDesc(t *testing.T) {
	testCases := []struct {
		name    string
		conf    Config
		vendor  gousb.ID
		product gousb.ID
		match   bool
	}{
		{"any model T825", Config{}, 0x1ffb, 0x00b3, true},
		{"any model 36v4", Config{}, 0x1ffb, 0x00cb, true},
		{"unknown product", Config{}, 0x1ffb, 0x0089, false},
		{"other vendor", Config{}, 0x2341, 0x00b3, false},
		{"product filter", Config{Product: 0x00c9}, 0x1ffb, 0x00c9, true},
		{"product mismatch", Config{Product: 0x00c9}, 0x1ffb, 0x00b3, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			desc := &gousb.DeviceDesc{Vendor: tc.vendor, Product: tc.product}
			require.Equal(t, tc.match, tc.conf.matchDesc(desc))
		})
	}
}
