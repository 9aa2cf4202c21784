package protocol

import (
	"fmt"
	"strings"
)

// VendorID is the USB vendor ID of Pololu.
const VendorID uint16 = 0x1ffb

// I2CAddr is the default I²C address of a Tic.
const I2CAddr uint16 = 0x0e

// Model is a Tic controller model, identified by its USB product ID.
type Model uint16

// Known models.
const (
	TicT825 Model = 0x00b3
	TicT834 Model = 0x00b5
	TicT500 Model = 0x00bd
	TicN825 Model = 0x00c3
	TicT249 Model = 0x00c9
	Tic36v4 Model = 0x00cb
)

// Models lists all known models.
var Models = []Model{TicT825, TicT834, TicT500, TicN825, TicT249, Tic36v4}

// ProductID returns the USB product ID.
func (m Model) ProductID() uint16 {
	return uint16(m)
}

// String implements fmt.Stringer.
func (m Model) String() string {
	switch m {
	case TicT825:
		return "Tic T825"
	case TicT834:
		return "Tic T834"
	case TicT500:
		return "Tic T500"
	case TicN825:
		return "Tic N825"
	case TicT249:
		return "Tic T249"
	case Tic36v4:
		return "Tic 36v4"
	}
	return fmt.Sprintf("Tic(%#04x)", uint16(m))
}

// ModelByName parses names like "T825", "t249" or "36v4".
func ModelByName(name string) (Model, bool) {
	for _, m := range Models {
		s := m.String()[len("Tic "):]
		if strings.EqualFold(s, name) || strings.EqualFold(m.String(), name) {
			return m, true
		}
	}
	return 0, false
}
