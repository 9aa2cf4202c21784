package protocol

import "github.com/robotalks/tic.go/pkg/tic/codec"

// CommandSpec describes a command.
type CommandSpec struct {
	Name   string
	Code   uint8
	Format codec.Format
}

// MemorySpec describes a variable or a setting: Length bytes at Offset,
// interpreted by Decoder.
type MemorySpec struct {
	Name    string
	Offset  uint8
	Length  int
	Decoder codec.Decoder
	// Models lists the models supporting the entry, nil means all.
	Models []Model
}

// SupportedBy reports whether the entry is documented for model m.
func (s MemorySpec) SupportedBy(m Model) bool {
	if s.Models == nil {
		return true
	}
	for _, model := range s.Models {
		if model == m {
			return true
		}
	}
	return false
}

var (
	onlyT249 = []Model{TicT249}
	only36v4 = []Model{Tic36v4}
	exceptHP = []Model{TicT825, TicT834, TicT500, TicN825, TicT249}
)

func indexByName(specs []MemorySpec) map[string]int {
	m := make(map[string]int, len(specs))
	for n, spec := range specs {
		m[spec.Name] = n
	}
	return m
}
