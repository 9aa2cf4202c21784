// Package protocol holds the static command set and memory map of the Tic
// stepper motor controllers.
//
// Commands are fire-and-forget operations identified by a wire code.
// Variables (live state) and settings (EEPROM configuration) are read with
// block reads of their offset and length, then decoded.
//
// The tables are the same for every transport and every Tic model. Entries
// that only exist on some models carry a Models note; it is informational
// and not enforced.
//
// Reference: https://www.pololu.com/docs/0J71
package protocol
