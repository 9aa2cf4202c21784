// Package codec provides the wire level building blocks of the Tic protocol.
//
// It contains the bit level value decoding used to interpret raw variable and
// setting bytes, the CRC-7 check used by the serial interface, and the
// payload encoding of command parameters.
//
// All multi-byte values on the wire are little-endian.
//
// Serial commands must be 7-bit clean, so a 32-bit parameter is sent as 5
// bytes: a header byte carrying the most significant bit of each of the 4
// data bytes, followed by the low 7 bits of each data byte:
//
//	[MSBs][b0&0x7f][b1&0x7f][b2&0x7f][b3&0x7f]
//
// I²C and USB are not constrained this way and use other packings.
package codec
