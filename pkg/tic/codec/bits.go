package codec

// UnsignedInt interprets b as a little-endian unsigned integer.
// b must not be longer than 8 bytes.
func UnsignedInt(b []byte) uint64 {
	var v uint64
	for i := len(b) - 1; i >= 0; i-- {
		v = v<<8 | uint64(b[i])
	}
	return v
}

// SignedInt interprets b as a little-endian two's-complement integer
// that is len(b)*8 bits wide.
func SignedInt(b []byte) int64 {
	bits := uint(len(b)) * 8
	if bits == 0 {
		return 0
	}
	v := UnsignedInt(b)
	if bits >= 64 {
		return int64(v)
	}
	if v >= 1<<(bits-1) {
		return int64(v) - int64(1)<<bits
	}
	return int64(v)
}

// Boolean reports whether bit (0 is the least significant) of the
// little-endian value in b is set.
func Boolean(bit uint, b []byte) bool {
	return UnsignedInt(b)&(1<<bit) != 0
}

// BitRange extracts the inclusive bit range [start, end] of the
// little-endian value in b, right aligned.
func BitRange(start, end uint, b []byte) uint64 {
	v := UnsignedInt(b) >> start
	if width := end - start + 1; width < 64 {
		v &= 1<<width - 1
	}
	return v
}
