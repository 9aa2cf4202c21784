package codec

// CRC7Polynomial is the (reflected) polynomial of the Tic CRC-7.
const CRC7Polynomial byte = 0x91

// CRC7 computes the check byte the Tic uses on its serial interface.
func CRC7(msg []byte) byte {
	var crc byte
	for _, b := range msg {
		crc ^= b
		for i := 0; i < 8; i++ {
			if crc&1 != 0 {
				crc ^= CRC7Polynomial
			}
			crc >>= 1
		}
	}
	return crc
}

// AppendCRC7 appends the check byte of msg to msg.
func AppendCRC7(msg []byte) []byte {
	return append(msg, CRC7(msg))
}

// CheckCRC7 validates crc against msg.
func CheckCRC7(msg []byte, crc byte) bool {
	return CRC7(msg) == crc
}
