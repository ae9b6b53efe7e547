// Package byteio provides big-endian readers and writers for the
// fixed-width integers used by RTP wire formats. The 16 and 32 bit
// widths delegate to encoding/binary; the 24 bit widths are packed by
// hand because the standard library has no accessor for them.
//
// Callers guarantee the slice is large enough, these functions never
// allocate and never bounds-check beyond what the runtime does.
package byteio

import "encoding/binary"

func Uint16(data []byte) uint16 {
	return binary.BigEndian.Uint16(data)
}

func PutUint16(data []byte, v uint16) {
	binary.BigEndian.PutUint16(data, v)
}

func Uint24(data []byte) uint32 {
	return uint32(data[0])<<16 | uint32(data[1])<<8 | uint32(data[2])
}

func PutUint24(data []byte, v uint32) {
	data[0] = byte(v >> 16)
	data[1] = byte(v >> 8)
	data[2] = byte(v)
}

func Uint32(data []byte) uint32 {
	return binary.BigEndian.Uint32(data)
}

func PutUint32(data []byte, v uint32) {
	binary.BigEndian.PutUint32(data, v)
}

// Int24 reads a 24-bit two's-complement integer, sign extended to 32
// bits.
func Int24(data []byte) int32 {
	v := Uint24(data)
	if v&0x800000 != 0 {
		v |= 0xFF000000
	}
	return int32(v)
}

// PutInt24 writes the low 24 bits of v.
func PutInt24(data []byte, v int32) {
	PutUint24(data, uint32(v)&0x00FFFFFF)
}
