package rocketlst

// Marshaling of ints in little-endian order, as used on the wire.

func marshalUint16(n uint16) []byte {
	return []byte{byte(n & 0xFF), byte(n >> 8)}
}

func marshalUint32(n uint32) []byte {
	return append(marshalUint16(uint16(n&0xFFFF)), marshalUint16(uint16(n>>16))...)
}

func unmarshalUint16(b []byte) uint16 {
	return uint16(b[0]) | uint16(b[1])<<8
}

func unmarshalUint32(b []byte) uint32 {
	return uint32(unmarshalUint16(b)) | uint32(unmarshalUint16(b[2:]))<<16
}
