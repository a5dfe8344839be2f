package rocketlst

import "bytes"

// Wire framing shared by both UART directions:
// magic, length, hardware ID, sequence number, destination, payload.
// The length byte counts everything after itself.

const (
	frameMagic0 = 0x22
	frameMagic1 = 0x69

	frameHeaderLen = 5 // hwid (2) + seq (2) + destination (1)
	maxFrameData   = 0xFF - frameHeaderLen

	// DestLocal addresses the radio itself; DestRelay hands the payload
	// to the RF side for transmission (and marks received RF traffic).
	DestLocal = 0x01
	DestRelay = 0x11
)

type frame struct {
	hwid uint16
	seq  uint16
	dest byte
	data []byte // command byte plus arguments
}

func appendFrame(dst []byte, hwid, seq uint16, dest byte, data []byte) []byte {
	dst = append(dst, frameMagic0, frameMagic1, byte(len(data)+frameHeaderLen))
	dst = append(dst, marshalUint16(hwid)...)
	dst = append(dst, marshalUint16(seq)...)
	dst = append(dst, dest)
	return append(dst, data...)
}

// scanFrame scans buf for a complete frame. It returns the frame, the
// number of bytes consumed, and whether a complete frame was found.
// Bytes that cannot begin a frame are consumed even when no complete
// frame is present, so callers can discard them and keep the rest.
func scanFrame(buf []byte) (frame, int, bool) {
	i := 0
	for {
		j := bytes.IndexByte(buf[i:], frameMagic0)
		if j < 0 {
			return frame{}, len(buf), false
		}
		i += j
		if i+1 >= len(buf) {
			// Possible magic at the end of the buffer.
			return frame{}, i, false
		}
		if buf[i+1] != frameMagic1 {
			i++
			continue
		}
		if i+2 >= len(buf) {
			return frame{}, i, false
		}
		n := int(buf[i+2])
		if n < frameHeaderLen {
			// Too short to carry a header: resync.
			i += 2
			continue
		}
		end := i + 3 + n
		if end > len(buf) {
			return frame{}, i, false
		}
		f := frame{
			hwid: unmarshalUint16(buf[i+3:]),
			seq:  unmarshalUint16(buf[i+5:]),
			dest: buf[i+7],
			data: buf[i+8:end],
		}
		return f, end, true
	}
}
