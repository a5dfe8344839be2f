package rocketlst

import (
	"fmt"
	"time"
)

// Chip-related constants.
const (
	FXOSC = 27000000 // Crystal frequency in Hz

	FREQ2 = 0x09 // Frequency control word, high byte
	FREQ1 = 0x0A // Frequency control word, middle byte
	FREQ0 = 0x0B // Frequency control word, low byte

	PA_TABLE0 = 0x2E // PA power setting
	ADCCFG    = 0xF2 // ADC input enable mask
)

// ReadRegister returns the value of a radio chip register.
func (r *Radio) ReadRegister(addr byte) byte {
	r.request(CmdReadRegister, addr)
	b := r.response(defaultTimeout)
	if len(b) < 2 {
		return 0
	}
	return b[1]
}

// WriteRegister writes a value to a radio chip register.
func (r *Radio) WriteRegister(addr byte, value byte) {
	r.request(CmdUpdateRegister, addr, value)
	_ = r.response(defaultTimeout)
}

// Frequency returns the radio's current frequency, in Hertz.
func (r *Radio) Frequency() uint32 {
	f2 := r.ReadRegister(FREQ2)
	f1 := r.ReadRegister(FREQ1)
	f0 := r.ReadRegister(FREQ0)
	f := uint32(f2)<<16 + uint32(f1)<<8 + uint32(f0)
	return uint32(uint64(f) * FXOSC >> 16)
}

// SetFrequency sets the radio to the given frequency, in Hertz.
func (r *Radio) SetFrequency(freq uint32) {
	f := (uint64(freq)<<16 + FXOSC/2) / FXOSC
	r.WriteRegister(FREQ2, byte(f>>16))
	r.WriteRegister(FREQ1, byte(f>>8))
	r.WriteRegister(FREQ0, byte(f))
}

// Send transmits the given packet. The PA bias line is asserted before
// the frame reaches the wire and dropped once the firmware acknowledges
// the transmission, so bias covers the whole transmit window.
func (r *Radio) Send(data []byte) {
	if r.Error() != nil {
		return
	}
	r.PreTransmit()
	r.sendFrame(DestRelay, data)
	timeout := time.Duration(len(data)) * time.Millisecond
	if timeout < defaultTimeout {
		timeout = defaultTimeout
	}
	b := r.response(timeout)
	// Bias must drop whether or not the firmware acknowledged.
	r.PreReceive()
	if r.Error() != nil {
		return
	}
	if len(b) != 0 && Command(b[0]) == CmdNack {
		r.SetError(fmt.Errorf("Send: NACK"))
		return
	}
	r.stats.Packets.Sent++
	r.stats.Bytes.Sent += len(data)
}

const rssiOffset = 74 // dB at 433 MHz; see data sheet section 13.4, table 67

// rssiToDBm converts the RSSI byte appended by the chip to dBm.
func rssiToDBm(b byte) int {
	rssi := int(b)
	if rssi >= 128 {
		rssi -= 256
	}
	return rssi/2 - rssiOffset
}

// Time returns the radio's real-time clock value.
func (r *Radio) Time() time.Time {
	r.request(CmdGetTime)
	b := r.response(defaultTimeout)
	if len(b) < 9 {
		return time.Time{}
	}
	return time.Unix(int64(unmarshalUint32(b[1:])), int64(unmarshalUint32(b[5:])))
}

// SetTime sets the radio's real-time clock, which timestamps ranging
// exchanges on responder-capable boards.
func (r *Radio) SetTime(t time.Time) {
	params := append(marshalUint32(uint32(t.Unix())), marshalUint32(uint32(t.Nanosecond()))...)
	r.request(CmdSetTime, params...)
	_ = r.response(defaultTimeout)
}

// Callsign returns the radio's configured callsign.
func (r *Radio) Callsign() string {
	r.request(CmdGetCallsign)
	b := r.response(defaultTimeout)
	if len(b) < 2 {
		return ""
	}
	return string(b[1:])
}

// SetCallsign sets the radio's callsign.
func (r *Radio) SetCallsign(s string) {
	r.request(CmdSetCallsign, []byte(s)...)
	_ = r.response(defaultTimeout)
}
