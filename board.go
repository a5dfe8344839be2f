package rocketlst

import "github.com/ecc1/gpio"

// Board-level capabilities and the transmit/receive sequencing hooks.

// Capabilities describe what a board variant's hardware supports.
// The values for the current build are in Caps; downstream code consults
// them before taking a code path the hardware cannot back.
type Capabilities struct {
	RFTransmit       bool
	RFReceive        bool
	RangingResponder bool
	LED              bool
	CustomInit       bool
	TXHook           bool
	RXHook           bool
}

// writePin writes a board signal. The write always happens, but it
// never clobbers a pending error.
func (r *Radio) writePin(pin gpio.OutputPin, on bool) {
	if pin == nil {
		return
	}
	err := pin.Write(on)
	if r.err == nil {
		r.err = err
	}
}

// PreTransmit asserts the bias line of the external power amplifier.
// It must be called immediately before each transmission and must have
// completed before the first bit goes out; otherwise the packet leaves
// at greatly reduced power. Asserting bias without transmitting wastes
// power but causes no damage.
func (r *Radio) PreTransmit() {
	r.writePin(r.paBias, true)
}

// PreReceive deasserts the power amplifier bias line before a receive
// window. The amplifier is transmit-only hardware; leaving it biased
// outside a transmit window wastes power and interferes with reception.
// Boards without a receive path still use this hook to drop bias after
// transmitting. On boards with no bias line it is a no-op.
func (r *Radio) PreReceive() {
	r.writePin(r.paBias, false)
}

// SetLED drives the status LED.
func (r *Radio) SetLED(on bool) {
	r.writePin(r.led, on)
}
