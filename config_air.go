// +build !ground

package rocketlst

// Configuration for the air radio: TX-only, with an on-board 1W power
// amplifier (RF6504) whose bias supply is switched by a GPIO line.

const (
	serialDevice = "/dev/ttyAMA0"
	serialSpeed  = 115200
	hwid         = 0x0171

	paBiasPin = 26 // bias enable for the 1W amplifier
	ledPin    = 16

	// -20 dBm at the chip; the 1W amplifier makes up the link budget.
	// The data sheet (page 207) lists 0xC0 as the highest setting.
	PAConfig = 0x0E

	// AutoRebootSeconds of 0 disables the watchdog reboot.
	AutoRebootSeconds = 0

	// ADCChannelMask enables the power supply sense lines AN0 and AN1.
	ADCChannelMask = 0x03
)

// Caps describe the air board variant.
var Caps = Capabilities{
	RFTransmit:       true,
	RFReceive:        false,
	RangingResponder: true,
	LED:              true,
	CustomInit:       true,
	TXHook:           true,
	RXHook:           true,
}
