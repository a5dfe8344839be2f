// +build ground

package rocketlst

// Configuration for the ground radio: full duplex, no external amplifier.

const (
	serialDevice = "/dev/ttyUSB0"
	serialSpeed  = 115200
	hwid         = 0x01C4

	paBiasPin = -1 // no external amplifier on ground boards
	ledPin    = 21

	// Highest chip output listed in the data sheet (page 207):
	// 10 dBm, enough for the bench link without an amplifier.
	PAConfig = 0xC0

	AutoRebootSeconds = 0

	// ADCChannelMask enables the power supply sense lines AN0 and AN1.
	ADCChannelMask = 0x03
)

// Caps describe the ground board variant.
var Caps = Capabilities{
	RFTransmit:       true,
	RFReceive:        true,
	RangingResponder: false,
	LED:              true,
	CustomInit:       false,
	TXHook:           false,
	RXHook:           false,
}
