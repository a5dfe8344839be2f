package rocketlst

// Command represents a command understood by the rocketlst firmware.
type Command byte

//go:generate stringer -type Command

const (
	CmdAck            Command = 0x10
	CmdASCII          Command = 0x11
	CmdReboot         Command = 0x12
	CmdGetTime        Command = 0x13
	CmdSetTime        Command = 0x14
	CmdRangingRequest Command = 0x15
	CmdRangingAck     Command = 0x16
	CmdGetTelem       Command = 0x17
	CmdTelem          Command = 0x18
	CmdGetCallsign    Command = 0x19
	CmdSetCallsign    Command = 0x1A
	CmdCallsign       Command = 0x1B
	CmdReadRegister   Command = 0x1C
	CmdRegisterValue  Command = 0x1D
	CmdUpdateRegister Command = 0x1E
	CmdGetVersion     Command = 0x1F
	CmdVersion        Command = 0x20
	CmdNack           Command = 0xFF
)
