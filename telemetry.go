package rocketlst

import "fmt"

// Telemetry is the board status reported by the firmware.
type Telemetry struct {
	Uptime       uint32    // seconds since boot
	UART0RxCount uint32    // frames received on the host UART
	UART1RxCount uint32    // frames received on the payload UART
	SupplySense  [2]uint16 // raw ADC counts from the AN0 and AN1 sense lines
	LastRSSI     int       // dBm
	LastLQI      byte
}

// Telemetry payload: command, reserved byte, three counters, the two
// enabled ADC channels, RSSI, LQI.
const telemetryLen = 20

func unmarshalTelemetry(b []byte) (Telemetry, error) {
	if len(b) != telemetryLen || Command(b[0]) != CmdTelem {
		return Telemetry{}, fmt.Errorf("malformed telemetry (% X)", b)
	}
	return Telemetry{
		Uptime:       unmarshalUint32(b[2:]),
		UART0RxCount: unmarshalUint32(b[6:]),
		UART1RxCount: unmarshalUint32(b[10:]),
		SupplySense:  [2]uint16{unmarshalUint16(b[14:]), unmarshalUint16(b[16:])},
		LastRSSI:     rssiToDBm(b[18]),
		LastLQI:      b[19],
	}, nil
}

// Telemetry returns the board's status telemetry.
func (r *Radio) Telemetry() Telemetry {
	r.request(CmdGetTelem)
	b := r.response(defaultTimeout)
	t, err := unmarshalTelemetry(b)
	if err != nil {
		r.SetError(err)
	}
	return t
}
