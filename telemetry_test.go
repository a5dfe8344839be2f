package rocketlst

import "testing"

func telemetryPayload() []byte {
	b := []byte{byte(CmdTelem), 0} // command, reserved
	b = append(b, marshalUint32(3600)...)
	b = append(b, marshalUint32(42)...)
	b = append(b, marshalUint32(7)...)
	b = append(b, marshalUint16(0x0123)...)
	b = append(b, marshalUint16(0x0456)...)
	return append(b, 0x30, 0x2F) // RSSI, LQI
}

func TestTelemetry(t *testing.T) {
	p := &fakePort{}
	p.queueResponse(telemetryPayload())
	r := &Radio{device: p}
	telem := r.Telemetry()
	if r.Error() != nil {
		t.Fatalf("Telemetry: %v", r.Error())
	}
	want := Telemetry{
		Uptime:       3600,
		UART0RxCount: 42,
		UART1RxCount: 7,
		SupplySense:  [2]uint16{0x0123, 0x0456},
		LastRSSI:     -50,
		LastLQI:      0x2F,
	}
	if telem != want {
		t.Errorf("telemetry == %+v, want %+v", telem, want)
	}
}

func TestTelemetryMalformed(t *testing.T) {
	cases := []struct {
		name string
		data []byte
	}{
		{"truncated", telemetryPayload()[:10]},
		{"wrong_command", append([]byte{byte(CmdAck)}, telemetryPayload()[1:]...)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := &fakePort{}
			p.queueResponse(c.data)
			r := &Radio{device: p}
			r.Telemetry()
			if r.Error() == nil {
				t.Errorf("malformed telemetry not reported")
			}
		})
	}
}
