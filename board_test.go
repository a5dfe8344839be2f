package rocketlst

import (
	"fmt"
	"strings"
	"testing"
)

func TestBiasSequencing(t *testing.T) {
	cases := []struct {
		calls string // t = PreTransmit, r = PreReceive
		state bool
	}{
		{"", false},
		{"t", true},
		{"r", false},
		{"tr", false},
		{"rt", true},
		{"tt", true},
		{"rr", false},
		{"trt", true},
		{"trtr", false},
	}
	for _, c := range cases {
		name := c.calls
		if name == "" {
			name = "boot"
		}
		t.Run(name, func(t *testing.T) {
			pin := &fakePin{}
			r := &Radio{paBias: pin}
			for _, call := range c.calls {
				switch call {
				case 't':
					r.PreTransmit()
				case 'r':
					r.PreReceive()
				}
			}
			if r.Error() != nil {
				t.Fatalf("%v", r.Error())
			}
			if pin.state != c.state {
				t.Errorf("bias after %q == %t, want %t", c.calls, pin.state, c.state)
			}
		})
	}
}

func TestLED(t *testing.T) {
	cases := []struct {
		calls []bool
		state bool
	}{
		{[]bool{true}, true},
		{[]bool{true, false}, false},
		{[]bool{true, true}, true},
		{[]bool{false, false}, false},
	}
	for _, c := range cases {
		var b strings.Builder
		for _, on := range c.calls {
			fmt.Fprintf(&b, "%t_", on)
		}
		t.Run(b.String(), func(t *testing.T) {
			pin := &fakePin{}
			r := &Radio{led: pin}
			for _, on := range c.calls {
				r.SetLED(on)
			}
			if r.Error() != nil {
				t.Fatalf("%v", r.Error())
			}
			if pin.state != c.state {
				t.Errorf("LED == %t, want %t", pin.state, c.state)
			}
		})
	}
}

func TestHooksPreserveError(t *testing.T) {
	pin := &fakePin{state: true}
	r := &Radio{paBias: pin}
	cause := errNoResponse
	r.SetError(cause)
	r.PreReceive()
	if pin.writes != 1 {
		t.Errorf("bias not written with pending error")
	}
	if pin.state {
		t.Errorf("bias still asserted")
	}
	if r.Error() != cause {
		t.Errorf("error == %v, want %v", r.Error(), cause)
	}
}

func TestHooksWithoutPins(t *testing.T) {
	r := &Radio{}
	r.PreTransmit()
	r.PreReceive()
	r.SetLED(true)
	if r.Error() != nil {
		t.Errorf("hooks without pins: %v", r.Error())
	}
}
