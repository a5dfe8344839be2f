package rocketlst

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/ecc1/gpio"
	"github.com/ecc1/radio"
	"github.com/ecc1/serial"
)

const (
	defaultTimeout = 100 * time.Millisecond

	verbose = false
)

func init() {
	if verbose {
		log.SetFlags(log.Ltime | log.Lmicroseconds | log.LUTC)
	}
}

var errNoResponse = errors.New("no response")

// port is the subset of serial.Port used by the driver.
type port interface {
	Write([]byte) error
	ReadAvailable([]byte) (int, error)
	Close() error
}

// Radio represents an open radio device.
// Methods are not safe for concurrent use; the caller serializes access.
type Radio struct {
	device  port
	paBias  gpio.OutputPin
	led     gpio.OutputPin
	seq     uint16
	rxBuf   []byte
	rxQueue []frame
	stats   radio.Statistics
	err     error
}

// Open opens the radio device and brings the board signals to their
// boot state: PA bias deasserted, LED off.
func Open() *Radio {
	r := &Radio{}
	var p *serial.Port
	p, r.err = serial.Open(serialDevice, serialSpeed)
	if r.err != nil {
		return r
	}
	r.device = p
	if Caps.TXHook {
		r.paBias, r.err = gpio.Output(paBiasPin, false, false)
		if r.err != nil {
			r.Close()
			return r
		}
	}
	if Caps.LED {
		r.led, r.err = gpio.Output(ledPin, false, false)
		if r.err != nil {
			r.Close()
			return r
		}
	}
	r.checkFirmware()
	if r.err != nil {
		r.Close()
	}
	return r
}

// checkFirmware verifies that the device is running rocketlst firmware.
// A transport error from the version request is kept as the root cause.
func (r *Radio) checkFirmware() {
	const firmwarePrefix = "rocketlst"
	v := r.Version()
	if r.Error() != nil {
		return
	}
	if !strings.HasPrefix(v, firmwarePrefix) {
		r.err = fmt.Errorf("unexpected firmware version %q", v)
	}
}

// Close closes the radio device. The first error wins: closing a radio
// that already failed does not mask why it failed.
func (r *Radio) Close() {
	err := r.device.Close()
	if r.err == nil {
		r.err = err
	}
}

// Name returns the radio's name.
func (r *Radio) Name() string {
	return "RocketLST"
}

// Device returns the pathname of the radio's device.
func (r *Radio) Device() string {
	return serialDevice
}

// Version returns the radio's firmware version.
func (r *Radio) Version() string {
	r.request(CmdGetVersion)
	b := r.response(defaultTimeout)
	if len(b) < 2 {
		return ""
	}
	return string(b[1:])
}

// Reset reboots the radio and waits for it to come back up.
func (r *Radio) Reset() {
	if r.Error() != nil {
		return
	}
	r.request(CmdReboot)
	time.Sleep(1 * time.Second)
}

// Init initializes the radio chip: frequency control words, PA power
// table, and the ADC channels given by ADCChannelMask.
func (r *Radio) Init(frequency uint32) {
	r.SetFrequency(frequency)
	r.WriteRegister(PA_TABLE0, PAConfig)
	r.WriteRegister(ADCCFG, ADCChannelMask)
}

// Statistics returns the byte and packet counts for the radio device.
func (r *Radio) Statistics() radio.Statistics {
	return r.stats
}

// Error returns the error state of the radio device.
func (r *Radio) Error() error {
	return r.err
}

// SetError sets the error state of the radio device.
func (r *Radio) SetError(err error) {
	r.err = err
}

// Hardware returns the radio's hardware information.
func (r *Radio) Hardware() *radio.Hardware {
	panic("unimplemented")
}

func (r *Radio) sendFrame(dest byte, data []byte) {
	if len(data) > maxFrameData {
		panic("request too long")
	}
	p := appendFrame(nil, hwid, r.seq, dest, data)
	r.seq++
	if verbose {
		log.Printf("request: % X", p)
	}
	r.err = r.device.Write(p)
}

func (r *Radio) request(cmd Command, params ...byte) {
	data := make([]byte, 1+len(params))
	data[0] = byte(cmd)
	copy(data[1:], params)
	r.sendFrame(DestLocal, data)
}

// readFrame returns the next complete frame from the serial stream,
// polling until the timeout expires.
func (r *Radio) readFrame(timeout time.Duration) (frame, bool) {
	const pollInterval = 1 * time.Millisecond
	chunk := make([]byte, 256)
	for {
		f, n, ok := scanFrame(r.rxBuf)
		r.rxBuf = r.rxBuf[n:]
		if ok {
			f.data = append([]byte(nil), f.data...)
			if verbose {
				log.Printf("received %d-byte frame % X", len(f.data), f.data)
			}
			return f, true
		}
		if timeout <= 0 {
			break
		}
		n, err := r.device.ReadAvailable(chunk)
		if err != nil {
			r.SetError(err)
			return frame{}, false
		}
		if n == 0 {
			time.Sleep(pollInterval)
			timeout -= pollInterval
		}
		r.rxBuf = append(r.rxBuf, chunk[:n]...)
	}
	if verbose {
		log.Printf("receive timeout")
	}
	return frame{}, false
}

// response returns the payload of the next local (command) frame.
// RF traffic arriving in the meantime is queued for Receive.
func (r *Radio) response(timeout time.Duration) []byte {
	for {
		f, ok := r.readFrame(timeout)
		if !ok {
			if r.Error() == nil {
				r.SetError(errNoResponse)
			}
			return nil
		}
		if f.dest == DestRelay {
			r.rxQueue = append(r.rxQueue, f)
			continue
		}
		return f.data
	}
}
