// +build ground

package rocketlst

import "time"

// RF receive path. Only ground boards are receive-capable; air builds
// exclude this file entirely.

// Receive listens with the given timeout for an incoming packet.
// It returns the packet and the associated RSSI.
func (r *Radio) Receive(timeout time.Duration) ([]byte, int) {
	if r.Error() != nil {
		return nil, 0
	}
	r.PreReceive()
	for {
		var f frame
		if len(r.rxQueue) != 0 {
			f, r.rxQueue = r.rxQueue[0], r.rxQueue[1:]
		} else {
			var ok bool
			f, ok = r.readFrame(timeout)
			if !ok {
				// Timed out; not an error.
				return nil, -128
			}
			if f.dest != DestRelay {
				// Stray command traffic; drop it.
				continue
			}
		}
		// The chip appends RSSI and LQI to each received packet.
		if len(f.data) < 2 {
			continue
		}
		n := len(f.data) - 2
		rssi := rssiToDBm(f.data[n])
		r.stats.Packets.Received++
		r.stats.Bytes.Received += n
		return f.data[:n], rssi
	}
}
