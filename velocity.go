package wheel

import "time"

// velocityWindow is how far back samples count towards release velocity.
const velocityWindow = 100 * time.Millisecond

const velocitySamples = 20

type pointerSample struct {
	at time.Time
	y  float64
}

// VelocityTracker estimates pointer velocity from recent position samples
// with a least-squares line fit. Only samples within velocityWindow of the
// newest one are used, so a pointer that stops before release has no
// velocity.
type VelocityTracker struct {
	samples [velocitySamples]pointerSample
	next    int
	count   int
}

// Reset forgets all samples.
func (v *VelocityTracker) Reset() {
	v.next, v.count = 0, 0
}

// Add records the pointer position y at time at.
func (v *VelocityTracker) Add(at time.Time, y float64) {
	v.samples[v.next] = pointerSample{at: at, y: y}
	v.next = (v.next + 1) % velocitySamples
	v.count = min(v.count+1, velocitySamples)
}

// Velocity returns units per second, positive when the pointer moves down.
func (v *VelocityTracker) Velocity() float64 {
	if v.count < 2 {
		return 0
	}
	newest := v.samples[(v.next-1+velocitySamples)%velocitySamples]

	var n, sumT, sumY, sumTT, sumTY float64
	for i := 0; i < v.count; i++ {
		sample := v.samples[(v.next-1-i+2*velocitySamples)%velocitySamples]
		age := newest.at.Sub(sample.at)
		if age > velocityWindow || age < 0 {
			break
		}
		t := -age.Seconds()
		n++
		sumT += t
		sumY += sample.y
		sumTT += t * t
		sumTY += t * sample.y
	}
	if n < 2 {
		return 0
	}
	denominator := n*sumTT - sumT*sumT
	if denominator == 0 {
		return 0
	}
	return (n*sumTY - sumT*sumY) / denominator
}
