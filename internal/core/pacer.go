package core

import "time"

// Pacer helps run simulation steps at a steady steps-per-second rate.
type Pacer struct {
	step        time.Duration
	accumulator time.Duration
	last        time.Time
}

// NewPacer constructs a Pacer targeting the given steps per second.
func NewPacer(sps int) *Pacer {
	p := &Pacer{}
	p.SetRate(sps)
	p.accumulator = p.step
	return p
}

// SetRate changes the step rate. It is safe to call from the drive loop.
func (p *Pacer) SetRate(sps int) {
	if sps <= 0 {
		sps = 10
	}
	p.step = time.Second / time.Duration(sps)
}

// ShouldStep reports whether the simulation should advance by one step.
func (p *Pacer) ShouldStep() bool {
	now := time.Now()
	if p.last.IsZero() {
		p.last = now
	}
	p.accumulator += now.Sub(p.last)
	p.last = now
	if p.accumulator >= p.step {
		p.accumulator -= p.step
		return true
	}
	return false
}
