package timing

// Countdown is the single countdown primitive used by every timed quantity
// in the simulation: attack windows, cooldowns, stuns, flashes. A countdown
// never goes negative; ticking past zero clamps.
type Countdown struct {
	remaining float64
}

// Set arms the countdown. Non-positive durations leave it expired.
func (c *Countdown) Set(duration float64) {
	if duration < 0 {
		duration = 0
	}
	c.remaining = duration
}

// Tick advances the countdown by dt, flooring at zero. It returns true on
// the exact tick that drains the countdown from active to expired, which
// lets callers fire one-shot expiry effects.
func (c *Countdown) Tick(dt float64) bool {
	if c.remaining <= 0 || dt <= 0 {
		return false
	}
	c.remaining -= dt
	if c.remaining <= 0 {
		c.remaining = 0
		return true
	}
	return false
}

// Active reports whether time remains.
func (c *Countdown) Active() bool {
	return c.remaining > 0
}

// Remaining returns the time left, never negative.
func (c *Countdown) Remaining() float64 {
	return c.remaining
}

// Clear expires the countdown immediately.
func (c *Countdown) Clear() {
	c.remaining = 0
}

// Fraction returns remaining/total clamped to [0,1]. The presentation layer
// uses this to decay flash and aura intensities.
func (c *Countdown) Fraction(total float64) float64 {
	if total <= 0 || c.remaining <= 0 {
		return 0
	}
	f := c.remaining / total
	if f > 1 {
		return 1
	}
	return f
}
