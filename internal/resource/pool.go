package resource

// Pool is a bounded resource pool. Stamina and myth energy are both pools;
// stamina regenerates continuously while myth energy only moves through
// explicit Gain/Drain/Spend calls. Current never leaves [0, max].
type Pool struct {
	current float64
	max     float64
}

// NewPool creates a full pool with the given capacity.
func NewPool(max float64) Pool {
	if max < 0 {
		max = 0
	}
	return Pool{current: max, max: max}
}

// Spend removes cost from the pool if it can afford it. On rejection the
// pool is unchanged.
func (p *Pool) Spend(cost float64) bool {
	if cost < 0 || p.current < cost {
		return false
	}
	p.current -= cost
	return true
}

// Gain adds amount, clamped at capacity.
func (p *Pool) Gain(amount float64) {
	if amount <= 0 {
		return
	}
	p.current += amount
	if p.current > p.max {
		p.current = p.max
	}
}

// Drain removes up to amount, flooring at zero. Unlike Spend it never
// rejects; it is used for penalties rather than purchases.
func (p *Pool) Drain(amount float64) {
	if amount <= 0 {
		return
	}
	p.current -= amount
	if p.current < 0 {
		p.current = 0
	}
}

// Regen adds rate*dt, clamped at capacity.
func (p *Pool) Regen(rate, dt float64) {
	if rate <= 0 || dt <= 0 {
		return
	}
	p.Gain(rate * dt)
}

// Current returns the available amount.
func (p *Pool) Current() float64 { return p.current }

// Max returns the capacity.
func (p *Pool) Max() float64 { return p.max }

// Fraction returns current/max in [0,1] for HUD bars.
func (p *Pool) Fraction() float64 {
	if p.max <= 0 {
		return 0
	}
	return p.current / p.max
}
