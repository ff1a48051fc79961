package adaptive

import (
	"math"

	"mythduel/internal/config"
)

// Action is the closed set of player behaviors the enemy learns from.
type Action int

const (
	ActionLight Action = iota
	ActionHeavy
	ActionParry

	actionCount
)

// String returns the string representation of an action.
func (a Action) String() string {
	switch a {
	case ActionLight:
		return "light"
	case ActionHeavy:
		return "heavy"
	case ActionParry:
		return "parry"
	default:
		return "unknown"
	}
}

// Model is the decaying histogram of the player's recent action mix. Every
// frame all weights decay multiplicatively; an observed action bumps its
// own weight and applies a steeper extra decay to the others, so recent
// repeated behavior dominates quickly while stale behavior fades. The model
// is never reset explicitly; decay alone forgets.
type Model struct {
	weights [actionCount]float64
	cfg     config.AdaptiveConfig
}

// NewModel creates an empty model.
func NewModel(cfg config.AdaptiveConfig) *Model {
	return &Model{cfg: cfg}
}

// Tick applies the per-frame multiplicative decay, scaled so the decay is
// consistent per second of simulation time regardless of frame rate.
func (m *Model) Tick(dt float64) {
	if dt <= 0 {
		return
	}
	factor := math.Pow(m.cfg.Retention, dt)
	for i := range m.weights {
		m.weights[i] *= factor
	}
}

// Observe records one occurrence of the action.
func (m *Model) Observe(action Action) {
	if action < 0 || action >= actionCount {
		return
	}
	for i := range m.weights {
		if Action(i) == action {
			m.weights[i]++
		} else {
			m.weights[i] *= m.cfg.CrossDecay
		}
	}
}

// Weight exposes a raw weight for tests and debug overlays.
func (m *Model) Weight(action Action) float64 {
	if action < 0 || action >= actionCount {
		return 0
	}
	return m.weights[action]
}

func (m *Model) ratio(action Action) float64 {
	total := 0.0
	for _, w := range m.weights {
		total += w
	}
	if total <= 1e-9 {
		return 0
	}
	return m.weights[action] / total
}

// SpeedBias multiplies the enemy's chase speed. Light-attack spam pushes it
// above 1, clamped at the configured ceiling.
func (m *Model) SpeedBias() float64 {
	bias := 1 + math.Max(0, m.ratio(ActionLight)-m.cfg.SpeedThreshold)*m.cfg.SpeedGain
	if bias > m.cfg.SpeedBiasMax {
		bias = m.cfg.SpeedBiasMax
	}
	return bias
}

// WindupBias multiplies the enemy's windup duration. Heavy-attack spam
// shortens the windup; frequent parrying lengthens it. Clamped to the
// configured range so the enemy stays beatable.
func (m *Model) WindupBias() float64 {
	bias := 1 -
		math.Max(0, m.ratio(ActionHeavy)-m.cfg.HeavyThreshold)*m.cfg.HeavyGain +
		math.Max(0, m.ratio(ActionParry)-m.cfg.ParryThreshold)*m.cfg.ParryGain
	if bias < m.cfg.WindupBiasMin {
		bias = m.cfg.WindupBiasMin
	}
	if bias > m.cfg.WindupBiasMax {
		bias = m.cfg.WindupBiasMax
	}
	return bias
}
