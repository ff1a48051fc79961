package combat

// Event is a one-shot notification emitted during a frame, consumed by the
// presentation layer for audio cues. Events carry no payload; the Snapshot
// has the state.
type Event int

const (
	EventHit Event = iota
	EventHurt
	EventParry
	EventCastDilation
	EventCastLightning
	EventCastVoidShift
	EventLightningHit
	EventVictory
	EventDefeat
)

// String returns the string representation of an event.
func (e Event) String() string {
	switch e {
	case EventHit:
		return "hit"
	case EventHurt:
		return "hurt"
	case EventParry:
		return "parry"
	case EventCastDilation:
		return "cast-dilation"
	case EventCastLightning:
		return "cast-lightning"
	case EventCastVoidShift:
		return "cast-voidshift"
	case EventLightningHit:
		return "lightning-hit"
	case EventVictory:
		return "victory"
	case EventDefeat:
		return "defeat"
	default:
		return "unknown"
	}
}

func (d *Director) emit(e Event) {
	d.events = append(d.events, e)
}

// DrainEvents returns the events emitted since the last drain and clears the
// queue.
func (d *Director) DrainEvents() []Event {
	out := d.events
	d.events = nil
	return out
}
