// internal/event/damage.go
package event

import "go-survivors/internal/types"

// DamageEvent is an immutable record of damage to be applied. It is the only
// channel through which effects harm entities.
type DamageEvent struct {
	Target  types.EntityID
	Amount  float64
	Source  types.EntityID // zero when the damage has no owning entity
	Element types.Element

	// Propagated marks damage produced by a share rule (tether). Propagated
	// events never trigger further sharing.
	Propagated bool
}

// NewDamage builds a plain damage event.
func NewDamage(target types.EntityID, amount float64, element types.Element) DamageEvent {
	return DamageEvent{Target: target, Amount: amount, Element: element}
}

// WithSource attaches the originating entity.
func (e DamageEvent) WithSource(source types.EntityID) DamageEvent {
	e.Source = source
	return e
}

// DamageBus is the per-tick queue of damage events: any system appends
// during its update, combat resolution drains the whole queue exactly once
// per frame. Events are applied in append order.
type DamageBus struct {
	events []DamageEvent
}

func NewDamageBus() *DamageBus {
	return &DamageBus{}
}

// Push appends a damage event for this frame's resolution.
func (b *DamageBus) Push(e DamageEvent) {
	b.events = append(b.events, e)
}

// Pending returns the queued events without consuming them. Share rules read
// this between the producer phase and resolution; events they append via
// Push are resolved in the same drain.
func (b *DamageBus) Pending() []DamageEvent {
	return b.events
}

// Drain returns all queued events and resets the queue.
func (b *DamageBus) Drain() []DamageEvent {
	out := b.events
	b.events = nil
	return out
}

// Len reports the number of queued events.
func (b *DamageBus) Len() int {
	return len(b.events)
}
