// internal/types/types.go
package types

// EntityID identifies an entity in the ECS. IDs are never reused within a run.
type EntityID uint64

// Element tags a spell or damage event with its school of magic.
type Element string

const (
	ElementFire      Element = "FIRE"
	ElementFrost     Element = "FROST"
	ElementPoison    Element = "POISON"
	ElementLightning Element = "LIGHTNING"
	ElementLight     Element = "LIGHT"
	ElementDark      Element = "DARK"
	ElementChaos     Element = "CHAOS"
	ElementPsychic   Element = "PSYCHIC"
	ElementNone      Element = ""
)

// AllElements lists every element, for defs validation and UI.
func AllElements() []Element {
	return []Element{
		ElementFire, ElementFrost, ElementPoison, ElementLightning,
		ElementLight, ElementDark, ElementChaos, ElementPsychic,
	}
}

// IDGenerator hands out monotonically increasing IDs for things that need
// identity outside the entity table (tether links). It is owned by the Game
// and passed where needed instead of living in package-level state.
type IDGenerator struct {
	next uint64
}

// NewIDGenerator starts counting from 1 so the zero value stays "no ID".
func NewIDGenerator() *IDGenerator {
	return &IDGenerator{next: 1}
}

// Next returns the next unique ID.
func (g *IDGenerator) Next() uint64 {
	id := g.next
	g.next++
	return id
}
