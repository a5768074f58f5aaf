// internal/component/tether.go
package component

import "go-survivors/internal/types"

// Tether links enemies so damage against one propagates to the others. The
// tether holds member IDs (lookup only, not lifetime-controlling); members
// hold a back-reference to the tether entity. Either side can die first and
// the other detects it on the next prune.
type Tether struct {
	Members         []types.EntityID
	SharePercentage float64
	Duration        Timer
	ID              uint64 // from the Game's IDGenerator
}

func NewTether(id uint64, members []types.EntityID, sharePercentage, durationSecs float64) *Tether {
	return &Tether{
		Members:         members,
		SharePercentage: sharePercentage,
		Duration:        NewTimer(durationSecs),
		ID:              id,
	}
}

// Contains reports whether the entity is a tether member.
func (t *Tether) Contains(id types.EntityID) bool {
	for _, m := range t.Members {
		if m == id {
			return true
		}
	}
	return false
}

// Remove drops an entity from the member list.
func (t *Tether) Remove(id types.EntityID) {
	kept := t.Members[:0]
	for _, m := range t.Members {
		if m != id {
			kept = append(kept, m)
		}
	}
	t.Members = kept
}

// Defunct reports whether the tether should be despawned: expired, or fewer
// than two members remain to share between.
func (t *Tether) Defunct() bool {
	return t.Duration.Finished() || len(t.Members) < 2
}

// TetheredEnemy back-references the tether entity an enemy belongs to.
type TetheredEnemy struct {
	TetherEntity types.EntityID
}
