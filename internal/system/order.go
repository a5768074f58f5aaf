// internal/system/order.go
package system

import (
	"sort"

	"go-survivors/internal/types"
)

// sortedIDs returns the map's entity IDs in ascending order. Systems that
// draw from the RNG or push damage events iterate stores in this order, so
// a fixed seed reproduces a run regardless of map layout.
func sortedIDs[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
