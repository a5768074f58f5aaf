// internal/system/visuals.go
package system

import (
	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/types"
)

// Visuals supplies renderables for entities the gameplay systems spawn. The
// render package provides the real implementation; headless runs pass nil
// and every spawned entity simply carries no Renderable.
type Visuals interface {
	Effect(kind defs.SpellKind, element types.Element, radius float64) *component.Renderable
	Projectile(element types.Element) *component.Renderable
	Enemy(def defs.EnemyDefinition) *component.Renderable
	Orb() *component.Renderable
	Player() *component.Renderable
	HealthPack() *component.Renderable
	PowerUp(kind component.PowerUpKind) *component.Renderable
}

// attachVisual adds a renderable when a visuals provider is present.
func attachVisual(renderables map[types.EntityID]*component.Renderable, id types.EntityID, r *component.Renderable) {
	if r != nil {
		renderables[id] = r
	}
}
