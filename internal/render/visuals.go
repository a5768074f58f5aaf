// internal/render/visuals.go
package render

import (
	"go-survivors/internal/component"
	"go-survivors/internal/defs"
	"go-survivors/internal/types"
)

// Visuals maps spawned entities to renderables by element and kind. It
// satisfies the gameplay layer's provider interface.
type Visuals struct{}

func NewVisuals() *Visuals { return &Visuals{} }

func (v *Visuals) Effect(kind defs.SpellKind, element types.Element, radius float64) *component.Renderable {
	c := translucent(elementColor(element), 70)
	stroke := false
	switch kind {
	case defs.KindRing, defs.KindWave:
		// Rings and waves read better as outlines.
		c = translucent(elementColor(element), 130)
		stroke = true
	case defs.KindAura:
		c = translucent(elementColor(element), 40)
	}
	return &component.Renderable{Color: c, Radius: radius, HasStroke: stroke}
}

func (v *Visuals) Projectile(element types.Element) *component.Renderable {
	return &component.Renderable{Color: elementColor(element), Radius: 0.25}
}

func (v *Visuals) Enemy(def defs.EnemyDefinition) *component.Renderable {
	c := enemyColor
	if def.Health >= 300 {
		c = bruteColor
	}
	return &component.Renderable{Color: c, Radius: def.Radius}
}

func (v *Visuals) Orb() *component.Renderable {
	return &component.Renderable{Color: orbColor, Radius: 0.2}
}

func (v *Visuals) Player() *component.Renderable {
	return &component.Renderable{Color: playerColor, Radius: 0.4, HasStroke: true}
}

func (v *Visuals) HealthPack() *component.Renderable {
	return &component.Renderable{Color: packColor, Radius: 0.25, HasStroke: true}
}

func (v *Visuals) PowerUp(kind component.PowerUpKind) *component.Renderable {
	c, ok := powerUpColors[kind]
	if !ok {
		c = hudColor
	}
	return &component.Renderable{Color: c, Radius: 0.25, HasStroke: true}
}
