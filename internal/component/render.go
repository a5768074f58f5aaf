// internal/component/render.go
package component

import "image/color"

// Renderable carries the minimal visual description of an entity. Gameplay
// systems never read it; entities without one are simply not drawn, which
// keeps the simulation headless.
type Renderable struct {
	Color     color.RGBA
	Radius    float64
	HasStroke bool
}
