// internal/render/palette.go
package render

import (
	"image/color"

	"go-survivors/internal/component"
	"go-survivors/internal/types"
)

// Element palette. Zones render translucent so overlapping effects stay
// readable; solid entities use the opaque variant.
var elementColors = map[types.Element]color.RGBA{
	types.ElementFire:      {R: 235, G: 94, B: 40, A: 255},
	types.ElementLightning: {R: 255, G: 214, B: 10, A: 255},
	types.ElementPoison:    {R: 112, G: 224, B: 0, A: 255},
	types.ElementChaos:     {R: 157, G: 78, B: 221, A: 255},
	types.ElementLight:     {R: 255, G: 250, B: 205, A: 255},
	types.ElementDark:      {R: 90, G: 24, B: 154, A: 255},
	types.ElementPsychic:   {R: 255, G: 0, B: 110, A: 255},
	types.ElementFrost:     {R: 144, G: 224, B: 239, A: 255},
	types.ElementNone:      {R: 200, G: 200, B: 200, A: 255},
}

var (
	playerColor = color.RGBA{R: 72, G: 202, B: 228, A: 255}
	enemyColor  = color.RGBA{R: 208, G: 0, B: 0, A: 255}
	bruteColor  = color.RGBA{R: 157, G: 2, B: 8, A: 255}
	orbColor    = color.RGBA{R: 56, G: 176, B: 0, A: 255}
	hudColor    = color.RGBA{R: 237, G: 242, B: 244, A: 255}
	bgColor     = color.RGBA{R: 16, G: 18, B: 26, A: 255}
	packColor   = color.RGBA{R: 230, G: 57, B: 70, A: 255}
)

var powerUpColors = map[component.PowerUpKind]color.RGBA{
	component.PowerUpMaxHealth:    {R: 208, G: 0, B: 0, A: 255},
	component.PowerUpHealthRegen:  {R: 56, G: 176, B: 0, A: 255},
	component.PowerUpFireRate:     {R: 255, G: 214, B: 10, A: 255},
	component.PowerUpPickupRadius: {R: 72, G: 202, B: 228, A: 255},
	component.PowerUpMoveSpeed:    {R: 255, G: 0, B: 110, A: 255},
}

func elementColor(element types.Element) color.RGBA {
	if c, ok := elementColors[element]; ok {
		return c
	}
	return elementColors[types.ElementNone]
}

func translucent(c color.RGBA, alpha uint8) color.RGBA {
	c.A = alpha
	return c
}
