// internal/render/render.go
package render

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-survivors/internal/app"
	"go-survivors/internal/config"
	"go-survivors/internal/entity"
)

// Renderer draws the world as flat circles with the camera locked to the
// player. World coordinates scale by config.WorldScale into pixels.
type Renderer struct {
	ecs *entity.ECS
}

func NewRenderer(ecs *entity.ECS) *Renderer {
	return &Renderer{ecs: ecs}
}

func (r *Renderer) Draw(screen *ebiten.Image, game *app.Game) {
	screen.Fill(bgColor)

	var camX, camY float64
	if pos, ok := r.ecs.Positions[game.PlayerID()]; ok {
		camX, camY = pos.X, pos.Y
	}
	toScreen := func(wx, wy float64) (float32, float32) {
		sx := (wx-camX)*config.WorldScale + config.ScreenWidth/2
		sy := (wy-camY)*config.WorldScale + config.ScreenHeight/2
		return float32(sx), float32(sy)
	}

	// Effects and zones go under everything else.
	for id, effect := range r.ecs.TimedEffects {
		renderable, ok := r.ecs.Renderables[id]
		if !ok {
			continue
		}
		pos, ok := r.ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := toScreen(pos.X, pos.Y)
		radius := renderable.Radius
		if effect.CurrentRadius > 0 {
			radius = effect.CurrentRadius
		}
		px := float32(radius * config.WorldScale)
		if renderable.HasStroke {
			vector.StrokeCircle(screen, x, y, px, 2, renderable.Color, true)
		} else {
			vector.DrawFilledCircle(screen, x, y, px, renderable.Color, true)
		}
	}

	for id, renderable := range r.ecs.Renderables {
		if _, isEffect := r.ecs.TimedEffects[id]; isEffect {
			continue
		}
		pos, ok := r.ecs.Positions[id]
		if !ok {
			continue
		}
		x, y := toScreen(pos.X, pos.Y)
		px := float32(renderable.Radius * config.WorldScale)
		if renderable.HasStroke {
			vector.DrawFilledCircle(screen, x, y, px+2, color.RGBA{R: 255, G: 255, B: 255, A: 180}, true)
		}
		vector.DrawFilledCircle(screen, x, y, px, renderable.Color, true)
	}

	r.drawHUD(screen, game)
}

func (r *Renderer) drawHUD(screen *ebiten.Image, game *app.Game) {
	cur, max := game.PlayerHealth()
	lines := []string{
		fmt.Sprintf("HP %.0f/%.0f", cur, max),
		fmt.Sprintf("Level %d", game.Level()),
		fmt.Sprintf("Wave %d", game.Wave()),
		fmt.Sprintf("Kills %d  Score %d", game.Kills(), game.Score()),
		fmt.Sprintf("Time %.0fs", game.Elapsed()),
	}
	for i, line := range lines {
		text.Draw(screen, line, basicfont.Face7x13, 12, 20+i*16, hudColor)
	}
}
