// internal/state/game_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-survivors/internal/app"
	"go-survivors/internal/geom"
	"go-survivors/internal/render"
)

// GameState runs one survival attempt.
type GameState struct {
	sm       *StateMachine
	ctx      *Context
	game     *app.Game
	renderer *render.Renderer
	saved    bool
}

func NewGameState(sm *StateMachine, ctx *Context) *GameState {
	game := app.NewGame(ctx.Cfg, render.NewVisuals(), ctx.Logger)
	for _, defID := range ctx.Loadout {
		if err := game.EquipSpell(defID); err != nil && ctx.Logger != nil {
			ctx.Logger.Warn("skipping unknown spell", "id", defID)
		}
	}
	return &GameState{
		sm:       sm,
		ctx:      ctx,
		game:     game,
		renderer: render.NewRenderer(game.ECS),
	}
}

func (s *GameState) Enter() {}

func (s *GameState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(NewPauseState(s.sm, s))
		return
	}

	s.game.SetMoveInput(readMoveInput())
	s.game.Update(deltaTime)

	if s.game.Over() {
		s.saveRun()
		s.sm.SetState(NewGameOverState(s.sm, s.ctx, s))
	}
}

func (s *GameState) Draw(screen *ebiten.Image) {
	s.renderer.Draw(screen, s.game)
}

func (s *GameState) Exit() {}

func (s *GameState) saveRun() {
	if s.saved || s.ctx.Store == nil {
		return
	}
	s.saved = true
	id, err := s.ctx.Store.SaveRun(
		s.game.Elapsed(), s.game.Wave(), s.game.Kills(), s.game.Level(), s.game.Score(),
	)
	if s.ctx.Logger != nil {
		if err != nil {
			s.ctx.Logger.Error("failed to save run", "err", err)
		} else {
			s.ctx.Logger.Info("run saved", "id", id)
		}
	}
}

func readMoveInput() geom.Vec2 {
	var dir geom.Vec2
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		dir.Y -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		dir.Y += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		dir.X -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		dir.X += 1
	}
	return dir
}
