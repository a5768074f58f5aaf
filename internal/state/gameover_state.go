// internal/state/gameover_state.go
package state

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"go-survivors/internal/config"
)

// GameOverState shows the final frame dimmed and waits for a restart.
type GameOverState struct {
	sm       *StateMachine
	ctx      *Context
	previous State
}

func NewGameOverState(sm *StateMachine, ctx *Context, previous State) *GameOverState {
	return &GameOverState{sm: sm, ctx: ctx, previous: previous}
}

func (s *GameOverState) Enter() {}

func (s *GameOverState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		s.sm.SetState(NewGameState(s.sm, s.ctx))
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		s.sm.SetState(NewMenuState(s.sm, s.ctx))
	}
}

func (s *GameOverState) Draw(screen *ebiten.Image) {
	if s.previous != nil {
		s.previous.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		color.RGBA{A: 160}, false)
	cx := config.ScreenWidth / 2
	text.Draw(screen, "GAME OVER", basicfont.Face7x13, cx-32, config.ScreenHeight/2-20, color.White)
	text.Draw(screen, "R to restart, ESC for menu", basicfont.Face7x13, cx-90, config.ScreenHeight/2+10, color.White)
}

func (s *GameOverState) Exit() {}
