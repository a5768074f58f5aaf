// internal/state/menu_state.go
package state

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"

	"go-survivors/internal/config"
)

// MenuState is the title screen.
type MenuState struct {
	sm        *StateMachine
	ctx       *Context
	highScore int
}

func NewMenuState(sm *StateMachine, ctx *Context) *MenuState {
	return &MenuState{sm: sm, ctx: ctx}
}

func (s *MenuState) Enter() {
	if s.ctx.Store != nil {
		if high, err := s.ctx.Store.HighScore(); err == nil {
			s.highScore = high
		}
	}
}

func (s *MenuState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.sm.SetState(NewGameState(s.sm, s.ctx))
	}
}

func (s *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 16, G: 18, B: 26, A: 255})
	cx := config.ScreenWidth / 2
	text.Draw(screen, "GO SURVIVORS", basicfont.Face7x13, cx-44, config.ScreenHeight/2-40, color.White)
	text.Draw(screen, "press SPACE to start", basicfont.Face7x13, cx-70, config.ScreenHeight/2, color.White)
	if s.highScore > 0 {
		line := fmt.Sprintf("high score: %d", s.highScore)
		text.Draw(screen, line, basicfont.Face7x13, cx-50, config.ScreenHeight/2+24, color.White)
	}
}

func (s *MenuState) Exit() {}
