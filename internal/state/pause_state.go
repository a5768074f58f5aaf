// internal/state/pause_state.go
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

// PauseState freezes the run underneath it and draws a dimmed overlay.
type PauseState struct {
	sm       *StateMachine
	previous State
}

func NewPauseState(sm *StateMachine, previous State) *PauseState {
	return &PauseState{sm: sm, previous: previous}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	if s.previous != nil {
		s.previous.Draw(screen)
	}
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight,
		color.RGBA{A: 128}, false)
	text.Draw(screen, "PAUSED",
		basicfont.Face7x13, config.ScreenWidth/2-24, config.ScreenHeight/2, color.White)
}

func (s *PauseState) Exit() {}
