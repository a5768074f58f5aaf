// cmd/game/play.go
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-survivors/internal/config"
	"go-survivors/internal/state"
	"go-survivors/internal/storage"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Open the game window",
	RunE:  runPlay,
}

// windowGame adapts the state machine to ebiten's game loop.
type windowGame struct {
	sm             *state.StateMachine
	lastUpdateTime time.Time
}

func (w *windowGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(w.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	w.lastUpdateTime = now
	w.sm.Update(deltaTime)
	return nil
}

func (w *windowGame) Draw(screen *ebiten.Image) {
	w.sm.Draw(screen)
}

func (w *windowGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg, err := loadTuning()
	if err != nil {
		return err
	}
	logger := newLogger()

	store, err := storage.Open(flagDBPath)
	if err != nil {
		// A broken database should not keep the game from starting.
		logger.Warn("run history disabled", "err", err)
		store = nil
	} else {
		defer store.Close()
	}

	ctx := &state.Context{Cfg: cfg, Logger: logger, Store: store, Loadout: flagLoadout}
	sm := state.NewStateMachine()
	sm.SetState(state.NewMenuState(sm, ctx))

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle("Go Survivors")
	if err := ebiten.RunGame(&windowGame{sm: sm, lastUpdateTime: time.Now()}); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return nil
}
