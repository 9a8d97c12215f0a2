//go:build ebiten

package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"

	"hanoi/internal/config"
	"hanoi/internal/core"
	"hanoi/internal/layout"
	"hanoi/internal/render"
	"hanoi/internal/theme"
	"hanoi/internal/ui"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const hudWidth = 220

// Game adapts a Controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.BoardPainter
	hud     *ui.HUD
	dialog  *ui.Dialog
	buttons *ui.ButtonBar

	auto    *core.FixedStep
	wasAuto bool
	applied config.Config
	reloads chan config.Config
	logger  *log.Logger
}

// New constructs a Game around ctrl using the resolved configuration cfg.
func New(ctrl *Controller, cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	th, ok := theme.Lookup(cfg.Theme)
	if !ok {
		th = theme.Default()
	}
	return &Game{
		ctrl:    ctrl,
		painter: render.NewBoardPainter(th),
		hud:     ui.NewHUD(ctrl, hudWidth),
		dialog:  ui.NewDialog(layout.Board()),
		buttons: ui.NewButtonBar(),
		auto:    core.NewFixedStep(cfg.AutoplayTPS),
		applied: cfg,
		reloads: make(chan config.Config, 1),
		logger:  logger,
	}
}

// Reload queues a configuration change for the next frame. It may be called
// from any goroutine.
func (g *Game) Reload(cfg config.Config) {
	select {
	case <-g.reloads:
	default:
	}
	g.reloads <- cfg
}

func (g *Game) applyReload() {
	select {
	case cfg := <-g.reloads:
		ch := g.ctrl.ApplyConfig(g.applied, cfg)
		g.applied = cfg
		if ch.theme {
			if th, ok := theme.Lookup(cfg.Theme); ok {
				g.painter.SetTheme(th)
				g.logger.Info("theme changed", "theme", th.Name)
			}
		}
		if ch.autoplayTPS {
			g.auto.SetTPS(cfg.AutoplayTPS)
		}
	default:
	}
}

func (g *Game) boardButtons() []ui.Button {
	auto := "Autoplay"
	if g.ctrl.Autoplaying() {
		auto = "Stop"
	}
	playing := g.ctrl.PromptKind() == PromptNone
	return []ui.Button{
		{Rect: layout.HintButton(), Label: "Hint", Enabled: playing && !g.ctrl.Autoplaying()},
		{Rect: layout.ResetButton(), Label: "Reset", Enabled: true},
		{Rect: layout.AutoplayButton(), Label: auto, Enabled: playing},
	}
}

// Update handles per-frame input and advances autoplay.
func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	g.applyReload()

	if p, ok := g.ctrl.Prompt(); ok {
		if i, chosen := g.dialog.Update(p); chosen {
			g.ctrl.Choose(i)
		}
		return nil
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.ctrl.Reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.ctrl.ShowHint()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.ctrl.ToggleAutoplay()
	}

	if !g.hud.Update(layout.BoardWidth) {
		if i, ok := g.buttons.Clicked(g.boardButtons()); ok {
			switch i {
			case 0:
				g.ctrl.ShowHint()
			case 1:
				g.ctrl.Reset()
			case 2:
				g.ctrl.ToggleAutoplay()
			}
		} else {
			g.handlePointer()
		}
	}

	if auto := g.ctrl.Autoplaying(); auto != g.wasAuto {
		g.wasAuto = auto
		if auto {
			g.auto.Restart()
		}
	}
	if g.wasAuto && g.auto.ShouldStep() {
		g.ctrl.AutoStep()
	}
	return nil
}

func (g *Game) handlePointer() {
	pt := image.Pt(ebiten.CursorPosition())
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.ctrl.Press(pt)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.ctrl.Release(pt)
	case ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		g.ctrl.Drag(pt)
	}
}

// Draw renders the board, the HUD and any open dialog.
func (g *Game) Draw(screen *ebiten.Image) {
	hint, hasHint := g.ctrl.Hint()
	g.painter.Draw(screen, render.Scene{
		Game:    g.ctrl.Game(),
		Cursor:  g.ctrl.Cursor(),
		Hint:    hint,
		HasHint: hasHint,
	})
	g.buttons.Draw(screen, g.boardButtons())
	g.hud.Draw(screen, layout.BoardWidth, layout.BoardHeight)
	if p, ok := g.ctrl.Prompt(); ok {
		g.dialog.Draw(screen, p)
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	s := g.size()
	return s.W, s.H
}

func (g *Game) size() core.Size {
	return layout.Board().Add(core.Size{W: g.hud.Width()})
}

// Run opens the window and blocks until the player quits. cfg is src
// resolved; when src names a file, edits to it are applied while running.
func Run(ctx context.Context, src config.Source, cfg config.Config, ctrl *Controller, logger *log.Logger) error {
	game := New(ctrl, cfg, logger)
	if src.Path != "" {
		if err := src.Watch(ctx, game.logger, game.Reload); err != nil {
			game.logger.Warn("config hot reload disabled", "err", err)
		}
	}

	size := game.size()
	ebiten.SetWindowTitle("Tower of Hanoi")
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(size.W*cfg.Scale, size.H*cfg.Scale)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}
