// Package app drives a Tower of Hanoi game from pointer and keyboard input.
// Controller holds everything that does not need a window so it can be tested
// headlessly; the ebiten front end in app.go feeds it input and draws its
// state.
package app

import (
	"context"
	"fmt"
	"image"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"hanoi/internal/config"
	"hanoi/internal/core"
	"hanoi/internal/hanoi"
	"hanoi/internal/layout"
	"hanoi/internal/solver"
	"hanoi/internal/store"
	"hanoi/internal/ui"
)

// PromptKind identifies the modal dialog currently shown.
type PromptKind int

const (
	// PromptNone means no dialog is open.
	PromptNone PromptKind = iota
	// PromptSetup asks for the disk count.
	PromptSetup
	// PromptWon announces a solved puzzle.
	PromptWon
	// PromptLost announces an exhausted move budget.
	PromptLost
)

// Controller owns the game and applies player actions to it.
type Controller struct {
	game    *hanoi.Game
	logger  *log.Logger
	history History
	now     func() time.Time

	session session
	cursor  image.Point

	hint     solver.Move
	hasHint  bool
	autoplay bool
	prompt   PromptKind

	best      store.Record
	hasBest   bool
	bestDisks int
}

// NewController wraps g. logger and history may be nil.
func NewController(g *hanoi.Game, logger *log.Logger, history History) *Controller {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	c := &Controller{game: g, logger: logger, history: history, now: time.Now}
	c.session = newSession(c.now())
	return c
}

// Game returns the underlying game.
func (c *Controller) Game() *hanoi.Game { return c.game }

// Cursor returns the last pointer position seen.
func (c *Controller) Cursor() image.Point { return c.cursor }

// Hint returns the highlighted move, if any.
func (c *Controller) Hint() (solver.Move, bool) { return c.hint, c.hasHint }

// Autoplaying reports whether optimal moves are being played automatically.
func (c *Controller) Autoplaying() bool { return c.autoplay }

// PromptKind returns the dialog currently shown.
func (c *Controller) PromptKind() PromptKind { return c.prompt }

// Prompt describes the dialog currently shown.
func (c *Controller) Prompt() (ui.Prompt, bool) {
	switch c.prompt {
	case PromptSetup:
		return ui.Prompt{
			Title:   "Tower of Hanoi",
			Message: "How many disks?",
			Choices: diskChoices(),
		}, true
	case PromptWon:
		return ui.Prompt{
			Title:   "You Won!",
			Message: fmt.Sprintf("Solved in %d moves.", c.game.Moves()),
			Choices: []string{"OK"},
		}, true
	case PromptLost:
		return ui.Prompt{
			Title:   "Game Over",
			Message: "Maximum moves reached!",
			Choices: []string{"OK"},
		}, true
	}
	return ui.Prompt{}, false
}

func diskChoices() []string {
	out := make([]string, 0, config.PromptMaxDisks-config.PromptMinDisks+1)
	for n := config.PromptMinDisks; n <= config.PromptMaxDisks; n++ {
		out = append(out, strconv.Itoa(n))
	}
	return out
}

// AskDiskCount opens the setup dialog.
func (c *Controller) AskDiskCount() {
	c.game.Cancel()
	c.autoplay = false
	c.prompt = PromptSetup
}

// Choose answers the open dialog with choice i.
func (c *Controller) Choose(i int) {
	switch c.prompt {
	case PromptSetup:
		n := config.PromptMinDisks + i
		if n > config.PromptMaxDisks {
			n = config.PromptMinDisks
		}
		c.prompt = PromptNone
		if err := c.SetDisks(n); err != nil {
			c.logger.Error("set disks", "disks", n, "err", err)
		}
	case PromptWon, PromptLost:
		c.prompt = PromptNone
		c.Reset()
	}
}

// Dismiss closes the open dialog without a choice. The setup dialog falls
// back to the smallest disk count.
func (c *Controller) Dismiss() { c.Choose(0) }

// Press lifts the top disk under pt.
func (c *Controller) Press(pt image.Point) {
	c.cursor = pt
	if c.prompt != PromptNone || c.autoplay {
		return
	}
	rod := layout.TopDiskAt(c.game, pt)
	if rod == hanoi.NoRod {
		return
	}
	if err := c.Lift(rod); err != nil {
		c.logger.Debug("lift refused", "rod", rod, "err", err)
	}
}

// Drag moves the held disk with the pointer.
func (c *Controller) Drag(pt image.Point) { c.cursor = pt }

// Release drops the held disk over the rod under pt.
func (c *Controller) Release(pt image.Point) hanoi.Outcome {
	c.cursor = pt
	if _, _, ok := c.game.Lifted(); !ok {
		return hanoi.OutcomeNoop
	}
	return c.Drop(layout.RodAt(pt.X))
}

// Lift picks up the top disk of rod.
func (c *Controller) Lift(rod int) error {
	if c.prompt != PromptNone {
		return hanoi.ErrFinished
	}
	if err := c.game.Lift(rod); err != nil {
		return err
	}
	c.logger.Debug("lift", "rod", rod)
	return nil
}

// Drop releases the held disk over rod.
func (c *Controller) Drop(rod int) hanoi.Outcome {
	_, from, _ := c.game.Lifted()
	out := c.game.Drop(rod)
	c.logger.Debug("drop", "from", from, "to", rod, "outcome", out)
	c.after(out)
	return out
}

func (c *Controller) after(out hanoi.Outcome) {
	if out.Counted() {
		c.hasHint = false
	}
	switch out {
	case hanoi.OutcomeWon:
		c.autoplay = false
		c.finish(store.ResultWon)
		c.prompt = PromptWon
		c.logger.Info("puzzle solved", "disks", c.game.Disks(), "moves", c.game.Moves())
	case hanoi.OutcomeOutOfMoves:
		c.autoplay = false
		c.finish(store.ResultLost)
		c.prompt = PromptLost
		c.logger.Info("out of moves", "disks", c.game.Disks(), "moves", c.game.Moves())
	}
}

func (c *Controller) finish(result store.Result) {
	if c.session.done {
		return
	}
	c.session.done = true
	if c.history == nil {
		return
	}
	rec := c.session.record(c.game, result, c.now())
	if err := c.history.Save(context.Background(), rec); err != nil {
		c.logger.Error("save game", "id", rec.ID, "err", err)
		return
	}
	c.bestDisks = 0
}

// abandon records an unfinished game that has at least one move.
func (c *Controller) abandon() {
	if c.game.Status() == hanoi.StatusPlaying && c.game.Moves() > 0 {
		c.finish(store.ResultAbandoned)
	}
}

func (c *Controller) restart() {
	c.session = newSession(c.now())
	c.hasHint = false
	c.autoplay = false
	if c.prompt == PromptWon || c.prompt == PromptLost {
		c.prompt = PromptNone
	}
}

// Reset restores the starting position.
func (c *Controller) Reset() {
	c.abandon()
	c.game.Reset()
	c.restart()
	c.logger.Debug("reset", "disks", c.game.Disks())
}

// SetDisks starts over with n disks.
func (c *Controller) SetDisks(n int) error {
	c.abandon()
	if err := c.game.Resize(n); err != nil {
		return err
	}
	c.restart()
	c.logger.Debug("resize", "disks", n)
	return nil
}

// ToggleMoveLimit switches the move budget on or off.
func (c *Controller) ToggleMoveLimit() {
	c.game.SetMoveLimit(!c.game.MoveLimit())
}

// ShowHint highlights the optimal next move.
func (c *Controller) ShowHint() bool {
	if c.game.Status() != hanoi.StatusPlaying {
		return false
	}
	c.hint, c.hasHint = solver.Next(c.game)
	return c.hasHint
}

// ToggleAutoplay starts or stops automatic play.
func (c *Controller) ToggleAutoplay() {
	if c.autoplay {
		c.autoplay = false
		return
	}
	if c.prompt != PromptNone || c.game.Status() != hanoi.StatusPlaying {
		return
	}
	c.game.Cancel()
	c.autoplay = true
}

// AutoStep plays one optimal move while autoplay is on. It reports whether a
// move was made.
func (c *Controller) AutoStep() bool {
	if !c.autoplay || c.prompt != PromptNone {
		return false
	}
	m, ok := solver.Next(c.game)
	if !ok {
		c.autoplay = false
		return false
	}
	out := c.game.Move(m.From, m.To)
	c.logger.Debug("autoplay", "move", m, "outcome", out)
	c.after(out)
	return out.Counted()
}

// Best returns the best recorded win for the current disk count.
func (c *Controller) Best() (store.Record, bool) {
	if c.history == nil {
		return store.Record{}, false
	}
	if c.bestDisks != c.game.Disks() {
		rec, ok, err := c.history.Best(context.Background(), c.game.Disks())
		if err != nil {
			c.logger.Error("load best", "disks", c.game.Disks(), "err", err)
		}
		c.best, c.hasBest, c.bestDisks = rec, ok, c.game.Disks()
	}
	return c.best, c.hasBest
}

// Close records the current game as abandoned if it was started.
func (c *Controller) Close() { c.abandon() }

// Name titles the HUD.
func (c *Controller) Name() string { return "Tower of Hanoi" }

// Parameters reports the HUD values.
func (c *Controller) Parameters() core.ParameterSnapshot {
	best := "--"
	if rec, ok := c.Best(); ok {
		best = fmt.Sprintf("%d moves", rec.Moves)
	}
	moves := strconv.Itoa(c.game.Moves())
	if c.game.MoveLimit() {
		moves = fmt.Sprintf("%d / %d", c.game.Moves(), c.game.MaxMoves())
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Puzzle", Params: []core.Parameter{
			{Key: "disks", Label: "Disks", Type: core.ParamTypeInt, Value: strconv.Itoa(c.game.Disks())},
			{Key: "move_limit", Label: "Move limit", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.game.MoveLimit())},
			{Key: "autoplay", Label: "Autoplay", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.autoplay)},
		}},
		{Name: "Progress", Params: []core.Parameter{
			{Key: "moves", Label: "Moves", Type: core.ParamTypeText, Value: moves},
			{Key: "status", Label: "Status", Type: core.ParamTypeText, Value: c.game.Status().String()},
			{Key: "optimal", Label: "Optimal left", Type: core.ParamTypeText, Value: strconv.Itoa(solver.Remaining(c.game))},
			{Key: "best", Label: "Best", Type: core.ParamTypeText, Value: best},
		}},
	}}
}

// ParameterControls lists the adjustable HUD values.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "disks", Label: "Disks", Type: core.ParamTypeInt, Step: 1,
			Min: config.PromptMinDisks, Max: config.PromptMaxDisks, HasMin: true, HasMax: true},
		{Key: "move_limit", Label: "Move limit", Type: core.ParamTypeBool},
		{Key: "autoplay", Label: "Autoplay", Type: core.ParamTypeBool},
	}
}

// SetIntParameter applies an integer HUD control.
func (c *Controller) SetIntParameter(key string, value int) bool {
	if key != "disks" || value < config.PromptMinDisks || value > config.PromptMaxDisks {
		return false
	}
	return c.SetDisks(value) == nil
}

// SetBoolParameter applies a toggle HUD control.
func (c *Controller) SetBoolParameter(key string, value bool) bool {
	switch key {
	case "move_limit":
		c.game.SetMoveLimit(value)
		return true
	case "autoplay":
		if value != c.autoplay {
			c.ToggleAutoplay()
		}
		return c.autoplay == value
	}
	return false
}
