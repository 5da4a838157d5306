package term

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"

	"github.com/akarpov/notflappy/internal/display"
	"github.com/akarpov/notflappy/internal/game"
	"github.com/akarpov/notflappy/internal/sched"
	"github.com/akarpov/notflappy/internal/storage"
)

// Options configures a direct terminal session.
type Options struct {
	// Store receives finished-run scores. Nil disables persistence.
	Store *storage.Store
}

// Run plays the game directly on the controlling terminal. The loop
// deliberately polls timestamps instead of sleeping: the original design
// trades CPU for input latency, and the tick callbacks are cheap enough
// that a pass costs microseconds. Returns when the player quits.
func Run(state *game.State, opts Options) error {
	backend := NewBackend(os.Stdout)

	if err := waitForViewport(backend); err != nil {
		return err
	}

	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("term: cannot enter raw mode: %w", err)
	}
	defer func() {
		term.Restore(int(os.Stdin.Fd()), oldState)
		backend.ShowCursor()
		backend.Clear()
		backend.Flush()
	}()

	kb := NewKeyboard()
	go kb.Listen(os.Stdin)

	cfg := state.Config()
	renderer := display.New(backend, game.Width, game.Height, cfg.Render.FrameRate)

	scheduler := sched.New(nil)
	scrollTimer := scheduler.Add(state.ScrollPeriod(), state.ScrollWorld)
	scheduler.Add(time.Duration(cfg.Timers.AnimateMs)*time.Millisecond, state.AnimateBird)
	scheduler.Add(time.Duration(cfg.Timers.InputMs)*time.Millisecond, func() error {
		return state.Tick(kb)
	})

	backend.SetTitle("NotFlappyBird")
	backend.HideCursor()
	backend.Clear()
	backend.Flush()

	for !state.Quit() {
		now := time.Now()

		if renderer.Due(now) {
			if _, err := renderer.Frame(state.Registry(), now); err != nil {
				return err
			}
			if err := backend.Flush(); err != nil {
				return err
			}
		}

		if err := scheduler.Pass(); err != nil {
			return err
		}

		// The difficulty ramp may have shortened the scroll cadence.
		scrollTimer.SetPeriod(state.ScrollPeriod())

		if score, ok := state.TakeFinishedRun(); ok && score > 0 && opts.Store != nil {
			//nolint:errcheck // Best-effort save, play continues regardless
			opts.Store.SaveScore(score)
		}
	}

	return nil
}

// waitForViewport blocks until the terminal satisfies the playfield
// contract, prompting the player to resize. Pre-game, so sleeping here
// is fine.
func waitForViewport(backend *Backend) error {
	for {
		cols, rows := backend.ViewportSize()
		if cols >= game.Width && rows >= game.Height {
			return nil
		}
		if cols == 0 && rows == 0 {
			return fmt.Errorf("term: cannot determine terminal size (need %dx%d)", game.Width, game.Height)
		}

		backend.Clear()
		backend.MoveCursor(0, 0)
		fmt.Fprintf(os.Stdout, "Please resize the terminal to at least %d columns by %d rows (current: %d by %d)\r\n",
			game.Width, game.Height, cols, rows)
		backend.Flush()
		time.Sleep(100 * time.Millisecond)
	}
}
