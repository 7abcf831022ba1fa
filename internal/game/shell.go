package game

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/sirupsen/logrus"
	"github.com/vancomm/minesweeper/internal/command"
	"github.com/vancomm/minesweeper/internal/mines"
)

const (
	PromptMines = "How many mines do you want on the field?"
	PromptMove  = "Set/unset mines marks or claim a cell as free: "
	MessageLost = "You stepped on a mine and failed!"
	MessageWon  = "Congratulations! You found all the mines!"
)

// Shell runs one game over a line based reader and writer.
type Shell struct {
	In  io.Reader
	Out io.Writer
	Log logrus.FieldLogger

	Size int
	// Mines is asked for when negative.
	Mines int
	Rand  *rand.Rand
	// Field, if set, is played instead of a new one and Size, Mines and
	// Rand are ignored.
	Field *mines.Minefield
	// Theme colours the output; nil prints plain text.
	Theme *Theme
}

func (sh *Shell) log() logrus.FieldLogger {
	if sh.Log == nil {
		return logrus.StandardLogger()
	}
	return sh.Log
}

func (sh *Shell) println(s string) {
	fmt.Fprintln(sh.Out, s)
}

func (sh *Shell) problem(err error) {
	sh.log().WithError(err).Debug("rejected input")
	sh.println(sh.Theme.Problem(err.Error()))
}

func (sh *Shell) render(f *mines.Minefield) {
	if sh.Theme == nil {
		fmt.Fprint(sh.Out, f.Render())
		return
	}
	fmt.Fprint(sh.Out, f.RenderWith(sh.Theme.Glyph))
}

// readLines feeds lines from r into the returned channel until r is
// exhausted or done is closed.
func readLines(r io.Reader, done <-chan struct{}, log logrus.FieldLogger) <-chan string {
	lines := make(chan string)
	go func() {
		defer close(lines)
		scanner := bufio.NewScanner(r)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-done:
				return
			}
		}
		if err := scanner.Err(); err != nil {
			log.WithError(err).Error("unable to read input")
		}
	}()
	return lines
}

func next(ctx context.Context, lines <-chan string) (string, bool) {
	select {
	case <-ctx.Done():
		return "", false
	case line, ok := <-lines:
		return line, ok
	}
}

// Run plays until the game is won or lost, the input ends or ctx is
// cancelled, and returns the last state. Invalid input is reported to Out
// and asked for again.
func (sh *Shell) Run(ctx context.Context) (State, error) {
	done := make(chan struct{})
	defer close(done)
	lines := readLines(sh.In, done, sh.log())

	state, ok, err := sh.start(ctx, lines)
	if err != nil || !ok {
		return state, errors.Join(err, ctx.Err())
	}
	sh.log().WithFields(logrus.Fields{
		"size": state.Field.Size, "mines": state.Field.MineCount,
	}).Info("game started")
	sh.render(state.Field)

	for !state.Over() {
		sh.println(PromptMove)
		line, ok := next(ctx, lines)
		if !ok {
			sh.log().WithField("moves", state.Moves).Info("game abandoned")
			return state, ctx.Err()
		}
		c, err := command.Parse(line)
		if err != nil {
			sh.problem(err)
			continue
		}
		s, err := Step(state, c)
		if err != nil {
			sh.problem(err)
			continue
		}
		state = s
		sh.render(state.Field)
	}

	sh.log().WithFields(logrus.Fields{
		"outcome": state.Outcome(), "moves": state.Moves,
	}).Info("game over")

	if state.Field.Exploded {
		sh.println(sh.Theme.Lost(MessageLost))
	} else {
		sh.println(sh.Theme.Won(MessageWon))
	}
	return state, nil
}

// start sets up the field, asking for the mine count if needed. ok is false
// when the input ended first.
func (sh *Shell) start(ctx context.Context, lines <-chan string) (state State, ok bool, err error) {
	if sh.Field != nil {
		return State{Field: sh.Field}, true, nil
	}
	mineCount := sh.Mines
	for {
		if mineCount < 0 {
			sh.println(PromptMines)
			line, ok := next(ctx, lines)
			if !ok {
				return State{}, false, nil
			}
			n, err := command.ParseMineCount(line)
			if err != nil {
				sh.problem(err)
				continue
			}
			mineCount = n
		}
		state, err = NewState(sh.Size, mineCount, sh.Rand)
		if err != nil {
			if sh.Mines >= 0 {
				return State{}, false, err
			}
			sh.problem(err)
			mineCount = -1
			continue
		}
		return state, true, nil
	}
}
