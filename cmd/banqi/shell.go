package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/banqi/internal/game"
	"github.com/mitchelldurbincs/banqi/internal/game/core"
)

var errQuit = errors.New("quit")

// shell feeds cell clicks read from a terminal into one engine and prints
// the board after each. Everything runs on the goroutine calling Run;
// config reloads are handed over through the reloads channel.
type shell struct {
	engine  *game.Engine
	display game.RenderOptions
	out     io.Writer
	logger  zerolog.Logger
	reloads chan func(*shell)
}

func newShell(engine *game.Engine, display game.RenderOptions, out io.Writer, logger zerolog.Logger) *shell {
	return &shell{
		engine:  engine,
		display: display,
		out:     out,
		logger:  logger.With().Str("component", "Shell").Logger(),
		reloads: make(chan func(*shell), 4),
	}
}

// Run reads tokens from in until it is exhausted, q is entered or ctx is
// done.
func (s *shell) Run(ctx context.Context, in io.Reader) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	tokens := make(chan string)
	readErr := make(chan error, 1)
	go func() {
		defer close(tokens)
		scanner := bufio.NewScanner(in)
		scanner.Split(bufio.ScanWords)
		for scanner.Scan() {
			select {
			case tokens <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
		readErr <- scanner.Err()
	}()

	s.print()
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		// Pending reloads win over queued input
		select {
		case apply := <-s.reloads:
			apply(s)
			s.print()
			continue
		default:
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case apply := <-s.reloads:
			apply(s)
			s.print()
		case token, ok := <-tokens:
			if !ok {
				select {
				case err := <-readErr:
					return err
				default:
					return nil
				}
			}
			if err := s.handle(token); err != nil {
				if errors.Is(err, errQuit) {
					return nil
				}
				return err
			}
		}
	}
}

func (s *shell) handle(token string) error {
	if token == "q" || token == "quit" {
		return errQuit
	}

	cell, err := parseCell(token)
	if err != nil {
		s.logger.Debug().Str("token", token).Err(err).Msg("Ignoring unparseable input")
		fmt.Fprintf(s.out, "? %v\n", err)
		return nil
	}

	snap, err := s.engine.Apply(cell)
	if err != nil {
		fmt.Fprintf(s.out, "rejected: %v\n", err)
	}
	fmt.Fprint(s.out, snap.Render(s.display))
	return nil
}

func (s *shell) print() {
	fmt.Fprint(s.out, s.engine.Render(s.display))
}

// parseCell accepts a slot index ("13") or a row,col pair ("1,5")
func parseCell(token string) (int, error) {
	if rowStr, colStr, found := strings.Cut(token, ","); found {
		row, err := strconv.Atoi(strings.TrimSpace(rowStr))
		if err != nil {
			return core.NoCell, fmt.Errorf("bad row in %q", token)
		}
		col, err := strconv.Atoi(strings.TrimSpace(colStr))
		if err != nil {
			return core.NoCell, fmt.Errorf("bad column in %q", token)
		}
		c := core.NewCoordinate(row, col)
		if !c.IsValid() {
			return core.NoCell, fmt.Errorf("%s is off the %dx%d board", c, core.Rows, core.Cols)
		}
		return c.ToIndex(), nil
	}

	idx, err := strconv.Atoi(token)
	if err != nil {
		return core.NoCell, fmt.Errorf("expected a cell index or row,col, got %q", token)
	}
	if !core.InBounds(idx) {
		return core.NoCell, fmt.Errorf("cell %d is outside 0..%d", idx, core.Size-1)
	}
	return idx, nil
}
