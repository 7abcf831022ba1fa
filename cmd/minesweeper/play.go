package main

import (
	"context"
	"errors"
	"hash/maphash"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/mines"
)

type playOptions struct {
	mines   int
	size    int
	seed    uint64
	noColor bool
}

func (o *playOptions) register(fs *pflag.FlagSet) {
	fs.IntVarP(&o.mines, "mines", "m", -1, "number of mines, asked for when negative")
	fs.IntVarP(&o.size, "size", "s", 9, "width and height of the field")
	fs.Uint64Var(&o.seed, "seed", 0, "mine placement seed, random when 0")
	fs.BoolVar(&o.noColor, "no-color", false, "print without colours")
}

// apply overrides c with the flags that were set on the command line.
func (o *playOptions) apply(fs *pflag.FlagSet, c *config.Config) {
	if fs.Changed("mines") {
		c.Mines = o.mines
	}
	if fs.Changed("size") {
		c.FieldSize = o.size
	}
	if fs.Changed("seed") {
		c.Seed = o.seed
	}
	if fs.Changed("no-color") {
		c.Color = !o.noColor
	}
}

func newPlayCmd() *cobra.Command {
	var opts playOptions

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start a new game",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, &opts)
		},
	}
	opts.register(cmd.Flags())
	return cmd
}

func runPlay(cmd *cobra.Command, opts *playOptions) error {
	opts.apply(cmd.Flags(), cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = new(maphash.Hash).Sum64()
	}

	var (
		j     journal.Journal = journal.Discard{}
		state game.State
	)

	g, ctx := errgroup.WithContext(cmd.Context())

	g.Go(func() error {
		opened, err := journal.Open(ctx, cfg.Journal)
		if err != nil {
			log.WithError(err).Warn("journal unavailable, the game will not be recorded")
			return nil
		}
		j = opened
		return nil
	})

	g.Go(func() error {
		sh := &game.Shell{
			In:    cmd.InOrStdin(),
			Out:   cmd.OutOrStdout(),
			Log:   log.WithField("seed", seed),
			Size:  cfg.FieldSize,
			Mines: cfg.Mines,
			Rand:  mines.NewRand(seed),
		}
		if cfg.Color {
			sh.Theme = game.NewTheme()
		}
		var err error
		state, err = sh.Run(ctx)
		return err
	})

	err := g.Wait()
	defer func() {
		if err := j.Close(); err != nil {
			log.WithError(err).Error("unable to close journal")
		}
	}()
	if err != nil && !errors.Is(err, context.Canceled) {
		return err
	}

	if state.Field == nil {
		return nil
	}
	record, err := state.Record(seed)
	if err != nil {
		return err
	}
	if err := j.Add(context.WithoutCancel(cmd.Context()), record); err != nil {
		log.WithError(err).Error("unable to record game")
		return nil
	}
	log.WithFields(logrus.Fields{
		"id": record.ID, "outcome": record.Outcome, "moves": record.Moves,
	}).Info("game recorded")

	return nil
}
