package main

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/config"
	"github.com/vancomm/minesweeper/internal/mines"
)

var (
	log = logrus.New()

	configPath string
	cfg        *config.Config
)

func setup() error {
	c, err := config.Load(configPath)
	if err != nil {
		return err
	}
	l, err := config.NewLogger(c)
	if err != nil {
		return err
	}
	cfg, log = c, l
	mines.Log = l

	log.WithFields(cfg.Fields()).Debug("config loaded")
	return nil
}

func newRootCmd() *cobra.Command {
	var opts playOptions

	root := &cobra.Command{
		Use:          "minesweeper",
		Short:        "Minesweeper in the terminal",
		Long:         "Minesweeper in the terminal. Without a subcommand a new game is started.",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, &opts)
		},
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "config file path")
	opts.register(root.Flags())

	root.AddCommand(newPlayCmd(), newHistoryCmd(), newMigrateCmd())
	return root
}
