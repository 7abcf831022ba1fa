package main

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/journal"
)

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or upgrade the journal schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			j, err := openJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer j.Close()

			version, dirty, err := journal.Version(j)
			if err != nil {
				return err
			}
			log.WithFields(logrus.Fields{
				"driver": cfg.Journal.Driver, "version": version, "dirty": dirty,
			}).Info("migration successful")
			fmt.Fprintf(cmd.OutOrStdout(), "journal schema version %d (dirty: %t)\n", version, dirty)
			return nil
		},
	}
}
