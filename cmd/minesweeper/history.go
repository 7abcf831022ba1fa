package main

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/vancomm/minesweeper/internal/game"
	"github.com/vancomm/minesweeper/internal/journal"
	"github.com/vancomm/minesweeper/internal/mines"
)

func openJournal(ctx context.Context) (journal.Journal, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return journal.Open(ctx, cfg.Journal)
}

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded games, newest first",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if limit <= 0 {
				return fmt.Errorf("limit must be positive, got %d", limit)
			}
			j, err := openJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer j.Close()

			records, err := j.List(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No games recorded yet.")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), historyTable(records))
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of games to list")

	cmd.AddCommand(newShowCmd())
	return cmd
}

func historyTable(records []journal.Record) string {
	rows := make([][]string, 0, len(records))
	for _, r := range records {
		rows = append(rows, []string{
			r.ID.String(),
			r.RecordedAt.Local().Format(time.DateTime),
			fmt.Sprintf("%dx%d", r.Size, r.Size),
			strconv.Itoa(r.MineCount),
			string(r.Outcome),
			strconv.Itoa(r.Moves),
		})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("ID", "RECORDED", "FIELD", "MINES", "OUTCOME", "MOVES").
		Rows(rows...).
		String()
}

func newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print the final field of a recorded game",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("bad game id %q: %w", args[0], err)
			}
			j, err := openJournal(cmd.Context())
			if err != nil {
				return err
			}
			defer j.Close()

			r, err := j.Get(cmd.Context(), id)
			if err != nil {
				return err
			}
			f, err := mines.DecodeMinefield(r.Board)
			if err != nil {
				return fmt.Errorf("unable to decode field of %s: %w", id, err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %dx%d, %d mines, seed %d: %s after %d moves\n",
				r.RecordedAt.Local().Format(time.DateTime),
				r.Size, r.Size, r.MineCount, r.Seed, r.Outcome, r.Moves)
			if cfg.Color {
				fmt.Fprint(cmd.OutOrStdout(), f.RenderWith(game.NewTheme().Glyph))
			} else {
				fmt.Fprint(cmd.OutOrStdout(), f.Render())
			}
			return nil
		},
	}
}
