package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"parkjunwoo.com/snowreport/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [resort]",
		Short: "List recorded runs, or the snapshots of one resort",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sr, err := ctx.load()
			if err != nil {
				return err
			}
			if sr.HistoryDB == "" {
				return errors.New("history database not configured (set history_db, SNOWREPORT_HISTORY_DB or --history-db)")
			}

			store, err := history.Open(sr.HistoryDB)
			if err != nil {
				return fmt.Errorf("open history: %w", err)
			}
			defer store.Close()

			out := cmd.OutOrStdout()
			csv := !isTerminal(out)

			if len(args) == 0 {
				runs, err := store.Runs(cmd.Context(), limit)
				if err != nil {
					return err
				}
				rows := make([][]string, 0, len(runs))
				for _, r := range runs {
					rows = append(rows, []string{r.UpdatedAt, r.ID, fmt.Sprint(r.Resorts)})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Updated", "Run", "Resorts"}, rows,
					[]columnAlignment{alignLeft, alignLeft, alignRight}, csv))
				return nil
			}

			snaps, err := store.ResortHistory(cmd.Context(), args[0], limit)
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				return fmt.Errorf("no history for %q", args[0])
			}
			rows := make([][]string, 0, len(snaps))
			for _, s := range snaps {
				rows = append(rows, []string{
					s.UpdatedAt,
					formatInches(s.Snow24hIn),
					formatInches(s.Snow72hIn),
					formatDepth(s.BaseDepthIn),
					formatRatio(s.TrailsOpen, s.TrailsTotal),
					formatRatio(s.LiftsOpen, s.LiftsTotal),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Updated", "24h", "72h", "Base", "Trails", "Lifts"}, rows,
				[]columnAlignment{alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight}, csv))
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum rows (0 for all)")
	return cmd
}
