package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"parkjunwoo.com/snowreport/pkg/snow"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show [report.json]",
		Short: "Print the current snow report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := ""
			if len(args) == 1 {
				path = args[0]
			} else {
				sr, err := ctx.load()
				if err != nil {
					return err
				}
				path = sr.Output
			}

			report, err := snow.ReadReport(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tty := isTerminal(out)
			if tty {
				fmt.Fprintf(out, "Updated %s\n%s\n", report.UpdatedAt, report.Source)
			}
			fmt.Fprintln(out, renderReport(report, !tty))
			return nil
		},
	}
}

func renderReport(report *snow.Report, csv bool) string {
	headers := []string{"Resort", "Region", "24h", "72h", "Base", "Trails", "Lifts"}
	aligns := []columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight, alignRight}

	rows := make([][]string, 0, len(report.Resorts))
	for _, r := range report.Resorts {
		rows = append(rows, []string{
			r.Name,
			r.Region,
			formatInches(r.Snow24hIn),
			formatInches(r.Snow72hIn),
			formatDepth(r.BaseDepthIn),
			formatRatio(r.TrailsOpen, r.TrailsTotal),
			formatRatio(r.LiftsOpen, r.LiftsTotal),
		})
	}
	return renderTable(headers, rows, aligns, csv)
}
