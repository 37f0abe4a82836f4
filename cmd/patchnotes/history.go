package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHistoryCmd() *cobra.Command {
	var (
		limit   int
		release string
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List generated patch pages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			return withDeps(ctx, func(d *Deps) error {
				patches, err := d.HistoryHandler.Handle(ctx, release, limit)
				if err != nil {
					return err
				}
				if len(patches) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No patches generated yet.")
					return nil
				}
				printHistory(cmd.OutOrStdout(), patches)
				return nil
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", DefaultHistoryLimit, "Maximum number of patches to display")
	cmd.Flags().StringVarP(&release, "release", "r", "", "Only show this release ID")

	return cmd
}
