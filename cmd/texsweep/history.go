// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/texsweep/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history [document]",
	Short: "List recorded scan runs",
	Long: `History lists past scan outcomes from the history database, newest
first. With a document argument, only runs of that document are shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().Int("limit", 0, "maximum number of runs to list (default from config)")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	document := ""
	if len(args) == 1 {
		document = args[0]
	}
	limit, _ := cmd.Flags().GetInt("limit")

	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()

	runs, err := store.Recent(cmd.Context(), document, limit)
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No recorded scans.")
		return nil
	}

	for _, run := range runs {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  labels %d/%d unreferenced, equations %d/%d unreferenced\n",
			run.ScannedAt.Local().Format("2006-01-02 15:04:05"),
			run.Document,
			run.UnreferencedAnchors, run.Anchors,
			run.UnreferencedEquations, run.Equations)
		if len(run.AnchorNames) > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), "    %s\n", strings.Join(run.AnchorNames, ", "))
		}
	}

	return nil
}
