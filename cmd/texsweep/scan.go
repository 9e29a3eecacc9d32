// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/texsweep/internal/history"
	"github.com/pdiddy/texsweep/internal/report"
	"github.com/pdiddy/texsweep/internal/scan"
	"github.com/pdiddy/texsweep/pkg/types"
)

var scanCmd = &cobra.Command{
	Use:   "scan <file.tex>",
	Short: "Scan a LaTeX document for unreferenced labels and equations",
	Long: `Scan reads one LaTeX file, finds every \label never targeted by a
reference command (\ref, \eqref, \cref, \Cref, \autoref, \nameref, \pageref
and their starred forms) and every numbered equation environment never cited,
and writes a report next to the input file. Starred environments such as
equation* are unnumbered and never reported.`,
	Args: cobra.ExactArgs(1),
	RunE: runScan,
}

func init() {
	scanCmd.Flags().String("format", "", "report format: text, yaml, or json")
	scanCmd.Flags().String("output", "", "report file path (default: input path with the format's extension)")
	scanCmd.Flags().Bool("stdout", false, "print the report to stdout instead of writing a file")
	scanCmd.Flags().Bool("no-history", false, "do not record this scan in the history database")

	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	path := args[0]
	if !strings.EqualFold(filepath.Ext(path), ".tex") {
		fmt.Fprintln(os.Stderr, "Warning: input file does not have a .tex extension.")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading document %s: %w", path, err)
	}

	analysis := scan.Analyze(path, string(data))

	cfg := reportConfig(cmd)
	if cfg.Stdout {
		rendered, err := report.Render(analysis, cfg.Format)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(rendered))
	} else {
		outPath, err := report.Write(analysis, cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Processed: %s\n", path)
		fmt.Fprintf(cmd.OutOrStdout(), "Output written to: %s\n", outPath)
	}

	report.Summarize(analysis, cmd.OutOrStdout())

	// History is bookkeeping; a broken store must not hide scan results.
	if noHistory, _ := cmd.Flags().GetBool("no-history"); !noHistory && !viper.GetBool("history.disabled") {
		if err := recordRun(cmd, analysis); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record scan history: %v\n", err)
		}
	}

	return nil
}

func recordRun(cmd *cobra.Command, analysis *types.Analysis) error {
	store, err := history.NewStore(historyConfig())
	if err != nil {
		return err
	}
	defer store.Close()
	return store.Record(cmd.Context(), analysis)
}

func reportConfig(cmd *cobra.Command) types.ReportConfig {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = viper.GetString("report.format")
	}
	output, _ := cmd.Flags().GetString("output")
	stdout, _ := cmd.Flags().GetBool("stdout")

	return types.ReportConfig{
		Format:     types.OutputFormat(format),
		OutputPath: output,
		Stdout:     stdout,
	}
}

func historyConfig() types.HistoryConfig {
	return types.HistoryConfig{
		Dir:        viper.GetString("history.dir"),
		MaxResults: viper.GetInt("history.max_results"),
		Disabled:   viper.GetBool("history.disabled"),
	}
}
