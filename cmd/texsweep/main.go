// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the texsweep CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command for the texsweep CLI.
var rootCmd = &cobra.Command{
	Use:   "texsweep",
	Short: "Find unreferenced labels and numbered equations in LaTeX documents",
	Long: `texsweep scans a LaTeX document for cross-reference hygiene before
publication. It reports every \label that is never cited and every numbered
equation environment that is never cited, either directly or through a label
declared inside it. Starred environments carry no number and are ignored.

The scan subcommand writes a report next to the input file and prints a
summary; history lists past scan outcomes recorded per document.`,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./texsweep.yaml or ~/.config/texsweep/config.yaml)")
}

func initConfig() {
	home, homeErr := os.UserHomeDir()

	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("texsweep")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if homeErr == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "texsweep"))
		}
	}

	viper.SetDefault("report.format", "text")
	if homeErr == nil {
		viper.SetDefault("history.dir", filepath.Join(home, ".texsweep"))
	} else {
		viper.SetDefault("history.dir", ".texsweep")
	}
	viper.SetDefault("history.max_results", 20)

	viper.SetEnvPrefix("TEXSWEEP")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
