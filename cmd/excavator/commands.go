// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package main

import (
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	dataPath     string
	outputDir    string
	exportFormat string
	searchTerm   string
	manufacturer string
	runValidate  bool
	runStats     bool
	runVisualize bool
	runAPI       bool
	apiPort      int
	configPath   string
	logDir       string
	verbose      bool

	rootCmd = &cobra.Command{
		Use:   "excavator",
		Short: "Excavator pin dimensions database toolkit",
		Long: `Excavator loads a pin dimensions dataset (CSV or Excel) and runs
validation, statistics, search, multi-format export, chart generation,
and a JSON query API over it.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRoot,
	}
)

func init() {
	flags := rootCmd.Flags()

	flags.StringVarP(&dataPath, "data", "d", "", "path to the dataset file (.csv, .xlsx, .xls)")
	flags.StringVarP(&outputDir, "output", "o", "./output", "directory for exports and charts")
	flags.StringVarP(&exportFormat, "format", "f", "csv", "export format: csv, excel, json, xml, pdf, sqlite, or all")
	flags.StringVarP(&searchTerm, "search", "s", "", "filter results by model substring")
	flags.StringVarP(&manufacturer, "manufacturer", "m", "", "filter results by manufacturer substring")
	flags.BoolVar(&runValidate, "validate", false, "print a data quality report")
	flags.BoolVar(&runStats, "stats", false, "print dataset statistics")
	flags.BoolVar(&runVisualize, "visualize", false, "render distribution charts as PNG files")
	flags.BoolVar(&runAPI, "api", false, "start the query API server (blocks)")
	flags.IntVar(&apiPort, "port", 5000, "query API listen port")
	flags.StringVar(&configPath, "config", "", "path to a YAML config file")
	flags.StringVar(&logDir, "log-dir", "", "directory for log files (disabled when empty)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	_ = rootCmd.MarkFlagRequired("data")
}
