// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gitdot5/excavator-pin-dimensions/pkg/logging"
	"github.com/gitdot5/excavator-pin-dimensions/services/api"
	"github.com/gitdot5/excavator-pin-dimensions/services/dataset"
	"github.com/gitdot5/excavator-pin-dimensions/services/dataset/export"
)

// runRoot executes the requested pipeline stages in a fixed order:
// validate, statistics, search, exports, charts, API server. A dataset
// that cannot be loaded aborts the run before any stage.
func runRoot(cmd *cobra.Command, args []string) error {
	if err := applyFileConfig(cmd, configPath); err != nil {
		return err
	}

	logger := newLogger()
	defer logger.Close()

	store := dataset.NewStore(logger)
	if err := store.Load(dataPath); err != nil {
		return fmt.Errorf("no data loaded from %s: %w", dataPath, err)
	}
	table := store.Table()
	fmt.Printf("Loaded %d records from %s\n", table.NumRows(), dataPath)

	if runValidate {
		fmt.Println("Validating data...")
		report, err := dataset.Validate(table)
		if err != nil {
			return fmt.Errorf("validate: %w", err)
		}
		printJSON(report)
	}

	if runStats {
		fmt.Println("Database Statistics:")
		stats, err := dataset.ComputeStatistics(table)
		if err != nil {
			return fmt.Errorf("statistics: %w", err)
		}
		printJSON(stats)
	}

	if searchTerm != "" || manufacturer != "" {
		fmt.Println("Searching database...")
		results := dataset.Search(table, dataset.Criteria{
			Manufacturer: manufacturer,
			Model:        searchTerm,
		})
		fmt.Printf("Found %d results\n", results.NumRows())
		printSearchResults(results)
	}

	if err := runExports(logger, table); err != nil {
		return err
	}

	if runVisualize {
		fmt.Println("Generating visualizations...")
		charts := export.NewChartGenerator(logger)
		files, err := charts.Generate(table, outputDir)
		if err != nil {
			return fmt.Errorf("visualize: %w", err)
		}
		for _, file := range files {
			fmt.Println("  wrote", file)
		}
	}

	if runAPI {
		fmt.Printf("Starting API server on port %d...\n", apiPort)
		server := api.NewServer(store, logger, api.Config{Port: apiPort})
		return server.Run()
	}

	return nil
}

// runExports writes the selected format, or every format for "all". A
// single failed format fails the run after logging it.
func runExports(logger *logging.Logger, table *dataset.Table) error {
	registry := export.NewRegistry(logger)

	formats := []export.Format{}
	if exportFormat == "all" {
		formats = export.Formats()
	} else {
		f, err := export.ParseFormat(exportFormat)
		if err != nil {
			return err
		}
		formats = append(formats, f)
	}

	for _, f := range formats {
		fmt.Printf("Exporting to %s...\n", f)
		path, err := registry.Export(f, table, outputDir)
		if err != nil {
			return fmt.Errorf("export %s: %w", f, err)
		}
		fmt.Println("  wrote", path)
	}
	return nil
}

// printSearchResults prints up to the first ten matches in a compact
// manufacturer/model/diameter listing.
func printSearchResults(results *dataset.Table) {
	const maxShown = 10

	head := results.Head(maxShown)
	for i := 0; i < head.NumRows(); i++ {
		fmt.Printf("  %-20s %-15s %s\n",
			head.Cell(i, dataset.ColumnManufacturer).String(),
			head.Cell(i, dataset.ColumnModel).String(),
			head.Cell(i, dataset.ColumnStickPinDiamMM).String())
	}
	if results.NumRows() > maxShown {
		fmt.Printf("  ... and %d more\n", results.NumRows()-maxShown)
	}
}

func newLogger() *logging.Logger {
	level := logging.LevelInfo
	if verbose {
		level = logging.LevelDebug
	}
	return logging.New(logging.Config{
		Level:   level,
		LogDir:  logDir,
		Service: "excavator",
	})
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error encoding JSON:", err)
		return
	}
	fmt.Println(string(data))
}
