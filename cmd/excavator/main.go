// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

// Command excavator loads the excavator pin dimensions dataset and runs
// validation, statistics, search, export, chart generation, and the query
// API from one entry point.
//
// Usage:
//
//	excavator --data excavator_data.csv --stats
//	excavator --data excavator_data.csv --format all --output ./output
//	excavator --data excavator_data.csv --search 320 --manufacturer cat
//	excavator --data excavator_data.csv --api --port 5000
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
