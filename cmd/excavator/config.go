// Copyright (C) 2025 Excavator Database Project
// Use of this source code is governed by the MIT license
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// fileConfig holds the YAML config file schema. Every field is optional;
// a flag passed on the command line always wins over the file value.
type fileConfig struct {
	OutputDir string `yaml:"output_dir"`
	Format    string `yaml:"format"`
	APIPort   int    `yaml:"api_port"`
	LogDir    string `yaml:"log_dir"`
	LogLevel  string `yaml:"log_level"`
}

// applyFileConfig loads the YAML file at path, if given, and fills in any
// settings whose flags were left at their defaults.
func applyFileConfig(cmd *cobra.Command, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	var cfg fileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}

	flags := cmd.Flags()
	if cfg.OutputDir != "" && !flags.Changed("output") {
		outputDir = cfg.OutputDir
	}
	if cfg.Format != "" && !flags.Changed("format") {
		exportFormat = cfg.Format
	}
	if cfg.APIPort != 0 && !flags.Changed("port") {
		apiPort = cfg.APIPort
	}
	if cfg.LogDir != "" && !flags.Changed("log-dir") {
		logDir = cfg.LogDir
	}
	if cfg.LogLevel == "debug" && !flags.Changed("verbose") {
		verbose = true
	}
	return nil
}
