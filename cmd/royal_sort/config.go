package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/pkg/config/env"
)

const (
	FormatLines = "lines"
	FormatYAML  = "yaml"
)

// AppConfig drives the CLI: where records come from, which format they are
// in, and where the sorted output goes. Empty paths mean stdin/stdout.
type AppConfig struct {
	InputPath   string
	InputFormat string
	OutputPath  string
}

func LoadConfig() (*AppConfig, error) {
	err := env.LoadDotEnv(os.Getenv("ENV"), "cmd/royal_sort/.env")
	if err != nil {
		slog.Info("Skipping .env ...", "error", err)
	}

	format := os.Getenv("INPUT_FORMAT")
	if format == "" {
		format = FormatLines
	}
	if format != FormatLines && format != FormatYAML {
		return nil, fmt.Errorf("unsupported input format %q, expected %q or %q", format, FormatLines, FormatYAML)
	}

	return &AppConfig{
		InputPath:   os.Getenv("INPUT_PATH"),
		InputFormat: format,
		OutputPath:  os.Getenv("OUTPUT_PATH"),
	}, nil
}
