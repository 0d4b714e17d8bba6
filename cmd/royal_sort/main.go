package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/internal/reader"
	"github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/internal/roman"
	"github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/internal/sorter"
	"github.com/Thomas-M-Krystyan/LeetCode-RoyalNamesSorter/internal/writer"
	"github.com/google/uuid"
)

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	runID := uuid.New()
	slog.Info("Starting sort run", "runId", runID, "format", cfg.InputFormat)

	if err := run(cfg); err != nil {
		slog.Error("Sort run failed", "runId", runID, "error", err)
		os.Exit(1)
	}

	slog.Info("Sort run finished", "runId", runID)
}

func run(cfg *AppConfig) error {
	records, err := readRecords(cfg)
	if err != nil {
		return err
	}

	converter := roman.NewConverter()
	sorted, err := sorter.New(converter).Sort(records)
	if err != nil {
		return err
	}

	return writeRecords(cfg, sorted)
}

func readRecords(cfg *AppConfig) ([]string, error) {
	input := os.Stdin
	if cfg.InputPath != "" {
		file, err := os.Open(cfg.InputPath)
		if err != nil {
			return nil, fmt.Errorf("open input: %w", err)
		}
		defer file.Close()
		input = file
	}

	if cfg.InputFormat == FormatYAML {
		dataset, err := reader.NewYAMLDatasetLoader(input).Load(true)
		if err != nil {
			return nil, err
		}
		slog.Info("Loaded dataset", "name", dataset.Metadata.Name, "records", len(dataset.Names))
		return dataset.Names, nil
	}

	return reader.NewLineReader(input).Read()
}

func writeRecords(cfg *AppConfig, records []string) error {
	output := os.Stdout
	if cfg.OutputPath != "" {
		file, err := os.Create(cfg.OutputPath)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		output = file
	}

	return writer.NewLineWriter(output).Write(records)
}
