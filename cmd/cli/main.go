package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"dashgen/app"
	"dashgen/internal/config"
	"dashgen/internal/ingest"
	"dashgen/internal/insight"
	"dashgen/internal/logging"
	"dashgen/internal/memory"
)

// cliCacheSize keeps the analysis cache small; a CLI run analyzes one file.
const cliCacheSize = 8

func main() {
	root := &cobra.Command{
		Use:   "dashgen",
		Short: "Analyze tabular data and produce a dashboard generation plan",
		Long: `dashgen inspects a CSV, JSON, or XLSX file, infers its column types,
and produces an analytical plan: KPI and chart recommendations, dashboard
structure, data quality notes, and a ready-to-use instruction block.`,
		SilenceUsage: true,
	}

	root.AddCommand(newAnalyzeCommand())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newAnalyzeCommand() *cobra.Command {
	var (
		userPrompt string
		asJSON     bool
	)

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a data file and print the generation plan",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), args[0], userPrompt, asJSON)
		},
	}

	cmd.Flags().StringVarP(&userPrompt, "prompt", "p", "", "describe what the dashboard should focus on")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full result as JSON instead of the instruction text")
	return cmd
}

// runAnalyze runs the pipeline without a database. The memory layer degrades
// to zero retrieved patterns when it has no repository behind it.
func runAnalyze(ctx context.Context, path, userPrompt string, asJSON bool) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	logger := logging.NewFromEnv("CLI")
	mem := memory.NewService(nil, config.DefaultMemoryConfig(), logger)
	engine := insight.NewEngine(logger)
	ingestor := ingest.NewIngestor(logger)

	service, err := app.NewGenerationService(ingestor, engine, mem, cliCacheSize, logger)
	if err != nil {
		return err
	}

	result, err := service.Generate(ctx, app.Upload{
		Filename: filepath.Base(path),
		Content:  content,
	}, userPrompt)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	fmt.Println(result.Instruction.Text)
	return nil
}
