package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rpgo/runway-calculator/internal/calculation"
	"github.com/rpgo/runway-calculator/internal/config"
	"github.com/rpgo/runway-calculator/internal/domain"
	"github.com/rpgo/runway-calculator/internal/output"
)

const calculateExample = `  runway calculate -i household.yaml
  runway calculate -i household.toml -f json -o report.json
  runway calculate -i household.yaml -s "High Inflation" --debug
  runway calculate -i household.yaml -f all --report-dir reports/`

type calculateOptions struct {
	input     string
	format    string
	output    string
	reportDir string
	scenario  string
	debug     bool
}

func newCalculateCmd() *cobra.Command {
	opts := &calculateOptions{}
	cmd := &cobra.Command{
		Use:     "calculate",
		Short:   "Run the runway projection for every scenario in an input file",
		Example: calculateExample,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCalculate(cmd, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.input, "input", "i", "", "Input file (YAML, TOML or JSON)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "console", "Output format (see 'runway formats')")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "Write the report to this file instead of stdout")
	cmd.Flags().StringVar(&opts.reportDir, "report-dir", "", "Write timestamped report files to this directory (accepts -f all)")
	cmd.Flags().StringVarP(&opts.scenario, "scenario", "s", "", "Run only the named scenario")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Log every simulated year to stderr")
	_ = cmd.MarkFlagRequired("input")
	cmd.MarkFlagsMutuallyExclusive("output", "report-dir")
	return cmd
}

func runCalculate(cmd *cobra.Command, opts *calculateOptions) error {
	var formatter output.Formatter
	if opts.reportDir == "" {
		f, err := output.LookupFormatter(opts.format)
		if err != nil {
			return err
		}
		formatter = f
	}

	cfg, err := config.NewInputParser().LoadFromFile(opts.input)
	if err != nil {
		return err
	}
	if opts.scenario != "" {
		if err := selectScenario(cfg, opts.scenario); err != nil {
			return err
		}
	}

	engine := calculation.NewRunwayEngine()
	engine.Debug = opts.debug
	engine.SetLogger(engineLogger(cmd, opts.debug))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	results, err := engine.RunScenarios(ctx, cfg)
	if err != nil {
		return fmt.Errorf("projection failed: %w", err)
	}

	if opts.reportDir != "" {
		if err := os.MkdirAll(opts.reportDir, 0o755); err != nil {
			return fmt.Errorf("failed to create report directory: %w", err)
		}
		files, err := output.GenerateReport(results, opts.reportDir, opts.format)
		if err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		for _, name := range files {
			fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", name)
		}
		return nil
	}

	if opts.output != "" {
		if err := output.WriteFormattedTo(formatter, results, opts.output); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Report written to %s\n", opts.output)
		return nil
	}
	data, err := formatter.Format(results)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}

// selectScenario narrows cfg to the scenario with the given name.
func selectScenario(cfg *domain.Configuration, name string) error {
	for _, sc := range cfg.EffectiveScenarios() {
		if sc.Name == name {
			cfg.Scenarios = []domain.Scenario{sc}
			return nil
		}
	}
	return fmt.Errorf("scenario %q not found (have: %s)", name, strings.Join(scenarioNames(cfg), ", "))
}

func scenarioNames(cfg *domain.Configuration) []string {
	var names []string
	for _, sc := range cfg.EffectiveScenarios() {
		names = append(names, sc.Name)
	}
	return names
}

