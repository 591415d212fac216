package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/nwgo/internal/calculation"
	"github.com/rgehrsitz/nwgo/internal/compare"
	"github.com/rgehrsitz/nwgo/internal/config"
	"github.com/rgehrsitz/nwgo/internal/transform"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [input-file]",
		Short: "Compare the household plan against what-if scenarios",
		Long: `Compare the household plan against alternative scenarios.

Examples:
  nwgo compare household.yaml --with frugal,bear_market
  nwgo compare household.yaml --transform end_job:company=Acme,date=2040-06 --transform adjust_returns:delta=-1
  nwgo compare household.yaml --with max_401k --format csv
  nwgo compare --list-templates
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if list, _ := cmd.Flags().GetBool("list-templates"); list {
				fmt.Fprint(cmd.OutOrStdout(), transform.GetTemplateHelp(transform.CreateBuiltInTemplates(), transform.NewTransformRegistry()))
				return nil
			}

			if len(args) == 0 {
				return fmt.Errorf("input file required for comparison (use --list-templates to see available templates)")
			}
			inputFile := args[0]

			with, _ := cmd.Flags().GetString("with")
			specs, _ := cmd.Flags().GetStringArray("transform")
			templates := transform.ParseTemplateList(with)
			if len(templates) == 0 && len(specs) == 0 {
				return fmt.Errorf("--with or --transform is required (use --list-templates to see available templates)")
			}

			debugMode, _ := cmd.Flags().GetBool("debug")
			logger, err := newLogger(debugMode)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			parser := config.NewInputParser()
			params, err := parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}
			if years, _ := cmd.Flags().GetInt("years"); years > 0 {
				params.DurationYears = years
				if err := parser.ValidateConfiguration(params); err != nil {
					return err
				}
			}

			sim := calculation.NewSimulator()
			sim.SetLogger(logger.Sugar())
			if tablesFile, _ := cmd.Flags().GetString("tax-tables"); tablesFile != "" {
				tables, err := parser.LoadTaxTables(tablesFile)
				if err != nil {
					return err
				}
				sim.TaxTables = tables
			}
			if cont, _ := cmd.Flags().GetBool("continue-on-bankruptcy"); cont {
				sim.HaltOnBankruptcy = false
			}

			compSet, err := compare.NewCompareEngine(sim).Compare(cmd.Context(), *params, compare.CompareOptions{
				Templates:  templates,
				Transforms: specs,
				ConfigPath: inputFile,
			})
			if err != nil {
				return err
			}
			logger.Debug("comparison finished",
				zap.String("input", inputFile),
				zap.Int("scenarios", len(compSet.AlternativeResults)),
			)

			format, _ := cmd.Flags().GetString("format")
			rendered, err := compare.FormatComparison(compSet, format)
			if err != nil {
				return err
			}

			outputFile, _ := cmd.Flags().GetString("output")
			if outputFile == "" {
				fmt.Fprintln(cmd.OutOrStdout(), rendered)
				return nil
			}
			if err := os.WriteFile(outputFile, []byte(rendered+"\n"), 0o644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outputFile, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Comparison written to %s\n", outputFile)
			return nil
		},
	}

	cmd.Flags().String("with", "", "Comma-separated list of templates to compare")
	cmd.Flags().StringArray("transform", nil, "Transform spec name:key=value,... (repeatable, combined into one scenario)")
	cmd.Flags().StringP("format", "f", "table", "Output format (table, csv, json)")
	cmd.Flags().StringP("output", "o", "", "Write output to this file instead of stdout")
	cmd.Flags().String("tax-tables", "", "YAML file overriding the built-in base-year tax tables")
	cmd.Flags().Int("years", 0, "Override duration_years from the input file")
	cmd.Flags().Bool("continue-on-bankruptcy", false, "Keep simulating after the first bankrupt month")
	cmd.Flags().Bool("list-templates", false, "List all available scenario templates and transforms")
	cmd.Flags().Bool("debug", false, "Enable debug logging")
	return cmd
}
