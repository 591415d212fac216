package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rgehrsitz/nwgo/internal/calculation"
	"github.com/rgehrsitz/nwgo/internal/config"
	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/internal/output"
)

func simulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate [input-file]",
		Short: "Run a net worth forecast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, _ := cmd.Flags().GetString("format")
			f := output.GetFormatterByName(format)
			if f == nil {
				return fmt.Errorf("unsupported format %q (available: %s)", format, strings.Join(output.AvailableFormatterNames(), ", "))
			}

			debugMode, _ := cmd.Flags().GetBool("debug")
			logger, err := newLogger(debugMode)
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
			defer func() { _ = logger.Sync() }()

			parser := config.NewInputParser()
			params, err := parser.LoadFromFile(args[0])
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

			forecast, err := sim.Run(cmd.Context(), *params)
			if err != nil {
				return err
			}
			logger.Debug("simulation finished",
				zap.String("input", args[0]),
				zap.Int("months", len(forecast.Months)),
				zap.Bool("bankrupt", forecast.Bankrupt),
			)

			outputFile, _ := cmd.Flags().GetString("output")
			return writeForecast(cmd.OutOrStdout(), outputFile, f, forecast)
		},
	}

	cmd.Flags().StringP("format", "f", "console", "Output format: "+strings.Join(output.AvailableFormatterNames(), ", "))
	cmd.Flags().StringP("output", "o", "", "Write output to this file instead of stdout")
	cmd.Flags().String("tax-tables", "", "YAML file overriding the built-in base-year tax tables")
	cmd.Flags().Int("years", 0, "Override duration_years from the input file")
	cmd.Flags().Bool("continue-on-bankruptcy", false, "Keep simulating after the first bankrupt month")
	cmd.Flags().Bool("debug", false, "Enable debug logging")
	return cmd
}

func writeForecast(stdout io.Writer, outputFile string, f output.Formatter, forecast *domain.Forecast) error {
	if outputFile == "" {
		return output.WriteFormatted(stdout, f, forecast)
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", outputFile, err)
	}
	if err := output.WriteFormatted(file, f, forecast); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "Forecast written to %s\n", outputFile)
	return nil
}
