package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rgehrsitz/nwgo/internal/calculation"
	"github.com/rgehrsitz/nwgo/internal/config"
	"github.com/rgehrsitz/nwgo/internal/domain"
	"github.com/rgehrsitz/nwgo/internal/output"
)

func validateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate [input-file]",
		Short: "Validate a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			inputFile := args[0]

			parser := config.NewInputParser()
			params, err := parser.LoadFromFile(inputFile)
			if err != nil {
				return err
			}

			var tables domain.TaxTables
			if tablesFile, _ := cmd.Flags().GetString("tax-tables"); tablesFile != "" {
				if tables, err = parser.LoadTaxTables(tablesFile); err != nil {
					return err
				}
			}
			// catches cross-references the file-level checks cannot see
			if _, err := calculation.NewModel(*params, tables); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file %s is valid\n", inputFile)
			return nil
		},
	}
	cmd.Flags().String("tax-tables", "", "YAML file overriding the built-in base-year tax tables")
	return cmd
}

func exampleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "example",
		Short: "Print an example configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			outputFile, _ := cmd.Flags().GetString("output")
			if outputFile == "" {
				return config.WriteExampleConfiguration(cmd.OutOrStdout())
			}

			file, err := os.Create(outputFile)
			if err != nil {
				return fmt.Errorf("failed to create %s: %w", outputFile, err)
			}
			defer file.Close()
			if err := config.WriteExampleConfiguration(file); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", outputFile)
			return nil
		},
	}
	cmd.Flags().StringP("output", "o", "", "Write the example to this file instead of stdout")
	return cmd
}

func formatsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "formats",
		Short: "List output formats and their aliases",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Formats: %s\n", strings.Join(output.AvailableFormatterNames(), ", "))
			var aliases []string
			for _, a := range output.AvailableFormatAliases() {
				aliases = append(aliases, a+"="+output.NormalizeFormatName(a))
			}
			fmt.Fprintf(out, "Aliases: %s\n", strings.Join(aliases, ", "))
		},
	}
}
