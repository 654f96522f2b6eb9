// Package common contains shared functionality for command handlers
package common

import (
	"github.com/spf13/cobra"

	"rmachado/extrato-xlsx/cmd/root"
	"rmachado/extrato-xlsx/internal/logging"
	"rmachado/extrato-xlsx/internal/models"
	"rmachado/extrato-xlsx/internal/parser"
	"rmachado/extrato-xlsx/internal/pdfext"
	"rmachado/extrato-xlsx/internal/writer"
)

// BuildOptions merges configuration with command-line flags. Flags that
// were set on the command line win over the config file.
func BuildOptions(cmd *cobra.Command) parser.Options {
	opts := parser.Options{
		Column:     root.Column,
		Rules:      root.Rules(cmd),
		Tolerances: pdfext.DefaultTolerances(),
	}

	if cfg := root.Cfg; cfg != nil {
		opts.Delimiter = []rune(cfg.CSV.Delimiter)[0]
		opts.KeepAllLines = cfg.Heuristics.KeepAllLines
		opts.TableMode = cfg.PDF.TableMode
		opts.Tolerances = pdfext.ToleranceProfile{
			Snap: cfg.PDF.Tolerances.Snap,
			Join: cfg.PDF.Tolerances.Join,
		}
	}

	if cmd.Flags().Changed("keep-all-lines") {
		opts.KeepAllLines = root.KeepAllLines
	}
	if cmd.Flags().Changed("table-mode") {
		opts.TableMode = root.TableMode
	}

	return opts
}

// OutputExtension returns the file extension for the selected output format.
func OutputExtension() string {
	if root.SharedFlags.Format == "csv" {
		return ".csv"
	}
	return ".xlsx"
}

// ProcessFile parses a single statement file and writes the recognized
// records to outputFile. A source with no recognizable transaction lines
// is not an error: it is reported and no file is written.
func ProcessFile(inputFile, outputFile string, opts parser.Options, log logging.Logger) error {
	p, err := parser.ForFile(inputFile, opts)
	if err != nil {
		return err
	}
	p.SetLogger(log)

	records, err := p.ParseFile(inputFile)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		log.Warn("No transaction lines recognized; no output written",
			logging.Field{Key: logging.FieldInputFile, Value: inputFile})
		return nil
	}

	return WriteRecords(records, outputFile)
}

// WriteRecords persists records in the format selected by the --format flag,
// honoring the configured CSV delimiter and XLSX sheet name.
func WriteRecords(records []models.Record, outputFile string) error {
	if root.SharedFlags.Format == "csv" {
		var delimiter rune = ','
		if root.Cfg != nil {
			delimiter = []rune(root.Cfg.CSV.Delimiter)[0]
		}
		return writer.WriteCSV(records, outputFile, delimiter)
	}

	sheet := writer.DefaultSheet
	if root.Cfg != nil && root.Cfg.XLSX.Sheet != "" {
		sheet = root.Cfg.XLSX.Sheet
	}
	return writer.WriteXLSX(records, outputFile, sheet)
}
