// Package convert handles single-file statement conversion
package convert

import (
	"github.com/spf13/cobra"

	"rmachado/extrato-xlsx/cmd/common"
	"rmachado/extrato-xlsx/cmd/root"
	"rmachado/extrato-xlsx/internal/fileutils"
	"rmachado/extrato-xlsx/internal/logging"
)

// Cmd represents the convert command
var Cmd = &cobra.Command{
	Use:   "convert",
	Short: "Convert a bank statement file to XLSX or CSV",
	Long: `Convert a single bank statement file (.txt, .csv or .pdf) into a
spreadsheet with one row per recognized transaction line.

Example:
  extrato-xlsx convert -i extrato.pdf
  extrato-xlsx convert -i extrato.csv --col historico -o saida.xlsx`,
	Run: convertFunc,
}

func convertFunc(cmd *cobra.Command, args []string) {
	logger := root.GetLogrusAdapter()

	input := root.SharedFlags.Input
	if input == "" {
		logger.Fatal("Input file must be specified")
	}
	if !fileutils.FileExists(input) {
		logger.Fatal("Input file does not exist",
			logging.Field{Key: logging.FieldInputFile, Value: input})
	}

	output := root.SharedFlags.Output
	if output == "" {
		output = fileutils.ReplaceExtension(input, "_processado", common.OutputExtension())
	}

	opts := common.BuildOptions(cmd)
	if err := common.ProcessFile(input, output, opts, logger); err != nil {
		logger.Fatalf("Error processing %s: %v", input, err)
	}
}
