// Package batch handles batch processing of statement files
package batch

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"rmachado/extrato-xlsx/cmd/common"
	"rmachado/extrato-xlsx/cmd/root"
	"rmachado/extrato-xlsx/internal/fileutils"
	"rmachado/extrato-xlsx/internal/logging"
)

// Cmd represents the batch command
var Cmd = &cobra.Command{
	Use:   "batch",
	Short: "Batch process statement files from a directory",
	Long: `Batch process every supported statement file (.txt, .csv, .pdf) in an
input directory and write one spreadsheet per file to the output directory.

For batch, -i/-o refer to directories. CSV inputs are skipped unless a
column name is configured with --col.

Example:
  extrato-xlsx batch -i extratos/ -o processados/`,
	Run: batchFunc,
}

func batchFunc(cmd *cobra.Command, args []string) {
	root.Log.Info("Batch command called")
	logger := root.GetLogrusAdapter()

	inputDir := root.SharedFlags.Input
	outputDir := root.SharedFlags.Output
	if inputDir == "" || outputDir == "" {
		logger.Fatal("Input and output directories must be specified")
	}

	if err := fileutils.EnsureDirectoryExists(outputDir); err != nil {
		logger.Fatalf("Failed to create output directory: %v", err)
	}

	files, err := fileutils.ListFilesWithExtensions(inputDir, ".txt", ".csv", ".pdf")
	if err != nil {
		logger.Fatalf("Error listing input directory: %v", err)
	}
	if len(files) == 0 {
		logger.Warn("No supported files found in input directory",
			logging.Field{Key: logging.FieldInputFile, Value: inputDir})
		return
	}

	logger.Info("Found files for processing",
		logging.Field{Key: logging.FieldCount, Value: len(files)})

	opts := common.BuildOptions(cmd)

	converted := 0
	for _, file := range files {
		if strings.ToLower(filepath.Ext(file)) == ".csv" && opts.Column == "" {
			logger.Warn("Skipping CSV file: no column name configured",
				logging.Field{Key: logging.FieldInputFile, Value: file})
			continue
		}

		name := fileutils.ReplaceExtension(filepath.Base(file), "_processado", common.OutputExtension())
		output := filepath.Join(outputDir, name)

		if err := common.ProcessFile(file, output, opts, logger); err != nil {
			logger.WithError(err).Error("Failed to convert file",
				logging.Field{Key: logging.FieldInputFile, Value: file})
			continue
		}
		converted++
	}

	root.Log.Info(fmt.Sprintf("Batch processing completed. %d of %d files converted.", converted, len(files)))
}
