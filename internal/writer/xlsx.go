// Package writer persists extracted records. It is the only package that
// knows about output file formats; parsers hand it the final ordered record
// list and nothing else.
package writer

import (
	"fmt"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"rmachado/extrato-xlsx/internal/fileutils"
	"rmachado/extrato-xlsx/internal/logging"
	"rmachado/extrato-xlsx/internal/models"
)

// DefaultSheet is the worksheet name used when none is configured.
const DefaultSheet = "extrato"

var log = logging.GetLogger()

// SetLogger injects a configured logger for this package.
func SetLogger(logger logging.Logger) {
	if logger != nil {
		log = logger
	}
}

// WriteXLSX writes the records to an XLSX workbook with a single sheet: a
// header row followed by one row per record, columns in record field order.
func WriteXLSX(records []models.Record, path, sheet string) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records")
	}
	if sheet == "" {
		sheet = DefaultSheet
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("Failed to close workbook")
		}
	}()

	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return fmt.Errorf("error naming sheet: %w", err)
	}

	header := toInterfaces(models.Headers())
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("error writing header row: %w", err)
	}

	for i, rec := range records {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("error addressing row %d: %w", i+2, err)
		}
		row := toInterfaces(rec.Row())
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("error writing row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("error saving workbook: %w", err)
	}

	log.Info("Wrote records to XLSX file",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return nil
}

func toInterfaces(values []string) []interface{} {
	out := make([]interface{}, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}
