package writer

import (
	"encoding/csv"
	"fmt"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"rmachado/extrato-xlsx/internal/fileutils"
	"rmachado/extrato-xlsx/internal/logging"
	"rmachado/extrato-xlsx/internal/models"
)

// WriteCSV writes the records to a CSV file with the given delimiter,
// header included, columns in record field order.
func WriteCSV(records []models.Record, path string, delimiter rune) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records")
	}
	if delimiter == 0 {
		delimiter = ','
	}

	if err := fileutils.EnsureDirectoryExists(filepath.Dir(path)); err != nil {
		return err
	}

	file, err := fileutils.CreateFile(path)
	if err != nil {
		return err
	}
	defer func() {
		if err := file.Close(); err != nil {
			log.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: path})
		}
	}()

	csvWriter := csv.NewWriter(file)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(&records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}

	log.Info("Wrote records to CSV file",
		logging.Field{Key: logging.FieldOutputFile, Value: path},
		logging.Field{Key: logging.FieldCount, Value: len(records)},
		logging.Field{Key: logging.FieldDelimiter, Value: string(delimiter)})
	return nil
}
