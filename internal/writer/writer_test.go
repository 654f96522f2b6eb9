package writer_test

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"rmachado/extrato-xlsx/internal/models"
	"rmachado/extrato-xlsx/internal/writer"
)

func sampleRecords() []models.Record {
	return []models.Record{
		{
			Date:         "10/01/2024",
			Description:  "PIX RECEBIDO",
			Amount:       "100,00",
			Balance:      "1.500,00",
			OriginalLine: "10/01/2024 PIX RECEBIDO 100,00 1.500,00",
		},
		{
			Description:  "TARIFA MENSAL 25,00",
			Balance:      "25,00",
			OriginalLine: "TARIFA MENSAL 25,00",
		},
	}
}

func TestWriteXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "extrato.xlsx")

	require.NoError(t, writer.WriteXLSX(sampleRecords(), path, "extrato"))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	rows, err := f.GetRows("extrato")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, models.Headers(), rows[0])
	assert.Equal(t, []string{
		"10/01/2024", "PIX RECEBIDO", "100,00", "1.500,00",
		"10/01/2024 PIX RECEBIDO 100,00 1.500,00",
	}, rows[1])

	// Empty trailing cells may be trimmed by the reader; the stated cells
	// must still line up with their columns.
	val, err := f.GetCellValue("extrato", "B3")
	require.NoError(t, err)
	assert.Equal(t, "TARIFA MENSAL 25,00", val)
	val, err = f.GetCellValue("extrato", "D3")
	require.NoError(t, err)
	assert.Equal(t, "25,00", val)
	val, err = f.GetCellValue("extrato", "A3")
	require.NoError(t, err)
	assert.Equal(t, "", val)
}

func TestWriteXLSXDefaultSheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extrato.xlsx")

	require.NoError(t, writer.WriteXLSX(sampleRecords(), path, ""))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, f.Close())
	}()

	assert.Equal(t, []string{writer.DefaultSheet}, f.GetSheetList())
}

func TestWriteXLSXNilRecords(t *testing.T) {
	err := writer.WriteXLSX(nil, filepath.Join(t.TempDir(), "x.xlsx"), "")
	assert.Error(t, err)
}

func TestWriteCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extrato.csv")

	require.NoError(t, writer.WriteCSV(sampleRecords(), path, ';'))

	file, err := os.Open(path)
	require.NoError(t, err)
	defer func() {
		require.NoError(t, file.Close())
	}()

	reader := csv.NewReader(file)
	reader.Comma = ';'
	rows, err := reader.ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, models.Headers(), rows[0])
	assert.Equal(t, []string{
		"10/01/2024", "PIX RECEBIDO", "100,00", "1.500,00",
		"10/01/2024 PIX RECEBIDO 100,00 1.500,00",
	}, rows[1])
	assert.Equal(t, []string{
		"", "TARIFA MENSAL 25,00", "", "25,00", "TARIFA MENSAL 25,00",
	}, rows[2])
}

func TestWriteCSVDefaultDelimiter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "extrato.csv")

	require.NoError(t, writer.WriteCSV(sampleRecords(), path, 0))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "data,descricao,penultimo_valor,saldo,linha_original")
}

func TestWriteCSVNilRecords(t *testing.T) {
	err := writer.WriteCSV(nil, filepath.Join(t.TempDir(), "x.csv"), ',')
	assert.Error(t, err)
}

func TestWriteEmptySlice(t *testing.T) {
	// Empty (non-nil) slices are valid: the caller decided to write a
	// header-only file.
	path := filepath.Join(t.TempDir(), "vazio.csv")
	require.NoError(t, writer.WriteCSV([]models.Record{}, path, ','))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "linha_original")
}
