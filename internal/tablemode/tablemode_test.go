package tablemode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rmachado/extrato-xlsx/internal/logging"
	"rmachado/extrato-xlsx/internal/models"
	"rmachado/extrato-xlsx/internal/tablemode"
)

func TestRowsRunningBalance(t *testing.T) {
	e := tablemode.New()

	records := e.Rows([][]string{
		{"EXTRATO CONTA CORRENTE"},
		{"PERÍODO: 01/01/2024 a 31/01/2024"},
		{"DATA", "DESCRIÇÃO", "VALOR"},
		{"", "SALDO ANTERIOR", "1.000,00"},
		{"10/01/2024", "PIX", "50,00"},
		{"11/01/2024", "TARIFA", "-10,00", "1.040,00"},
	})

	require.Len(t, records, 3)

	assert.Equal(t, models.Record{
		Description:  "SALDO ANTERIOR",
		Balance:      "1.000,00",
		OriginalLine: " | SALDO ANTERIOR | 1.000,00",
	}, records[0])

	// Single stated value: the balance is derived by adding it to the
	// accumulator seeded by the previous balance row.
	assert.Equal(t, models.Record{
		Date:         "10/01/2024",
		Description:  "PIX",
		Amount:       "50,00",
		Balance:      "1.050,00",
		OriginalLine: "10/01/2024 | PIX | 50,00",
	}, records[1])

	// Two stated values: the row's own balance wins and resyncs the
	// accumulator even though 1.050,00 - 10,00 is 1.040,00 anyway.
	assert.Equal(t, models.Record{
		Date:         "11/01/2024",
		Description:  "TARIFA",
		Amount:       "-10,00",
		Balance:      "1.040,00",
		OriginalLine: "11/01/2024 | TARIFA | -10,00 | 1.040,00",
	}, records[2])
}

func TestRowsResyncAfterStatedBalance(t *testing.T) {
	e := tablemode.New()

	records := e.Rows([][]string{
		{"", "SALDO ANTERIOR", "100,00"},
		{"10/01/2024", "DEPOSITO", "900,00", "5.000,00"},
		{"11/01/2024", "PIX", "50,00"},
	})

	require.Len(t, records, 3)
	// The stated 5.000,00 replaced the accumulator, so the derived balance
	// continues from it, not from 100,00 + 900,00.
	assert.Equal(t, "5.050,00", records[2].Balance)
}

func TestRowsWithoutPreviousBalance(t *testing.T) {
	e := tablemode.New()

	records := e.Rows([][]string{
		{"10/01/2024", "PIX", "50,00"},
	})

	require.Len(t, records, 1)
	assert.Equal(t, "50,00", records[0].Amount)
	// No accumulator seed, so no balance can be derived.
	assert.Equal(t, "", records[0].Balance)
}

func TestRowsSkipsNoise(t *testing.T) {
	e := tablemode.New()

	records := e.Rows([][]string{
		{},
		{"", "   ", ""},
		{"OBSERVACOES GERAIS"},
		{"EXTRATO MENSAL", "100,00"},
		{"DATA", "DESCRIÇÃO", "VALOR"},
	})

	assert.Empty(t, records)
}

func TestRowsPreviousBalanceWithoutToken(t *testing.T) {
	e := tablemode.New()
	mock := logging.NewMockLogger()
	e.SetLogger(mock)

	records := e.Rows([][]string{
		{"", "SALDO ANTERIOR", ""},
		{"10/01/2024", "PIX", "50,00"},
	})

	require.Len(t, records, 1)
	// The malformed previous-balance row seeded nothing.
	assert.Equal(t, "", records[0].Balance)
	assert.True(t, mock.HasMessage("previous balance row without numeric token"))
}

func TestRowsDescriptionTruncatesAtLastAmountOccurrence(t *testing.T) {
	e := tablemode.New()

	records := e.Rows([][]string{
		{"10/01/2024", "PARCELA 50,00 DE 12", "50,00", "1.040,00"},
	})

	require.Len(t, records, 1)
	// The amount text recurs inside the description; truncation happens at
	// the last textual occurrence.
	assert.Equal(t, "PARCELA 50,00 DE 12", records[0].Description)
	assert.Equal(t, "50,00", records[0].Amount)
}
