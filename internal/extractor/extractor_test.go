package extractor_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"rmachado/extrato-xlsx/internal/extractor"
)

func TestSplitLeadingDate(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expectedDate string
		expectedRest string
	}{
		{
			name:         "date with remainder",
			input:        "10/01/2024 PIX RECEBIDO",
			expectedDate: "10/01/2024",
			expectedRest: "PIX RECEBIDO",
		},
		{
			name:         "leading whitespace before the date",
			input:        "  10/01/2024  PIX",
			expectedDate: "10/01/2024",
			expectedRest: "PIX",
		},
		{
			name:         "no date",
			input:        "TARIFA MENSAL 25,00",
			expectedDate: "",
			expectedRest: "TARIFA MENSAL 25,00",
		},
		{
			name:         "date not followed by whitespace",
			input:        "10/01/2024PIX",
			expectedDate: "",
			expectedRest: "10/01/2024PIX",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, rest := extractor.SplitLeadingDate(tt.input)
			assert.Equal(t, tt.expectedDate, date)
			assert.Equal(t, tt.expectedRest, rest)
		})
	}
}

func TestCollapseSpaces(t *testing.T) {
	assert.Equal(t, "PIX RECEBIDO", extractor.CollapseSpaces("  PIX \t  RECEBIDO  "))
	assert.Equal(t, "", extractor.CollapseSpaces("   \t "))
}

func TestExtract(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected extractor.Fields
	}{
		{
			name: "date description and two values",
			line: "10/01/2024  PIX RECEBIDO   100,00   1.500,00",
			expected: extractor.Fields{
				Date:        "10/01/2024",
				Description: "PIX RECEBIDO",
				Amount:      "100,00",
				Balance:     "1.500,00",
			},
		},
		{
			name: "single value stays in the description",
			line: "TARIFA MENSAL 25,00",
			expected: extractor.Fields{
				Description: "TARIFA MENSAL 25,00",
				Balance:     "25,00",
			},
		},
		{
			name:     "empty line",
			line:     "",
			expected: extractor.Fields{},
		},
		{
			name: "no numeric tokens",
			line: "10/01/2024 ESTORNO PENDENTE",
			expected: extractor.Fields{
				Date:        "10/01/2024",
				Description: "ESTORNO PENDENTE",
			},
		},
		{
			name: "three values take the last two",
			line: "10/01/2024 PARCELA 3 100,00 1.400,00",
			expected: extractor.Fields{
				Date:        "10/01/2024",
				Description: "PARCELA 3",
				Amount:      "100,00",
				Balance:     "1.400,00",
			},
		},
		{
			name: "negative amounts",
			line: "11/01/2024 TARIFA -10,00 1.040,00",
			expected: extractor.Fields{
				Date:        "11/01/2024",
				Description: "TARIFA",
				Amount:      "-10,00",
				Balance:     "1.040,00",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, extractor.Extract(tt.line))
		})
	}
}
