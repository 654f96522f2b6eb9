// Package models defines the data structures shared by all parsers and writers.
package models

// Record is one extracted statement entry. All numeric fields keep their
// original localized textual form; an empty string marks an absent value.
// OriginalLine is the source line (or joined table row) the record came from
// and is never empty or whitespace-only.
type Record struct {
	Date         string `csv:"data"`
	Description  string `csv:"descricao"`
	Amount       string `csv:"penultimo_valor"`
	Balance      string `csv:"saldo"`
	OriginalLine string `csv:"linha_original"`
}

// Headers returns the output column names in record field order.
func Headers() []string {
	return []string{"data", "descricao", "penultimo_valor", "saldo", "linha_original"}
}

// Row returns the record values in the same order as Headers.
func (r Record) Row() []string {
	return []string{r.Date, r.Description, r.Amount, r.Balance, r.OriginalLine}
}
