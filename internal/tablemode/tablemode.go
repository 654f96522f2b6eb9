// Package tablemode extracts records from pre-segmented ruled-table rows
// (cell grids) instead of free text lines. It carries a running-balance
// accumulator across rows so a balance can be inferred for rows that state
// only a single value.
package tablemode

import (
	"strings"

	"github.com/shopspring/decimal"

	"rmachado/extrato-xlsx/internal/brnum"
	"rmachado/extrato-xlsx/internal/extractor"
	"rmachado/extrato-xlsx/internal/logging"
	"rmachado/extrato-xlsx/internal/models"
)

// Row-rejection markers. A row is skipped when its joined upper-cased text
// starts with the statement title, mentions the reporting period, or carries
// all three column headers at once (the table's own header row).
const (
	titleMarker          = "EXTRATO"
	periodMarker         = "PERÍODO"
	periodMarkerPlain    = "PERIODO"
	headerDateMarker     = "DATA"
	headerDescMarker     = "DESCRI"
	headerValueMarker    = "VALOR"
	previousBalanceLabel = "SALDO ANTERIOR"
)

// cellSeparator joins cells for the record's original line; parsing uses a
// plain space join instead.
const cellSeparator = " | "

// Extractor processes table rows for one document. The running-balance
// accumulator is scoped to the instance, so a fresh Extractor must be created
// per document pass; instances are not safe for concurrent use.
type Extractor struct {
	log        logging.Logger
	balance    decimal.Decimal
	hasBalance bool
}

// New creates an Extractor with an uninitialized running balance.
func New() *Extractor {
	return &Extractor{log: logging.GetLogger()}
}

// SetLogger injects a configured logger.
func (e *Extractor) SetLogger(log logging.Logger) {
	if log != nil {
		e.log = log
	}
}

// Rows converts a grid of table rows into records, in row order. Rows that
// carry no numeric token and rows matching the rejection markers produce
// nothing; a single bad row never aborts the rest of the table.
func (e *Extractor) Rows(rows [][]string) []models.Record {
	var records []models.Record
	for _, cells := range rows {
		if rec, ok := e.row(cells); ok {
			records = append(records, rec)
		}
	}
	return records
}

func (e *Extractor) row(cells []string) (models.Record, bool) {
	trimmed := make([]string, 0, len(cells))
	empty := true
	for _, c := range cells {
		c = strings.TrimSpace(c)
		trimmed = append(trimmed, c)
		if c != "" {
			empty = false
		}
	}
	if empty {
		return models.Record{}, false
	}

	joined := strings.Join(trimmed, cellSeparator)
	flat := extractor.CollapseSpaces(strings.Join(trimmed, " "))
	if flat == "" {
		return models.Record{}, false
	}

	upper := strings.ToUpper(joined)
	if strings.HasPrefix(upper, titleMarker) ||
		strings.Contains(upper, periodMarker) ||
		strings.Contains(upper, periodMarkerPlain) ||
		(strings.Contains(upper, headerDateMarker) &&
			strings.Contains(upper, headerDescMarker) &&
			strings.Contains(upper, headerValueMarker)) {
		return models.Record{}, false
	}

	if strings.Contains(upper, previousBalanceLabel) {
		return e.previousBalanceRow(flat, joined)
	}

	date, resto := extractor.SplitLeadingDate(flat)
	tokens := brnum.Find(resto)

	var amount, balText string
	switch {
	case len(tokens) >= 2:
		amount = tokens[len(tokens)-2].Text
		balText = tokens[len(tokens)-1].Text
	case len(tokens) == 1:
		amount = tokens[0].Text
		if e.hasBalance {
			balText = brnum.FormatDecimal(e.balance.Add(brnum.ParseDecimal(amount)))
		}
	default:
		// No numeric token at all: non-data noise, emit nothing.
		return models.Record{}, false
	}

	// The description is truncated at the LAST textual occurrence of the
	// amount, not at its match offset. A value string recurring earlier in
	// the row can mis-truncate; that behavior is pinned by tests and kept
	// as-is because changing it would change output for ambiguous inputs.
	desc := resto
	if idx := strings.LastIndex(resto, amount); idx >= 0 {
		desc = resto[:idx]
	}

	// Resync the accumulator from whatever balance this row ended up with,
	// whether stated by the row or derived by addition. A restated balance
	// therefore realigns the running total.
	if balText != "" {
		e.balance = brnum.ParseDecimal(balText)
		e.hasBalance = true
	}

	return models.Record{
		Date:         date,
		Description:  extractor.CollapseSpaces(desc),
		Amount:       amount,
		Balance:      balText,
		OriginalLine: joined,
	}, true
}

// previousBalanceRow seeds the accumulator from an explicit SALDO ANTERIOR
// row and emits a record for it. The row is not parsed any further.
func (e *Extractor) previousBalanceRow(flat, joined string) (models.Record, bool) {
	tokens := brnum.Find(flat)
	if len(tokens) == 0 {
		e.log.Debug("previous balance row without numeric token",
			logging.Field{Key: logging.FieldLine, Value: joined})
		return models.Record{}, false
	}
	last := tokens[len(tokens)-1]
	e.balance = brnum.ParseDecimal(last.Text)
	e.hasBalance = true
	return models.Record{
		Description:  previousBalanceLabel,
		Balance:      last.Text,
		OriginalLine: joined,
	}, true
}
