package pdfext

// Mock implements TextExtractor and TableExtractor with canned data for
// tests, following the same pattern production code injects the real
// Extractor through.
type Mock struct {
	Lines    [][]string
	Tables   [][][]string
	TextErr  error
	TableErr error
}

// NewMock creates a Mock with the given page lines and table grids.
func NewMock(lines [][]string, tables [][][]string) *Mock {
	return &Mock{Lines: lines, Tables: tables}
}

// PageLines returns the canned lines or error.
func (m *Mock) PageLines(pdfPath string) ([][]string, error) {
	if m.TextErr != nil {
		return nil, m.TextErr
	}
	return m.Lines, nil
}

// PageTables returns the canned grids or error.
func (m *Mock) PageTables(pdfPath string) ([][][]string, error) {
	if m.TableErr != nil {
		return nil, m.TableErr
	}
	return m.Tables, nil
}
