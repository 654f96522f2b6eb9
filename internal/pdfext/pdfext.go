// Package pdfext is the document-extraction collaborator for PDF sources.
// It exposes, per page, plain text lines and ruled-table cell grids, behind
// small interfaces so parsers can be tested without real PDF files.
package pdfext

import (
	"fmt"
	"math"
	"os/exec"
	"sort"
	"strings"

	"github.com/ledongthuc/pdf"

	"rmachado/extrato-xlsx/internal/parsererror"
)

// TextExtractor yields the plain text of a document as lines per page.
type TextExtractor interface {
	PageLines(pdfPath string) ([][]string, error)
}

// TableExtractor yields table cell grids, one row grid per page. Pages
// without reconstructible rows yield an empty grid.
type TableExtractor interface {
	PageTables(pdfPath string) ([][][]string, error)
}

// ToleranceProfile holds the geometric tuning knobs for table
// reconstruction. The values affect how text fragments snap into rows and
// cells, not correctness; callers can tighten or loosen them per source.
type ToleranceProfile struct {
	// Snap groups fragments whose Y coordinates differ by at most this much
	// into the same row.
	Snap float64
	// Join starts a new cell when the X gap between adjacent fragments
	// exceeds this value.
	Join float64
}

// DefaultTolerances returns the profile that works for common statement
// layouts.
func DefaultTolerances() ToleranceProfile {
	return ToleranceProfile{Snap: 2.0, Join: 12.0}
}

// Extractor is the production implementation backed by the ledongthuc/pdf
// library, with an external pdftotext fallback for PDFs the library cannot
// decode.
type Extractor struct {
	Tolerances ToleranceProfile
}

// NewExtractor creates an Extractor with default tolerances.
func NewExtractor() *Extractor {
	return &Extractor{Tolerances: DefaultTolerances()}
}

// PageLines extracts the text of every page as a slice of lines. The library
// path is tried first; when it fails or produces nothing, the external
// pdftotext command is tried. With neither available the error is a
// MissingDependencyError carrying a remediation hint.
func (e *Extractor) PageLines(pdfPath string) ([][]string, error) {
	pages, libErr := extractLinesWithLibrary(pdfPath)
	if libErr == nil && totalLines(pages) > 0 {
		return pages, nil
	}

	pages, cmdErr := extractLinesWithPdftotext(pdfPath)
	if cmdErr == nil {
		return pages, nil
	}

	if _, err := exec.LookPath("pdftotext"); err != nil {
		return nil, &parsererror.MissingDependencyError{
			Dependency: "pdftotext",
			Hint:       "install poppler-utils, or supply a text-based (non-scanned) PDF",
		}
	}
	if libErr != nil {
		return nil, fmt.Errorf("PDF text extraction failed: %w", libErr)
	}
	return nil, cmdErr
}

// PageTables reconstructs one cell grid per page from the positioned text
// fragments: fragments are clustered into rows by Y within the snap
// tolerance, ordered by X, and split into cells at gaps wider than the join
// tolerance.
func (e *Extractor) PageTables(pdfPath string) (grids [][][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, &parsererror.InvalidFormatError{
			FilePath:       pdfPath,
			ExpectedFormat: "PDF",
			Msg:            err.Error(),
		}
	}
	defer func() {
		_ = f.Close()
	}()

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			grids = append(grids, nil)
			continue
		}
		grids = append(grids, e.pageGrid(page.Content()))
	}
	return grids, nil
}

type fragment struct {
	x float64
	s string
}

func (e *Extractor) pageGrid(content pdf.Content) [][]string {
	if len(content.Text) == 0 {
		return nil
	}

	snap := e.Tolerances.Snap
	if snap <= 0 {
		snap = DefaultTolerances().Snap
	}
	join := e.Tolerances.Join
	if join <= 0 {
		join = DefaultTolerances().Join
	}

	rowMap := make(map[int][]fragment)
	for _, t := range content.Text {
		if strings.TrimSpace(t.S) == "" {
			continue
		}
		yKey := int(math.Round(t.Y / snap))
		rowMap[yKey] = append(rowMap[yKey], fragment{x: t.X, s: t.S})
	}

	yKeys := make([]int, 0, len(rowMap))
	for y := range rowMap {
		yKeys = append(yKeys, y)
	}
	// PDF Y runs bottom-to-top, so rows sort descending.
	sort.Sort(sort.Reverse(sort.IntSlice(yKeys)))

	var grid [][]string
	for _, y := range yKeys {
		frags := rowMap[y]
		sort.Slice(frags, func(a, b int) bool { return frags[a].x < frags[b].x })

		var cells []string
		var cell strings.Builder
		var prevX float64
		for j, fr := range frags {
			if j > 0 && fr.x-prevX > join {
				cells = append(cells, cell.String())
				cell.Reset()
			}
			cell.WriteString(fr.s)
			prevX = fr.x
		}
		if cell.Len() > 0 {
			cells = append(cells, cell.String())
		}
		if len(cells) > 0 {
			grid = append(grid, cells)
		}
	}
	return grid
}

// extractLinesWithLibrary walks every page with GetTextByRow, which keeps
// words grouped by visual line. The library panics on some malformed PDFs,
// hence the recover.
func extractLinesWithLibrary(pdfPath string) (pages [][]string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("PDF library crashed: %v", r)
		}
	}()

	f, r, err := pdf.Open(pdfPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	if r.NumPage() == 0 {
		return nil, fmt.Errorf("PDF has no pages")
	}

	for i := 1; i <= r.NumPage(); i++ {
		page := r.Page(i)
		if page.V.IsNull() {
			pages = append(pages, nil)
			continue
		}
		rows, err := page.GetTextByRow()
		if err != nil {
			pages = append(pages, nil)
			continue
		}
		var lines []string
		for _, row := range rows {
			var parts []string
			for _, word := range row.Content {
				parts = append(parts, word.S)
			}
			line := strings.TrimSpace(strings.Join(parts, " "))
			if line != "" {
				lines = append(lines, line)
			}
		}
		pages = append(pages, lines)
	}
	return pages, nil
}

// extractLinesWithPdftotext shells out to poppler's pdftotext; pages arrive
// separated by form feeds on stdout.
func extractLinesWithPdftotext(pdfPath string) ([][]string, error) {
	out, err := exec.Command("pdftotext", "-layout", pdfPath, "-").Output()
	if err != nil {
		return nil, fmt.Errorf("error running pdftotext: %w", err)
	}

	var pages [][]string
	for _, pageText := range strings.Split(string(out), "\f") {
		var lines []string
		for _, line := range strings.Split(pageText, "\n") {
			if strings.TrimSpace(line) != "" {
				lines = append(lines, line)
			}
		}
		if len(lines) > 0 {
			pages = append(pages, lines)
		}
	}
	if len(pages) == 0 {
		return nil, fmt.Errorf("pdftotext produced no output")
	}
	return pages, nil
}

func totalLines(pages [][]string) int {
	n := 0
	for _, p := range pages {
		n += len(p)
	}
	return n
}
