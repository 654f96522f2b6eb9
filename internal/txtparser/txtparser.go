// Package txtparser extracts records from plain text statement exports.
// Every non-blank line goes through the field extractor; no classification
// is applied, matching the behavior for text exports where the caller has
// already isolated the statement body.
package txtparser

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"rmachado/extrato-xlsx/internal/extractor"
	"rmachado/extrato-xlsx/internal/logging"
	"rmachado/extrato-xlsx/internal/models"
	"rmachado/extrato-xlsx/internal/parsererror"
)

// Parser reads .txt statement sources.
type Parser struct {
	log logging.Logger
}

// New creates a text parser.
func New() *Parser {
	return &Parser{log: logging.GetLogger()}
}

// SetLogger injects a configured logger.
func (p *Parser) SetLogger(log logging.Logger) {
	if log != nil {
		p.log = log
	}
}

// Parse reads statement lines from r and returns one record per non-blank
// line, in encounter order. Line length is unbounded, so one enormous line
// cannot abort the pass.
func (p *Parser) Parse(r io.Reader) ([]models.Record, error) {
	var records []models.Record

	reader := bufio.NewReader(r)
	lineNo := 0
	for {
		line, err := reader.ReadString('\n')
		if err != nil && err != io.EOF {
			return nil, &parsererror.ParseError{
				Parser: "txt",
				Field:  "line",
				Value:  strconv.Itoa(lineNo + 1),
				Err:    err,
			}
		}
		lineNo++

		line = strings.TrimSuffix(line, "\n")
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) != "" {
			f := extractor.Extract(line)
			records = append(records, models.Record{
				Date:         f.Date,
				Description:  f.Description,
				Amount:       f.Amount,
				Balance:      f.Balance,
				OriginalLine: line,
			})
		}

		if err == io.EOF {
			break
		}
	}

	p.log.Info("Parsed text statement",
		logging.Field{Key: logging.FieldParser, Value: "txt"},
		logging.Field{Key: logging.FieldCount, Value: len(records)})
	return records, nil
}

// ParseFile opens path and parses it.
func (p *Parser) ParseFile(path string) ([]models.Record, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := file.Close(); err != nil {
			p.log.WithError(err).Warn("Failed to close file",
				logging.Field{Key: logging.FieldFile, Value: path})
		}
	}()
	return p.Parse(file)
}
