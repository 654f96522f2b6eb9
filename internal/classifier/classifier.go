// Package classifier decides whether a raw statement line is a transaction
// candidate or header/footer noise. The checks are coarse lexical heuristics,
// not a grammar; they intentionally trade a little precision for recall and
// are tunable through the Ruleset.
package classifier

import (
	"regexp"
	"strings"

	"rmachado/extrato-xlsx/internal/brnum"
)

// leadingDate matches a DD/MM/YYYY date at the start of the line, after
// optional whitespace. Shape check only; 99/99/9999 passes.
var leadingDate = regexp.MustCompile(`^\s*\d{2}/\d{2}/\d{4}\s+`)

// DefaultStopwords returns the built-in header/footer markers. Any line
// containing one of these (case-insensitive) is rejected as noise. The list
// carries accented and unaccented spellings because extracted PDF text is
// inconsistent about accents.
func DefaultStopwords() []string {
	return []string{
		"PÁGINA", "PAGINA", "PÁG", "PAG", "AGÊNCIA", "AGENCIA", "CONTA", "CNPJ", "BANCO",
		"WWW", "SITE", "CENTRAL DE ATENDIMENTO", "OUVIDORIA", "ATENDIMENTO", "SAC",
		"SALDO ANTERIOR", "SALDO DO DIA", "EXTRATO", "DEMONSTRATIVO", "ENDEREÇO", "ENDERECO",
		"CPF/CNPJ", "HORÁRIO", "HORARIO",
	}
}

// Ruleset is the classifier configuration. The zero value rejects nothing
// except stopword-free checks; use Default for the standard heuristics.
type Ruleset struct {
	// Stopwords reject a line on any case-insensitive substring match.
	Stopwords []string
	// RequireDate demands a leading DD/MM/YYYY date.
	RequireDate bool
	// MinNumbers demands at least this many Brazilian numeric tokens.
	MinNumbers int
	// AllowKeywords, when non-empty, demands at least one case-insensitive
	// substring match. This is a positive override layered after the stopword
	// rejection, not an alternative to it.
	AllowKeywords []string
}

// Default returns the standard ruleset: built-in stopwords, leading date
// required, at least two numeric tokens, no keyword override.
func Default() Ruleset {
	return Ruleset{
		Stopwords:   DefaultStopwords(),
		RequireDate: true,
		MinNumbers:  2,
	}
}

// IsTransactionLine reports whether line looks like a transaction record.
// The checks run in a fixed order and are cumulative AND-conditions; the
// first failing check rejects the line.
func IsTransactionLine(line string, rules Ruleset) bool {
	upper := strings.ToUpper(line)

	for _, w := range rules.Stopwords {
		if w != "" && strings.Contains(upper, strings.ToUpper(w)) {
			return false
		}
	}

	if rules.RequireDate && !leadingDate.MatchString(line) {
		return false
	}

	if rules.MinNumbers > 0 && brnum.Count(line) < rules.MinNumbers {
		return false
	}

	if len(rules.AllowKeywords) > 0 {
		found := false
		for _, k := range rules.AllowKeywords {
			k = strings.TrimSpace(k)
			if k == "" {
				continue
			}
			if strings.Contains(upper, strings.ToUpper(k)) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}
