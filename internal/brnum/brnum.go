// Package brnum recognizes Brazilian-formatted numeric tokens (period as
// thousands separator, comma as decimal separator) inside free text, and
// converts between that textual form and decimal values.
package brnum

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Token is a single numeric substring located in a line.
// Start and End are byte offsets into the scanned string.
type Token struct {
	Text  string
	Start int
	End   int
}

// Find returns every numeric token in s, in left-to-right order.
//
// A token is either:
//   - an optional sign, 1-3 digits, zero or more ".ddd" thousands groups and
//     an optional ",d+" decimal part, not adjacent to another digit on either
//     side and not immediately followed by a comma; or
//   - an optional sign, one or more digits, a mandatory comma and one or more
//     decimal digits.
//
// The adjacency guards keep partial matches out of longer numeric runs, so
// "1234" yields no token while "1.234,56" yields exactly one.
func Find(s string) []Token {
	var tokens []Token
	i := 0
	for i < len(s) {
		if end, ok := matchGrouped(s, i); ok {
			tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end})
			i = end
			continue
		}
		if end, ok := matchPlainDecimal(s, i); ok {
			tokens = append(tokens, Token{Text: s[i:end], Start: i, End: end})
			i = end
			continue
		}
		i++
	}
	return tokens
}

// Count returns the number of numeric tokens in s.
func Count(s string) int {
	return len(Find(s))
}

// matchGrouped matches the thousands-grouped alternative at position i,
// honoring the guards: no digit immediately before the match, and no digit or
// comma immediately after it. Group and decimal lengths are given back (as a
// backtracking regex engine would) until the trailing guard is satisfied.
func matchGrouped(s string, i int) (int, bool) {
	if i > 0 && isDigit(s[i-1]) {
		return 0, false
	}
	j := i
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	run := digitRun(s, j)
	if run == 0 {
		return 0, false
	}
	lead := run
	if lead > 3 {
		lead = 3
	}
	for nd := lead; nd >= 1; nd-- {
		p := j + nd
		maxGroups := 0
		for q := p; q+3 < len(s) && s[q] == '.' && digitRun(s, q+1) >= 3; q += 4 {
			maxGroups++
		}
		for g := maxGroups; g >= 0; g-- {
			q := p + 4*g
			if q < len(s) && s[q] == ',' {
				if frac := digitRun(s, q+1); frac > 0 {
					for nf := frac; nf >= 1; nf-- {
						end := q + 1 + nf
						if trailingGuardOK(s, end) {
							return end, true
						}
					}
				}
			}
			if trailingGuardOK(s, q) {
				return q, true
			}
		}
	}
	return 0, false
}

// matchPlainDecimal matches the simpler sign+digits+comma+digits alternative.
// It carries no adjacency guards; only the grouped alternative does.
func matchPlainDecimal(s string, i int) (int, bool) {
	j := i
	if j < len(s) && (s[j] == '+' || s[j] == '-') {
		j++
	}
	r1 := digitRun(s, j)
	if r1 == 0 {
		return 0, false
	}
	j += r1
	if j >= len(s) || s[j] != ',' {
		return 0, false
	}
	r2 := digitRun(s, j+1)
	if r2 == 0 {
		return 0, false
	}
	return j + 1 + r2, true
}

func trailingGuardOK(s string, end int) bool {
	return end >= len(s) || (!isDigit(s[end]) && s[end] != ',')
}

func digitRun(s string, i int) int {
	n := 0
	for i+n < len(s) && isDigit(s[i+n]) {
		n++
	}
	return n
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// ParseDecimal converts Brazilian numeric text to a decimal value.
// Thousands periods are stripped and the decimal comma becomes a period
// before interpretation. Malformed text converts to zero, never to an error.
func ParseDecimal(text string) decimal.Decimal {
	cleaned := strings.TrimSpace(text)
	cleaned = strings.ReplaceAll(cleaned, ".", "")
	cleaned = strings.ReplaceAll(cleaned, ",", ".")
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// FormatDecimal renders a decimal value back into Brazilian numeric text with
// two decimal digits, a comma decimal separator and period thousands grouping.
func FormatDecimal(d decimal.Decimal) string {
	s := d.StringFixed(2)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	var b strings.Builder
	for idx := 0; idx < len(intPart); idx++ {
		if idx > 0 && (len(intPart)-idx)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteByte(intPart[idx])
	}
	out := b.String() + "," + fracPart
	if neg {
		out = "-" + out
	}
	return out
}
