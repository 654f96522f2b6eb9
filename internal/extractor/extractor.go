// Package extractor splits a transaction candidate line into its fields:
// date, description, second-to-last numeric value and final value (treated
// as the running balance). There is no fixed column layout; the split is
// driven entirely by the positions of the numeric tokens.
package extractor

import (
	"regexp"
	"strings"

	"rmachado/extrato-xlsx/internal/brnum"
)

// Fields is the result of splitting one line.
type Fields struct {
	Date        string
	Description string
	Amount      string
	Balance     string
}

var (
	leadingDate = regexp.MustCompile(`^\s*(\d{2}/\d{2}/\d{4})\s+`)
	spaceRun    = regexp.MustCompile(`\s+`)
)

// SplitLeadingDate captures a DD/MM/YYYY date at the start of s. It returns
// the date and the remainder past the date and its trailing whitespace, or
// ("", s) when no leading date is present. No calendar validation is done.
func SplitLeadingDate(s string) (date, rest string) {
	m := leadingDate.FindStringSubmatchIndex(s)
	if m == nil {
		return "", s
	}
	return s[m[2]:m[3]], s[m[1]:]
}

// CollapseSpaces replaces every whitespace run with a single space and trims
// the ends.
func CollapseSpaces(s string) string {
	return strings.TrimSpace(spaceRun.ReplaceAllString(s, " "))
}

// Extract splits line into (date, description, amount, balance).
//
// With two or more numeric tokens the last two are taken as amount and
// balance and the description is the text before the amount token. With
// exactly one token the token becomes the balance but stays embedded in the
// description; this asymmetry is deliberate and matches the observable
// behavior downstream consumers rely on.
func Extract(line string) Fields {
	trimmed := strings.TrimSpace(line)

	date, rest := SplitLeadingDate(trimmed)

	tokens := brnum.Find(rest)
	switch {
	case len(tokens) >= 2:
		amount := tokens[len(tokens)-2]
		balance := tokens[len(tokens)-1]
		return Fields{
			Date:        date,
			Description: CollapseSpaces(rest[:amount.Start]),
			Amount:      amount.Text,
			Balance:     balance.Text,
		}
	case len(tokens) == 1:
		return Fields{
			Date:        date,
			Description: CollapseSpaces(rest),
			Balance:     tokens[0].Text,
		}
	default:
		return Fields{
			Date:        date,
			Description: CollapseSpaces(rest),
		}
	}
}
