package income

import (
	"strings"
	"unicode"
)

// NormalizePayee reduces a raw payee descriptor to a stable grouping key:
// lowercased, punctuation collapsed to spaces, purely numeric tokens
// (reference and sequence numbers) dropped, whitespace collapsed. "ACME
// Corp PAYROLL #0423" and "acme corp payroll 0424" normalize to the same
// key.
func NormalizePayee(payee string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(payee) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			b.WriteRune(r)
		default:
			b.WriteRune(' ')
		}
	}

	fields := strings.Fields(b.String())
	kept := fields[:0]
	for _, field := range fields {
		if isNumeric(field) {
			continue
		}
		kept = append(kept, field)
	}
	return strings.Join(kept, " ")
}

func isNumeric(token string) bool {
	for _, r := range token {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return len(token) > 0
}
