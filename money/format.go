package money

import (
	"strconv"
	"strings"

	"github.com/pocketbudget/engine/domain/entity"
)

// usd is the formatting fallback for FormatCentsPlain.
var usd = entity.Currency{Code: "USD", Name: "US Dollar", Symbol: "$", DecimalPlaces: 2}

// FormatCents renders minor units for display: symbol first, thousands
// grouped with commas, the currency's number of fraction digits, and the
// minus sign ahead of the symbol ("-$1,950.00"). A currency without a symbol
// falls back to its code.
func FormatCents(cents int64, cur entity.Currency) string {
	symbol := cur.Symbol
	if symbol == "" {
		symbol = cur.Code + " "
	}

	negative := cents < 0
	if negative {
		cents = -cents
	}

	places := cur.DecimalPlaces
	if places < 0 {
		places = 0
	}
	scale := int64(1)
	for i := 0; i < places; i++ {
		scale *= 10
	}

	whole := cents / scale
	frac := cents % scale

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteString(symbol)
	b.WriteString(groupThousands(whole))
	if places > 0 {
		b.WriteByte('.')
		b.WriteString(padLeft(strconv.FormatInt(frac, 10), places))
	}
	return b.String()
}

// FormatCentsPlain renders cents in the default two-decimal dollar style.
func FormatCentsPlain(cents int64) string {
	return FormatCents(cents, usd)
}

// groupThousands inserts comma separators into a non-negative integer.
func groupThousands(n int64) string {
	digits := strconv.FormatInt(n, 10)
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

func padLeft(s string, width int) string {
	for len(s) < width {
		s = "0" + s
	}
	return s
}
