package helper

import (
	"strconv"
	"strings"
	"time"
)

// FormatPeso renders an amount as ₱1,234.50 (always 2 fraction digits,
// thousands separators). Stored notification text depends on this exact
// shape, so keep it stable.
func FormatPeso(amount float64) string {
	s := strconv.FormatFloat(amount, 'f', 2, 64)

	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteString("₱")
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(d)
	}
	b.WriteByte('.')
	b.WriteString(fracPart)
	return b.String()
}

// FormatDate renders "MMM d, yyyy" style dates (e.g. "Jan 2, 2006") for
// user-facing message text.
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// StartOfDay truncates t to local midnight.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
