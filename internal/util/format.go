package util //nolint:revive // package name util hosts shared formatting helpers used across HTTP templates

import (
	"strconv"
	"strings"
	"time"
)

// FormatCurrency formats an amount in cents as a dollar string with
// thousands separators, e.g. 1234567 -> "$12,345.67".
func FormatCurrency(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	dollars := cents / 100
	remainder := cents % 100

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	b.WriteByte('$')
	b.WriteString(groupThousands(dollars))
	b.WriteByte('.')
	if remainder < 10 {
		b.WriteByte('0')
	}
	b.WriteString(strconv.FormatInt(remainder, 10))
	return b.String()
}

// CentsToDollarString renders cents as a plain decimal suitable for a
// numeric form input, e.g. 12050 -> "120.50".
func CentsToDollarString(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := strconv.FormatInt(cents/100, 10) + "." + pad2(cents%100)
	if neg {
		return "-" + s
	}
	return s
}

// FormatDate formats a date for table display, e.g. "Sep 14, 2025".
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("Jan 2, 2006")
}

// FormatDateInput formats a date for an HTML date input (YYYY-MM-DD).
func FormatDateInput(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

func groupThousands(n int64) string {
	s := strconv.FormatInt(n, 10)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

func pad2(n int64) string {
	if n < 10 {
		return "0" + strconv.FormatInt(n, 10)
	}
	return strconv.FormatInt(n, 10)
}
