// Package format renders prices and dates for the storefront's two display
// languages.
package format

import (
	"fmt"
	"strings"
	"time"
)

// Price formats a catalog price in Saudi riyal for the given language.
// Prices arrive in major units; fractional halalas render only when present.
// Example: Price(199.5, "ar") => "199.50 ر.س", Price(80, "en") => "SAR 80".
func Price(amount float64, lang string) string {
	body := trimAmount(amount)
	if lang == "en" {
		return "SAR " + body
	}
	return body + " ر.س"
}

// Discount renders the original price when it meaningfully exceeds the
// current one, or an empty string.
func Discount(price, original float64, lang string) string {
	if original <= price {
		return ""
	}
	return Price(original, lang)
}

func trimAmount(amount float64) string {
	// round to halalas first so 19.999 becomes 20, not 19 with a 100 fraction
	cents := int64(amount*100 + 0.5)
	if amount < 0 {
		cents = int64(amount*100 - 0.5)
	}
	whole, frac := cents/100, cents%100
	if frac < 0 {
		frac = -frac
	}
	if frac == 0 {
		return thousandSep(whole)
	}
	return fmt.Sprintf("%s.%02d", thousandSep(whole), frac)
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	neg := false
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	if neg {
		return "-" + out
	}
	return out
}

var arabicMonths = [...]string{
	"يناير", "فبراير", "مارس", "أبريل", "مايو", "يونيو",
	"يوليو", "أغسطس", "سبتمبر", "أكتوبر", "نوفمبر", "ديسمبر",
}

// Date formats a time in a locale-friendly short form.
func Date(t time.Time, lang string) string {
	if t.IsZero() {
		return ""
	}
	if lang == "en" {
		return t.Format("Jan 2, 2006")
	}
	return fmt.Sprintf("%d %s %d", t.Day(), arabicMonths[t.Month()-1], t.Year())
}
