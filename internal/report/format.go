package report

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kingcart/console/internal/model"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// currencyPrinter groups digits the Indian way (1,23,456.78).
var currencyPrinter = message.NewPrinter(language.MustParse("en-IN"))

// dateLayouts are tried in order when parsing upstream timestamps,
// after the " at " quirk has been stripped.
var dateLayouts = []string{
	"January 2, 2006 3:04:05 PM",
	"January 2, 2006 3:04 PM",
	"January 2, 2006",
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"1/2/2006",
}

// ParseNumber coerces a mixed-format value to a float. Strings are stripped
// of every character that is not a digit or a dot (currency symbols, commas,
// whitespace) before parsing. Anything unparseable resolves to 0 so that
// dirty upstream data degrades silently instead of aborting a report.
func ParseNumber(v any) float64 {
	switch n := v.(type) {
	case nil:
		return 0
	case float64:
		return n
	case float32:
		return float64(n)
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case decimal.Decimal:
		return n.InexactFloat64()
	case model.Amount:
		return ParseNumber(n.Raw)
	case string:
		cleaned := strings.Map(func(r rune) rune {
			if (r >= '0' && r <= '9') || r == '.' {
				return r
			}
			return -1
		}, n)
		f, err := strconv.ParseFloat(cleaned, 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return ParseNumber(fmt.Sprint(v))
	}
}

// FormatCurrency renders a number-like value with the RS prefix, exactly two
// decimals and en-IN digit grouping.
func FormatCurrency(v any) string {
	n := ParseNumber(v)
	return "RS " + currencyPrinter.Sprint(number.Decimal(n,
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// ParseDate parses an upstream order timestamp. The API's formatter inserts a
// literal " at " between the date and time parts; that separator is replaced
// with a single space before parsing.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(strings.ReplaceAll(raw, " at ", " "))
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date: %q", raw)
}

// FormatDate renders an order timestamp as d/m/yyyy. Unparseable input yields
// the literal "Invalid date" marker in place; it never fails the report.
func FormatDate(raw string) string {
	t, err := ParseDate(raw)
	if err != nil {
		return "Invalid date"
	}
	return t.Format("2/1/2006")
}

// SafeText coerces any value to a renderable string without panicking.
func SafeText(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}
