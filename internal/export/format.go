package export

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var (
	colombia   = language.MustParse("es-CO")
	monthNames = [...]string{"Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}
)

// FormatCurrency renders an amount as Colombian pesos without cents,
// e.g. "$ 5.000.000".
func FormatCurrency(d decimal.Decimal) string {
	p := message.NewPrinter(colombia)
	whole := d.Abs().Round(0).IntPart()
	s := "$ " + p.Sprint(number.Decimal(whole))
	if d.Round(0).IsNegative() {
		return "-" + s
	}
	return s
}

// FormatMonth turns a YYYY-MM key into a short Spanish label like "Ene 24".
// Malformed keys are returned unchanged.
func FormatMonth(key string) string {
	year, month, ok := strings.Cut(key, "-")
	if !ok || len(year) != 4 {
		return key
	}
	n, err := strconv.Atoi(month)
	if err != nil || n < 1 || n > 12 {
		return key
	}
	return monthNames[n-1] + " " + year[2:]
}
