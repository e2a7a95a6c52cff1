// Package export renders movements and reports as downloadable documents.
package export

import (
	"bufio"
	"io"
	"strings"
	"time"

	"financeapp/internal/models"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

const (
	csvDelimiter = ";"
	csvBOM       = "\uFEFF"
	dateLayout   = "2006-01-02"
)

var csvHeader = []string{"Concepto", "Monto", "Tipo", "Fecha", "Usuario"}

// Charset selects the byte encoding of a CSV download.
type Charset string

const (
	CharsetUTF8        Charset = "utf-8"
	CharsetWindows1252 Charset = "windows-1252"
)

// ParseCharset maps a query value to a Charset, defaulting to UTF-8.
func ParseCharset(s string) (Charset, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "utf-8", "utf8":
		return CharsetUTF8, true
	case "windows-1252", "cp1252", "latin1":
		return CharsetWindows1252, true
	default:
		return "", false
	}
}

// MovementRow is one exported movement with its owner's display name.
type MovementRow struct {
	Concept  string
	Amount   decimal.Decimal
	Type     models.MovementType
	Date     time.Time
	UserName string
}

// RowsFromMovements flattens movements with a preloaded User.
func RowsFromMovements(movements []models.Movement) []MovementRow {
	rows := make([]MovementRow, 0, len(movements))
	for _, m := range movements {
		rows = append(rows, MovementRow{
			Concept:  m.Concept,
			Amount:   m.Amount,
			Type:     m.Type,
			Date:     m.Date,
			UserName: m.User.Name,
		})
	}
	return rows
}

// ToCSV returns the semicolon separated document, prefixed with a UTF-8 BOM.
// Rows are written in the order given.
func ToCSV(rows []MovementRow) string {
	var b strings.Builder
	_ = WriteCSV(&b, rows)
	return b.String()
}

// WriteCSV streams the UTF-8 document to w.
func WriteCSV(w io.Writer, rows []MovementRow) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.WriteString(csvBOM); err != nil {
		return err
	}
	if err := writeRecords(bw, rows); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteCSVCharset writes the document in the requested charset. Only UTF-8
// output carries a BOM; characters missing from Windows-1252 are replaced.
func WriteCSVCharset(w io.Writer, rows []MovementRow, cs Charset) error {
	if cs != CharsetWindows1252 {
		return WriteCSV(w, rows)
	}

	tw := transform.NewWriter(w, encoding.ReplaceUnsupported(charmap.Windows1252.NewEncoder()))
	bw := bufio.NewWriter(tw)
	if err := writeRecords(bw, rows); err != nil {
		return err
	}
	if err := bw.Flush(); err != nil {
		return err
	}
	return tw.Close()
}

func writeRecords(w *bufio.Writer, rows []MovementRow) error {
	if _, err := w.WriteString(strings.Join(csvHeader, csvDelimiter)); err != nil {
		return err
	}
	for _, r := range rows {
		if err := w.WriteByte('\n'); err != nil {
			return err
		}
		fields := []string{
			quote(r.Concept),
			r.Amount.StringFixed(2),
			r.Type.Label(),
			r.Date.UTC().Format(dateLayout),
			quote(r.UserName),
		}
		if _, err := w.WriteString(strings.Join(fields, csvDelimiter)); err != nil {
			return err
		}
	}
	return nil
}

// quote always wraps s in double quotes, doubling any embedded quote.
func quote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

// Filename returns the attachment name for a report generated at now.
func Filename(ext string, now time.Time) string {
	return "reporte-movimientos-" + now.UTC().Format(dateLayout) + "." + ext
}
