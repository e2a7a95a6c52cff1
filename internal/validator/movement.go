package validator

import (
	"encoding/json"
	"math"
	"strings"
	"time"
	"unicode/utf8"

	"financeapp/internal/models"

	"github.com/shopspring/decimal"
)

// Messages returned by the validators. They are shown to end users as-is.
const (
	MsgConceptRequired   = "El concepto es requerido"
	MsgConceptTooShort   = "El concepto debe tener al menos 3 caracteres"
	MsgConceptNotText    = "El concepto debe ser texto"
	MsgAmountRequired    = "El monto es requerido"
	MsgAmountNotNumber   = "El monto debe ser un número válido"
	MsgAmountNotPositive = "El monto debe ser mayor a 0"
	MsgAmountTooLarge    = "El monto no puede superar 999.999.999.999,99"
	MsgTypeRequired      = "El tipo es requerido"
	MsgTypeInvalid       = "El tipo debe ser INCOME o EXPENSE"
	MsgDateRequired      = "La fecha es requerida"
	MsgDateInvalid       = "La fecha es inválida"
	MsgNameEmpty         = "El nombre no puede estar vacío"
	MsgNameTooShort      = "El nombre debe tener al menos 2 caracteres"
	MsgRoleInvalid       = "El rol debe ser USER o ADMIN"
)

const (
	minConceptLength = 3
	minNameLength    = 2
	amountPlaces     = 2
)

// MaxAmount is the largest amount a numeric(14,2) column holds.
var MaxAmount = decimal.RequireFromString("999999999999.99")

// Result is the outcome of a validation. It is a value, not an error, so
// handlers can branch on it before building a response.
type Result struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors"`
}

func newResult(errs []string) Result {
	if errs == nil {
		errs = []string{}
	}
	return Result{IsValid: len(errs) == 0, Errors: errs}
}

// MovementInput is the raw shape of a movement creation request. Fields are
// left untyped so that a value of the wrong JSON type is reported alongside
// every other violation instead of failing decoding.
type MovementInput struct {
	Concept any `json:"concept" swaggertype:"string"`
	Amount  any `json:"amount" swaggertype:"number"`
	Type    any `json:"type" swaggertype:"string"`
	Date    any `json:"date" swaggertype:"string"`
}

// Text returns v when it is a JSON string, and "" otherwise.
func Text(v any) string {
	s, _ := v.(string)
	return s
}

// ParsedAmount is the stored form of a valid amount, rounded to cents.
func (in MovementInput) ParsedAmount() decimal.Decimal {
	d, _ := ParseAmount(in.Amount)
	return d.Round(amountPlaces)
}

// ValidateMovement runs the concept, amount, type and date checks in that
// order. Every check runs; messages accumulate.
func ValidateMovement(in MovementInput) Result {
	var errs []string

	concept, isText := in.Concept.(string)
	concept = strings.TrimSpace(concept)
	switch {
	case in.Concept != nil && !isText:
		errs = append(errs, MsgConceptNotText)
	case concept == "":
		errs = append(errs, MsgConceptRequired)
	case utf8.RuneCountInString(concept) < minConceptLength:
		errs = append(errs, MsgConceptTooShort)
	}

	if in.Amount == nil {
		errs = append(errs, MsgAmountRequired)
	} else if amount, ok := ParseAmount(in.Amount); !ok {
		errs = append(errs, MsgAmountNotNumber)
	} else if stored := amount.Round(amountPlaces); !stored.IsPositive() {
		errs = append(errs, MsgAmountNotPositive)
	} else if stored.GreaterThan(MaxAmount) {
		errs = append(errs, MsgAmountTooLarge)
	}

	typ, isText := in.Type.(string)
	switch {
	case in.Type == nil || (isText && typ == ""):
		errs = append(errs, MsgTypeRequired)
	case !isText || !models.MovementType(typ).IsValid():
		errs = append(errs, MsgTypeInvalid)
	}

	date, isText := in.Date.(string)
	switch {
	case in.Date == nil || (isText && date == ""):
		errs = append(errs, MsgDateRequired)
	case !isText:
		errs = append(errs, MsgDateInvalid)
	default:
		if _, err := ParseDate(date); err != nil {
			errs = append(errs, MsgDateInvalid)
		}
	}

	return newResult(errs)
}

// UserUpdateInput carries the optional fields of a user update. A nil field
// is absent and is not validated.
type UserUpdateInput struct {
	Name *string `json:"name"`
	Role *string `json:"role"`
}

// Empty reports whether no field was provided.
func (in UserUpdateInput) Empty() bool {
	return in.Name == nil && in.Role == nil
}

// ValidateUserUpdate validates only the fields that are present.
func ValidateUserUpdate(in UserUpdateInput) Result {
	var errs []string

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		switch {
		case name == "":
			errs = append(errs, MsgNameEmpty)
		case utf8.RuneCountInString(name) < minNameLength:
			errs = append(errs, MsgNameTooShort)
		}
	}

	if in.Role != nil && !models.Role(*in.Role).IsValid() {
		errs = append(errs, MsgRoleInvalid)
	}

	return newResult(errs)
}

// ParseAmount converts a decoded JSON amount into a decimal. Only numeric
// values are accepted; numeric strings are not.
func ParseAmount(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(n), true
	case float32:
		return ParseAmount(float64(n))
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int64:
		return decimal.NewFromInt(n), true
	case decimal.Decimal:
		return n, true
	default:
		return decimal.Zero, false
	}
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseDate accepts RFC 3339 timestamps, local date-times without offset and
// plain dates. Values without an offset are taken as UTC.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.UTC(), nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
