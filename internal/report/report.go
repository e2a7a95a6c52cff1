// Package report aggregates movements into balances and per-month totals.
//
// Amounts are accumulated with full decimal precision and rounded to two
// places (half away from zero) only when a Report is produced.
package report

import (
	"sort"

	"financeapp/internal/models"

	"github.com/shopspring/decimal"
)

const monthLayout = "2006-01"

var hundred = decimal.NewFromInt(100)

// MonthlyData holds the income and expense totals of one calendar month.
type MonthlyData struct {
	Month   string  `json:"month" example:"2024-01"`
	Income  float64 `json:"income" example:"5000"`
	Expense float64 `json:"expense" example:"2000"`
}

// Report is the derived summary served to administrators.
type Report struct {
	Balance        float64 `json:"balance" example:"4000"`
	TotalIncome    float64 `json:"totalIncome" example:"6000"`
	TotalExpense   float64 `json:"totalExpense" example:"2000"`
	MovementsCount int     `json:"movementsCount" example:"3"`
	// BalancePercentage is balance over total income, in percent. It is null
	// when there is no income to compare against.
	BalancePercentage *float64      `json:"balancePercentage" example:"66.67"`
	MonthlyData       []MonthlyData `json:"monthlyData"`
}

type totals struct {
	income  decimal.Decimal
	expense decimal.Decimal
}

func (t *totals) add(m models.Movement) {
	switch m.Type {
	case models.MovementIncome:
		t.income = t.income.Add(m.Amount)
	case models.MovementExpense:
		t.expense = t.expense.Add(m.Amount)
	}
}

// CalculateBalance returns the sum of incomes minus the sum of expenses.
func CalculateBalance(movements []models.Movement) decimal.Decimal {
	balance := decimal.Zero
	for _, m := range movements {
		switch m.Type {
		case models.MovementIncome:
			balance = balance.Add(m.Amount)
		case models.MovementExpense:
			balance = balance.Sub(m.Amount)
		}
	}
	return balance
}

// MonthKey returns the YYYY-MM key of the movement date in UTC.
func MonthKey(m models.Movement) string {
	return m.Date.UTC().Format(monthLayout)
}

// MonthlyBreakdown groups movements by UTC month, sorted ascending.
func MonthlyBreakdown(movements []models.Movement) []MonthlyData {
	byMonth := make(map[string]*totals)
	for _, m := range movements {
		key := MonthKey(m)
		acc, ok := byMonth[key]
		if !ok {
			acc = &totals{}
			byMonth[key] = acc
		}
		acc.add(m)
	}

	keys := make([]string, 0, len(byMonth))
	for k := range byMonth {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out := make([]MonthlyData, 0, len(keys))
	for _, k := range keys {
		acc := byMonth[k]
		out = append(out, MonthlyData{
			Month:   k,
			Income:  round(acc.income),
			Expense: round(acc.expense),
		})
	}
	return out
}

// Compute builds the full report for movements.
func Compute(movements []models.Movement) Report {
	var all totals
	for _, m := range movements {
		all.add(m)
	}
	balance := all.income.Sub(all.expense)

	r := Report{
		Balance:        round(balance),
		TotalIncome:    round(all.income),
		TotalExpense:   round(all.expense),
		MovementsCount: len(movements),
		MonthlyData:    MonthlyBreakdown(movements),
	}
	if !all.income.IsZero() {
		pct := round(balance.Div(all.income).Mul(hundred))
		r.BalancePercentage = &pct
	}
	return r
}

func round(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
