package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// MovementType distinguishes money coming in from money going out.
type MovementType string

const (
	MovementIncome  MovementType = "INCOME"
	MovementExpense MovementType = "EXPENSE"
)

// IsValid reports whether t is a known movement type.
func (t MovementType) IsValid() bool {
	return t == MovementIncome || t == MovementExpense
}

// Label returns the user-facing Spanish label used in exports.
func (t MovementType) Label() string {
	if t == MovementIncome {
		return "Ingreso"
	}
	return "Egreso"
}

// Movement is a single income or expense entry. Movements are never updated
// after creation.
type Movement struct {
	Base
	Concept string          `gorm:"not null" json:"concept"`
	Amount  decimal.Decimal `gorm:"type:numeric(14,2);not null" json:"amount"`
	Type    MovementType    `gorm:"type:varchar(16);not null;index" json:"type"`
	Date    time.Time       `gorm:"not null;index" json:"date"`
	UserID  string          `gorm:"type:uuid;not null;index" json:"userId"`
	User    User            `gorm:"foreignKey:UserID" json:"user"`
}
