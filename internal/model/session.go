// Package model defines domain types for spendwatch sessions.
package model

import "github.com/shopspring/decimal"

// Transaction is one recorded expense. Once accepted it is never edited.
type Transaction struct {
	Description string
	Amount      decimal.Decimal
}
