package model

import "github.com/shopspring/decimal"

// Breach describes cumulative spending that has gone past the budget.
type Breach struct {
	Spent   decimal.Decimal
	Budget  decimal.Decimal
	Deficit decimal.Decimal // Spent - Budget, always positive
}

// Summary is the end-of-session projection of a budget and its transactions.
type Summary struct {
	Budget        decimal.Decimal
	TotalExpenses decimal.Decimal
	Position      decimal.Decimal // Budget - TotalExpenses
	Transactions  []Transaction
}

// OverBudget reports whether the final position is a deficit.
func (s Summary) OverBudget() bool {
	return s.Position.IsNegative()
}

// Remaining returns the unspent balance, or zero when over budget.
func (s Summary) Remaining() decimal.Decimal {
	if s.OverBudget() {
		return decimal.Zero
	}
	return s.Position
}

// Deficit returns the absolute shortfall, or zero when within budget.
func (s Summary) Deficit() decimal.Decimal {
	if !s.OverBudget() {
		return decimal.Zero
	}
	return s.Position.Abs()
}
