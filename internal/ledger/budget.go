package ledger

import (
	"fmt"
	"io"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spendwatch/internal/model"
	"github.com/theirongolddev/spendwatch/internal/prompt"
)

// BudgetPrompt is the question used to obtain the session budget.
const BudgetPrompt = "Enter your budget for this period (e.g., a week): "

// InitializeBudget asks for the session budget.
func InitializeBudget(p prompt.Prompter, out io.Writer) (decimal.Decimal, error) {
	r := amountReader{
		p:           p,
		out:         out,
		negativeMsg: "Budget must be a non-negative value. Please try again.",
	}
	b, err := r.read(BudgetPrompt)
	if err != nil {
		return decimal.Zero, fmt.Errorf("reading budget: %w", err)
	}
	return b, nil
}

// DetectBreach reports whether spent is strictly greater than budget and, if
// so, by how much. Spending exactly the budget is not a breach.
func DetectBreach(spent, budget decimal.Decimal) (model.Breach, bool) {
	if !spent.GreaterThan(budget) {
		return model.Breach{}, false
	}
	return model.Breach{
		Spent:   spent,
		Budget:  budget,
		Deficit: spent.Sub(budget),
	}, true
}

// Summarize totals txs against budget.
func Summarize(budget decimal.Decimal, txs []model.Transaction) model.Summary {
	total := decimal.Zero
	for _, tx := range txs {
		total = total.Add(tx.Amount)
	}

	items := make([]model.Transaction, len(txs))
	copy(items, txs)

	return model.Summary{
		Budget:        budget,
		TotalExpenses: total,
		Position:      budget.Sub(total),
		Transactions:  items,
	}
}
