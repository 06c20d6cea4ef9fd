package cli

import (
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spendwatch/internal/theme"
)

// UsageRatio returns spent/budget as a float. A zero budget counts as fully
// used once anything has been spent.
func UsageRatio(spent, budget decimal.Decimal) float64 {
	if budget.IsZero() {
		if spent.IsPositive() {
			return 1
		}
		return 0
	}
	return spent.Div(budget).InexactFloat64()
}

// ColorForUsage returns the theme color for a budget usage ratio.
func ColorForUsage(ratio float64) lipgloss.Color {
	t := theme.Active
	switch {
	case ratio > 1:
		return t.Red
	case ratio >= 0.8:
		return t.Orange
	case ratio >= 0.5:
		return t.Yellow
	default:
		return t.Green
	}
}

// RenderUsage renders a labeled bar of budget consumption. The bar saturates
// at 100% while the percentage keeps counting.
func RenderUsage(spent, budget decimal.Decimal, barWidth int) string {
	ratio := UsageRatio(spent, budget)
	fill := min(max(ratio, 0), 1)
	color := ColorForUsage(ratio)

	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	bar.EmptyColor = string(theme.Active.TextDim)

	pct := FormatPercent(ratio)
	if budget.IsZero() && spent.IsPositive() {
		pct = "n/a"
	}

	st := activeStyles()
	pctStyle := lipgloss.NewStyle().Foreground(color).Bold(true)
	return st.muted.Render("Budget used ") +
		bar.ViewAs(fill) +
		" " +
		pctStyle.Render(pct)
}
