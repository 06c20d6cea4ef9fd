package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spendwatch/internal/model"
	"github.com/theirongolddev/spendwatch/internal/theme"
)

type styles struct {
	title  lipgloss.Style
	header lipgloss.Style
	value  lipgloss.Style
	muted  lipgloss.Style
	dim    lipgloss.Style
	good   lipgloss.Style
	warn   lipgloss.Style
	bad    lipgloss.Style
}

func activeStyles() styles {
	t := theme.Active
	return styles{
		title:  lipgloss.NewStyle().Bold(true).Foreground(t.Text).Align(lipgloss.Center),
		header: lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		value:  lipgloss.NewStyle().Foreground(t.Text),
		muted:  lipgloss.NewStyle().Foreground(t.TextMuted),
		dim:    lipgloss.NewStyle().Foreground(t.TextDim),
		good:   lipgloss.NewStyle().Foreground(t.Green),
		warn:   lipgloss.NewStyle().Foreground(t.Yellow),
		bad:    lipgloss.NewStyle().Bold(true).Foreground(t.Red),
	}
}

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	// LeftAlign lists the columns rendered flush left; column 0 always is.
	LeftAlign []int
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(45).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(activeStyles().title.Render(title))
}

// RenderTable renders a bordered table with headers and rows. A row holding
// the single cell "---" renders as a separator.
func RenderTable(t Table) string {
	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}
	if numCols == 0 {
		return ""
	}

	widths := make([]int, numCols)
	for i, h := range t.Headers {
		widths[i] = max(widths[i], lipgloss.Width(h))
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < numCols {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	left := map[int]bool{0: true}
	for _, i := range t.LeftAlign {
		left[i] = true
	}

	st := activeStyles()
	rule := func(l, mid, r string) string {
		parts := make([]string, numCols)
		for i, w := range widths {
			parts[i] = strings.Repeat("─", w+2)
		}
		return st.dim.Render(l+strings.Join(parts, mid)+r) + "\n"
	}
	line := func(cells []string, style lipgloss.Style) string {
		var b strings.Builder
		b.WriteString(st.dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(cells) {
				cell = cells[i]
			}
			pad := strings.Repeat(" ", widths[i]-lipgloss.Width(cell))
			if left[i] {
				b.WriteString(style.Render(" " + cell + pad + " "))
			} else {
				b.WriteString(style.Render(" " + pad + cell + " "))
			}
			b.WriteString(st.dim.Render("│"))
		}
		b.WriteString("\n")
		return b.String()
	}

	var b strings.Builder
	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(st.header.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))
	if len(t.Headers) > 0 {
		b.WriteString(line(t.Headers, st.header))
		b.WriteString(rule("├", "┼", "┤"))
	}
	for _, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}
		b.WriteString(line(row, st.value))
	}
	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}

// RenderError renders a recoverable input problem.
func RenderError(msg string) string {
	return activeStyles().warn.Render(msg)
}

// RenderNotice renders an informational, non-blocking note.
func RenderNotice(msg string) string {
	return activeStyles().muted.Render(msg)
}

// RenderFeedback confirms a recorded transaction and the new running total.
func RenderFeedback(tx model.Transaction, spent decimal.Decimal) string {
	st := activeStyles()
	desc := tx.Description
	if desc == "" {
		desc = "(no description)"
	}
	return st.good.Render("Recorded: ") +
		st.value.Render(fmt.Sprintf("%s %s", desc, FormatAmount(tx.Amount))) +
		st.muted.Render(". Total spent so far: ") +
		st.value.Render(FormatAmount(spent))
}

// RenderBreach renders the over-budget warning.
func RenderBreach(b model.Breach) string {
	st := activeStyles()
	return st.bad.Render(fmt.Sprintf("Warning: You have exceeded your budget by %s!", FormatAmount(b.Deficit))) +
		"\n" +
		st.muted.Render(fmt.Sprintf("Total spent: %s, Budget: %s", FormatAmount(b.Spent), FormatAmount(b.Budget)))
}

// RenderReport renders the end-of-session summary.
func RenderReport(s model.Summary) string {
	st := activeStyles()

	rows := [][]string{
		{"Initial Budget", FormatAmount(s.Budget)},
		{"Total Expenses", FormatAmount(s.TotalExpenses)},
		{"---"},
	}
	if s.OverBudget() {
		rows = append(rows, []string{"Deficit Amount", FormatAmount(s.Deficit())})
	} else {
		rows = append(rows, []string{"Remaining Balance", FormatAmount(s.Remaining())})
	}

	var b strings.Builder
	b.WriteString(RenderTitle("SPENDING SUMMARY"))
	b.WriteString("\n\n")
	b.WriteString(RenderTable(Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))
	b.WriteString("\n")

	if len(s.Transactions) == 0 {
		b.WriteString("  ")
		b.WriteString(st.muted.Render("No transactions recorded"))
		b.WriteString("\n")
		return b.String()
	}

	items := make([][]string, 0, len(s.Transactions))
	for i, tx := range s.Transactions {
		items = append(items, []string{strconv.Itoa(i + 1), tx.Description, FormatAmount(tx.Amount)})
	}
	b.WriteString(RenderTable(Table{
		Title:     fmt.Sprintf("Transactions (%d)", len(s.Transactions)),
		Headers:   []string{"#", "Description", "Amount"},
		Rows:      items,
		LeftAlign: []int{1},
	}))

	return b.String()
}
