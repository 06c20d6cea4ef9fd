package ledger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spendwatch/internal/model"
	"github.com/theirongolddev/spendwatch/internal/prompt"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
	zerolog.SetGlobalLevel(zerolog.Disabled)
}

// scripted is a Prompter that replays answers and records every label asked.
type scripted struct {
	answers []string
	labels  []string
}

func (s *scripted) Ask(label string) (string, error) {
	s.labels = append(s.labels, label)
	if len(s.answers) == 0 {
		return "", prompt.ErrInputClosed
	}
	a := s.answers[0]
	s.answers = s.answers[1:]
	return a, nil
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertAmount(t *testing.T, name string, got decimal.Decimal, want string) {
	t.Helper()
	if !got.Equal(d(want)) {
		t.Errorf("%s = %s, want %s", name, got.StringFixed(2), want)
	}
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr error
	}{
		{"75", "75", nil},
		{"  20.00 ", "20", nil},
		{"0", "0", nil},
		{"-0", "0", nil},
		{"+5.5", "5.5", nil},
		{"1e2", "100", nil},
		{".25", "0.25", nil},
		{"abc", "", ErrNotANumber},
		{"", "", ErrNotANumber},
		{"   ", "", ErrNotANumber},
		{"1.2.3", "", ErrNotANumber},
		{"$5", "", ErrNotANumber},
		{"NaN", "", ErrNotANumber},
		{"1e2000000000", "", ErrNotANumber},
		{"1e-2000000000", "", ErrNotANumber},
		{"1e31", "", ErrNotANumber},
		{"1234567890123456789012345678901", "", ErrNotANumber},
		{"1e30", "1e30", nil},
		{"123456789012345678901234567890", "123456789012345678901234567890", nil},
		{"-10", "", ErrNegative},
		{"-0.01", "", ErrNegative},
	}

	for _, tt := range tests {
		got, err := ParseAmount(tt.in)
		if tt.wantErr != nil {
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ParseAmount(%q) error = %v, want %v", tt.in, err, tt.wantErr)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseAmount(%q) unexpected error: %v", tt.in, err)
			continue
		}
		assertAmount(t, "ParseAmount("+tt.in+")", got, tt.want)
	}
}

func TestReadAmount_RepromptsUntilValid(t *testing.T) {
	p := &scripted{answers: []string{"abc", "-5", "12.5"}}
	var out bytes.Buffer

	got, err := ReadAmount(p, &out, "Amount: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAmount(t, "amount", got, "12.5")

	if len(p.labels) != 3 {
		t.Errorf("asked %d times, want 3", len(p.labels))
	}
	if !strings.Contains(out.String(), "Invalid input. Please enter a valid numerical value.") {
		t.Errorf("missing parse error message:\n%s", out.String())
	}
	if !strings.Contains(out.String(), "must be a non-negative value") {
		t.Errorf("missing negative value message:\n%s", out.String())
	}
}

func TestReadAmount_RejectsOversizedExponent(t *testing.T) {
	p := &scripted{answers: []string{"1e2000000000", "1"}}
	var out bytes.Buffer

	got, err := ReadAmount(p, &out, "Amount: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAmount(t, "amount", got, "1")
	if !strings.Contains(out.String(), "Invalid input.") {
		t.Errorf("oversized amount not reported:\n%s", out.String())
	}
}

func TestReadAmount_InputClosed(t *testing.T) {
	p := &scripted{answers: []string{"abc"}}
	var out bytes.Buffer

	_, err := ReadAmount(p, &out, "Amount: ")
	if !errors.Is(err, prompt.ErrInputClosed) {
		t.Fatalf("error = %v, want ErrInputClosed", err)
	}
}

// Scenario E: "abc", "-10", "75" -> only 75 accepted.
func TestInitializeBudget_RejectsInvalid(t *testing.T) {
	p := &scripted{answers: []string{"abc", "-10", "75"}}
	var out bytes.Buffer

	b, err := InitializeBudget(p, &out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertAmount(t, "budget", b, "75")

	for _, label := range p.labels {
		if label != BudgetPrompt {
			t.Errorf("label = %q, want %q", label, BudgetPrompt)
		}
	}
	if !strings.Contains(out.String(), "Budget must be a non-negative value. Please try again.") {
		t.Errorf("missing budget-specific negative message:\n%s", out.String())
	}
}

func TestRecordTransaction(t *testing.T) {
	p := &scripted{answers: []string{"  Coffee beans  ", "nope", "14.99"}}
	var out bytes.Buffer

	tx, err := RecordTransaction(p, &out, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Description != "Coffee beans" {
		t.Errorf("Description = %q, want trimmed %q", tx.Description, "Coffee beans")
	}
	assertAmount(t, "Amount", tx.Amount, "14.99")

	if !strings.Contains(p.labels[0], "transaction 3") {
		t.Errorf("description prompt %q does not show sequence number", p.labels[0])
	}
}

func TestRecordTransaction_EmptyDescription(t *testing.T) {
	p := &scripted{answers: []string{"   ", "0"}}
	var out bytes.Buffer

	tx, err := RecordTransaction(p, &out, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tx.Description != "" {
		t.Errorf("Description = %q, want empty", tx.Description)
	}
}

func TestDetectBreach(t *testing.T) {
	tests := []struct {
		spent, budget string
		want          bool
		deficit       string
	}{
		{"0", "0", false, ""},
		{"50", "50", false, ""},
		{"49.99", "50", false, ""},
		{"50.01", "50", true, "0.01"},
		{"60", "50", true, "10"},
		{"0.01", "0", true, "0.01"},
	}

	for _, tt := range tests {
		b, got := DetectBreach(d(tt.spent), d(tt.budget))
		if got != tt.want {
			t.Errorf("DetectBreach(%s, %s) = %v, want %v", tt.spent, tt.budget, got, tt.want)
			continue
		}
		if got {
			assertAmount(t, "Deficit", b.Deficit, tt.deficit)
		}
	}
}

func TestSummarize(t *testing.T) {
	txs := []model.Transaction{
		{Description: "Lunch", Amount: d("20.00")},
		{Description: "Bus", Amount: d("5.50")},
	}

	s := Summarize(d("100"), txs)
	assertAmount(t, "TotalExpenses", s.TotalExpenses, "25.50")
	assertAmount(t, "Position", s.Position, "74.50")
	assertAmount(t, "Remaining", s.Remaining(), "74.50")
	if s.OverBudget() {
		t.Error("OverBudget = true, want false")
	}

	txs[0].Description = "mutated"
	if s.Transactions[0].Description != "Lunch" {
		t.Error("Summarize must not share the caller's slice")
	}

	over := Summarize(d("50"), []model.Transaction{{Description: "Rent", Amount: d("60")}})
	if !over.OverBudget() {
		t.Fatal("OverBudget = false, want true")
	}
	assertAmount(t, "Deficit", over.Deficit(), "10")
	assertAmount(t, "Remaining", over.Remaining(), "0")
}

func TestSession_AcceptKeepsRunningTotal(t *testing.T) {
	budget := d("10")
	s := NewSession(&scripted{}, &bytes.Buffer{}, Options{Budget: &budget})

	amounts := []string{"1.10", "2.20", "3.30", "4.40"}
	want := decimal.Zero
	for i, a := range amounts {
		_, breached := s.Accept(model.Transaction{Amount: d(a)})
		want = want.Add(d(a))

		assertAmount(t, "Spent", s.Spent(), want.String())
		if breached != want.GreaterThan(budget) {
			t.Errorf("after %d transactions breached = %v, spent %s", i+1, breached, want)
		}
	}
	if len(s.Transactions()) != len(amounts) {
		t.Errorf("len(Transactions) = %d, want %d", len(s.Transactions()), len(amounts))
	}
}

func TestSession_FinishRequiresTransaction(t *testing.T) {
	budget := d("10")
	s := NewSession(&scripted{}, &bytes.Buffer{}, Options{Budget: &budget})

	if err := s.Finish(); !errors.Is(err, ErrPrematureFinish) {
		t.Fatalf("Finish with no transactions = %v, want ErrPrematureFinish", err)
	}
	if s.State() == Finished {
		t.Fatal("session finished with no transactions")
	}

	s.Accept(model.Transaction{Amount: d("1")})
	if err := s.Finish(); err != nil {
		t.Fatalf("Finish after one transaction: %v", err)
	}
	if s.State() != Finished {
		t.Errorf("State = %v, want finished", s.State())
	}
}

func TestIsFinish(t *testing.T) {
	for _, in := range []string{"done", "DONE", "  Done\t"} {
		if !IsFinish(in) {
			t.Errorf("IsFinish(%q) = false", in)
		}
	}
	for _, in := range []string{"", "y", "done!", "d one", "finished"} {
		if IsFinish(in) {
			t.Errorf("IsFinish(%q) = true", in)
		}
	}
}
