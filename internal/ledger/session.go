package ledger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spendwatch/internal/cli"
	"github.com/theirongolddev/spendwatch/internal/model"
	"github.com/theirongolddev/spendwatch/internal/prompt"
)

// DefaultAdvisoryMinimum is the transaction count below which the session
// suggests recording more. It is advice only.
const DefaultAdvisoryMinimum = 5

// FinishToken ends the session when typed at the continue prompt.
const FinishToken = "done"

// ErrPrematureFinish is reported when finishing before any transaction.
var ErrPrematureFinish = errors.New("at least one transaction is required before finishing")

// State is a step of the oversight loop.
type State int

// Oversight loop states.
const (
	AwaitingTransaction State = iota
	RecordingTransaction
	CheckingBreach
	Finished
)

func (s State) String() string {
	switch s {
	case AwaitingTransaction:
		return "awaiting"
	case RecordingTransaction:
		return "recording"
	case CheckingBreach:
		return "checking"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Options configures a Session.
type Options struct {
	// Budget presets the budget and skips the budget prompt. It must be >= 0.
	Budget *decimal.Decimal
	// AdvisoryMinimum defaults to DefaultAdvisoryMinimum when <= 0.
	AdvisoryMinimum int
	// UsageBarWidth is the width of the budget usage bar; 0 hides it.
	UsageBarWidth int
}

// Session owns the budget, the accepted transactions and the running total
// for one oversight run.
type Session struct {
	p    prompt.Prompter
	out  io.Writer
	opts Options
	log  zerolog.Logger

	state        State
	budget       decimal.Decimal
	budgetSet    bool
	spent        decimal.Decimal
	transactions []model.Transaction
}

// NewSession returns a session that prompts through p and writes feedback
// to out.
func NewSession(p prompt.Prompter, out io.Writer, opts Options) *Session {
	if opts.AdvisoryMinimum <= 0 {
		opts.AdvisoryMinimum = DefaultAdvisoryMinimum
	}

	s := &Session{
		p:     p,
		out:   out,
		opts:  opts,
		log:   log.With().Str("session", uuid.NewString()).Logger(),
		spent: decimal.Zero,
	}
	if opts.Budget != nil {
		s.setBudget(*opts.Budget)
	}
	return s
}

// State returns the current loop state.
func (s *Session) State() State { return s.state }

// Budget returns the session budget; zero until it has been set.
func (s *Session) Budget() decimal.Decimal { return s.budget }

// Spent returns the cumulative spending so far.
func (s *Session) Spent() decimal.Decimal { return s.spent }

// Transactions returns a copy of the accepted transactions in entry order.
func (s *Session) Transactions() []model.Transaction {
	out := make([]model.Transaction, len(s.transactions))
	copy(out, s.transactions)
	return out
}

func (s *Session) setBudget(b decimal.Decimal) {
	s.budget = b
	s.budgetSet = true
	s.log.Debug().Str("budget", b.StringFixed(2)).Msg("budget set")
}

func (s *Session) transition(to State) {
	s.log.Debug().Stringer("from", s.state).Stringer("to", to).Msg("state")
	s.state = to
}

// Accept appends tx, updates the running total and runs breach detection.
func (s *Session) Accept(tx model.Transaction) (model.Breach, bool) {
	s.transactions = append(s.transactions, tx)
	s.spent = s.spent.Add(tx.Amount)

	s.transition(CheckingBreach)
	b, breached := DetectBreach(s.spent, s.budget)
	if breached {
		s.log.Debug().Str("deficit", b.Deficit.StringFixed(2)).Msg("budget exceeded")
	}
	return b, breached
}

// Finish validates that the session may end.
func (s *Session) Finish() error {
	if len(s.transactions) == 0 {
		return ErrPrematureFinish
	}
	s.transition(Finished)
	return nil
}

// Summary projects the current session state into a report.
func (s *Session) Summary() model.Summary {
	return Summarize(s.budget, s.transactions)
}

// IsFinish reports whether text asks to end the session.
func IsFinish(text string) bool {
	return strings.EqualFold(strings.TrimSpace(text), FinishToken)
}

// Run drives the session to completion: budget, transactions, report.
// It fails only when the prompter does, e.g. with prompt.ErrInputClosed.
func (s *Session) Run() (model.Summary, error) {
	if !s.budgetSet {
		b, err := InitializeBudget(s.p, s.out)
		if err != nil {
			return model.Summary{}, err
		}
		s.setBudget(b)
	}

	for s.state != Finished {
		s.transition(AwaitingTransaction)
		seq := len(s.transactions) + 1

		answer, err := s.p.Ask(fmt.Sprintf(
			"Transaction %d: press Enter to record it, or type '%s' to finish: ", seq, FinishToken))
		if err != nil {
			return model.Summary{}, fmt.Errorf("reading transaction %d: %w", seq, err)
		}

		if IsFinish(answer) {
			if err := s.Finish(); err != nil {
				fmt.Fprintln(s.out, cli.RenderError("At least one transaction is required before finishing."))
			}
			continue
		}

		s.transition(RecordingTransaction)
		tx, err := RecordTransaction(s.p, s.out, seq)
		if err != nil {
			return model.Summary{}, err
		}

		breach, breached := s.Accept(tx)
		fmt.Fprintln(s.out, cli.RenderFeedback(tx, s.spent))
		if s.opts.UsageBarWidth > 0 {
			fmt.Fprintln(s.out, cli.RenderUsage(s.spent, s.budget, s.opts.UsageBarWidth))
		}
		if breached {
			fmt.Fprintln(s.out, cli.RenderBreach(breach))
		}
	}

	if n := len(s.transactions); n < s.opts.AdvisoryMinimum {
		fmt.Fprintln(s.out, cli.RenderNotice(fmt.Sprintf(
			"Note: only %d %s recorded. At least %d are recommended for thorough testing.",
			n, cli.Plural(n, "transaction"), s.opts.AdvisoryMinimum)))
	}

	summary := s.Summary()
	fmt.Fprintln(s.out)
	fmt.Fprint(s.out, cli.RenderReport(summary))
	s.log.Debug().
		Int("transactions", len(summary.Transactions)).
		Str("total", summary.TotalExpenses.StringFixed(2)).
		Msg("session finished")

	return summary, nil
}
