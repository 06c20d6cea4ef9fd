// Package ledger runs a budget-oversight session: it collects a budget,
// accumulates transactions, flags budget breaches and summarizes the result.
package ledger

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/theirongolddev/spendwatch/internal/cli"
	"github.com/theirongolddev/spendwatch/internal/prompt"
)

var (
	// ErrNotANumber is returned for input that does not parse as a decimal.
	ErrNotANumber = errors.New("not a number")
	// ErrNegative is returned for a number below zero.
	ErrNegative = errors.New("negative value")
)

// maxAmountDigits bounds both the significant digits and the exponent of an
// accepted amount. Larger values cannot be rendered in reasonable time.
const maxAmountDigits = 30

// Messages written when an amount is rejected.
const (
	msgNotANumber = "Invalid input. Please enter a valid numerical value."
	msgNegative   = "Amount must be a non-negative value. Please try again."
)

// ParseAmount parses text as a non-negative decimal amount. Surrounding
// whitespace is ignored.
func ParseAmount(text string) (decimal.Decimal, error) {
	text = strings.TrimSpace(text)
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrNotANumber, text)
	}
	if exp := d.Exponent(); exp > maxAmountDigits || exp < -maxAmountDigits || d.NumDigits() > maxAmountDigits {
		return decimal.Zero, fmt.Errorf("%w: %q is out of range", ErrNotANumber, text)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s", ErrNegative, d)
	}
	return d, nil
}

// amountReader asks for amounts until one is valid.
type amountReader struct {
	p   prompt.Prompter
	out io.Writer

	negativeMsg string
}

func (r amountReader) read(label string) (decimal.Decimal, error) {
	for {
		text, err := r.p.Ask(label)
		if err != nil {
			return decimal.Zero, err
		}

		d, err := ParseAmount(text)
		switch {
		case err == nil:
			return d, nil
		case errors.Is(err, ErrNegative):
			fmt.Fprintln(r.out, cli.RenderError(r.negativeMsg))
		default:
			fmt.Fprintln(r.out, cli.RenderError(msgNotANumber))
		}
	}
}

// ReadAmount prompts with label until a non-negative decimal is entered.
// Rejected input is reported on out and asked again; the only error returned
// is one from the prompter, such as prompt.ErrInputClosed.
func ReadAmount(p prompt.Prompter, out io.Writer, label string) (decimal.Decimal, error) {
	return amountReader{p: p, out: out, negativeMsg: msgNegative}.read(label)
}
