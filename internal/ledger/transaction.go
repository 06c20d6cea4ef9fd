package ledger

import (
	"fmt"
	"io"
	"strings"

	"github.com/theirongolddev/spendwatch/internal/model"
	"github.com/theirongolddev/spendwatch/internal/prompt"
)

// RecordTransaction captures one transaction. seq is the 1-based number
// shown in the prompts.
func RecordTransaction(p prompt.Prompter, out io.Writer, seq int) (model.Transaction, error) {
	desc, err := p.Ask(fmt.Sprintf("Description for transaction %d: ", seq))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("reading description %d: %w", seq, err)
	}

	amount, err := ReadAmount(p, out, fmt.Sprintf("Amount for transaction %d: ", seq))
	if err != nil {
		return model.Transaction{}, fmt.Errorf("reading amount %d: %w", seq, err)
	}

	return model.Transaction{
		Description: strings.TrimSpace(desc),
		Amount:      amount,
	}, nil
}
