package wallet

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
)

// Dialog messages and labels
const (
	MsgInvalidAmount  = "Please enter a valid amount"
	MsgAddFundsFailed = "Failed to add funds. Please try again."
	LabelSubmit       = "Add Funds"
	LabelSubmitting   = "Adding…"
)

// DialogState is the state of the add-funds dialog
type DialogState string

const (
	DialogClosed     DialogState = "closed"
	DialogOpen       DialogState = "open"
	DialogSubmitting DialogState = "submitting"
)

// AddFundsFunc persists a validated amount. token is the dialog's
// idempotency token for the current open cycle.
type AddFundsFunc func(ctx context.Context, amount decimal.Decimal, token string) error

// DialogView is what the page renders for the dialog
type DialogView struct {
	State          DialogState `json:"state"`
	Open           bool        `json:"open"`
	Amount         string      `json:"amount"`
	Error          string      `json:"error,omitempty"`
	SubmitLabel    string      `json:"submitLabel"`
	SubmitDisabled bool        `json:"submitDisabled"`
	CancelDisabled bool        `json:"cancelDisabled"`
	Token          string      `json:"token,omitempty"`
}

// FundsDialog is the add-funds modal form. It validates the entered
// amount and delegates persistence to a caller-supplied function.
// Cancelling is refused while a submit is in flight.
type FundsDialog struct {
	mu       sync.Mutex
	state    DialogState
	amount   string
	errMsg   string
	token    string
	newToken func() string
}

// NewFundsDialog creates a closed dialog
func NewFundsDialog() *FundsDialog {
	return &FundsDialog{
		state:    DialogClosed,
		newToken: uuid.NewString,
	}
}

// Open shows the dialog and issues a fresh idempotency token.
// Opening an already open dialog keeps its input.
func (d *FundsDialog) Open() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state != DialogClosed {
		return
	}
	d.state = DialogOpen
	d.errMsg = ""
	d.token = d.newToken()
}

// Close hides the dialog without side effects
func (d *FundsDialog) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == DialogSubmitting {
		return errs.ErrSubmitInFlight
	}
	d.state = DialogClosed
	d.errMsg = ""
	d.token = ""
	return nil
}

// Reset closes the dialog and forgets the entered amount, used when the
// session identity changes
func (d *FundsDialog) Reset() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.state == DialogSubmitting {
		return errs.ErrSubmitInFlight
	}
	d.state = DialogClosed
	d.amount = ""
	d.errMsg = ""
	d.token = ""
	return nil
}

// Submit validates text and, when it is a positive amount, calls
// addFunds. On success the input is cleared and the dialog closes; on
// failure it stays open with the amount preserved for retry.
func (d *FundsDialog) Submit(ctx context.Context, text string, addFunds AddFundsFunc) error {
	d.mu.Lock()
	switch d.state {
	case DialogClosed:
		d.mu.Unlock()
		return errs.ErrDialogNotOpen
	case DialogSubmitting:
		d.mu.Unlock()
		return errs.ErrSubmitInFlight
	}

	d.amount = text
	amount, err := entity.ParseAmount(text)
	if err != nil {
		d.errMsg = MsgInvalidAmount
		d.mu.Unlock()
		return err
	}

	d.state = DialogSubmitting
	d.errMsg = ""
	token := d.token
	d.mu.Unlock()

	err = addFunds(ctx, amount, token)

	d.mu.Lock()
	defer d.mu.Unlock()

	if err != nil {
		d.state = DialogOpen
		d.errMsg = MsgAddFundsFailed
		return err
	}

	d.state = DialogClosed
	d.amount = ""
	d.errMsg = ""
	d.token = ""
	return nil
}

// State returns the current dialog state
func (d *FundsDialog) State() DialogState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

// View returns a render snapshot of the dialog
func (d *FundsDialog) View() DialogView {
	d.mu.Lock()
	defer d.mu.Unlock()

	submitting := d.state == DialogSubmitting
	label := LabelSubmit
	if submitting {
		label = LabelSubmitting
	}

	return DialogView{
		State:          d.state,
		Open:           d.state != DialogClosed,
		Amount:         d.amount,
		Error:          d.errMsg,
		SubmitLabel:    label,
		SubmitDisabled: submitting,
		CancelDisabled: submitting,
		Token:          d.token,
	}
}
