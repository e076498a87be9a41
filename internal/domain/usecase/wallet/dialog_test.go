package wallet

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
)

func openDialog() *FundsDialog {
	d := NewFundsDialog()
	d.newToken = func() string { return "token-1" }
	d.Open()
	return d
}

func TestFundsDialog_OpenAndClose(t *testing.T) {
	d := NewFundsDialog()
	assert.Equal(t, DialogClosed, d.State())
	assert.False(t, d.View().Open)

	d.Open()
	view := d.View()
	assert.True(t, view.Open)
	assert.NotEmpty(t, view.Token)
	assert.Equal(t, LabelSubmit, view.SubmitLabel)

	// reopening keeps the token of the open cycle
	token := view.Token
	d.Open()
	assert.Equal(t, token, d.View().Token)

	require.NoError(t, d.Close())
	assert.Equal(t, DialogClosed, d.State())
	assert.Empty(t, d.View().Token)
}

func TestFundsDialog_InvalidAmounts(t *testing.T) {
	for _, input := range []string{"-5", "abc", "", "0"} {
		t.Run(input, func(t *testing.T) {
			d := openDialog()
			called := false

			err := d.Submit(context.Background(), input, func(context.Context, decimal.Decimal, string) error {
				called = true
				return nil
			})

			assert.ErrorIs(t, err, errs.ErrInvalidAmount)
			assert.False(t, called)
			view := d.View()
			assert.Equal(t, DialogOpen, view.State)
			assert.Equal(t, MsgInvalidAmount, view.Error)
			assert.Equal(t, input, view.Amount)
		})
	}
}

func TestFundsDialog_SubmitSuccess(t *testing.T) {
	d := openDialog()

	var gotAmount decimal.Decimal
	var gotToken string
	err := d.Submit(context.Background(), "25.50", func(_ context.Context, amount decimal.Decimal, token string) error {
		gotAmount = amount
		gotToken = token
		return nil
	})

	require.NoError(t, err)
	assert.True(t, gotAmount.Equal(decimal.RequireFromString("25.5")))
	assert.Equal(t, "token-1", gotToken)

	view := d.View()
	assert.Equal(t, DialogClosed, view.State)
	assert.Empty(t, view.Amount)
	assert.Empty(t, view.Error)
}

func TestFundsDialog_SubmitFailurePreservesInput(t *testing.T) {
	d := openDialog()
	storageErr := errors.New("storage unavailable")

	err := d.Submit(context.Background(), "50", func(context.Context, decimal.Decimal, string) error {
		return storageErr
	})

	assert.ErrorIs(t, err, storageErr)
	view := d.View()
	assert.Equal(t, DialogOpen, view.State)
	assert.Equal(t, "50", view.Amount)
	assert.Equal(t, MsgAddFundsFailed, view.Error)
	assert.Equal(t, "token-1", view.Token)

	// a retry reuses the token of the same open cycle
	var retryToken string
	require.NoError(t, d.Submit(context.Background(), "50", func(_ context.Context, _ decimal.Decimal, token string) error {
		retryToken = token
		return nil
	}))
	assert.Equal(t, "token-1", retryToken)
}

func TestFundsDialog_SubmitInFlight(t *testing.T) {
	d := openDialog()
	entered := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)

	go func() {
		done <- d.Submit(context.Background(), "10", func(context.Context, decimal.Decimal, string) error {
			close(entered)
			<-release
			return nil
		})
	}()
	<-entered

	view := d.View()
	assert.Equal(t, DialogSubmitting, view.State)
	assert.Equal(t, LabelSubmitting, view.SubmitLabel)
	assert.True(t, view.SubmitDisabled)
	assert.True(t, view.CancelDisabled)

	assert.ErrorIs(t, d.Close(), errs.ErrSubmitInFlight)
	assert.ErrorIs(t, d.Submit(context.Background(), "10", nil), errs.ErrSubmitInFlight)

	close(release)
	require.NoError(t, <-done)
	assert.Equal(t, DialogClosed, d.State())
}

func TestFundsDialog_SubmitWhileClosed(t *testing.T) {
	d := NewFundsDialog()
	err := d.Submit(context.Background(), "10", nil)
	assert.ErrorIs(t, err, errs.ErrDialogNotOpen)
}

func TestFundsDialog_ResetForgetsInput(t *testing.T) {
	d := openDialog()
	_ = d.Submit(context.Background(), "50", func(context.Context, decimal.Decimal, string) error {
		return errors.New("storage unavailable")
	})
	require.Equal(t, "50", d.View().Amount)

	require.NoError(t, d.Reset())

	view := d.View()
	assert.Equal(t, DialogClosed, view.State)
	assert.Empty(t, view.Amount)
	assert.Empty(t, view.Error)
	assert.Empty(t, view.Token)
}
