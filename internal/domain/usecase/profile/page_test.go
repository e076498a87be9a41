package profile

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/usecase/wallet"
	usecasemocks "github.com/amirhossein-jamali/wager-profile/mocks/port/usecase"
)

type pageFixture struct {
	identity *stubIdentity
	loader   *usecasemocks.MockProfileLoader
	funds    *usecasemocks.MockFundsUseCase
	logos    *usecasemocks.MockLogoResolver
	page     *Page
}

func newPageFixture(t *testing.T, identity *entity.Identity, setup func(f *pageFixture)) *pageFixture {
	f := &pageFixture{
		identity: newStubIdentity(identity),
		loader:   usecasemocks.NewMockProfileLoader(t),
		funds:    usecasemocks.NewMockFundsUseCase(t),
		logos:    usecasemocks.NewMockLogoResolver(t),
	}
	if setup != nil {
		setup(f)
	}
	f.page = NewPage(f.identity, PageDeps{
		Loader:       f.loader,
		Funds:        f.funds,
		Logos:        f.logos,
		LoadTimeout:  time.Second,
		TimeProvider: newClock(t),
		Metrics:      newQuietMetrics(t),
		Logger:       newQuietLogger(t),
	})
	t.Cleanup(f.page.Close)
	return f
}

func (f *pageFixture) waitReady(t *testing.T) PageView {
	t.Helper()
	waitForState(t, f.page.store, func(s State) bool { return !s.Loading })
	return f.page.View(context.Background())
}

var (
	lakersAtCeltics = &entity.Event{
		ID:          "evt-1",
		HomeTeam:    entity.Team{FullName: "Boston Celtics", Abbreviation: "BOS"},
		VisitorTeam: entity.Team{FullName: "Los Angeles Lakers", Abbreviation: "LAL"},
	}
	pageIdentity = &entity.Identity{ID: "ada", DisplayName: "Ada", Email: "ada@example.com"}
)

func historySnapshot() *entity.ProfileSnapshot {
	placed := time.Date(2025, 3, 1, 19, 30, 0, 0, time.UTC)
	return &entity.ProfileSnapshot{
		AccountFound: true,
		Balance:      decimal.RequireFromString("100.00"),
		Trades: []entity.TradeView{
			{
				Trade: entity.Trade{ID: "t3", Amount: decimal.RequireFromString("10"), ExpectedPayout: decimal.RequireFromString("19.5"),
					CreatedAt: placed, SelectedTeam: entity.TeamSideVisitor, Status: entity.TradeStatusLost},
				Event: lakersAtCeltics,
			},
			{
				Trade: entity.Trade{ID: "t2", Amount: decimal.RequireFromString("1250"), ExpectedPayout: decimal.RequireFromString("2400"),
					CreatedAt: placed.Add(-time.Hour), SelectedTeam: entity.TeamSideHome, Status: entity.TradeStatusWon},
			},
			{
				Trade: entity.Trade{ID: "t1", Amount: decimal.RequireFromString("5"), ExpectedPayout: decimal.RequireFromString("9"),
					CreatedAt: placed.Add(-2 * time.Hour), SelectedTeam: entity.TeamSideHome, Status: entity.TradeStatusWon},
				Event: lakersAtCeltics,
			},
		},
	}
}

func TestPage_Unauthenticated(t *testing.T) {
	f := newPageFixture(t, nil, nil)

	view := f.page.View(context.Background())

	assert.Equal(t, ViewUnauthenticated, view.State)
	assert.Equal(t, SignInPrompt, view.Message)
	assert.Nil(t, view.Identity)
	assert.ErrorIs(t, f.page.OpenFunds(), errs.ErrUnauthenticated)
}

func TestPage_Loading(t *testing.T) {
	release := make(chan struct{})
	f := newPageFixture(t, pageIdentity, func(f *pageFixture) {
		f.loader.EXPECT().Load(mock.Anything, pageIdentity).RunAndReturn(func(ctx context.Context, _ *entity.Identity) (*entity.ProfileSnapshot, error) {
			select {
			case <-release:
			case <-ctx.Done():
			}
			return entity.EmptyProfileSnapshot(), nil
		}).Once()
	})

	view := f.page.View(context.Background())
	assert.Equal(t, ViewLoading, view.State)
	assert.Nil(t, view.Identity)

	close(release)
	assert.Equal(t, ViewReady, f.waitReady(t).State)
}

func TestPage_ReadyView(t *testing.T) {
	f := newPageFixture(t, pageIdentity, func(f *pageFixture) {
		f.loader.EXPECT().Load(mock.Anything, pageIdentity).Return(historySnapshot(), nil).Once()
		f.logos.EXPECT().Resolve(mock.Anything, "LAL", "Los Angeles Lakers").Return(entity.NewLogo("/logos/LAL.png", "Los Angeles Lakers")).Once()
		f.logos.EXPECT().Resolve(mock.Anything, "BOS", "Boston Celtics").Return(nil).Once()
	})

	view := f.waitReady(t)

	assert.Equal(t, ViewReady, view.State)
	require.NotNil(t, view.Identity)
	assert.Equal(t, "Ada", view.Identity.DisplayName)
	assert.Equal(t, "2W - 1L", view.Record.Label)
	assert.Equal(t, "$100.00", view.Balance)
	assert.Empty(t, view.EmptyMessage)
	assert.False(t, view.LoadFailed)
	require.NotNil(t, view.Dialog)
	assert.False(t, view.Dialog.Open)

	require.Len(t, view.Trades, 3)

	lost := view.Trades[0]
	assert.Equal(t, "Los Angeles Lakers", lost.TeamLabel)
	assert.Equal(t, "Mar 1, 2025, 7:30 PM", lost.PlacedAt)
	assert.Equal(t, "$10.00", lost.Stake)
	assert.Equal(t, "$19.50", lost.ExpectedPayout)
	assert.Equal(t, "badge badge-lost", lost.BadgeClass)
	assert.Equal(t, "Los Angeles Lakers @ Boston Celtics", lost.Fixture)
	require.NotNil(t, lost.Logo)
	assert.Equal(t, "Los Angeles Lakers logo", lost.Logo.Alt)

	orphan := view.Trades[1]
	assert.Equal(t, entity.UnknownTeamLabel, orphan.TeamLabel)
	assert.Equal(t, "$1,250.00", orphan.Stake)
	assert.Nil(t, orphan.Logo)
	assert.Empty(t, orphan.Fixture)

	assert.Nil(t, view.Trades[2].Logo)
}

func TestPage_EmptyHistory(t *testing.T) {
	f := newPageFixture(t, pageIdentity, func(f *pageFixture) {
		f.loader.EXPECT().Load(mock.Anything, pageIdentity).Return(entity.EmptyProfileSnapshot(), nil).Once()
	})

	view := f.waitReady(t)

	assert.Equal(t, ViewReady, view.State)
	assert.Equal(t, "0W - 0L", view.Record.Label)
	assert.Equal(t, "$0.00", view.Balance)
	assert.Empty(t, view.Trades)
	assert.Equal(t, EmptyTradeHistory, view.EmptyMessage)
}

func TestPage_LoadFailureIsVisible(t *testing.T) {
	f := newPageFixture(t, pageIdentity, func(f *pageFixture) {
		f.loader.EXPECT().Load(mock.Anything, pageIdentity).Return(nil, errs.ErrDatabaseConnection).Once()
	})

	view := f.waitReady(t)

	assert.Equal(t, ViewReady, view.State)
	assert.True(t, view.LoadFailed)
	assert.Equal(t, LoadFailedMessage, view.Message)
}

func TestPage_AddFunds(t *testing.T) {
	f := newPageFixture(t, pageIdentity, func(f *pageFixture) {
		f.loader.EXPECT().Load(mock.Anything, pageIdentity).Return(historySnapshot(), nil).Once()
		f.logos.EXPECT().Resolve(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	})
	f.waitReady(t)

	require.NoError(t, f.page.OpenFunds())
	token := f.page.DialogToken()
	require.NotEmpty(t, token)

	f.funds.EXPECT().AddFunds(mock.Anything, pageIdentity, mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(50))
	}), token).Return(decimal.RequireFromString("150.00"), nil).Once()

	require.NoError(t, f.page.AddFunds(context.Background(), "50"))

	view := f.page.View(context.Background())
	assert.Equal(t, "$150.00", view.Balance)
	assert.False(t, view.Dialog.Open)
	assert.Empty(t, f.page.DialogToken())
}

func TestPage_AddFundsFailureKeepsBalance(t *testing.T) {
	f := newPageFixture(t, pageIdentity, func(f *pageFixture) {
		f.loader.EXPECT().Load(mock.Anything, pageIdentity).Return(historySnapshot(), nil).Once()
		f.logos.EXPECT().Resolve(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	})
	f.waitReady(t)
	require.NoError(t, f.page.OpenFunds())

	f.funds.EXPECT().AddFunds(mock.Anything, pageIdentity, mock.Anything, mock.Anything).
		Return(decimal.Zero, errors.New("storage unavailable")).Once()

	assert.Error(t, f.page.AddFunds(context.Background(), "50"))

	view := f.page.View(context.Background())
	assert.Equal(t, "$100.00", view.Balance)
	assert.True(t, view.Dialog.Open)
	assert.Equal(t, "50", view.Dialog.Amount)
	assert.Equal(t, wallet.MsgAddFundsFailed, view.Dialog.Error)
}

func TestPage_Credit(t *testing.T) {
	f := newPageFixture(t, pageIdentity, func(f *pageFixture) {
		f.loader.EXPECT().Load(mock.Anything, pageIdentity).Return(entity.EmptyProfileSnapshot(), nil).Once()
	})
	f.waitReady(t)

	_, err := f.page.Credit(context.Background(), "abc", "key-1")
	assert.ErrorIs(t, err, errs.ErrInvalidAmount)

	f.funds.EXPECT().AddFunds(mock.Anything, pageIdentity, mock.Anything, "key-1").
		Return(decimal.RequireFromString("25.50"), nil).Once()

	balance, err := f.page.Credit(context.Background(), "25.50", "key-1")
	require.NoError(t, err)
	assert.Equal(t, "$25.50", entity.FormatUSD(balance))
	assert.Equal(t, "$25.50", f.page.View(context.Background()).Balance)
}

func TestPage_SignOutClosesDialog(t *testing.T) {
	f := newPageFixture(t, pageIdentity, func(f *pageFixture) {
		f.loader.EXPECT().Load(mock.Anything, pageIdentity).Return(entity.EmptyProfileSnapshot(), nil).Once()
	})
	f.waitReady(t)
	require.NoError(t, f.page.OpenFunds())

	f.page.SignOut()

	assert.Nil(t, f.page.Identity())
	assert.Empty(t, f.page.DialogToken())
	assert.Equal(t, ViewUnauthenticated, f.page.View(context.Background()).State)
}

func TestPage_CreditDuringReloadKeepsConfirmedBalance(t *testing.T) {
	reloading := make(chan struct{})
	release := make(chan struct{})
	f := newPageFixture(t, pageIdentity, func(f *pageFixture) {
		f.loader.EXPECT().Load(mock.Anything, pageIdentity).Return(historySnapshot(), nil).Once()
		f.loader.EXPECT().Load(mock.Anything, pageIdentity).RunAndReturn(func(context.Context, *entity.Identity) (*entity.ProfileSnapshot, error) {
			// read before the credit commits
			snapshot := historySnapshot()
			close(reloading)
			<-release
			return snapshot, nil
		}).Once()
		f.logos.EXPECT().Resolve(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	})
	f.waitReady(t)

	f.page.Reload()
	<-reloading

	f.funds.EXPECT().AddFunds(mock.Anything, pageIdentity, mock.Anything, "key-1").
		Return(decimal.RequireFromString("150.00"), nil).Once()
	_, err := f.page.Credit(context.Background(), "50", "key-1")
	require.NoError(t, err)

	close(release)
	view := f.waitReady(t)

	assert.Equal(t, ViewReady, view.State)
	assert.Equal(t, "$150.00", view.Balance)
}

func TestPage_CreditForPreviousIdentityIsDropped(t *testing.T) {
	bob := &entity.Identity{ID: "bob", DisplayName: "Bob"}
	entered := make(chan struct{})
	release := make(chan struct{})
	f := newPageFixture(t, pageIdentity, func(f *pageFixture) {
		f.loader.EXPECT().Load(mock.Anything, pageIdentity).Return(entity.EmptyProfileSnapshot(), nil).Once()
		f.loader.EXPECT().Load(mock.Anything, bob).Return(&entity.ProfileSnapshot{
			AccountFound: true,
			Balance:      decimal.RequireFromString("5.00"),
		}, nil).Once()
		f.funds.EXPECT().AddFunds(mock.Anything, pageIdentity, mock.Anything, "key-1").
			RunAndReturn(func(context.Context, *entity.Identity, decimal.Decimal, string) (decimal.Decimal, error) {
				close(entered)
				<-release
				return decimal.RequireFromString("150.00"), nil
			}).Once()
	})
	f.waitReady(t)

	done := make(chan error, 1)
	go func() {
		_, err := f.page.Credit(context.Background(), "50", "key-1")
		done <- err
	}()
	<-entered

	f.page.SignIn(bob)
	waitForState(t, f.page.store, func(s State) bool { return s.Loaded && !s.Loading })

	close(release)
	require.NoError(t, <-done)

	view := f.page.View(context.Background())
	require.NotNil(t, view.Identity)
	assert.Equal(t, "bob", view.Identity.ID)
	assert.Equal(t, "$5.00", view.Balance)
}

func TestPage_SignOutDuringSubmitResetsDialog(t *testing.T) {
	bob := &entity.Identity{ID: "bob", DisplayName: "Bob"}
	entered := make(chan struct{})
	release := make(chan struct{})
	f := newPageFixture(t, pageIdentity, func(f *pageFixture) {
		f.loader.EXPECT().Load(mock.Anything, pageIdentity).Return(entity.EmptyProfileSnapshot(), nil).Once()
		f.loader.EXPECT().Load(mock.Anything, bob).Return(entity.EmptyProfileSnapshot(), nil).Once()
		f.funds.EXPECT().AddFunds(mock.Anything, pageIdentity, mock.Anything, mock.Anything).
			RunAndReturn(func(context.Context, *entity.Identity, decimal.Decimal, string) (decimal.Decimal, error) {
				close(entered)
				<-release
				return decimal.Zero, errors.New("storage unavailable")
			}).Once()
	})
	f.waitReady(t)
	require.NoError(t, f.page.OpenFunds())

	done := make(chan error, 1)
	go func() { done <- f.page.AddFunds(context.Background(), "50") }()
	<-entered

	f.page.SignOut()
	f.page.SignIn(bob)

	close(release)
	assert.Error(t, <-done)

	view := f.waitReady(t)
	require.NotNil(t, view.Dialog)
	assert.False(t, view.Dialog.Open)
	assert.Empty(t, view.Dialog.Amount)
	assert.Empty(t, view.Dialog.Error)
	assert.Empty(t, f.page.DialogToken())
}

func TestBadgeClass(t *testing.T) {
	assert.Equal(t, "badge badge-pending", BadgeClass(entity.TradeStatusPending))
	assert.Equal(t, "badge badge-won", BadgeClass(entity.TradeStatusWon))
	assert.Equal(t, "badge badge-lost", BadgeClass(entity.TradeStatusLost))
	assert.Equal(t, "badge badge-neutral", BadgeClass("void"))
}
