package profile

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/port/session"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/usecase/wallet"
)

// logoFanOut bounds concurrent logo lookups while rendering
const logoFanOut = 4

// PageDeps are the collaborators shared by every Page
type PageDeps struct {
	Loader       usecase.ProfileLoader
	Funds        usecase.FundsUseCase
	Logos        usecase.LogoResolver
	LoadTimeout  time.Duration
	Location     *time.Location
	TimeProvider coreport.TimeProvider
	Metrics      coreport.Metrics
	Logger       coreport.Logger
}

// Page is the profile page of one session. It owns the session's
// profile store, the loader watcher and the add-funds dialog.
type Page struct {
	identity session.IdentityHolder
	store    *Store
	watcher  *Watcher
	dialog   *wallet.FundsDialog
	funds    usecase.FundsUseCase
	logos    usecase.LogoResolver
	location *time.Location
	logger   coreport.Logger
}

// NewPage creates a page bound to identity and starts watching it
func NewPage(identity session.IdentityHolder, deps PageDeps) *Page {
	location := deps.Location
	if location == nil {
		location = time.UTC
	}

	store := NewStore()
	p := &Page{
		identity: identity,
		store:    store,
		watcher: NewWatcher(identity, deps.Loader, store, deps.LoadTimeout,
			deps.TimeProvider, deps.Metrics, deps.Logger),
		dialog:   wallet.NewFundsDialog(),
		funds:    deps.Funds,
		logos:    deps.Logos,
		location: location,
		logger:   deps.Logger,
	}
	p.watcher.Start()
	return p
}

// Identity returns the signed-in identity, or nil
func (p *Page) Identity() *entity.Identity {
	return p.identity.Current()
}

// SignIn sets the session identity
func (p *Page) SignIn(identity *entity.Identity) {
	p.identity.Set(identity)
}

// SignOut clears the session identity and closes the dialog. A submit
// in flight keeps the dialog until it returns; AddFunds resets it then.
func (p *Page) SignOut() {
	_ = p.dialog.Reset()
	p.identity.Set(nil)
}

// Reload retries the profile load for the current identity
func (p *Page) Reload() {
	p.watcher.Reload()
}

// OpenFunds shows the add-funds dialog
func (p *Page) OpenFunds() error {
	if p.identity.Current() == nil {
		return errs.ErrUnauthenticated
	}
	p.dialog.Open()
	return nil
}

// CloseFunds hides the add-funds dialog
func (p *Page) CloseFunds() error {
	return p.dialog.Close()
}

// AddFunds submits the dialog. The dialog callback credits the wallet
// of the identity present at submit time and writes the persisted
// balance into the store. If the identity changed while the submit was
// in flight, the dialog is reset so its amount and message do not
// carry over to the next identity.
func (p *Page) AddFunds(ctx context.Context, text string) error {
	identity := p.identity.Current()
	err := p.dialog.Submit(ctx, text, func(ctx context.Context, amount decimal.Decimal, token string) error {
		balance, err := p.funds.AddFunds(ctx, identity, amount, token)
		if err != nil {
			return err
		}
		p.applyBalance(identity, balance)
		return nil
	})
	if !identity.SameUser(p.identity.Current()) {
		_ = p.dialog.Reset()
	}
	return err
}

// DialogToken returns the submit token of the open dialog, or ""
func (p *Page) DialogToken() string {
	return p.dialog.View().Token
}

// Credit adds funds outside the dialog, for API clients that supply
// their own idempotency key. It returns the new balance.
func (p *Page) Credit(ctx context.Context, text, idempotencyKey string) (decimal.Decimal, error) {
	amount, err := entity.ParseAmount(text)
	if err != nil {
		return decimal.Zero, err
	}
	identity := p.identity.Current()
	balance, err := p.funds.AddFunds(ctx, identity, amount, idempotencyKey)
	if err != nil {
		return decimal.Zero, err
	}
	p.applyBalance(identity, balance)
	return balance, nil
}

func (p *Page) applyBalance(identity *entity.Identity, balance decimal.Decimal) {
	if identity == nil || p.store.SetBalance(identity.ID, balance) {
		return
	}
	p.logger.Debug("Dropped balance for previous identity", map[string]any{
		"user_id": identity.ID,
	})
}

// Subscribe returns a change signal for the page's data
func (p *Page) Subscribe() (<-chan struct{}, func()) {
	return p.store.Subscribe()
}

// Close stops the page's background work
func (p *Page) Close() {
	p.watcher.Stop()
}

// View evaluates the page state: unauthenticated, then loading, then ready
func (p *Page) View(ctx context.Context) PageView {
	identity := p.identity.Current()
	if identity == nil {
		return PageView{
			State:   ViewUnauthenticated,
			Message: SignInPrompt,
			Trades:  []TradeRow{},
		}
	}

	state := p.store.State()
	if state.Loading {
		return PageView{
			State:  ViewLoading,
			Trades: []TradeRow{},
		}
	}

	snapshot := state.Snapshot
	dialog := p.dialog.View()
	view := PageView{
		State: ViewReady,
		Identity: &IdentitySummary{
			ID:          identity.ID,
			DisplayName: identity.DisplayName,
			Email:       identity.Email,
			AvatarURL:   identity.AvatarURL,
		},
		Record:     NewRecordView(entity.ComputeRecord(snapshot.Trades)),
		Balance:    entity.FormatUSD(snapshot.Balance),
		Trades:     p.tradeRows(ctx, snapshot.Trades),
		LoadFailed: state.LoadFailed,
		Dialog:     &dialog,
	}
	if len(view.Trades) == 0 {
		view.EmptyMessage = EmptyTradeHistory
	}
	if state.LoadFailed {
		view.Message = LoadFailedMessage
	}

	return view
}

func (p *Page) tradeRows(ctx context.Context, views []entity.TradeView) []TradeRow {
	rows := make([]TradeRow, len(views))

	var g errgroup.Group
	g.SetLimit(logoFanOut)

	for i, v := range views {
		rows[i] = TradeRow{
			ID:             v.Trade.ID,
			TeamLabel:      v.TeamLabel(),
			PlacedAt:       v.Trade.CreatedAt.In(p.location).Format(TimestampLayout),
			Stake:          entity.FormatUSD(v.Trade.Amount),
			ExpectedPayout: entity.FormatUSD(v.Trade.ExpectedPayout),
			Status:         string(v.Trade.Status),
			BadgeClass:     BadgeClass(v.Trade.Status),
		}
		if fixture, ok := v.Fixture(); ok {
			rows[i].Fixture = fixture
		}

		team, ok := v.SelectedTeam()
		if !ok || p.logos == nil {
			continue
		}
		g.Go(func() error {
			rows[i].Logo = p.logos.Resolve(ctx, team.Abbreviation, team.FullName)
			return nil
		})
	}

	_ = g.Wait()
	return rows
}
