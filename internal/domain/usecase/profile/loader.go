package profile

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	errs "github.com/amirhossein-jamali/wager-profile/internal/domain/error"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/port/persistence"
)

// DefaultFanOutLimit bounds concurrent trade resolutions per load
const DefaultFanOutLimit = 8

// Loader assembles profile snapshots from the account, trade and event
// records. Trades are resolved concurrently and joined back in account
// order before sorting.
type Loader struct {
	accountRepo persistence.AccountRepository
	tradeRepo   persistence.TradeRepository
	eventRepo   persistence.EventRepository
	fanOutLimit int
	logger      coreport.Logger
}

// NewLoader creates a new Loader. A non-positive fanOutLimit selects
// DefaultFanOutLimit.
func NewLoader(
	accountRepo persistence.AccountRepository,
	tradeRepo persistence.TradeRepository,
	eventRepo persistence.EventRepository,
	fanOutLimit int,
	logger coreport.Logger,
) *Loader {
	if fanOutLimit <= 0 {
		fanOutLimit = DefaultFanOutLimit
	}
	return &Loader{
		accountRepo: accountRepo,
		tradeRepo:   tradeRepo,
		eventRepo:   eventRepo,
		fanOutLimit: fanOutLimit,
		logger:      logger,
	}
}

// Load implements usecase.ProfileLoader
func (l *Loader) Load(ctx context.Context, identity *entity.Identity) (*entity.ProfileSnapshot, error) {
	if identity == nil {
		return entity.EmptyProfileSnapshot(), nil
	}

	account, err := l.accountRepo.GetByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, errs.ErrAccountNotFound) {
			l.logger.Debug("No account for identity, showing empty profile", map[string]any{
				"user_id": identity.ID,
			})
			return entity.EmptyProfileSnapshot(), nil
		}
		return nil, fmt.Errorf("fetch account %s: %w", identity.ID, err)
	}

	views, err := l.resolveTrades(ctx, account.UniqueTradeIDs())
	if err != nil {
		return nil, err
	}
	entity.SortTradeViewsByRecency(views)

	return &entity.ProfileSnapshot{
		AccountFound: true,
		Balance:      account.WalletBalance,
		Trades:       views,
	}, nil
}

// resolveTrades fetches every trade and its event. Missing trades are
// dropped and missing events leave TradeView.Event nil. The result keeps
// the order of ids.
func (l *Loader) resolveTrades(ctx context.Context, ids []string) ([]entity.TradeView, error) {
	slots := make([]*entity.TradeView, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.fanOutLimit)

	for i, id := range ids {
		g.Go(func() error {
			view, err := l.resolveTrade(gctx, id)
			if err != nil {
				return err
			}
			slots[i] = view
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	views := make([]entity.TradeView, 0, len(slots))
	for _, v := range slots {
		if v != nil {
			views = append(views, *v)
		}
	}
	return views, nil
}

func (l *Loader) resolveTrade(ctx context.Context, id string) (*entity.TradeView, error) {
	trade, err := l.tradeRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, errs.ErrTradeNotFound) {
			l.logger.Debug("Dropping dangling trade reference", map[string]any{
				"trade_id": id,
			})
			return nil, nil
		}
		return nil, fmt.Errorf("fetch trade %s: %w", id, err)
	}

	view := &entity.TradeView{Trade: *trade}
	if trade.EventID == "" {
		return view, nil
	}

	event, err := l.eventRepo.GetByID(ctx, trade.EventID)
	switch {
	case err == nil:
		view.Event = event
	case errors.Is(err, errs.ErrEventNotFound):
		l.logger.Debug("Trade event missing", map[string]any{
			"trade_id": id,
			"event_id": trade.EventID,
		})
	default:
		return nil, fmt.Errorf("fetch event %s for trade %s: %w", trade.EventID, id, err)
	}

	return view, nil
}
