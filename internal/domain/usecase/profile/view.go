package profile

import (
	"fmt"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/usecase/wallet"
)

// ViewState is the page state, evaluated in priority order
type ViewState string

const (
	ViewUnauthenticated ViewState = "unauthenticated"
	ViewLoading         ViewState = "loading"
	ViewReady           ViewState = "ready"
)

// Page copy
const (
	SignInPrompt      = "Please sign in to view your profile."
	EmptyTradeHistory = "You haven't placed any trades yet."
	LoadFailedMessage = "We couldn't load your latest profile data."
)

// TimestampLayout formats trade placement times
const TimestampLayout = "Jan 2, 2006, 3:04 PM"

// badgeClasses maps a trade status to its badge styling
var badgeClasses = map[entity.TradeStatus]string{
	entity.TradeStatusPending: "badge badge-pending",
	entity.TradeStatusWon:     "badge badge-won",
	entity.TradeStatusLost:    "badge badge-lost",
}

const defaultBadgeClass = "badge badge-neutral"

// BadgeClass returns the styling for a trade status
func BadgeClass(status entity.TradeStatus) string {
	if class, ok := badgeClasses[status]; ok {
		return class
	}
	return defaultBadgeClass
}

// IdentitySummary is the header block of a ready page
type IdentitySummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Email       string `json:"email"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
}

// RecordView is the win/loss record of a ready page
type RecordView struct {
	Wins   int    `json:"wins"`
	Losses int    `json:"losses"`
	Label  string `json:"label"`
}

// NewRecordView renders a record as "2W - 1L"
func NewRecordView(r entity.Record) RecordView {
	return RecordView{
		Wins:   r.Wins,
		Losses: r.Losses,
		Label:  fmt.Sprintf("%dW - %dL", r.Wins, r.Losses),
	}
}

// TradeRow is one entry of the trade history
type TradeRow struct {
	ID             string       `json:"id"`
	Logo           *entity.Logo `json:"logo,omitempty"`
	TeamLabel      string       `json:"teamLabel"`
	PlacedAt       string       `json:"placedAt"`
	Stake          string       `json:"stake"`
	ExpectedPayout string       `json:"expectedPayout"`
	Status         string       `json:"status"`
	BadgeClass     string       `json:"badgeClass"`
	Fixture        string       `json:"fixture,omitempty"`
}

// PageView is the render model of the profile page
type PageView struct {
	State        ViewState          `json:"state"`
	Message      string             `json:"message,omitempty"`
	Identity     *IdentitySummary   `json:"identity,omitempty"`
	Record       RecordView         `json:"record"`
	Balance      string             `json:"balance"`
	Trades       []TradeRow         `json:"trades"`
	EmptyMessage string             `json:"emptyMessage,omitempty"`
	LoadFailed   bool               `json:"loadFailed"`
	Dialog       *wallet.DialogView `json:"dialog,omitempty"`
}
