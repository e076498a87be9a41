package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/wager-profile/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/usecase/logo"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/usecase/profile"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/usecase/wallet"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/dto"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/view"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/asset"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/auth"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/messaging"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/repository"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/session"
	assetmocks "github.com/amirhossein-jamali/wager-profile/mocks/port/asset"
)

const (
	sessionCookie = "wp_session"
	authCookie    = "wp_token"
)

type testServer struct {
	router  *gin.Engine
	tokens  *auth.TokenService
	session string
}

func newTestServer(t *testing.T, devLogin bool) *testServer {
	gin.SetMode(gin.TestMode)

	testDB := database.NewTestDBManager(t)
	log := testDB.Logger
	tp := testDB.TimeProvider
	ctx := context.Background()

	accounts := repository.NewAccountRepository(testDB.DB(), log)
	trades := repository.NewTradeRepository(testDB.DB(), log)
	events := repository.NewEventRepository(testDB.DB(), log)

	placed := time.Date(2025, 3, 1, 19, 30, 0, 0, time.UTC)
	account, err := entity.NewAccount("ada", decimal.RequireFromString("100.00"), []string{"t1"}, placed)
	require.NoError(t, err)
	require.NoError(t, accounts.Create(ctx, account))
	require.NoError(t, events.Create(ctx, &entity.Event{
		ID:          "evt-1",
		HomeTeam:    entity.Team{FullName: "Boston Celtics", Abbreviation: "BOS"},
		VisitorTeam: entity.Team{FullName: "Los Angeles Lakers", Abbreviation: "LAL"},
	}))
	require.NoError(t, trades.Create(ctx, &entity.Trade{
		ID:             "t1",
		Amount:         decimal.RequireFromString("25.00"),
		ExpectedPayout: decimal.RequireFromString("47.50"),
		CreatedAt:      placed,
		EventID:        "evt-1",
		SelectedTeam:   entity.TeamSideVisitor,
		Status:         entity.TradeStatusWon,
		UserID:         "ada",
	}))

	prober := assetmocks.NewMockLogoProber(t)
	prober.EXPECT().Exists(mock.Anything, mock.Anything).Return(true, nil).Maybe()

	deps := profile.PageDeps{
		Loader: profile.NewLoader(accounts, trades, events, 4, log),
		Funds: wallet.NewService(
			repository.NewWalletRepository(testDB.DB(), tp, log),
			messaging.NoopPublisher{}, tp, coreport.NoopMetrics{}, log,
		),
		Logos: logo.NewResolver(prober, asset.NewMemoryCache(tp), logo.Options{
			URLTemplate:  "/static/logos/%s.png",
			FoundTTL:     time.Hour,
			MissingTTL:   time.Minute,
			ProbeTimeout: time.Second,
		}, tp, coreport.NoopMetrics{}, log),
		LoadTimeout:  5 * time.Second,
		Location:     time.UTC,
		TimeProvider: tp,
		Metrics:      coreport.NoopMetrics{},
		Logger:       log,
	}
	registry := session.NewRegistry(func(identity *session.IdentityState) *profile.Page {
		return profile.NewPage(identity, deps)
	}, time.Hour, tp, log)
	t.Cleanup(registry.Close)

	tokens := auth.NewTokenService("test-secret", "wager-profile-test", tp)

	templates, err := view.Load()
	require.NoError(t, err)

	router := gin.New()
	router.SetHTMLTemplate(templates)

	opts := Options{
		MetricsPath:    "/metrics",
		DevLogin:       devLogin,
		AuthCookieName: authCookie,
		Session:        middleware.SessionOptions{CookieName: sessionCookie, MaxAge: 3600},
		Registry:       registry,
		TokenVerifier:  tokens,
		Logger:         log,
		TimeProvider:   tp,
	}
	handlers := Handlers{
		Profile: handler.NewProfileHandler(log),
		Funds:   handler.NewFundsHandler(log),
		Auth:    handler.NewAuthHandler(tokens, authCookie, time.Hour, false, log),
		Health:  handler.NewHealthHandler(testDB.Manager, registry),
	}
	SetupMiddlewares(router, opts)
	SetupRoutes(router, handlers, opts)

	return &testServer{router: router, tokens: tokens}
}

func (s *testServer) token(t *testing.T) string {
	t.Helper()
	token, err := s.tokens.Issue(&entity.Identity{ID: "ada", DisplayName: "Ada", Email: "ada@example.com"}, time.Hour)
	require.NoError(t, err)
	return token
}

// do sends a request within the server's browser session
func (s *testServer) do(method, path, body string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	for key, values := range header {
		req.Header[key] = values
	}
	if s.session != "" {
		req.AddCookie(&http.Cookie{Name: sessionCookie, Value: s.session})
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	for _, c := range w.Result().Cookies() {
		if c.Name == sessionCookie {
			s.session = c.Value
		}
	}
	return w
}

func (s *testServer) profile(t *testing.T, header http.Header) profile.PageView {
	t.Helper()
	w := s.do(http.MethodGet, "/api/profile", "", header)
	require.Equal(t, http.StatusOK, w.Code)

	var pageView profile.PageView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pageView))
	return pageView
}

// fetch sends a request the way an API client without a cookie jar does
func (s *testServer) fetch(t *testing.T, path string, header http.Header) (*httptest.ResponseRecorder, profile.PageView) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for key, values := range header {
		req.Header[key] = values
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var pageView profile.PageView
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pageView))
	return w, pageView
}

func bearer(token string) http.Header {
	return http.Header{"Authorization": []string{"Bearer " + token}}
}

func TestHealth(t *testing.T) {
	server := newTestServer(t, false)

	w := server.do(http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var health dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, "ok", health.Status)
	assert.Equal(t, 0, health.Sessions)
}

func TestProfile_Unauthenticated(t *testing.T) {
	server := newTestServer(t, false)

	pageView := server.profile(t, nil)
	assert.Equal(t, profile.ViewUnauthenticated, pageView.State)
	assert.Equal(t, profile.SignInPrompt, pageView.Message)
	assert.NotEmpty(t, server.session)

	w := server.do(http.MethodGet, "/", "", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/profile", w.Header().Get("Location"))
}

func TestProfile_LoadsForBearerToken(t *testing.T) {
	server := newTestServer(t, false)
	header := bearer(server.token(t))

	var pageView profile.PageView
	require.Eventually(t, func() bool {
		pageView = server.profile(t, header)
		return pageView.State == profile.ViewReady
	}, 2*time.Second, 10*time.Millisecond)

	require.NotNil(t, pageView.Identity)
	assert.Equal(t, "Ada", pageView.Identity.DisplayName)
	assert.Equal(t, "$100.00", pageView.Balance)
	assert.Equal(t, "1W - 0L", pageView.Record.Label)
	require.Len(t, pageView.Trades, 1)
	assert.Equal(t, "Los Angeles Lakers", pageView.Trades[0].TeamLabel)
	require.NotNil(t, pageView.Trades[0].Logo)

	w := server.do(http.MethodGet, "/profile", "", header)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "$100.00")
}

func TestProfile_CookielessBearerClientReusesSession(t *testing.T) {
	server := newTestServer(t, false)
	header := bearer(server.token(t))

	require.Eventually(t, func() bool {
		_, pageView := server.fetch(t, "/api/profile", header)
		return pageView.State == profile.ViewReady
	}, 2*time.Second, 10*time.Millisecond)

	for i := 0; i < 5; i++ {
		w, pageView := server.fetch(t, "/api/profile", header)
		assert.Equal(t, profile.ViewReady, pageView.State)
		assert.Equal(t, "$100.00", pageView.Balance)
		for _, c := range w.Result().Cookies() {
			assert.NotEqual(t, sessionCookie, c.Name)
		}
	}

	w := server.do(http.MethodGet, "/healthz", "", nil)
	var health dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &health))
	assert.Equal(t, 1, health.Sessions)
}

func TestAddFunds_JSON(t *testing.T) {
	server := newTestServer(t, false)
	header := bearer(server.token(t))
	header.Set("Content-Type", "application/json")
	header.Set(handler.IdempotencyKeyHeader, "key-1")

	w := server.do(http.MethodPost, "/api/profile/funds", `{"amount":"25.50"}`, header)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp dto.AddFundsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "125.50", resp.Balance)
	assert.Equal(t, "$125.50", resp.FormattedBalance)

	// Replaying the key returns the recorded balance without a second credit
	w = server.do(http.MethodPost, "/api/profile/funds", `{"amount":"25.50"}`, header)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "125.50", resp.Balance)

	w = server.do(http.MethodPost, "/api/profile/funds", `{"amount":"-5"}`, header)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = server.do(http.MethodPost, "/api/profile/funds", `{`, header)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAddFunds_RequiresIdentity(t *testing.T) {
	server := newTestServer(t, false)

	header := http.Header{"Content-Type": []string{"application/json"}}
	w := server.do(http.MethodPost, "/api/profile/funds", `{"amount":"10"}`, header)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = server.do(http.MethodPost, "/api/profile/funds", `{"amount":"10"}`, http.Header{
		"Content-Type":  []string{"application/json"},
		"Authorization": []string{"Bearer not-a-token"},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFundsDialog_FormFlow(t *testing.T) {
	server := newTestServer(t, false)
	header := bearer(server.token(t))

	require.Eventually(t, func() bool {
		return server.profile(t, header).State == profile.ViewReady
	}, 2*time.Second, 10*time.Millisecond)

	w := server.do(http.MethodPost, "/profile/funds/open", "", header)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	pageView := server.profile(t, header)
	require.NotNil(t, pageView.Dialog)
	require.True(t, pageView.Dialog.Open)
	token := pageView.Dialog.Token

	form := http.Header{
		"Authorization": header["Authorization"],
		"Content-Type":  []string{"application/x-www-form-urlencoded"},
	}

	// A form without the dialog's token is ignored
	w = server.do(http.MethodPost, "/profile/funds", "amount=10&token=stale", form)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "$100.00", server.profile(t, header).Balance)

	w = server.do(http.MethodPost, "/profile/funds", "amount=50&token="+token, form)
	assert.Equal(t, http.StatusSeeOther, w.Code)

	pageView = server.profile(t, header)
	assert.Equal(t, "$150.00", pageView.Balance)
	require.NotNil(t, pageView.Dialog)
	assert.False(t, pageView.Dialog.Open)
}

func TestLogout_SignsSessionOut(t *testing.T) {
	server := newTestServer(t, false)
	header := bearer(server.token(t))

	// open a browser session before signing in
	server.profile(t, nil)
	require.NotEmpty(t, server.session)

	require.Eventually(t, func() bool {
		return server.profile(t, header).State == profile.ViewReady
	}, 2*time.Second, 10*time.Millisecond)

	w := server.do(http.MethodPost, "/logout", "", nil)
	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, profile.ViewUnauthenticated, server.profile(t, nil).State)
}

func TestDevLogin(t *testing.T) {
	disabled := newTestServer(t, false)
	w := disabled.do(http.MethodGet, "/dev/login?sub=ada", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	server := newTestServer(t, true)
	w = server.do(http.MethodGet, "/dev/login", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = server.do(http.MethodGet, "/dev/login?sub=ada&name=Ada", "", nil)
	require.Equal(t, http.StatusSeeOther, w.Code)

	var token string
	for _, c := range w.Result().Cookies() {
		if c.Name == authCookie {
			token = c.Value
		}
	}
	require.NotEmpty(t, token)

	cookie := http.Header{"Cookie": []string{authCookie + "=" + token}}
	require.Eventually(t, func() bool {
		return server.profile(t, cookie).State == profile.ViewReady
	}, 2*time.Second, 10*time.Millisecond)
}
