package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	coreport "github.com/amirhossein-jamali/wager-profile/internal/domain/port/core"
	"github.com/amirhossein-jamali/wager-profile/internal/domain/usecase/profile"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/middleware"
	"github.com/amirhossein-jamali/wager-profile/internal/infrastructure/adapter/api/view"
)

const (
	wsWriteWait  = 10 * time.Second
	wsPongWait   = 60 * time.Second
	wsPingPeriod = wsPongWait * 9 / 10
)

// ProfileHandler serves the profile page as HTML, JSON and a live stream
type ProfileHandler struct {
	upgrader websocket.Upgrader
	logger   coreport.Logger
}

// NewProfileHandler creates a new profile handler instance
func NewProfileHandler(logger coreport.Logger) *ProfileHandler {
	return &ProfileHandler{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
		logger: logger,
	}
}

// Page handles GET /profile
func (h *ProfileHandler) Page(c *gin.Context) {
	page := middleware.PageFrom(c)
	c.HTML(http.StatusOK, view.ProfileTemplate, page.View(c.Request.Context()))
}

// JSON handles GET /api/profile
func (h *ProfileHandler) JSON(c *gin.Context) {
	page := middleware.PageFrom(c)
	c.JSON(http.StatusOK, page.View(c.Request.Context()))
}

// Reload handles POST /profile/reload
func (h *ProfileHandler) Reload(c *gin.Context) {
	middleware.PageFrom(c).Reload()
	c.Redirect(http.StatusSeeOther, "/profile")
}

// Stream handles GET /api/profile/ws. It sends the page view on connect
// and again after every change to the session's profile data.
func (h *ProfileHandler) Stream(c *gin.Context) {
	page := middleware.PageFrom(c)

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", map[string]any{"error": err.Error()})
		return
	}
	defer conn.Close()

	changes, unsubscribe := page.Subscribe()
	defer unsubscribe()

	// The read loop only handles control frames and detects disconnects
	closed := make(chan struct{})
	conn.SetReadLimit(512)
	_ = conn.SetReadDeadline(time.Now().Add(wsPongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(wsPongWait))
	})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ctx := context.WithoutCancel(c.Request.Context())
	send := func() bool {
		_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
		if err := conn.WriteJSON(page.View(ctx)); err != nil {
			h.logger.Debug("Websocket write failed", map[string]any{"error": err.Error()})
			return false
		}
		return true
	}

	if !send() {
		return
	}

	ticker := time.NewTicker(wsPingPeriod)
	defer ticker.Stop()

	for {
		select {
		case <-changes:
			if !send() {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-closed:
			return
		}
	}
}
