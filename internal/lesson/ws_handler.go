package lesson

import (
	"net/http"

	"github.com/codelingo/backend/internal/auth"
	"github.com/codelingo/backend/internal/server"
	httperrors "github.com/codelingo/backend/pkg/http/errors"
)

// WSHandler authenticates and upgrades lesson WebSocket connections.
type WSHandler struct {
	handler *Handler
	authSvc *auth.Service
}

// NewWSHandler creates the HTTP entry point for lesson play.
func NewWSHandler(handler *Handler, authSvc *auth.Service) *WSHandler {
	return &WSHandler{handler: handler, authSvc: authSvc}
}

// HandleWebSocket upgrades the HTTP connection and authenticates the player.
func (h *WSHandler) HandleWebSocket(w http.ResponseWriter, r *http.Request) {
	// Browsers cannot set headers on WebSocket dials, so the token rides the
	// query string.
	token := r.URL.Query().Get("token")
	if token == "" {
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidToken, "Missing token")
		return
	}

	claims, err := h.authSvc.ValidateToken(token)
	if err != nil {
		h.handler.logger.Warn().Err(err).Msg("WebSocket token validation failed")
		httperrors.RespondUnauthorized(w, httperrors.ErrCodeInvalidToken, "Invalid token")
		return
	}

	conn, err := server.WSUpgrader.Upgrade(w, r, nil)
	if err != nil {
		h.handler.logger.Error().Err(err).Msg("WebSocket upgrade failed")
		return
	}

	h.handler.HandleConnection(conn, claims.UserID)
}
