package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/Dosada05/tournament-engine/notify"
	"github.com/Dosada05/tournament-engine/services"
	"github.com/gorilla/websocket"
)

type WebSocketHandler struct {
	hub               *notify.Hub
	tournamentService *services.TournamentService
	upgrader          websocket.Upgrader
	logger            *slog.Logger
}

// NewWebSocketHandler accepts upgrades from allowedOrigins; "*" allows any origin.
func NewWebSocketHandler(hub *notify.Hub, ts *services.TournamentService, allowedOrigins []string, logger *slog.Logger) *WebSocketHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &WebSocketHandler{
		hub:               hub,
		tournamentService: ts,
		logger:            logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || slices.Contains(allowedOrigins, "*") || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// ServeWs subscribes the caller to /ws/tournaments/{tournamentID}.
func (h *WebSocketHandler) ServeWs(w http.ResponseWriter, r *http.Request) {
	tournamentID, err := urlParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if _, err := h.tournamentService.GetTournament(r.Context(), tournamentID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade has already replied to the client.
		h.logger.Warn("websocket upgrade failed", "tournament_id", tournamentID, "error", err)
		return
	}

	client := notify.NewClient(h.hub, conn, notify.RoomID(tournamentID))
	h.hub.Register(client)

	go client.WritePump()
	go client.ReadPump()

	h.logger.Info("websocket client subscribed", "tournament_id", tournamentID)
}
