package handlers

import (
	"net/http"

	"github.com/Dosada05/tournament-engine/services"
)

type DrawHandler struct {
	drawService *services.DrawService
}

func NewDrawHandler(ds *services.DrawService) *DrawHandler {
	return &DrawHandler{drawService: ds}
}

func (h *DrawHandler) DrawTeams(w http.ResponseWriter, r *http.Request) {
	var input services.DrawInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	view, err := h.drawService.DrawTeams(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"draw": view})
}
