package handlers

import (
	"errors"
	"net/http"

	"github.com/Dosada05/tournament-engine/services"
)

type TournamentHandler struct {
	tournamentService *services.TournamentService
}

func NewTournamentHandler(ts *services.TournamentService) *TournamentHandler {
	return &TournamentHandler{tournamentService: ts}
}

func (h *TournamentHandler) CreateTournament(w http.ResponseWriter, r *http.Request) {
	var input services.CreateTournamentInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	t, err := h.tournamentService.CreateTournament(r.Context(), input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, jsonResponse{"tournament": t})
}

func (h *TournamentHandler) ListTournaments(w http.ResponseWriter, r *http.Request) {
	list, err := h.tournamentService.ListTournaments(r.Context())
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"tournaments": list})
}

func (h *TournamentHandler) GetTournament(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	t, err := h.tournamentService.GetTournament(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"tournament": t})
}

func (h *TournamentHandler) DeleteTournament(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := h.tournamentService.DeleteTournament(r.Context(), id); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, nil)
}

func (h *TournamentHandler) AddTeam(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	var input services.AddTeamInput
	if err := readJSON(w, r, &input); err != nil {
		badRequestResponse(w, r, err)
		return
	}

	team, err := h.tournamentService.AddTeam(r.Context(), id, input)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusCreated, jsonResponse{"team": team})
}

func (h *TournamentHandler) RemoveTeam(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	teamID, err := urlParam(r, "teamID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if err := h.tournamentService.RemoveTeam(r.Context(), id, teamID); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, nil)
}

func (h *TournamentHandler) Generate(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	t, err := h.tournamentService.Generate(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"tournament": t})
}

type recordResultRequest struct {
	Score1 *int `json:"score1"`
	Score2 *int `json:"score2"`
}

var errMissingScores = errors.New("score1 and score2 are required")

func (h *TournamentHandler) RecordResult(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	matchID, err := urlParam(r, "matchID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	var req recordResultRequest
	if err := readJSON(w, r, &req); err != nil {
		badRequestResponse(w, r, err)
		return
	}
	if req.Score1 == nil || req.Score2 == nil {
		badRequestResponse(w, r, errMissingScores)
		return
	}

	m, err := h.tournamentService.RecordResult(r.Context(), id, matchID, *req.Score1, *req.Score2)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"match": m})
}

func (h *TournamentHandler) Standings(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	table, err := h.tournamentService.Standings(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"standings": table})
}

func (h *TournamentHandler) AdvanceKnockout(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	t, err := h.tournamentService.AdvanceKnockout(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"tournament": t})
}

func (h *TournamentHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	id, err := urlParam(r, "tournamentID")
	if err != nil {
		badRequestResponse(w, r, err)
		return
	}
	res, err := h.tournamentService.ExportReport(r.Context(), id)
	if err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	respond(w, r, http.StatusOK, jsonResponse{"export": res})
}
