package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Dosada05/tournament-engine/brackets"
	"github.com/Dosada05/tournament-engine/models"
	"github.com/Dosada05/tournament-engine/services"
	"github.com/go-chi/chi/v5"
)

type jsonResponse map[string]interface{}

var errServerProblem = errors.New("the server encountered a problem and could not process your request")

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	maxBytes := 1_048_576
	r.Body = http.MaxBytesReader(w, r.Body, int64(maxBytes))

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	err := dec.Decode(dst)
	if err != nil {
		var syntaxError *json.SyntaxError
		var unmarshalTypeError *json.UnmarshalTypeError
		var invalidUnmarshalError *json.InvalidUnmarshalError
		var maxBytesError *http.MaxBytesError

		switch {
		case errors.As(err, &syntaxError):
			return fmt.Errorf("body contains badly-formed JSON (at character %d)", syntaxError.Offset)
		case errors.Is(err, io.ErrUnexpectedEOF):
			return errors.New("body contains badly-formed JSON")
		case errors.As(err, &unmarshalTypeError):
			if unmarshalTypeError.Field != "" {
				return fmt.Errorf("body contains incorrect JSON type for field %q", unmarshalTypeError.Field)
			}
			return fmt.Errorf("body contains incorrect JSON type (at character %d)", unmarshalTypeError.Offset)
		case errors.Is(err, io.EOF):
			return errors.New("body must not be empty")
		case strings.HasPrefix(err.Error(), "json: unknown field "):
			fieldName := strings.TrimPrefix(err.Error(), "json: unknown field ")
			return fmt.Errorf("body contains unknown key %s", fieldName)
		case errors.As(err, &maxBytesError):
			return fmt.Errorf("body must not be larger than %d bytes", maxBytes)
		case errors.As(err, &invalidUnmarshalError):
			panic(err)
		default:
			return err
		}
	}

	err = dec.Decode(&struct{}{})
	if !errors.Is(err, io.EOF) {
		return errors.New("body must only contain a single JSON value")
	}

	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}, headers http.Header) error {
	js, err := json.MarshalIndent(data, "", "\t")
	if err != nil {
		return err
	}
	js = append(js, '\n')

	for key, value := range headers {
		w.Header()[key] = value
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, err = w.Write(js)
	return err
}

// envelope merges a payload into the {"success", "error"} outcome of res.
func envelope(res services.Result, payload jsonResponse) jsonResponse {
	env := jsonResponse{"success": res.Success}
	if res.Error != "" {
		env["error"] = res.Error
	}
	for k, v := range payload {
		env[k] = v
	}
	return env
}

func respond(w http.ResponseWriter, r *http.Request, status int, payload jsonResponse) {
	if err := writeJSON(w, status, envelope(services.ResultOf(nil), payload), nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}

func errorResponse(w http.ResponseWriter, r *http.Request, status int, err error) {
	if werr := writeJSON(w, status, envelope(services.ResultOf(err), nil), nil); werr != nil {
		slog.Default().Error("failed to write error response", "path", r.URL.Path, "error", werr)
		w.WriteHeader(http.StatusInternalServerError)
	}
}

func serverErrorResponse(w http.ResponseWriter, r *http.Request, err error) {
	slog.Default().Error("internal server error", "method", r.Method, "path", r.URL.Path, "error", err)
	errorResponse(w, r, http.StatusInternalServerError, errServerProblem)
}

func badRequestResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusBadRequest, err)
}

func notFoundResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusNotFound, err)
}

func conflictResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusConflict, err)
}

func unprocessableResponse(w http.ResponseWriter, r *http.Request, err error) {
	errorResponse(w, r, http.StatusUnprocessableEntity, err)
}

func urlParam(r *http.Request, name string) (string, error) {
	v := strings.TrimSpace(chi.URLParam(r, name))
	if v == "" {
		return "", fmt.Errorf("missing %s in URL", name)
	}
	return v, nil
}

func mapServiceErrorToHTTP(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, services.ErrTournamentNotFound),
		errors.Is(err, services.ErrMatchNotFound),
		errors.Is(err, services.ErrTeamNotFound):
		notFoundResponse(w, r, err)

	case errors.Is(err, services.ErrTournamentNameConflict),
		errors.Is(err, services.ErrTeamNameConflict),
		errors.Is(err, services.ErrRegistrationClosed),
		errors.Is(err, services.ErrTournamentNotActive),
		errors.Is(err, services.ErrTournamentCompleted),
		errors.Is(err, services.ErrResultLocked),
		errors.Is(err, brackets.ErrRoundIncomplete),
		errors.Is(err, brackets.ErrNoResults):
		conflictResponse(w, r, err)

	case errors.Is(err, services.ErrValidationFailed),
		errors.Is(err, services.ErrTournamentNameRequired),
		errors.Is(err, services.ErrTeamNameRequired),
		errors.Is(err, services.ErrUnknownSport),
		errors.Is(err, services.ErrNotKnockoutFormat),
		errors.Is(err, brackets.ErrUnsupportedFormat),
		errors.Is(err, brackets.ErrInvalidPlayersPerTeam):
		badRequestResponse(w, r, err)

	case errors.Is(err, brackets.ErrMinTeamsRequired),
		errors.Is(err, brackets.ErrMaxTeamsExceeded),
		errors.Is(err, brackets.ErrNotEnoughPlayers),
		errors.Is(err, models.ErrInvariantViolation):
		unprocessableResponse(w, r, err)

	case errors.Is(err, services.ErrExportUnavailable):
		errorResponse(w, r, http.StatusServiceUnavailable, err)

	default:
		serverErrorResponse(w, r, err)
	}
}
