package services

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Dosada05/tournament-engine/models"
	"github.com/Dosada05/tournament-engine/repositories"
)

func handleRepositoryError(err error, entity string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrTournamentNotFound):
		return ErrTournamentNotFound
	case errors.Is(err, repositories.ErrTournamentNameConflict):
		return ErrTournamentNameConflict
	default:
		return fmt.Errorf("%s repository: %w", entity, err)
	}
}

func normalizeName(name string) string {
	return strings.Join(strings.Fields(name), " ")
}

func logTournament(logger *slog.Logger, t *models.Tournament) *slog.Logger {
	return logger.With("tournament_id", t.ID, "format", string(t.Format))
}
