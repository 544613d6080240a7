package services

import "errors"

var (
	ErrValidationFailed       = errors.New("validation failed")
	ErrTournamentNameRequired = errors.New("tournament name is required")
	ErrTeamNameRequired       = errors.New("team name is required")
	ErrUnknownSport           = errors.New("unknown sport")

	ErrTournamentNameConflict = errors.New("tournament name already exists")
	ErrTeamNameConflict       = errors.New("team name is already in use")

	ErrRegistrationClosed  = errors.New("tournament registration is closed")
	ErrTournamentNotActive = errors.New("tournament has not been generated yet")
	ErrTournamentCompleted = errors.New("tournament is already completed")
	ErrNotKnockoutFormat   = errors.New("tournament format has no knockout phase")
	ErrResultLocked        = errors.New("match belongs to a round that has already been advanced")
	ErrExportUnavailable   = errors.New("report export is not configured")

	ErrTournamentNotFound = errors.New("tournament not found")
	ErrMatchNotFound      = errors.New("match not found")
	ErrTeamNotFound       = errors.New("team not found")
)
