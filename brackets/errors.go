package brackets

import "errors"

const (
	MinTeams         = 4
	MaxTeams         = 64
	DefaultGroupSize = 4
)

// Configuration errors are recoverable: the caller adjusts its input and retries.
var (
	ErrMinTeamsRequired      = errors.New("minimum teams required")
	ErrMaxTeamsExceeded      = errors.New("maximum teams exceeded")
	ErrInvalidPlayersPerTeam = errors.New("players per team must be positive")
	ErrNotEnoughPlayers      = errors.New("not enough eligible players")
	ErrUnsupportedFormat     = errors.New("unsupported tournament format")
	ErrRoundIncomplete       = errors.New("knockout round has unplayed matches")
	ErrNoResults             = errors.New("no decided ties to advance from")
)
