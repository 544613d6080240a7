package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Dosada05/tournament-engine/brackets"
	"github.com/Dosada05/tournament-engine/config"
	"github.com/Dosada05/tournament-engine/models"
)

type DrawInput struct {
	Sport string `json:"sport,omitempty"`

	// PlayersPerTeam and ExcludeGoalkeepers override the sport preset.
	PlayersPerTeam     int             `json:"players_per_team,omitempty"`
	ExcludeGoalkeepers *bool           `json:"exclude_goalkeepers,omitempty"`
	Players            []models.Player `json:"players"`
}

type DrawnTeam struct {
	Name     string          `json:"name"`
	Players  []models.Player `json:"players"`
	Strength float64         `json:"strength"`
}

type DrawView struct {
	PlayersPerTeam int             `json:"players_per_team"`
	Teams          []DrawnTeam     `json:"teams"`
	Unassigned     []models.Player `json:"unassigned"`

	// Excluded lists players filtered out before the draw.
	Excluded []models.Player `json:"excluded"`
}

type DrawService struct {
	presets config.Presets
	logger  *slog.Logger
}

func NewDrawService(presets config.Presets, logger *slog.Logger) *DrawService {
	if presets == nil {
		presets = config.DefaultPresets()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &DrawService{presets: presets, logger: logger}
}

// DrawTeams splits the eligible players into balanced squads.
func (s *DrawService) DrawTeams(ctx context.Context, input DrawInput) (*DrawView, error) {
	perTeam, excludeGK, err := s.resolveRules(input)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(input.Players))
	byID := make(map[string]models.Player, len(input.Players))
	eligible := make([]models.Player, 0, len(input.Players))
	excluded := make([]models.Player, 0)
	for _, p := range input.Players {
		if p.ID == "" {
			return nil, fmt.Errorf("%w: every player needs an id", ErrValidationFailed)
		}
		if _, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate player id %q", ErrValidationFailed, p.ID)
		}
		seen[p.ID] = struct{}{}
		byID[p.ID] = p
		if p.Eligible(excludeGK) {
			eligible = append(eligible, p)
		} else {
			excluded = append(excluded, p)
		}
	}

	draw, err := brackets.GenerateTeams(eligible, perTeam)
	if err != nil {
		if errors.Is(err, brackets.ErrNotEnoughPlayers) {
			s.logger.Info("draw rejected", "eligible", len(eligible), "players_per_team", perTeam)
		}
		return nil, err
	}

	view := &DrawView{
		PlayersPerTeam: perTeam,
		Teams:          make([]DrawnTeam, len(draw.Teams)),
		Unassigned:     make([]models.Player, len(draw.Unassigned)),
		Excluded:       excluded,
	}
	for i, ids := range draw.Teams {
		team := DrawnTeam{
			Name:     fmt.Sprintf("Team %d", i+1),
			Players:  make([]models.Player, len(ids)),
			Strength: draw.Strength[i],
		}
		for j, id := range ids {
			team.Players[j] = byID[id]
		}
		view.Teams[i] = team
	}
	for i, id := range draw.Unassigned {
		view.Unassigned[i] = byID[id]
	}
	return view, nil
}

func (s *DrawService) resolveRules(input DrawInput) (int, bool, error) {
	perTeam := 0
	excludeGK := false
	if input.Sport != "" {
		preset, ok := s.presets.Lookup(input.Sport)
		if !ok {
			return 0, false, fmt.Errorf("%w: %q", ErrUnknownSport, input.Sport)
		}
		perTeam = preset.PlayersPerTeam
		excludeGK = preset.ExcludeGoalkeepers
	}
	if input.PlayersPerTeam != 0 {
		perTeam = input.PlayersPerTeam
	}
	if input.ExcludeGoalkeepers != nil {
		excludeGK = *input.ExcludeGoalkeepers
	}
	if perTeam == 0 {
		return 0, false, fmt.Errorf("%w: sport or players_per_team is required", ErrValidationFailed)
	}
	return perTeam, excludeGK, nil
}
