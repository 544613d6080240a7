package brackets

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/Dosada05/tournament-engine/models"
)

// Draw is a balanced split of a roster. Teams holds player ids per squad.
// Players beyond numTeams*playersPerTeam sit out and are listed in
// Unassigned; they never form an undersized extra squad.
type Draw struct {
	Teams      [][]string `json:"teams"`
	Strength   []float64  `json:"strength"`
	Unassigned []string   `json:"unassigned"`
}

// GenerateTeams splits already-eligible players into floor(N/playersPerTeam)
// squads with a snake draft over the rating order.
func GenerateTeams(players []models.Player, playersPerTeam int) (*Draw, error) {
	if playersPerTeam <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidPlayersPerTeam, playersPerTeam)
	}
	if len(players) < 2*playersPerTeam {
		return nil, fmt.Errorf("%w: need at least %d players for %d per team, have %d",
			ErrNotEnoughPlayers, 2*playersPerTeam, playersPerTeam, len(players))
	}
	numTeams := len(players) / playersPerTeam
	if numTeams < 2 {
		return nil, fmt.Errorf("%w: only %d team possible", ErrNotEnoughPlayers, numTeams)
	}

	sorted := slices.Clone(players)
	slices.SortStableFunc(sorted, func(a, b models.Player) int {
		return cmp.Compare(b.Rating, a.Rating)
	})

	squads := make([][]models.Player, numTeams)
	next := 0
	full := func() bool {
		for _, s := range squads {
			if len(s) < playersPerTeam {
				return false
			}
		}
		return true
	}
	for round := 1; next < len(sorted) && !full(); round++ {
		for step := 0; step < numTeams && next < len(sorted); step++ {
			team := step
			if round%2 == 0 {
				team = numTeams - 1 - step
			}
			if len(squads[team]) >= playersPerTeam {
				continue
			}
			squads[team] = append(squads[team], sorted[next])
			next++
		}
	}

	draw := &Draw{Teams: make([][]string, 0, numTeams), Strength: make([]float64, 0, numTeams)}
	for _, squad := range squads {
		if len(squad) == 0 {
			continue
		}
		ids := make([]string, len(squad))
		var strength float64
		for i, p := range squad {
			ids[i] = p.ID
			strength += p.Rating
		}
		draw.Teams = append(draw.Teams, ids)
		draw.Strength = append(draw.Strength, strength)
	}
	draw.Unassigned = make([]string, 0, len(sorted)-next)
	for _, p := range sorted[next:] {
		draw.Unassigned = append(draw.Unassigned, p.ID)
	}
	return draw, nil
}
