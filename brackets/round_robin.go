package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-engine/models"
)

// singleRoundRobin pairs every unordered couple of teams once, the lower
// index at home.
func singleRoundRobin(f *MatchFactory, teams []models.Team, matchType models.MatchType) ([]models.Match, error) {
	matches := make([]models.Match, 0, len(teams)*(len(teams)-1)/2)
	for i := 0; i < len(teams); i++ {
		for j := i + 1; j < len(teams); j++ {
			m, err := f.CreateMatch(teams[i], teams[j], matchType)
			if err != nil {
				return nil, err
			}
			matches = append(matches, m)
		}
	}
	return matches, nil
}

// doubleRoundRobin emits, for every couple j<k, the home game (j,k)
// immediately followed by the return game (k,j): k*(k-1) matches in total.
func doubleRoundRobin(f *MatchFactory, teams []models.Team, matchType models.MatchType) ([]models.Match, error) {
	if len(teams) < 2 {
		return []models.Match{}, nil
	}
	matches := make([]models.Match, 0, len(teams)*(len(teams)-1))
	for j := 0; j < len(teams); j++ {
		for k := j + 1; k < len(teams); k++ {
			legs, err := f.createTie(teams[j], teams[k], matchType, nil, 0, 2)
			if err != nil {
				return nil, err
			}
			matches = append(matches, legs...)
		}
	}
	return matches, nil
}

// RoundRobinGenerator schedules a league: one leg per couple, or home and
// away when legs is 2.
type RoundRobinGenerator struct {
	factory *MatchFactory
	legs    int
}

func NewRoundRobinGenerator(factory *MatchFactory, legs int) Generator {
	if legs != 2 {
		legs = 1
	}
	return &RoundRobinGenerator{factory: factory, legs: legs}
}

func (g *RoundRobinGenerator) Name() string {
	if g.legs == 2 {
		return "DoubleRoundRobin"
	}
	return "RoundRobin"
}

func (g *RoundRobinGenerator) Generate(params GenerateParams) (*Generation, error) {
	if len(params.Teams) < 2 {
		return nil, fmt.Errorf("%w: round robin needs 2 teams, got %d", ErrMinTeamsRequired, len(params.Teams))
	}

	var (
		matches []models.Match
		err     error
	)
	if g.legs == 2 {
		matches, err = doubleRoundRobin(g.factory, params.Teams, models.MatchGroupStage)
	} else {
		matches, err = singleRoundRobin(g.factory, params.Teams, models.MatchGroupStage)
	}
	if err != nil {
		return nil, err
	}
	return &Generation{Matches: matches}, nil
}
