package brackets

import (
	"time"

	"github.com/Dosada05/tournament-engine/models"
)

// Clock supplies match dates.
type Clock func() time.Time

type MatchFactory struct {
	rnd   Randomizer
	clock Clock
}

func NewMatchFactory(rnd Randomizer, clock Clock) *MatchFactory {
	if clock == nil {
		clock = time.Now
	}
	return &MatchFactory{rnd: rnd, clock: clock}
}

// CreateMatch builds a scheduled, unplayed match with teamA at home.
func (f *MatchFactory) CreateMatch(teamA, teamB models.Team, matchType models.MatchType) (models.Match, error) {
	m := models.Match{
		ID:         f.rnd.NewID(),
		Team1:      teamA,
		Team2:      teamB,
		Date:       f.clock(),
		Type:       matchType,
		Status:     models.MatchStatusScheduled,
		IsHomeGame: true,
	}
	if err := m.Validate(); err != nil {
		return models.Match{}, err
	}
	return m, nil
}

// createTie builds one match, or two reversed legs when legs == 2.
func (f *MatchFactory) createTie(teamA, teamB models.Team, matchType models.MatchType, round *models.Round, stage, legs int) ([]models.Match, error) {
	first, err := f.CreateMatch(teamA, teamB, matchType)
	if err != nil {
		return nil, err
	}
	first.Round = round
	first.Stage = stage
	if legs < 2 {
		return []models.Match{first}, nil
	}
	second, err := f.CreateMatch(teamB, teamA, matchType)
	if err != nil {
		return nil, err
	}
	second.Round = round
	second.Stage = stage
	first.Leg, second.Leg = 1, 2
	return []models.Match{first, second}, nil
}
