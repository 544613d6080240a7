package brackets

import (
	"fmt"
	"time"

	"github.com/Dosada05/tournament-engine/models"
)

var fixedDate = time.Date(2026, time.March, 14, 18, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedDate }

func newTestStrategy(seed uint64) *FormatStrategy {
	return NewFormatStrategy(NewSeeded(seed), fixedClock)
}

func makeTeams(n int) []models.Team {
	teams := make([]models.Team, n)
	for i := range teams {
		teams[i] = models.Team{ID: fmt.Sprintf("t%02d", i+1), Name: fmt.Sprintf("Team %02d", i+1)}
	}
	return teams
}

func played(m models.Match, s1, s2 int) models.Match {
	m.Score1, m.Score2 = &s1, &s2
	m.Status = models.MatchStatusCompleted
	return m
}

func teamIDs(teams []models.Team) []string {
	ids := make([]string, len(teams))
	for i, t := range teams {
		ids[i] = t.ID
	}
	return ids
}
