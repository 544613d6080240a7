package brackets

import (
	"testing"

	"github.com/Dosada05/tournament-engine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustMatch(t *testing.T, f *MatchFactory, a, b models.Team) models.Match {
	t.Helper()
	m, err := f.CreateMatch(a, b, models.MatchGroupStage)
	require.NoError(t, err)
	return m
}

func standingByID(table []models.TeamStanding, id string) models.TeamStanding {
	for _, s := range table {
		if s.Team.ID == id {
			return s
		}
	}
	return models.TeamStanding{}
}

func TestCalculateStandingsWin(t *testing.T) {
	f := NewMatchFactory(NewSeeded(1), fixedClock)
	teams := makeTeams(2)
	m := played(mustMatch(t, f, teams[0], teams[1]), 2, 1)

	table := CalculateStandings([]models.Match{m}, teams)
	require.Len(t, table, 2)

	winner := table[0]
	assert.Equal(t, "t01", winner.Team.ID)
	assert.Equal(t, 1, winner.Rank)
	assert.Equal(t, 3, winner.Points)
	assert.Equal(t, 1, winner.Wins)
	assert.Equal(t, 2, winner.GoalsFor)
	assert.Equal(t, 1, winner.GoalsAgainst)
	assert.Equal(t, 1, winner.GoalDifference)

	loser := table[1]
	assert.Equal(t, 0, loser.Points)
	assert.Equal(t, 1, loser.Losses)
	assert.Equal(t, 1, loser.Played)
}

func TestCalculateStandingsDraw(t *testing.T) {
	f := NewMatchFactory(NewSeeded(1), fixedClock)
	teams := makeTeams(2)
	m := played(mustMatch(t, f, teams[0], teams[1]), 1, 1)

	table := CalculateStandings([]models.Match{m}, teams)
	for _, s := range table {
		assert.Equal(t, 1, s.Points)
		assert.Equal(t, 1, s.Draws)
		assert.Equal(t, 0, s.GoalDifference)
	}
}

func TestCalculateStandingsShutout(t *testing.T) {
	f := NewMatchFactory(NewSeeded(1), fixedClock)
	a := models.Team{ID: "a", Name: "A"}
	b := models.Team{ID: "b", Name: "B"}
	m := played(mustMatch(t, f, a, b), 3, 0)

	table := CalculateStandings([]models.Match{m}, []models.Team{a, b})

	sa := standingByID(table, "a")
	assert.Equal(t, models.TeamStanding{Team: a, Rank: 1, Points: 3, Played: 1, Wins: 1, GoalsFor: 3, GoalsAgainst: 0, GoalDifference: 3}, sa)
	sb := standingByID(table, "b")
	assert.Equal(t, models.TeamStanding{Team: b, Rank: 2, Points: 0, Played: 1, Losses: 1, GoalsFor: 0, GoalsAgainst: 3, GoalDifference: -3}, sb)
}

func TestCalculateStandingsIgnoresUnplayed(t *testing.T) {
	f := NewMatchFactory(NewSeeded(1), fixedClock)
	teams := makeTeams(3)
	m1 := played(mustMatch(t, f, teams[0], teams[1]), 1, 0)
	m2 := mustMatch(t, f, teams[1], teams[2])

	table := CalculateStandings([]models.Match{m1, m2}, teams)
	s := standingByID(table, "t03")
	assert.Equal(t, 0, s.Played)
	assert.Equal(t, 0, s.Draws)
	assert.Equal(t, 0, s.Points)
}

func TestCalculateStandingsTieBreakOrder(t *testing.T) {
	f := NewMatchFactory(NewSeeded(1), fixedClock)
	alpha := models.Team{ID: "4", Name: "alpha"}
	bravo := models.Team{ID: "3", Name: "Bravo"}
	charlie := models.Team{ID: "2", Name: "Charlie"}
	delta := models.Team{ID: "1", Name: "Delta"}
	echo := models.Team{ID: "0", Name: "Echo"}

	matches := []models.Match{
		played(mustMatch(t, f, alpha, echo), 4, 0),
		played(mustMatch(t, f, bravo, alpha), 1, 0),
		played(mustMatch(t, f, charlie, bravo), 4, 0),
		played(mustMatch(t, f, delta, charlie), 1, 0),
		played(mustMatch(t, f, bravo, delta), 5, 0),
	}
	// Points: alpha 3, bravo 6, charlie 3, delta 3, echo 0.
	// Goal difference: alpha +3, charlie +3, delta -4.
	// Goals for: alpha 4, charlie 4 -> name decides: alpha before Charlie.
	table := CalculateStandings(matches, []models.Team{echo, delta, charlie, bravo, alpha})

	got := make([]string, len(table))
	for i, s := range table {
		got[i] = s.Team.Name
	}
	assert.Equal(t, []string{"Bravo", "alpha", "Charlie", "Delta", "Echo"}, got)
	for i, s := range table {
		assert.Equal(t, i+1, s.Rank)
	}
}

func TestCalculateStandingsGoalsForBreaksTie(t *testing.T) {
	f := NewMatchFactory(NewSeeded(1), fixedClock)
	a := models.Team{ID: "a", Name: "Zulu"}
	b := models.Team{ID: "b", Name: "Yankee"}
	c := models.Team{ID: "c", Name: "Xray"}
	d := models.Team{ID: "d", Name: "Whiskey"}

	matches := []models.Match{
		played(mustMatch(t, f, a, c), 3, 2), // Zulu +1, 3 scored
		played(mustMatch(t, f, b, d), 1, 0), // Yankee +1, 1 scored
	}
	table := CalculateStandings(matches, []models.Team{b, a, c, d})
	assert.Equal(t, "Zulu", table[0].Team.Name)
	assert.Equal(t, "Yankee", table[1].Team.Name)
}

func TestCalculateStandingsSameNameFallsBackToID(t *testing.T) {
	a := models.Team{ID: "b", Name: "Same"}
	b := models.Team{ID: "a", Name: "same"}

	table := CalculateStandings(nil, []models.Team{a, b})
	assert.Equal(t, "a", table[0].Team.ID)
	assert.Equal(t, "b", table[1].Team.ID)
}

func TestCalculateStandingsAddsTeamsSeenOnlyInMatches(t *testing.T) {
	f := NewMatchFactory(NewSeeded(1), fixedClock)
	teams := makeTeams(2)
	m := played(mustMatch(t, f, teams[0], teams[1]), 0, 2)

	table := CalculateStandings([]models.Match{m}, teams[:1])
	require.Len(t, table, 2)
	assert.Equal(t, "t02", table[0].Team.ID)
}

func TestQualifiersFromGroups(t *testing.T) {
	s := newTestStrategy(8)
	groups, err := s.Groups().GenerateGroups(makeTeams(8), 4)
	require.NoError(t, err)

	// Team1 wins every match, so each group's table is decided.
	for gi := range groups {
		for mi := range groups[gi].Matches {
			groups[gi].Matches[mi] = played(groups[gi].Matches[mi], 2, 0)
		}
	}
	groups = GroupStandings(groups)
	require.NotEmpty(t, groups[0].Standings)

	q := QualifiersFromGroups(groups, 2)
	require.Len(t, q, 4)
	a, b := groups[0].Standings, groups[1].Standings
	assert.Equal(t, []string{a[0].Team.ID, b[1].Team.ID, a[1].Team.ID, b[0].Team.ID}, teamIDs(q))
	assert.Nil(t, QualifiersFromGroups(groups, 0))
}

func TestApplyStats(t *testing.T) {
	f := NewMatchFactory(NewSeeded(1), fixedClock)
	teams := makeTeams(2)
	m := played(mustMatch(t, f, teams[0], teams[1]), 2, 2)

	updated := ApplyStats(teams, []models.Match{m})
	assert.Equal(t, models.TeamStats{Draws: 1, GoalsFor: 2, GoalsAgainst: 2}, updated[0].Stats)
	assert.Equal(t, models.TeamStats{}, teams[0].Stats, "input teams must not change")
}
