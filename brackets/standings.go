package brackets

import (
	"cmp"
	"slices"
	"strings"

	"github.com/Dosada05/tournament-engine/models"
)

const (
	pointsForWin  = 3
	pointsForDraw = 1
)

// CalculateStandings folds the played matches into a ranked table. Every
// team in teams gets a row; teams seen only in matches are appended.
// Unplayed matches are ignored rather than counted as 0-0.
//
// Ranking: points, goal difference, goals for (all descending), then name
// case-insensitively and id, so the order is total.
func CalculateStandings(matches []models.Match, teams []models.Team) []models.TeamStanding {
	rows := make(map[string]*models.TeamStanding, len(teams))
	order := make([]string, 0, len(teams))
	row := func(t models.Team) *models.TeamStanding {
		if s, ok := rows[t.ID]; ok {
			return s
		}
		s := &models.TeamStanding{Team: t}
		rows[t.ID] = s
		order = append(order, t.ID)
		return s
	}
	for _, t := range teams {
		row(t)
	}

	for _, m := range matches {
		if !m.Played() {
			continue
		}
		home, away := row(m.Team1), row(m.Team2)
		s1, s2 := *m.Score1, *m.Score2

		home.Played++
		away.Played++
		home.GoalsFor += s1
		home.GoalsAgainst += s2
		away.GoalsFor += s2
		away.GoalsAgainst += s1

		switch {
		case s1 > s2:
			home.Wins++
			away.Losses++
		case s1 == s2:
			home.Draws++
			away.Draws++
		default:
			away.Wins++
			home.Losses++
		}
	}

	standings := make([]models.TeamStanding, 0, len(order))
	for _, id := range order {
		s := rows[id]
		s.Points = s.Wins*pointsForWin + s.Draws*pointsForDraw
		s.GoalDifference = s.GoalsFor - s.GoalsAgainst
		standings = append(standings, *s)
	}

	slices.SortFunc(standings, compareStandings)
	for i := range standings {
		standings[i].Rank = i + 1
	}
	return standings
}

func compareStandings(a, b models.TeamStanding) int {
	if c := cmp.Compare(b.Points, a.Points); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalDifference, a.GoalDifference); c != 0 {
		return c
	}
	if c := cmp.Compare(b.GoalsFor, a.GoalsFor); c != 0 {
		return c
	}
	if c := strings.Compare(strings.ToLower(a.Team.Name), strings.ToLower(b.Team.Name)); c != 0 {
		return c
	}
	return strings.Compare(a.Team.ID, b.Team.ID)
}

// GroupStandings returns copies of the groups with their tables filled in.
func GroupStandings(groups []models.Group) []models.Group {
	out := make([]models.Group, len(groups))
	for i, g := range groups {
		g.Standings = CalculateStandings(g.Matches, g.Teams)
		out[i] = g
	}
	return out
}

// QualifiersFromGroups takes the top perGroup teams of every group and
// crosses neighbouring groups so adjacent pairing gives A1-B2, A2-B1,
// C1-D2, ... A group without a partner keeps its own rank order.
func QualifiersFromGroups(groups []models.Group, perGroup int) []models.Team {
	if perGroup <= 0 {
		return nil
	}
	top := func(g models.Group) []models.Team {
		table := g.Standings
		if table == nil {
			table = CalculateStandings(g.Matches, g.Teams)
		}
		n := min(perGroup, len(table))
		teams := make([]models.Team, n)
		for i := 0; i < n; i++ {
			teams[i] = table[i].Team
		}
		return teams
	}

	out := make([]models.Team, 0, len(groups)*perGroup)
	for i := 0; i < len(groups); i += 2 {
		a := top(groups[i])
		if i+1 >= len(groups) {
			out = append(out, a...)
			break
		}
		c := top(groups[i+1])
		for k := 0; k < max(len(a), len(c)); k++ {
			if k < len(a) {
				out = append(out, a[k])
			}
			if j := len(c) - 1 - k; j >= 0 {
				out = append(out, c[j])
			}
		}
	}
	return out
}

// ApplyStats returns copies of the teams with their running stats rebuilt
// from the played matches.
func ApplyStats(teams []models.Team, matches []models.Match) []models.Team {
	table := CalculateStandings(matches, teams)
	byID := make(map[string]models.TeamStanding, len(table))
	for _, s := range table {
		byID[s.Team.ID] = s
	}
	out := make([]models.Team, len(teams))
	for i, t := range teams {
		s := byID[t.ID]
		t.Stats = models.TeamStats{
			Wins:         s.Wins,
			Draws:        s.Draws,
			Losses:       s.Losses,
			GoalsFor:     s.GoalsFor,
			GoalsAgainst: s.GoalsAgainst,
		}
		out[i] = t
	}
	return out
}
