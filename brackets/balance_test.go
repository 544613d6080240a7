package brackets

import (
	"fmt"
	"testing"

	"github.com/Dosada05/tournament-engine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makePlayers(ratings ...float64) []models.Player {
	players := make([]models.Player, len(ratings))
	for i, r := range ratings {
		players[i] = models.Player{ID: fmt.Sprintf("p%02d", i+1), Rating: r, Present: true, IncludeInDraw: true}
	}
	return players
}

func TestGenerateTeamsTenPlayers(t *testing.T) {
	draw, err := GenerateTeams(makePlayers(10, 9, 8, 7, 6, 5, 4, 3, 2, 1), 5)
	require.NoError(t, err)

	require.Len(t, draw.Teams, 2)
	assert.Len(t, draw.Teams[0], 5)
	assert.Len(t, draw.Teams[1], 5)
	assert.Empty(t, draw.Unassigned)
	assert.Equal(t, []float64{28, 27}, draw.Strength)
}

func TestGenerateTeamsSnakeDraftWithRemainder(t *testing.T) {
	players := []models.Player{
		{ID: "five-a", Rating: 5},
		{ID: "one", Rating: 1},
		{ID: "nine", Rating: 9},
		{ID: "five-b", Rating: 5},
		{ID: "three", Rating: 3},
		{ID: "eight", Rating: 8},
		{ID: "two", Rating: 2},
		{ID: "five-c", Rating: 5},
		{ID: "seven", Rating: 7},
		{ID: "four", Rating: 4},
		{ID: "six", Rating: 6},
	}

	draw, err := GenerateTeams(players, 5)
	require.NoError(t, err)

	assert.Equal(t, [][]string{
		{"nine", "six", "five-a", "four", "three"},
		{"eight", "seven", "five-b", "five-c", "two"},
	}, draw.Teams)
	assert.Equal(t, []string{"one"}, draw.Unassigned)
	assert.Equal(t, []float64{27, 27}, draw.Strength)
	assert.Equal(t, "five-a", players[0].ID, "input order must not change")
}

func TestGenerateTeamsSizesWithinOne(t *testing.T) {
	for _, tc := range []struct{ players, perTeam int }{
		{12, 3}, {23, 4}, {200, 7}, {9, 2},
	} {
		ratings := make([]float64, tc.players)
		for i := range ratings {
			ratings[i] = float64((i * 37) % 11)
		}
		draw, err := GenerateTeams(makePlayers(ratings...), tc.perTeam)
		require.NoError(t, err)

		assert.Len(t, draw.Teams, tc.players/tc.perTeam)
		assigned := 0
		for _, team := range draw.Teams {
			assert.Len(t, team, tc.perTeam)
			assigned += len(team)
		}
		assert.Equal(t, tc.players, assigned+len(draw.Unassigned))
	}
}

func TestGenerateTeamsNotEnoughPlayers(t *testing.T) {
	draw, err := GenerateTeams(makePlayers(5, 4, 3, 2, 1, 1, 1, 1, 1), 5)
	assert.ErrorIs(t, err, ErrNotEnoughPlayers)
	assert.NotEmpty(t, err.Error())
	assert.Nil(t, draw)
}

func TestGenerateTeamsInvalidPlayersPerTeam(t *testing.T) {
	_, err := GenerateTeams(makePlayers(1, 2, 3, 4), 0)
	assert.ErrorIs(t, err, ErrInvalidPlayersPerTeam)

	_, err = GenerateTeams(makePlayers(1, 2, 3, 4), -2)
	assert.ErrorIs(t, err, ErrInvalidPlayersPerTeam)
}

func TestPlayerEligible(t *testing.T) {
	keeper := models.Player{ID: "gk", Present: true, IncludeInDraw: true, Goalkeeper: true}
	absent := models.Player{ID: "away", IncludeInDraw: true}
	benched := models.Player{ID: "bench", Present: true}

	assert.True(t, keeper.Eligible(false))
	assert.False(t, keeper.Eligible(true))
	assert.False(t, absent.Eligible(false))
	assert.False(t, benched.Eligible(false))
}
