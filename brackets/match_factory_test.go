package brackets

import (
	"testing"

	"github.com/Dosada05/tournament-engine/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMatchDefaults(t *testing.T) {
	teams := makeTeams(2)
	f := NewMatchFactory(NewSeeded(1), fixedClock)

	m, err := f.CreateMatch(teams[0], teams[1], models.MatchGroupStage)
	require.NoError(t, err)

	assert.NotEmpty(t, m.ID)
	assert.Equal(t, "t01", m.Team1.ID)
	assert.Equal(t, "t02", m.Team2.ID)
	assert.Nil(t, m.Score1)
	assert.Nil(t, m.Score2)
	assert.Equal(t, models.MatchStatusScheduled, m.Status)
	assert.True(t, m.IsHomeGame)
	assert.Equal(t, fixedDate, m.Date)
	assert.False(t, m.Played())
}

func TestCreateMatchRejectsSelfPairing(t *testing.T) {
	team := makeTeams(1)[0]
	f := NewMatchFactory(NewSeeded(1), fixedClock)

	_, err := f.CreateMatch(team, team, models.MatchKnockout)
	assert.ErrorIs(t, err, models.ErrInvariantViolation)
}

func TestCreateMatchIDsAreUniqueAndSeeded(t *testing.T) {
	teams := makeTeams(2)
	a := NewMatchFactory(NewSeeded(42), fixedClock)
	b := NewMatchFactory(NewSeeded(42), fixedClock)

	seen := make(map[string]bool)
	for i := 0; i < 50; i++ {
		ma, err := a.CreateMatch(teams[0], teams[1], models.MatchGroupStage)
		require.NoError(t, err)
		mb, err := b.CreateMatch(teams[0], teams[1], models.MatchGroupStage)
		require.NoError(t, err)

		assert.Equal(t, ma.ID, mb.ID)
		assert.False(t, seen[ma.ID], "duplicate id %s", ma.ID)
		seen[ma.ID] = true
	}
}

func TestMatchValidateNegativeScore(t *testing.T) {
	teams := makeTeams(2)
	f := NewMatchFactory(NewSeeded(1), fixedClock)
	m, err := f.CreateMatch(teams[0], teams[1], models.MatchGroupStage)
	require.NoError(t, err)

	assert.ErrorIs(t, played(m, -1, 0).Validate(), models.ErrInvariantViolation)
	assert.NoError(t, played(m, 0, 0).Validate())
}
