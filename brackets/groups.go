package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-engine/models"
)

// GroupScheduler splits teams into groups and schedules each group as a
// double round-robin.
type GroupScheduler struct {
	factory *MatchFactory
	rnd     Randomizer
}

func NewGroupScheduler(factory *MatchFactory, rnd Randomizer) *GroupScheduler {
	return &GroupScheduler{factory: factory, rnd: rnd}
}

// GenerateGroups shuffles the teams once and cuts them into ceil(N/groupSize)
// contiguous groups. A short trailing group still plays everyone in it.
func (s *GroupScheduler) GenerateGroups(teams []models.Team, groupSize int) ([]models.Group, error) {
	if len(teams) < MinTeams {
		return nil, fmt.Errorf("%w: groups need %d teams, got %d", ErrMinTeamsRequired, MinTeams, len(teams))
	}
	if groupSize <= 0 {
		groupSize = DefaultGroupSize
	}

	permuted := shuffled(s.rnd, teams)
	numGroups := (len(permuted) + groupSize - 1) / groupSize
	groups := make([]models.Group, 0, numGroups)

	for g := 0; g < numGroups; g++ {
		start := g * groupSize
		end := min(start+groupSize, len(permuted))
		members := permuted[start:end:end]

		matches, err := doubleRoundRobin(s.factory, members, models.MatchGroupStage)
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", g+1, err)
		}
		groups = append(groups, models.Group{
			ID:      s.rnd.NewID(),
			Name:    groupName(g),
			Teams:   members,
			Matches: matches,
		})
	}
	return groups, nil
}

// groupName labels groups A..Z, then AA, AB, ...
func groupName(i int) string {
	label := ""
	for i >= 0 {
		label = string(rune('A'+i%26)) + label
		i = i/26 - 1
	}
	return "Group " + label
}

// FlattenGroupMatches lists the matches of every group in group order.
func FlattenGroupMatches(groups []models.Group) []models.Match {
	var n int
	for _, g := range groups {
		n += len(g.Matches)
	}
	out := make([]models.Match, 0, n)
	for _, g := range groups {
		out = append(out, g.Matches...)
	}
	return out
}
