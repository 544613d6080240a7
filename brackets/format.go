package brackets

import (
	"fmt"
	"slices"

	"github.com/Dosada05/tournament-engine/models"
)

var allowedFormats = map[models.TournamentType][]models.TournamentFormat{
	models.TypeLeague: {
		models.FormatRoundRobin, models.FormatSingleGame, models.FormatTwoLegs,
		models.FormatKnockoutSingle, models.FormatKnockoutTwoLegs,
	},
	models.TypeWorldCup: {models.FormatGroupsWithKnockouts, models.FormatKnockoutSingle},
	models.TypeHomeAway: {models.FormatRoundRobin, models.FormatTwoLegs, models.FormatKnockoutTwoLegs},
}

// Supports reports whether format can be played under tournament type t.
func Supports(t models.TournamentType, format models.TournamentFormat) bool {
	return slices.Contains(allowedFormats[t], format)
}

// FormatStrategy picks and drives the generator for a type/format pair.
type FormatStrategy struct {
	factory  *MatchFactory
	groups   *GroupScheduler
	knockout *KnockoutBracketBuilder
}

func NewFormatStrategy(rnd Randomizer, clock Clock) *FormatStrategy {
	factory := NewMatchFactory(rnd, clock)
	return &FormatStrategy{
		factory:  factory,
		groups:   NewGroupScheduler(factory, rnd),
		knockout: NewKnockoutBracketBuilder(factory, rnd),
	}
}

func (s *FormatStrategy) Factory() *MatchFactory            { return s.factory }
func (s *FormatStrategy) Groups() *GroupScheduler           { return s.groups }
func (s *FormatStrategy) Knockout() *KnockoutBracketBuilder { return s.knockout }

// Generator returns the generator for t and format. An empty format selects
// the type's default.
func (s *FormatStrategy) Generator(t models.TournamentType, format models.TournamentFormat) (Generator, error) {
	if format == "" {
		format = models.DefaultFormat(t)
	}
	if !t.Valid() {
		return nil, fmt.Errorf("%w: unknown tournament type %q", ErrUnsupportedFormat, t)
	}
	if !Supports(t, format) {
		return nil, fmt.Errorf("%w: %q is not available for %q tournaments", ErrUnsupportedFormat, format, t)
	}

	switch format {
	case models.FormatRoundRobin:
		legs := 1
		if t == models.TypeHomeAway {
			legs = 2
		}
		return NewRoundRobinGenerator(s.factory, legs), nil
	case models.FormatSingleGame:
		return &singleGameGenerator{factory: s.factory}, nil
	case models.FormatTwoLegs:
		return &twoLegsGenerator{factory: s.factory}, nil
	case models.FormatKnockoutSingle:
		return &knockoutGenerator{builder: s.knockout, format: format}, nil
	case models.FormatKnockoutTwoLegs:
		return &knockoutGenerator{builder: s.knockout, format: format}, nil
	case models.FormatGroupsWithKnockouts:
		return &groupsWithKnockoutsGenerator{groups: s.groups, knockout: s.knockout}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
}

// GenerateMatches validates the team count and runs the selected generator.
func (s *FormatStrategy) GenerateMatches(teams []models.Team, t models.TournamentType, format models.TournamentFormat, groupSize int) (*Generation, error) {
	if len(teams) < MinTeams {
		return nil, fmt.Errorf("%w: need %d teams, got %d", ErrMinTeamsRequired, MinTeams, len(teams))
	}
	if len(teams) > MaxTeams {
		return nil, fmt.Errorf("%w: at most %d teams, got %d", ErrMaxTeamsExceeded, MaxTeams, len(teams))
	}
	gen, err := s.Generator(t, format)
	if err != nil {
		return nil, err
	}
	out, err := gen.Generate(GenerateParams{Teams: teams, GroupSize: groupSize})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", gen.Name(), err)
	}
	return out, nil
}

type singleGameGenerator struct {
	factory *MatchFactory
}

func (g *singleGameGenerator) Name() string { return "SingleGame" }

func (g *singleGameGenerator) Generate(params GenerateParams) (*Generation, error) {
	if len(params.Teams) < 2 {
		return nil, fmt.Errorf("%w: single game needs 2 teams", ErrMinTeamsRequired)
	}
	matches, err := g.factory.createTie(params.Teams[0], params.Teams[1], models.MatchKnockout, nil, 0, 1)
	if err != nil {
		return nil, err
	}
	return &Generation{Matches: matches}, nil
}

type twoLegsGenerator struct {
	factory *MatchFactory
}

func (g *twoLegsGenerator) Name() string { return "TwoLegs" }

func (g *twoLegsGenerator) Generate(params GenerateParams) (*Generation, error) {
	if len(params.Teams) < 2 {
		return nil, fmt.Errorf("%w: two legs need 2 teams", ErrMinTeamsRequired)
	}
	matches, err := g.factory.createTie(params.Teams[0], params.Teams[1], models.MatchKnockout, nil, 0, 2)
	if err != nil {
		return nil, err
	}
	return &Generation{Matches: matches}, nil
}

// knockoutGenerator shuffles the field and pairs neighbours into the first
// bracket round. An odd team out gets a bye into the next round.
type knockoutGenerator struct {
	builder *KnockoutBracketBuilder
	format  models.TournamentFormat
}

func (g *knockoutGenerator) Name() string {
	if g.format.IsTwoLegged() {
		return "KnockoutTwoLegs"
	}
	return "KnockoutSingle"
}

func (g *knockoutGenerator) Generate(params GenerateParams) (*Generation, error) {
	if len(params.Teams) < 2 {
		return nil, fmt.Errorf("%w: knockout needs 2 teams", ErrMinTeamsRequired)
	}
	seeded := shuffled(g.builder.rnd, params.Teams)
	plan, err := g.builder.BuildRound(seeded, nil, g.format, 1)
	if err != nil {
		return nil, err
	}
	return &Generation{Matches: plan.Matches, Byes: plan.Byes}, nil
}

type groupsWithKnockoutsGenerator struct {
	groups   *GroupScheduler
	knockout *KnockoutBracketBuilder
}

func (g *groupsWithKnockoutsGenerator) Name() string { return "GroupsWithKnockouts" }

func (g *groupsWithKnockoutsGenerator) Generate(params GenerateParams) (*Generation, error) {
	groups, err := g.groups.GenerateGroups(params.Teams, params.GroupSize)
	if err != nil {
		return nil, err
	}
	preview, err := g.knockout.GenerateKnockoutMatches(params.Teams)
	if err != nil {
		return nil, err
	}
	return &Generation{
		Matches:  FlattenGroupMatches(groups),
		Groups:   groups,
		Knockout: &preview,
	}, nil
}
