package brackets

import (
	"fmt"

	"github.com/Dosada05/tournament-engine/models"
)

// KnockoutBracketBuilder lays out single-elimination brackets and moves
// winners from one round to the next.
type KnockoutBracketBuilder struct {
	factory *MatchFactory
	rnd     Randomizer
}

func NewKnockoutBracketBuilder(factory *MatchFactory, rnd Randomizer) *KnockoutBracketBuilder {
	return &KnockoutBracketBuilder{factory: factory, rnd: rnd}
}

// TieResult is the outcome of one knockout pairing, one or two legs.
type TieResult struct {
	Winner      models.Team
	Loser       models.Team
	WinnerGoals int
	LoserGoals  int
	// DrawnOnScore is set when the tie was level and the randomizer picked the winner.
	DrawnOnScore bool
}

// RoundPlan is the next step of a knockout: more matches, or a champion.
type RoundPlan struct {
	Matches  []models.Match
	Byes     []models.Team
	Champion *models.Team
}

// GenerateKnockoutMatches builds a bracket preview from one shuffle. Every
// round is cut from the same seed order; real progression goes through
// ResolveTies and NextRound.
func (b *KnockoutBracketBuilder) GenerateKnockoutMatches(teams []models.Team) (models.KnockoutMatches, error) {
	var km models.KnockoutMatches
	if len(teams) < MinTeams {
		return km, fmt.Errorf("%w: bracket needs %d teams, got %d", ErrMinTeamsRequired, MinTeams, len(teams))
	}
	p := shuffled(b.rnd, teams)

	final, err := b.factory.CreateMatch(p[0], p[1], models.MatchFinal)
	if err != nil {
		return km, err
	}
	final.Round = roundPtr(models.RoundFinal)
	final.Stage = 4
	third, err := b.factory.CreateMatch(p[2], p[3], models.MatchThirdPlace)
	if err != nil {
		return km, err
	}
	third.Round = roundPtr(models.RoundThirdPlace)
	third.Stage = 4
	km.Final, km.ThirdPlace = &final, &third

	if len(p) >= 16 {
		if km.RoundOf16, err = b.pairSequential(p[:16], models.RoundOf16, 1, 1); err != nil {
			return km, err
		}
	}
	if len(p) >= 8 {
		if km.QuarterFinals, err = b.pairSequential(p[:8], models.RoundQuarterFinal, 2, 1); err != nil {
			return km, err
		}
	}
	if km.SemiFinals, err = b.pairSequential(p[:4], models.RoundSemiFinal, 3, 1); err != nil {
		return km, err
	}
	return km, nil
}

// pairSequential pairs teams (0,1), (2,3), ... An odd last team is ignored.
func (b *KnockoutBracketBuilder) pairSequential(teams []models.Team, round models.Round, stage, legs int) ([]models.Match, error) {
	matches := make([]models.Match, 0, len(teams)/2*legs)
	for i := 0; i+1 < len(teams); i += 2 {
		tie, err := b.factory.createTie(teams[i], teams[i+1], models.MatchKnockout, roundPtr(round), stage, legs)
		if err != nil {
			return nil, err
		}
		matches = append(matches, tie...)
	}
	return matches, nil
}

type tieKey struct{ a, b string }

func newTieKey(m models.Match) tieKey {
	a, b := m.Team1.ID, m.Team2.ID
	if a > b {
		a, b = b, a
	}
	return tieKey{a, b}
}

type tieAccumulator struct {
	teams  [2]models.Team
	goals  map[string]int
	played int
	needed int
}

// ResolveTies decides every tie among the completed matches, in the order
// ties are first seen. Legs of a two-legged tie are added up; a tie with a
// missing leg is skipped. Level ties are settled by the randomizer.
func (b *KnockoutBracketBuilder) ResolveTies(completed []models.Match, format models.TournamentFormat) ([]TieResult, error) {
	order := make([]tieKey, 0, len(completed))
	ties := make(map[tieKey]*tieAccumulator)
	single := 0

	for _, m := range completed {
		if !m.Played() {
			continue
		}
		if err := m.Validate(); err != nil {
			return nil, err
		}

		key := newTieKey(m)
		needed := 1
		if format.IsTwoLegged() && m.Leg > 0 {
			needed = 2
		} else {
			// Single games never merge, even between the same two teams.
			single++
			key = tieKey{a: fmt.Sprintf("#%d", single), b: m.ID}
		}

		acc, ok := ties[key]
		if !ok {
			acc = &tieAccumulator{teams: [2]models.Team{m.Team1, m.Team2}, goals: make(map[string]int), needed: needed}
			ties[key] = acc
			order = append(order, key)
		}
		acc.goals[m.Team1.ID] += *m.Score1
		acc.goals[m.Team2.ID] += *m.Score2
		acc.played++
	}

	results := make([]TieResult, 0, len(order))
	for _, key := range order {
		acc := ties[key]
		if acc.played < acc.needed {
			continue
		}
		a, c := acc.teams[0], acc.teams[1]
		ga, gc := acc.goals[a.ID], acc.goals[c.ID]
		res := TieResult{Winner: a, Loser: c, WinnerGoals: ga, LoserGoals: gc}
		switch {
		case gc > ga:
			res = TieResult{Winner: c, Loser: a, WinnerGoals: gc, LoserGoals: ga}
		case gc == ga:
			res.DrawnOnScore = true
			if b.rnd.IntN(2) == 1 {
				res = TieResult{Winner: c, Loser: a, WinnerGoals: gc, LoserGoals: ga, DrawnOnScore: true}
			}
		}
		results = append(results, res)
	}
	return results, nil
}

// AdvanceKnockoutRound returns the winners of the completed ties in order,
// ready to be paired into the next round. One winner is the champion.
func (b *KnockoutBracketBuilder) AdvanceKnockoutRound(completed []models.Match, format models.TournamentFormat) ([]models.Team, error) {
	results, err := b.ResolveTies(completed, format)
	if err != nil {
		return nil, err
	}
	winners := make([]models.Team, len(results))
	for i, r := range results {
		winners[i] = r.Winner
	}
	return winners, nil
}

// NextRound turns decided ties into the following round. Teams that had a
// bye join the winners. When exactly two semi-final ties were decided the
// losers meet in a third-place match.
func (b *KnockoutBracketBuilder) NextRound(results []TieResult, byes []models.Team, format models.TournamentFormat, stage int) (*RoundPlan, error) {
	if len(results) == 0 && len(byes) == 0 {
		return nil, ErrNoResults
	}
	teams := make([]models.Team, 0, len(results)+len(byes))
	for _, r := range results {
		teams = append(teams, r.Winner)
	}
	teams = append(teams, byes...)

	var losers []models.Team
	if len(results) == 2 && len(byes) == 0 {
		losers = []models.Team{results[0].Loser, results[1].Loser}
	}
	return b.BuildRound(teams, losers, format, stage)
}

// BuildRound pairs teams adjacently into one knockout round. Two teams make
// the final, one team is the champion, and an odd team out gets a bye.
func (b *KnockoutBracketBuilder) BuildRound(teams, losers []models.Team, format models.TournamentFormat, stage int) (*RoundPlan, error) {
	switch len(teams) {
	case 0:
		return nil, ErrNoResults
	case 1:
		champion := teams[0]
		return &RoundPlan{Champion: &champion}, nil
	case 2:
		final, err := b.factory.CreateMatch(teams[0], teams[1], models.MatchFinal)
		if err != nil {
			return nil, err
		}
		final.Round = roundPtr(models.RoundFinal)
		final.Stage = stage
		plan := &RoundPlan{Matches: []models.Match{final}}
		if len(losers) == 2 {
			third, err := b.factory.CreateMatch(losers[0], losers[1], models.MatchThirdPlace)
			if err != nil {
				return nil, err
			}
			third.Round = roundPtr(models.RoundThirdPlace)
			third.Stage = stage
			plan.Matches = append(plan.Matches, third)
		}
		return plan, nil
	}

	legs := 1
	if format.IsTwoLegged() {
		legs = 2
	}
	plan := &RoundPlan{}
	paired := len(teams) - len(teams)%2
	// Uneven fields are named after the bracket they fill, so six teams
	// play quarter-finals and a lone tie beside a bye is a semi-final.
	round := models.RoundForTeams(bracketSize(len(teams)))
	for i := 0; i+1 < paired; i += 2 {
		tie, err := b.factory.createTie(teams[i], teams[i+1], models.MatchKnockout, round, stage, legs)
		if err != nil {
			return nil, err
		}
		plan.Matches = append(plan.Matches, tie...)
	}
	if paired < len(teams) {
		plan.Byes = []models.Team{teams[paired]}
	}
	return plan, nil
}

// BracketFromMatches sorts knockout matches into their bracket slots by round tag.
func BracketFromMatches(matches []models.Match) *models.KnockoutMatches {
	km := &models.KnockoutMatches{}
	for _, m := range matches {
		if m.Round == nil {
			continue
		}
		switch *m.Round {
		case models.RoundOf16:
			km.RoundOf16 = append(km.RoundOf16, m)
		case models.RoundQuarterFinal:
			km.QuarterFinals = append(km.QuarterFinals, m)
		case models.RoundSemiFinal:
			km.SemiFinals = append(km.SemiFinals, m)
		case models.RoundFinal:
			final := m
			km.Final = &final
		case models.RoundThirdPlace:
			third := m
			km.ThirdPlace = &third
		}
	}
	return km
}

// CurrentStage returns the highest bracket stage present among the matches, 0 if none.
func CurrentStage(matches []models.Match) int {
	stage := 0
	for _, m := range matches {
		if m.Type != models.MatchGroupStage && m.Stage > stage {
			stage = m.Stage
		}
	}
	return stage
}

// StageMatches returns the matches of one bracket stage in schedule order.
func StageMatches(matches []models.Match, stage int) []models.Match {
	out := make([]models.Match, 0)
	for _, m := range matches {
		if m.Type != models.MatchGroupStage && m.Stage == stage {
			out = append(out, m)
		}
	}
	return out
}

func roundPtr(r models.Round) *models.Round {
	return &r
}

// bracketSize is the smallest power of two that holds n teams.
func bracketSize(n int) int {
	size := 1
	for size < n {
		size <<= 1
	}
	return size
}
