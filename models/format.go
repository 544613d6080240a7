package models

// TournamentType is the competition style chosen by the organizer.
type TournamentType string

const (
	TypeLeague   TournamentType = "league"
	TypeWorldCup TournamentType = "world_cup"
	TypeHomeAway TournamentType = "home_away"
)

func (t TournamentType) Valid() bool {
	switch t {
	case TypeLeague, TypeWorldCup, TypeHomeAway:
		return true
	}
	return false
}

// TournamentFormat selects how fixtures are generated for a tournament type.
type TournamentFormat string

const (
	FormatRoundRobin          TournamentFormat = "round_robin"
	FormatSingleGame          TournamentFormat = "single_game"
	FormatTwoLegs             TournamentFormat = "two_legs"
	FormatKnockoutSingle      TournamentFormat = "knockout_single"
	FormatKnockoutTwoLegs     TournamentFormat = "knockout_two_legs"
	FormatGroupsWithKnockouts TournamentFormat = "groups_with_knockouts"
)

func (f TournamentFormat) Valid() bool {
	switch f {
	case FormatRoundRobin, FormatSingleGame, FormatTwoLegs,
		FormatKnockoutSingle, FormatKnockoutTwoLegs, FormatGroupsWithKnockouts:
		return true
	}
	return false
}

// IsKnockout reports whether the format eliminates teams round by round.
func (f TournamentFormat) IsKnockout() bool {
	return f == FormatKnockoutSingle || f == FormatKnockoutTwoLegs || f == FormatGroupsWithKnockouts
}

// IsTwoLegged reports whether knockout ties are decided on aggregate.
func (f TournamentFormat) IsTwoLegged() bool {
	return f == FormatTwoLegs || f == FormatKnockoutTwoLegs
}

// DefaultFormat is used when a tournament is created without an explicit format.
func DefaultFormat(t TournamentType) TournamentFormat {
	switch t {
	case TypeWorldCup:
		return FormatGroupsWithKnockouts
	case TypeLeague, TypeHomeAway:
		return FormatRoundRobin
	}
	return ""
}
