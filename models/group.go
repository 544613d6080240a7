package models

type Group struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Teams     []Team         `json:"teams"`
	Matches   []Match        `json:"matches"`
	Standings []TeamStanding `json:"standings,omitempty"`
}

// KnockoutMatches holds one slot per bracket round. Each round has half as
// many matches as the previous one.
type KnockoutMatches struct {
	RoundOf16     []Match `json:"round_of_16"`
	QuarterFinals []Match `json:"quarter_finals"`
	SemiFinals    []Match `json:"semi_finals"`
	Final         *Match  `json:"final,omitempty"`
	ThirdPlace    *Match  `json:"third_place,omitempty"`
}
