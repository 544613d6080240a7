package models

import (
	"fmt"
	"time"
)

type MatchStatus string

const (
	MatchStatusScheduled  MatchStatus = "scheduled"
	MatchStatusInProgress MatchStatus = "in_progress"
	MatchStatusCompleted  MatchStatus = "completed"
	MatchStatusCancelled  MatchStatus = "cancelled"
)

type MatchType string

const (
	MatchGroupStage MatchType = "group_stage"
	MatchKnockout   MatchType = "knockout"
	MatchFinal      MatchType = "final"
	MatchThirdPlace MatchType = "third_place"
)

type Round string

const (
	RoundOf16         Round = "round_of_16"
	RoundQuarterFinal Round = "quarter_finals"
	RoundSemiFinal    Round = "semi_finals"
	RoundFinal        Round = "final"
	RoundThirdPlace   Round = "third_place"
)

// RoundForTeams names the knockout round played by n teams. Other sizes have no name.
func RoundForTeams(n int) *Round {
	var r Round
	switch n {
	case 16:
		r = RoundOf16
	case 8:
		r = RoundQuarterFinal
	case 4:
		r = RoundSemiFinal
	case 2:
		r = RoundFinal
	default:
		return nil
	}
	return &r
}

// Match pairs two teams. Team assignment never changes after creation;
// only scores and status do.
type Match struct {
	ID         string      `json:"id"`
	Team1      Team        `json:"team1"`
	Team2      Team        `json:"team2"`
	Score1     *int        `json:"score1,omitempty"`
	Score2     *int        `json:"score2,omitempty"`
	Date       time.Time   `json:"date"`
	Type       MatchType   `json:"type"`
	Status     MatchStatus `json:"status"`
	IsHomeGame bool        `json:"is_home_game"`
	Round      *Round      `json:"round,omitempty"`
	Leg        int         `json:"leg,omitempty"`   // 0 single game, 1 or 2 for a two-legged tie
	Stage      int         `json:"stage,omitempty"` // bracket round number, 0 for league and group play
}

// Played reports whether both scores are recorded.
func (m Match) Played() bool {
	return m.Score1 != nil && m.Score2 != nil
}

func (m Match) Validate() error {
	if m.Team1.ID == m.Team2.ID {
		return fmt.Errorf("%w: team %q paired with itself in match %s", ErrInvariantViolation, m.Team1.ID, m.ID)
	}
	if (m.Score1 != nil && *m.Score1 < 0) || (m.Score2 != nil && *m.Score2 < 0) {
		return fmt.Errorf("%w: negative score in match %s", ErrInvariantViolation, m.ID)
	}
	return nil
}

// HasTeam reports whether teamID plays in the match.
func (m Match) HasTeam(teamID string) bool {
	return m.Team1.ID == teamID || m.Team2.ID == teamID
}
