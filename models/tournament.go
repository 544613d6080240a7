package models

import "time"

// TournamentStatus tracks where a tournament is in its lifecycle.
type TournamentStatus string

const (
	StatusRegistration TournamentStatus = "registration"
	StatusActive       TournamentStatus = "active"
	StatusCompleted    TournamentStatus = "completed"
)

// Tournament is the mutable state kept by the service layer. Groups, Matches
// and Knockout are replaced wholesale on every generation.
type Tournament struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	Type      TournamentType   `json:"type"`
	Format    TournamentFormat `json:"format"`
	GroupSize int              `json:"group_size"`
	Status    TournamentStatus `json:"status"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`

	Teams    []Team           `json:"teams"`
	Groups   []Group          `json:"groups,omitempty"`
	Matches  []Match          `json:"matches,omitempty"`
	Knockout *KnockoutMatches `json:"knockout,omitempty"`
	Byes     []Team           `json:"byes,omitempty"`
	Champion *Team            `json:"champion,omitempty"`
}

// FindMatch returns the index of the match with the given id, or -1.
func (t *Tournament) FindMatch(matchID string) int {
	for i := range t.Matches {
		if t.Matches[i].ID == matchID {
			return i
		}
	}
	return -1
}
