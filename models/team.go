package models

type TeamStats struct {
	Wins         int `json:"wins"`
	Draws        int `json:"draws"`
	Losses       int `json:"losses"`
	GoalsFor     int `json:"goals_for"`
	GoalsAgainst int `json:"goals_against"`
}

// Team is identified by ID. Name uniqueness is enforced by whoever adds teams.
type Team struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Responsible *string   `json:"responsible,omitempty"`
	Ranking     *int      `json:"ranking,omitempty"`
	Players     []string  `json:"players,omitempty"`
	Stats       TeamStats `json:"stats"`
}
