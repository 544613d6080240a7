package models

type TeamStanding struct {
	Team           Team `json:"team"`
	Rank           int  `json:"rank"`
	Points         int  `json:"points"`
	Played         int  `json:"played"`
	Wins           int  `json:"wins"`
	Draws          int  `json:"draws"`
	Losses         int  `json:"losses"`
	GoalsFor       int  `json:"goals_for"`
	GoalsAgainst   int  `json:"goals_against"`
	GoalDifference int  `json:"goal_difference"`
}
