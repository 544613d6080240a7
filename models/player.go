package models

// Player is read-only to the engine: only Rating and the eligibility flags are used.
type Player struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Rating        float64 `json:"rating"`
	Present       bool    `json:"present"`
	IncludeInDraw bool    `json:"include_in_draw"`
	Goalkeeper    bool    `json:"goalkeeper"`
}

// Eligible reports whether the player takes part in a squad draw.
func (p Player) Eligible(excludeGoalkeepers bool) bool {
	if !p.Present || !p.IncludeInDraw {
		return false
	}
	return !(excludeGoalkeepers && p.Goalkeeper)
}
