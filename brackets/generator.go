package brackets

import (
	"github.com/Dosada05/tournament-engine/models"
)

type GenerateParams struct {
	Teams     []models.Team
	GroupSize int
}

// Generation is everything a single "generate" action produces. It replaces
// any earlier generation as a whole.
type Generation struct {
	Matches  []models.Match
	Groups   []models.Group
	Knockout *models.KnockoutMatches
	Byes     []models.Team
}

type Generator interface {
	Generate(params GenerateParams) (*Generation, error)

	Name() string
}
