package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultOf(t *testing.T) {
	assert.Equal(t, Result{Success: true}, ResultOf(nil))
	assert.Equal(t, Result{Success: false, Error: "x: team not found"},
		ResultOf(fmt.Errorf("x: %w", ErrTeamNotFound)))
}
