// Package calc is the boundary to the damage calculator.
package calc

import (
	"context"

	"showdown-calcbot/game"
)

// Engine computes a result for a parsed scenario. Implementations talk to a real damage
// calculator; Describer only restates the request.
type Engine interface {
	Calculate(ctx context.Context, s *game.Scenario) (string, error)
}
