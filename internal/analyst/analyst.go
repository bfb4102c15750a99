// Package analyst generates natural-language commentary for qualifying
// scan results through a hosted generative-language API.
package analyst

import (
	"context"

	"github.com/toyoo1004/stock-scanner/internal/model"
)

// PlaceholderNarrative is substituted when every commentary attempt fails.
// A narrative failure never suppresses the numeric result.
const PlaceholderNarrative = "AI commentary unavailable for this run."

// Analyst produces a short commentary for one qualifying ticker.
type Analyst interface {
	Commentary(ctx context.Context, res *model.ScoreResult) (string, error)
	Name() string
}
