package insight

import (
	"context"
	"errors"
)

// Client abstracts narrative providers. The narrative is cosmetic: it
// explains a computed score but never changes it.
type Client interface {
	Narrate(ctx context.Context, input Input) (string, error)
}

// Input is the score summary handed to the narrative provider.
type Input struct {
	ProductName     string
	ProductCategory string
	Overall         int
	Recommendation  string
	RiskLevel       string
	SkinType        string
	Warnings        []string
	StrongPoints    []string
	WeakPoints      []string
}

// ErrNotImplemented is returned by the placeholder client.
var ErrNotImplemented = errors.New("insight provider not implemented")

// PlaceholderClient is a stub implementation until provider wiring is added.
type PlaceholderClient struct{}

// Narrate returns ErrNotImplemented.
func (PlaceholderClient) Narrate(ctx context.Context, input Input) (string, error) {
	_ = ctx
	_ = input
	return "", ErrNotImplemented
}
