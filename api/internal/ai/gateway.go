package ai

import (
	"context"
	"errors"
	"strings"
)

// ErrEmptyPrompt is returned before any remote call is attempted.
var ErrEmptyPrompt = errors.New("prompt is empty")

// errEmptyResponse marks a successful call that produced no text.
// It is not retried: the upstream answered, it just answered nothing.
var errEmptyResponse = errors.New("empty model response")

// Gateway wraps an Engine with a bounded sequential retry budget.
// Retries are back-to-back (no backoff); the budget exists to absorb
// one-off transient failures, not to mask a down upstream.
type Gateway struct {
	eng      Engine
	attempts int
}

func NewGateway(eng Engine, attempts int) *Gateway {
	if attempts < 1 {
		attempts = 1
	}
	return &Gateway{eng: eng, attempts: attempts}
}

func (g *Gateway) Name() string     { return g.eng.Name() }
func (g *Gateway) GetModel() string { return g.eng.GetModel() }

func (g *Gateway) Generate(ctx context.Context, prompt string, image []byte) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", &ModelError{Engine: g.eng.Name(), Attempts: 0, Last: ErrEmptyPrompt}
	}

	var lastErr error
	for attempt := 1; attempt <= g.attempts; attempt++ {
		out, err := g.eng.Generate(ctx, prompt, image)
		if err != nil {
			lastErr = err
			continue
		}
		if strings.TrimSpace(out) == "" {
			return "", &ModelError{Engine: g.eng.Name(), Attempts: attempt, Last: errEmptyResponse}
		}
		return out, nil
	}
	return "", &ModelError{Engine: g.eng.Name(), Attempts: g.attempts, Last: lastErr}
}
