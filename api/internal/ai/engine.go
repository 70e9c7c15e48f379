package ai

import (
	"context"
	"fmt"
)

// Engine is a multi-modal generation backend. Generate sends the prompt
// (and the image, when non-nil) to the model and returns its raw text.
type Engine interface {
	Name() string
	GetModel() string
	Generate(ctx context.Context, prompt string, image []byte) (string, error)
}

// ModelError is the typed failure every call above the gateway sees.
// It carries the last attempt's error; nothing above the gateway ever
// handles a raw transport error.
type ModelError struct {
	Engine   string
	Attempts int
	Last     error
}

func (e *ModelError) Error() string {
	return fmt.Sprintf("%s: model call failed after %d attempt(s): %v", e.Engine, e.Attempts, e.Last)
}

func (e *ModelError) Unwrap() error { return e.Last }
