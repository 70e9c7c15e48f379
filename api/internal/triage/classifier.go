package triage

import (
	"context"
	"log"

	"threpsi-bot/api/internal/ai"
)

const classifyPrompt = `Classify the input into ONE category only.
Respond with exactly one of: Prescription, LabReport, Food, Symptoms, Unknown.`

// Classifier labels an input through the model gateway. It never fails:
// any gateway error resolves to CategoryUnknown and the surrounding
// policy decides what to do with that.
type Classifier struct {
	Engine ai.Engine
}

// Classify labels whichever of image/text is populated. User text is
// appended to the taxonomy prompt; the image rides as the image part.
func (c *Classifier) Classify(ctx context.Context, image []byte, text string) Category {
	prompt := classifyPrompt
	if text != "" {
		prompt += "\n\nInput:\n" + text
	}
	raw, err := c.Engine.Generate(ctx, prompt, image)
	if err != nil {
		log.Printf("classify: %v; falling back to Unknown", err)
		return CategoryUnknown
	}
	return ParseCategory(raw)
}
