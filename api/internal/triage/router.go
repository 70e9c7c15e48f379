package triage

import (
	"context"
	"fmt"
	"log"
	"strings"

	"threpsi-bot/api/internal/ai"
)

// Unavailable is the fixed advisory shown whenever the upstream model
// fails after its retry budget. Never fabricate an analysis instead.
const Unavailable = "⚠️ AI service temporarily unavailable. Please try again later and consult a licensed medical professional."

// Outcome is what a single analysis run produced. Owned by the caller,
// never persisted.
type Outcome struct {
	Tool     string
	Detected Category
	Markdown string // rendered result or user-facing status message
	Warning  string // non-blocking mismatch note, empty when none
	Blocked  bool
	Failed   bool
	Raw      string // unpatched model text, empty unless succeeded
}

// Analyzer is the stateless classify-gate-analyze pipeline. Which tool
// is active belongs to the UI layer; it is passed in on every call.
type Analyzer struct {
	Engine     ai.Engine
	Classifier *Classifier
}

func NewAnalyzer(eng ai.Engine) *Analyzer {
	return &Analyzer{Engine: eng, Classifier: &Classifier{Engine: eng}}
}

// Run executes one analysis for the given tool and input. Every failure
// path returns a user-safe markdown message; Run never panics and never
// lets a transport error escape.
func (a *Analyzer) Run(ctx context.Context, toolID string, image []byte, text string) Outcome {
	tool, err := ToolByID(toolID)
	if err != nil {
		return Outcome{Tool: toolID, Failed: true, Markdown: "Unknown tool. Go back and pick one from the dashboard."}
	}
	out := Outcome{Tool: tool.ID}

	// Reject empty input before any remote call.
	if tool.WantsImage && len(image) == 0 {
		out.Failed = true
		out.Markdown = "Please upload an image first."
		return out
	}
	if !tool.WantsImage && strings.TrimSpace(text) == "" {
		out.Failed = true
		out.Markdown = "Please describe your symptoms."
		return out
	}

	// Classification gate. The classifier only sees the tool's modality.
	if tool.WantsImage {
		out.Detected = a.Classifier.Classify(ctx, image, "")
	} else {
		out.Detected = a.Classifier.Classify(ctx, nil, text)
	}

	if out.Detected != tool.Expected && out.Detected != CategoryUnknown {
		switch tool.Policy {
		case Block:
			out.Blocked = true
			out.Markdown = fmt.Sprintf(
				"⚠️ This looks like **%s**, not what %s expects. Go back and pick the matching tool, or retake the photo.",
				out.Detected, tool.Title)
			return out
		case WarnAndContinue:
			out.Warning = fmt.Sprintf("⚠️ Detected **%s**, but continuing — inputs vary.", out.Detected)
		}
	}

	var img []byte
	if tool.WantsImage {
		img = image
	}
	raw, err := a.Engine.Generate(ctx, tool.AnalysisPrompt(text), img)
	if err != nil {
		log.Printf("analyze %s: %v", tool.ID, err)
		out.Failed = true
		out.Markdown = Unavailable
		return out
	}

	out.Raw = raw
	out.Markdown = raw
	if tool.ID == "rx" {
		out.Markdown = PatchMedicineLinks(raw)
	}
	return out
}

// ClassifyOnly exposes the bare classification step for callers that
// want a label without an analysis (HTTP /v1/classify).
func (a *Analyzer) ClassifyOnly(ctx context.Context, image []byte, text string) Category {
	return a.Classifier.Classify(ctx, image, text)
}
