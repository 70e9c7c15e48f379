package triage

import "fmt"

// MismatchPolicy governs what a classification disagreement does to the
// analysis call.
type MismatchPolicy string

const (
	// Block aborts the run on a confident contrary classification.
	// Unknown is exempt: it is also the classifier's failure mode, and
	// a model hiccup must not lock the user out.
	Block MismatchPolicy = "block"
	// WarnAndContinue surfaces the disagreement and proceeds anyway.
	WarnAndContinue MismatchPolicy = "warn"
)

// ToolSpec binds a user-facing tool to its expected category, analysis
// prompt and mismatch policy. The table is static for the process
// lifetime.
type ToolSpec struct {
	ID         string
	Title      string
	Expected   Category
	Policy     MismatchPolicy
	WantsImage bool // false: the tool consumes text (symptoms)
	Prompt     string
}

const rxPrompt = `Analyze this doctor's prescription carefully.

For EACH medicine:
- If BRAND → suggest GENERIC and emit a line "**Brand Medicine:** <name written>"
- If ALREADY GENERIC → say "Already generic"

Output as a markdown table:
Medicine Written | Type | Generic Name | Explanation

Be precise. Do not hallucinate.`

const labPrompt = `Analyze this lab report. List each measured value, its reference range,
and highlight every abnormal value with a short plain-language note.`

const foodPrompt = `Estimate calories and macros (protein, carbs, fat) for the food shown.
Present the estimate as a markdown table and state your assumptions.`

const symPromptFmt = `A patient describes these symptoms: %s

List possible causes, an indicative severity for each, and practical
care advice. Close by advising when to see a doctor.`

var tools = []ToolSpec{
	{
		ID:         "rx",
		Title:      "💊 Generic Medicine Intelligence",
		Expected:   CategoryPrescription,
		Policy:     Block,
		WantsImage: true,
		Prompt:     rxPrompt,
	},
	{
		ID:         "lab",
		Title:      "📋 Lab Report Pro",
		Expected:   CategoryLabReport,
		Policy:     WarnAndContinue,
		WantsImage: true,
		Prompt:     labPrompt,
	},
	{
		ID:         "food",
		Title:      "🍎 Nutritional AI",
		Expected:   CategoryFood,
		Policy:     WarnAndContinue,
		WantsImage: true,
		Prompt:     foodPrompt,
	},
	{
		ID:         "sym",
		Title:      "🌡️ Symptom Checker",
		Expected:   CategorySymptoms,
		Policy:     Block,
		WantsImage: false,
		Prompt:     symPromptFmt,
	},
}

// Tools returns the static tool table in dashboard order.
func Tools() []ToolSpec { return tools }

// ToolByID looks a tool up by its id (rx, lab, food, sym).
func ToolByID(id string) (ToolSpec, error) {
	for _, t := range tools {
		if t.ID == id {
			return t, nil
		}
	}
	return ToolSpec{}, fmt.Errorf("unknown tool %q", id)
}

// AnalysisPrompt renders the tool's prompt against the user text. Only
// the symptom tool interpolates; image tools use the prompt as-is.
func (t ToolSpec) AnalysisPrompt(text string) string {
	if t.WantsImage {
		return t.Prompt
	}
	return fmt.Sprintf(t.Prompt, text)
}
