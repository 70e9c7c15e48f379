package triage

import "strings"

// Category is the closed classification label for a user input.
type Category string

const (
	CategoryPrescription Category = "Prescription"
	CategoryLabReport    Category = "LabReport"
	CategoryFood         Category = "Food"
	CategorySymptoms     Category = "Symptoms"
	CategoryUnknown      Category = "Unknown"
)

// categoryRules is the ordered keyword table used to normalize a
// free-text model response. First match wins: a response mentioning
// both "report" and "symptom" resolves to LabReport because that rule
// is checked first. The order is policy, keep it visible here.
var categoryRules = []struct {
	cat      Category
	keywords []string
}{
	{CategoryPrescription, []string{"prescription", "medicine"}},
	{CategoryLabReport, []string{"lab", "report"}},
	{CategoryFood, []string{"food", "meal", "calorie"}},
	{CategorySymptoms, []string{"symptom", "fever", "pain", "cough"}},
}

// ParseCategory maps raw model output onto the closed category set.
// It tolerates models that ignore the one-word instruction: the whole
// response is lower-cased and scanned for keywords.
func ParseCategory(raw string) Category {
	s := strings.ToLower(raw)
	for _, r := range categoryRules {
		for _, kw := range r.keywords {
			if strings.Contains(s, kw) {
				return r.cat
			}
		}
	}
	return CategoryUnknown
}
