package triage

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

const drugSearchBase = "https://www.1mg.com/search/all?name="

// Single-line, non-greedy: the marker must end in a line break, so the
// pattern never spans lines and a trailing unterminated marker is left
// alone.
var brandMedicineRe = regexp.MustCompile(`(?i)\*\*Brand Medicine:\*\* (.*?)\n`)

// PatchMedicineLinks rewrites every "**Brand Medicine:** <name>" line
// in the analysis into a markdown link against the drug-search service.
// Non-matching text is untouched; no marker means no-op.
func PatchMedicineLinks(text string) string {
	return brandMedicineRe.ReplaceAllStringFunc(text, func(m string) string {
		sub := brandMedicineRe.FindStringSubmatch(m)
		name := strings.TrimSpace(sub[1])
		link := drugSearchBase + url.QueryEscape(name)
		return fmt.Sprintf("**Brand Medicine:** [%s](%s) 🔗\n", name, link)
	})
}
