package triage

import (
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatchMedicineLinks_NoMarkerIsIdentity(t *testing.T) {
	inputs := []string{
		"",
		"plain text, nothing to patch",
		"| Medicine Written | Type |\n| Dolo 650 | Brand |\n",
		// marker without a trailing line break is out of scope
		"**Brand Medicine:** Crocin",
		// label on its own is not a marker either
		"Brand Medicine: Crocin\n",
	}
	for _, in := range inputs {
		assert.Equal(t, in, PatchMedicineLinks(in))
	}
}

func TestPatchMedicineLinks_SingleMarker(t *testing.T) {
	in := "**Brand Medicine:** Crocin\nOther line\n"
	want := "**Brand Medicine:** [Crocin](https://www.1mg.com/search/all?name=Crocin) 🔗\nOther line\n"
	assert.Equal(t, want, PatchMedicineLinks(in))
}

func TestPatchMedicineLinks_NameIsQueryEscaped(t *testing.T) {
	out := PatchMedicineLinks("**Brand Medicine:** Calpol 650\n")

	re := regexp.MustCompile(`\]\(https://www\.1mg\.com/search/all\?name=([^)]+)\)`)
	m := re.FindStringSubmatch(out)
	require.Len(t, m, 2, "patched output should contain exactly one search link")

	decoded, err := url.QueryUnescape(m[1])
	require.NoError(t, err)
	assert.Equal(t, "Calpol 650", decoded)
}

func TestPatchMedicineLinks_LabelCaseInsensitive(t *testing.T) {
	out := PatchMedicineLinks("**brand medicine:** Dolo\n")
	assert.Contains(t, out, "[Dolo](https://www.1mg.com/search/all?name=Dolo) 🔗")
}

func TestPatchMedicineLinks_MultipleMarkers(t *testing.T) {
	in := "**Brand Medicine:** Crocin\nnotes\n**Brand Medicine:** Dolo\n"
	out := PatchMedicineLinks(in)
	assert.Contains(t, out, "[Crocin](https://www.1mg.com/search/all?name=Crocin)")
	assert.Contains(t, out, "[Dolo](https://www.1mg.com/search/all?name=Dolo)")
}

func TestPatchMedicineLinks_DoesNotSpanLines(t *testing.T) {
	// the name capture must stop at the first line break
	out := PatchMedicineLinks("**Brand Medicine:** Crocin\nAlready generic\n")
	assert.Contains(t, out, "[Crocin](")
	assert.NotContains(t, out, "Crocin\nAlready")
}
