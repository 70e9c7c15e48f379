package triage

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEngine answers classification and analysis prompts separately and
// counts calls, so gating properties are observable.
type stubEngine struct {
	classifyReply string
	classifyErr   error
	analyzeReply  string
	analyzeErr    error

	classifyCalls      int
	analyzeCalls       int
	lastPrompt         string
	lastClassifyPrompt string
}

func (s *stubEngine) Name() string     { return "stub" }
func (s *stubEngine) GetModel() string { return "stub-model" }

func (s *stubEngine) Generate(_ context.Context, prompt string, _ []byte) (string, error) {
	if strings.HasPrefix(prompt, classifyPrompt[:20]) {
		s.classifyCalls++
		s.lastClassifyPrompt = prompt
		return s.classifyReply, s.classifyErr
	}
	s.analyzeCalls++
	s.lastPrompt = prompt
	return s.analyzeReply, s.analyzeErr
}

var fakeJPEG = []byte{0xFF, 0xD8, 0xFF, 0xE0, 'f', 'a', 'k', 'e'}

func TestRun_BlockPolicyNeverCallsAnalysis(t *testing.T) {
	eng := &stubEngine{classifyReply: "Food"}
	a := NewAnalyzer(eng)

	out := a.Run(context.Background(), "rx", fakeJPEG, "")

	assert.True(t, out.Blocked)
	assert.Equal(t, CategoryFood, out.Detected)
	assert.Contains(t, out.Markdown, "Food")
	assert.Equal(t, 0, eng.analyzeCalls, "blocked run must not invoke the analysis call")
}

func TestRun_UnknownIsExemptFromBlocking(t *testing.T) {
	eng := &stubEngine{classifyReply: "no idea", analyzeReply: "analysis"}
	a := NewAnalyzer(eng)

	out := a.Run(context.Background(), "rx", fakeJPEG, "")

	assert.False(t, out.Blocked)
	assert.Equal(t, CategoryUnknown, out.Detected)
	assert.Equal(t, 1, eng.analyzeCalls)
}

func TestRun_WarnPolicyProceedsWithWarning(t *testing.T) {
	eng := &stubEngine{classifyReply: "Prescription", analyzeReply: "lab analysis"}
	a := NewAnalyzer(eng)

	out := a.Run(context.Background(), "lab", fakeJPEG, "")

	assert.False(t, out.Blocked)
	assert.NotEmpty(t, out.Warning)
	assert.Contains(t, out.Warning, "Prescription")
	assert.Equal(t, "lab analysis", out.Markdown)
	assert.Equal(t, 1, eng.analyzeCalls)
}

func TestRun_MatchingCategoryHasNoWarning(t *testing.T) {
	eng := &stubEngine{classifyReply: "LabReport", analyzeReply: "all values normal"}
	a := NewAnalyzer(eng)

	out := a.Run(context.Background(), "lab", fakeJPEG, "")

	assert.Empty(t, out.Warning)
	assert.Equal(t, "all values normal", out.Markdown)
}

func TestRun_SymptomsEndToEndUnpatched(t *testing.T) {
	// Even if the analysis contains a brand marker, only rx patches.
	fixed := "**Brand Medicine:** Crocin\nrest easy\n"
	eng := &stubEngine{classifyReply: "Symptoms", analyzeReply: fixed}
	a := NewAnalyzer(eng)

	out := a.Run(context.Background(), "sym", nil, "severe headache and fever for two days")

	require.False(t, out.Blocked)
	require.False(t, out.Failed)
	assert.Equal(t, fixed, out.Markdown)
	assert.Contains(t, eng.lastPrompt, "severe headache and fever for two days")
}

func TestRun_RxEndToEndPatchesLinks(t *testing.T) {
	eng := &stubEngine{
		classifyReply: "Prescription",
		analyzeReply:  "**Brand Medicine:** Crocin\nOther line\n",
	}
	a := NewAnalyzer(eng)

	out := a.Run(context.Background(), "rx", fakeJPEG, "")

	require.False(t, out.Failed)
	assert.Equal(t, "**Brand Medicine:** [Crocin](https://www.1mg.com/search/all?name=Crocin) 🔗\nOther line\n", out.Markdown)
	assert.Equal(t, "**Brand Medicine:** Crocin\nOther line\n", out.Raw)
}

func TestRun_EmptyInputRejectedBeforeAnyRemoteCall(t *testing.T) {
	eng := &stubEngine{}
	a := NewAnalyzer(eng)

	tests := []struct {
		name  string
		tool  string
		image []byte
		text  string
	}{
		{"sym blank text", "sym", nil, "   "},
		{"rx missing image", "rx", nil, ""},
		{"food missing image", "food", nil, "irrelevant"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := a.Run(context.Background(), tt.tool, tt.image, tt.text)
			assert.True(t, out.Failed)
			assert.NotEmpty(t, out.Markdown)
		})
	}
	assert.Equal(t, 0, eng.classifyCalls)
	assert.Equal(t, 0, eng.analyzeCalls)
}

func TestRun_AnalysisFailureYieldsAdvisory(t *testing.T) {
	eng := &stubEngine{classifyReply: "Symptoms", analyzeErr: errors.New("boom")}
	a := NewAnalyzer(eng)

	out := a.Run(context.Background(), "sym", nil, "fever")

	assert.True(t, out.Failed)
	assert.Equal(t, Unavailable, out.Markdown)
	assert.Empty(t, out.Raw)
}

func TestRun_UnknownTool(t *testing.T) {
	eng := &stubEngine{}
	out := NewAnalyzer(eng).Run(context.Background(), "nope", nil, "text")

	assert.True(t, out.Failed)
	assert.Equal(t, 0, eng.classifyCalls)
}

func TestClassify_GatewayFailureResolvesToUnknown(t *testing.T) {
	eng := &stubEngine{classifyErr: errors.New("transport down")}
	c := &Classifier{Engine: eng}

	assert.Equal(t, CategoryUnknown, c.Classify(context.Background(), fakeJPEG, ""))
}

func TestClassify_AppendsUserText(t *testing.T) {
	eng := &stubEngine{classifyReply: "Symptoms"}
	c := &Classifier{Engine: eng}

	got := c.Classify(context.Background(), nil, "I have a cough")
	assert.Equal(t, CategorySymptoms, got)
	assert.Equal(t, 1, eng.classifyCalls)
	assert.Contains(t, eng.lastClassifyPrompt, "I have a cough")
}
