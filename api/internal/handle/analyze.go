package handle

import (
	"context"
	"encoding/json"
	"net/http"
)

type AnalyzeRequest struct {
	Tool     string `json:"tool"`
	ImageB64 string `json:"image_b64"`
	Text     string `json:"text"`
}

type AnalyzeResponse struct {
	Tool     string `json:"tool"`
	Category string `json:"category"`
	Markdown string `json:"markdown"`
	Warning  string `json:"warning,omitempty"`
	Blocked  bool   `json:"blocked"`
	Failed   bool   `json:"failed"`
}

func (h *Handle) Analyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "POST only"})
		return
	}
	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json: " + err.Error()})
		return
	}

	img, err := decodeImage(req.ImageB64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestDeadline(r))
	defer cancel()

	out := h.analyzer.Run(ctx, req.Tool, img, req.Text)
	writeJSON(w, http.StatusOK, AnalyzeResponse{
		Tool:     out.Tool,
		Category: string(out.Detected),
		Markdown: out.Markdown,
		Warning:  out.Warning,
		Blocked:  out.Blocked,
		Failed:   out.Failed,
	})
}
