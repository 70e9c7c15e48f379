package handle

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
)

type ClassifyRequest struct {
	ImageB64 string `json:"image_b64"`
	Text     string `json:"text"`
}

type ClassifyResponse struct {
	Category string `json:"category"`
}

func (h *Handle) Classify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "POST only"})
		return
	}
	var req ClassifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "bad json: " + err.Error()})
		return
	}

	img, err := decodeImage(req.ImageB64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if len(img) == 0 && strings.TrimSpace(req.Text) == "" {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "image_b64 or text required"})
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), requestDeadline(r))
	defer cancel()

	cat := h.analyzer.ClassifyOnly(ctx, img, req.Text)
	writeJSON(w, http.StatusOK, ClassifyResponse{Category: string(cat)})
}
