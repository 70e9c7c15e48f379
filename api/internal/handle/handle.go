package handle

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"threpsi-bot/api/internal/triage"
	"threpsi-bot/api/internal/util"
)

type Handle struct {
	analyzer *triage.Analyzer
}

func New(a *triage.Analyzer) *Handle { return &Handle{analyzer: a} }

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func stripDataURL(b64 string) string {
	s := strings.TrimSpace(b64)
	if i := strings.Index(s, ","); i != -1 && strings.HasPrefix(strings.ToLower(s[:i]), "data:") {
		return s[i+1:]
	}
	return s
}

// decodeImage decodes an optional base64 (or data-URL) image field.
// Empty input is fine; garbage is not, and neither is anything but a
// JPEG/PNG still image — multi-page documents must be pre-rendered
// upstream, same as on the Telegram path.
func decodeImage(b64 string) ([]byte, error) {
	s := stripDataURL(b64)
	if s == "" {
		return nil, nil
	}
	img, err := base64.StdEncoding.DecodeString(s)
	if err != nil || len(img) == 0 {
		return nil, errors.New("bad image_b64")
	}
	if !util.IsSupportedImage(img) {
		return nil, errors.New("unsupported image type: only JPEG/PNG accepted")
	}
	return img, nil
}

// requestDeadline honors X-Request-Timeout (seconds) or ?timeoutSec=.
func requestDeadline(r *http.Request) time.Duration {
	deadline := 180 * time.Second
	if ts := r.Header.Get("X-Request-Timeout"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	} else if ts := r.URL.Query().Get("timeoutSec"); ts != "" {
		if v, _ := strconv.Atoi(ts); v > 0 {
			deadline = time.Duration(v) * time.Second
		}
	}
	return deadline
}
