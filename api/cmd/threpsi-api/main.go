package main

import (
	"log"
	"net/http"

	"threpsi-bot/api/internal/ai"
	"threpsi-bot/api/internal/ai/gemini"
	"threpsi-bot/api/internal/config"
	"threpsi-bot/api/internal/handle"
	"threpsi-bot/api/internal/triage"
)

func main() {
	cfg := config.Load()

	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	gateway := ai.NewGateway(gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel), cfg.ModelAttempts)
	h := handle.New(triage.NewAnalyzer(gateway))

	mux.HandleFunc("/v1/classify", h.Classify)
	mux.HandleFunc("/v1/analyze", h.Analyze)

	addr := ":" + cfg.Port
	log.Printf("threpsi-api listening on %s (model %s, attempts %d)", addr, cfg.GeminiModel, cfg.ModelAttempts)
	log.Fatal(http.ListenAndServe(addr, mux))
}
