package main

import (
	"encoding/json"
	"net/http"

	"github.com/JaimeStill/curator/pkg/lifecycle"
)

type status struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func buildRouter(lc *lifecycle.Coordinator) *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeStatus(w, http.StatusOK, status{Status: "ok"})
	})

	mux.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		if err := lc.Check(r.Context()); err != nil {
			writeStatus(w, http.StatusServiceUnavailable, status{Status: "not ready", Error: err.Error()})
			return
		}
		writeStatus(w, http.StatusOK, status{Status: "ready"})
	})

	return mux
}

func writeStatus(w http.ResponseWriter, code int, s status) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(s)
}
