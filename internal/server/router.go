package server

import "net/http"

// NewRouter wires the solve API endpoints onto a fresh mux.
func NewRouter() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/solve", Solve)
	mux.HandleFunc("/result", Result)
	mux.HandleFunc("/stream", Stream)
	mux.HandleFunc("/export", ExportCSV)

	return mux
}
