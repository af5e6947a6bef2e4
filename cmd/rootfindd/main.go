// Command rootfindd serves the rootfind solvers over HTTP:
// POST /solve starts a run, GET /stream replays its iterates over SSE,
// GET /result and GET /export fetch the outcome.
package main

import (
	"flag"
	"log"
	"net/http"

	"github.com/katalvlaran/rootfind/internal/server"
)

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	flag.Parse()

	router := server.NewRouter()
	log.Printf("rootfindd listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, router))
}
