package server

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/rootfind/bisect"
	"github.com/katalvlaran/rootfind/expr"
	"github.com/katalvlaran/rootfind/fixedpoint"
	"github.com/katalvlaran/rootfind/internal/sse"
	"github.com/katalvlaran/rootfind/newton"
)

// Solve starts a new run. It validates and compiles the request,
// answers immediately with the run ID, and solves in a goroutine that
// publishes iterate events to the run's SSE channel.
func Solve(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return
	}

	var p SolveParams
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "bad JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	switch p.Method {
	case MethodBisect, MethodIterate, MethodNewton:
	default:
		http.Error(w, "method must be one of bisect, iterate, newton", http.StatusBadRequest)
		return
	}

	f, err := expr.Compile(p.Func)
	if err != nil {
		http.Error(w, "bad func expression: "+err.Error(), http.StatusBadRequest)
		return
	}

	var df func(float64) float64
	if p.Method == MethodNewton {
		if p.Deriv == "" {
			http.Error(w, "newton requires a deriv expression", http.StatusBadRequest)
			return
		}
		df, err = expr.Compile(p.Deriv)
		if err != nil {
			http.Error(w, "bad deriv expression: "+err.Error(), http.StatusBadRequest)
			return
		}
	}

	rs := &RunState{
		ID:        uuid.NewString(),
		Params:    p,
		CreatedAt: time.Now(),
	}
	saveRun(rs)

	go runSolve(rs.ID, p, f, df)

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{"id": rs.ID})
}

// runSolve executes one solve and publishes its lifecycle as SSE
// events: start, one iter per trace element, then done or error.
func runSolve(id string, p SolveParams, f, df func(float64) float64) {
	publish(id, map[string]any{"type": "start", "id": id})

	var (
		root  float64
		trace []float64
		err   error
	)
	switch p.Method {
	case MethodBisect:
		opts := bisect.Options{Eps: p.Eps, MaxIter: p.MaxIter, ReturnTrace: true}
		root, trace, err = bisect.Bisect(f, p.A, p.B, &opts)
	case MethodNewton:
		opts := newton.Options{Eps: p.Eps, MaxIter: p.MaxIter, ReturnTrace: true}
		root, trace, err = newton.Newton(f, df, p.X0, &opts)
	case MethodIterate:
		// Fixed-point keeps no trace; only the final value is reported.
		opts := fixedpoint.Options{Eps: p.Eps, MaxIter: p.MaxIter}
		root, err = fixedpoint.Iterate(f, p.X0, &opts)
	}

	// State is stored before the events go out, so a subscriber that
	// joins mid-publish can always rebuild the full sequence from a
	// snapshot instead of catching a partial live tail.
	if err != nil {
		failRun(id, err.Error())
		publish(id, map[string]any{"type": "error", "err": err.Error()})
		return
	}
	finishRun(id, root, trace)

	for k, x := range trace {
		publish(id, map[string]any{"type": "iter", "k": k + 1, "x": x})
	}
	publish(id, map[string]any{"type": "done", "root": root})
}

func marshalEvent(payload map[string]any) string {
	msg, _ := json.Marshal(payload)
	return string(msg)
}

func publish(id string, payload map[string]any) {
	sse.Publish(id, marshalEvent(payload))
}

// Result returns a JSON snapshot of a run.
func Result(w http.ResponseWriter, r *http.Request) {
	rs, ok := lookupRun(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"id":         rs.ID,
		"done":       rs.Done,
		"root":       rs.Root,
		"err":        rs.Err,
		"iterations": len(rs.Trace),
		"trace":      rs.Trace,
	})
}

// ExportCSV streams the run's trace as (k, x) CSV rows.
func ExportCSV(w http.ResponseWriter, r *http.Request) {
	rs, ok := lookupRun(w, r)
	if !ok {
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=iterations_"+rs.ID+".csv")

	cw := csv.NewWriter(w)
	defer cw.Flush()

	_ = cw.Write([]string{"k", "x"})
	for k, x := range rs.Trace {
		_ = cw.Write([]string{
			strconv.Itoa(k + 1),
			strconv.FormatFloat(x, 'g', 16, 64),
		})
	}
}

// Stream serves the run's events over SSE. Stored events are replayed
// from the run snapshot first, so a subscriber that connects after the
// solve finished still receives the full start/iter/done sequence; a
// still-running solve is then followed live until its terminal event.
func Stream(w http.ResponseWriter, r *http.Request) {
	if _, ok := lookupRun(w, r); !ok {
		return
	}
	id := r.URL.Query().Get("id")

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	// Let the client observe the stream as established right away.
	flusher.Flush()

	// Subscribe before snapshotting: events published in between show
	// up in the snapshot (the worker stores state first), events after
	// arrive on the channel — nothing is lost either way.
	ch, cancel := sse.Subscribe(id)
	defer cancel()
	rs := getRun(id)

	write := func(msg string) {
		fmt.Fprintf(w, "event: msg\n")
		fmt.Fprintf(w, "data: %s\n\n", msg)
		flusher.Flush()
	}

	// The run record existing means the solve was started.
	write(marshalEvent(map[string]any{"type": "start", "id": id}))

	// Finished run: replay entirely from the snapshot and close.
	if rs.Done {
		if rs.Err != "" {
			write(marshalEvent(map[string]any{"type": "error", "err": rs.Err}))
			return
		}
		for k, x := range rs.Trace {
			write(marshalEvent(map[string]any{"type": "iter", "k": k + 1, "x": x}))
		}
		write(marshalEvent(map[string]any{"type": "done", "root": rs.Root}))

		return
	}

	// Live run: forward events until the terminal one. The worker's own
	// start event is dropped since it was already replayed above.
	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-ch:
			var ev struct {
				Type string `json:"type"`
			}
			if json.Unmarshal([]byte(msg), &ev) == nil && ev.Type == "start" {
				continue
			}
			write(msg)
			if ev.Type == "done" || ev.Type == "error" {
				return
			}
		}
	}
}

// lookupRun resolves the id query parameter to a run snapshot,
// writing the HTTP error itself when that fails.
func lookupRun(w http.ResponseWriter, r *http.Request) (*RunState, bool) {
	id := r.URL.Query().Get("id")
	if id == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return nil, false
	}

	rs := getRun(id)
	if rs == nil {
		http.Error(w, "unknown id", http.StatusNotFound)
		return nil, false
	}

	return rs, true
}
