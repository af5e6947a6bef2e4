// Package server exposes the rootfind solvers over a small JSON/SSE
// HTTP API: start a run, stream its iterates, fetch the result,
// export the trace.
package server

import (
	"sync"
	"time"
)

// MethodBisect selects the bisection solver (requires a, b).
const MethodBisect = "bisect"

// MethodIterate selects fixed-point iteration (requires x0).
const MethodIterate = "iterate"

// MethodNewton selects Newton's method (requires deriv and x0).
const MethodNewton = "newton"

// SolveParams is the request body of POST /solve.
// Func and Deriv are expressions in x, compiled server-side.
// Zero Eps/MaxIter fall back to the solver defaults (1e-6, 100).
type SolveParams struct {
	Method  string  `json:"method"`
	Func    string  `json:"func"`
	Deriv   string  `json:"deriv,omitempty"`
	A       float64 `json:"a"`
	B       float64 `json:"b"`
	X0      float64 `json:"x0"`
	Eps     float64 `json:"eps"`
	MaxIter int     `json:"maxIter"`
}

// RunState is the server-side record of one solve run.
// Mutations go through the helpers below so handler reads never race
// the worker goroutine.
type RunState struct {
	ID        string
	Params    SolveParams
	CreatedAt time.Time

	Trace []float64
	Root  float64
	Err   string
	Done  bool
}

var (
	runsMu sync.Mutex
	runs   = map[string]*RunState{}
)

func saveRun(rs *RunState) {
	runsMu.Lock()
	defer runsMu.Unlock()
	runs[rs.ID] = rs
}

// getRun returns a snapshot copy of the run, or nil if id is unknown.
func getRun(id string) *RunState {
	runsMu.Lock()
	defer runsMu.Unlock()
	rs, ok := runs[id]
	if !ok {
		return nil
	}
	snapshot := *rs
	snapshot.Trace = append([]float64(nil), rs.Trace...)

	return &snapshot
}

func finishRun(id string, root float64, trace []float64) {
	runsMu.Lock()
	defer runsMu.Unlock()
	if rs, ok := runs[id]; ok {
		rs.Root = root
		rs.Trace = trace
		rs.Done = true
	}
}

func failRun(id string, errMsg string) {
	runsMu.Lock()
	defer runsMu.Unlock()
	if rs, ok := runs[id]; ok {
		rs.Err = errMsg
		rs.Done = true
	}
}
