//go:build debug

// Package diag provides debug-build-only diagnostics for the ART
// implementation, modeled on flier-goutil's internal/debug package (same
// //go:build debug / //go:build !debug pairing, same use of
// routine.Goid() to tag per-goroutine state).
package diag

import (
	"sync"

	"github.com/timandy/routine"
)

// Enabled is true in debug builds; callers outside this package can use
// it to skip even the cost of calling RecordRestart.
const Enabled = true

var (
	mu       sync.Mutex
	restarts = map[int64]uint64{}
)

// RecordRestart tags a full restart-from-root against the calling
// goroutine. Called from every `continue restart` site in Search/Insert.
func RecordRestart() {
	gid := routine.Goid()
	mu.Lock()
	restarts[gid]++
	mu.Unlock()
}

// Restarts returns a snapshot of restart counts keyed by goroutine id.
func Restarts() map[int64]uint64 {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[int64]uint64, len(restarts))
	for k, v := range restarts {
		out[k] = v
	}
	return out
}
