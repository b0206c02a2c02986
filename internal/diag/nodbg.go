//go:build !debug

package diag

// Enabled is false outside debug builds; RecordRestart/Restarts are no-ops
// so the hot search/insert restart path pays nothing for diagnostics.
const Enabled = false

func RecordRestart() {}

func Restarts() map[int64]uint64 { return nil }
