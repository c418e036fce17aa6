package model

// CheckOutcome records one existence check in transcript order.
type CheckOutcome struct {
	Role      NodeRole
	Label     string
	Path      string
	Mandatory bool
	Exists    bool
	// Size is recorded for files that exist; sidecars are reported by size only.
	Size int64
}

// CategoryTally accumulates substring matches for one token category.
type CategoryTally struct {
	Category string
	Total    int
	Found    []string
}

// FoundCount returns the number of matched tokens. It never exceeds Total.
func (t CategoryTally) FoundCount() int {
	return len(t.Found)
}

// ShardAnalysis holds the results of the binary scan of the data shard.
type ShardAnalysis struct {
	Size       int64
	HexPreview string
	Tallies    []CategoryTally
}

// Report is the outcome of one verification run.
//
// Success reflects mandatory-node presence only: optional deficiencies,
// metadata decode failures, scan failures, and missing tokens are reported
// but never flip the outcome. The process exit code is derived from it.
type Report struct {
	RunID         string
	Root          string
	Checks        []CheckOutcome
	Version       string
	EngineVersion string
	// Analysis is nil when the shard scan was skipped after a read failure.
	Analysis *ShardAnalysis
	Success  bool
}
