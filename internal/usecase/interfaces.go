package usecase

import "context"

// ChangeDetector reports uncommitted modifications in the catalog data
// directory relative to the last checkpoint.
type ChangeDetector interface {
	HasPendingChanges(ctx context.Context) bool
	ListPendingChanges(ctx context.Context) []string
}

// Committer snapshots the catalog data directory. A failed commit is
// reported through ok=false with the underlying tool's message verbatim.
type Committer interface {
	Commit(ctx context.Context, message string) (ok bool, result string)
}
