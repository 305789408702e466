package storage

import (
	"context"

	"gymdash/internal/logger"
	"gymdash/internal/metrics"
)

// Persist writes a snapshot and swallows the error after logging it. Store
// mutations never fail because the backend is unavailable.
func Persist(ctx context.Context, s Snapshotter, name string, src any) {
	if err := s.Save(ctx, name, src); err != nil {
		logger.Error("failed to persist snapshot", "store", name, "error", err.Error())
		metrics.RecordPersistFailure(name)
	}
}

// Restore loads a snapshot, treating a read failure like a missing snapshot
// so the caller falls back to its defaults.
func Restore(ctx context.Context, s Snapshotter, name string, dst any) bool {
	found, err := s.Load(ctx, name, dst)
	if err != nil {
		logger.Error("failed to load snapshot, using defaults", "store", name, "error", err.Error())
		return false
	}
	return found
}
