package server

import (
	"context"
	"fmt"

	"gymdash/internal/activity"
	"gymdash/internal/auth"
	"gymdash/internal/checkin"
	"gymdash/internal/gympackage"
	"gymdash/internal/membership"
	"gymdash/internal/payment"
	"gymdash/internal/pt"
	"gymdash/internal/schedule"
	"gymdash/internal/seed"
	"gymdash/internal/storage"
	"gymdash/internal/user"
)

type loader interface {
	Load(ctx context.Context) error
}

// LoadStores builds every store over snap and restores its snapshot. The
// gate is loaded right after users so activity entries can name the actor.
func LoadStores(ctx context.Context, snap storage.Snapshotter, ds seed.Dataset, passwordLength int) (Stores, *auth.Gate, error) {
	users := user.NewStore(snap, ds.Users, passwordLength)
	gate := auth.NewGate(users, ds.DashboardUsers(), snap)

	st := Stores{
		Users:       users,
		Packages:    gympackage.NewStore(snap, ds.Packages),
		Memberships: membership.NewStore(snap, ds.Memberships),
		Payments:    payment.NewStore(snap, ds.Payments),
		PT:          pt.NewStore(snap),
		CheckIns:    checkin.NewStore(snap),
		Schedules:   schedule.NewStore(snap),
		Activity:    activity.NewStore(snap, gate),
	}

	steps := []struct {
		name string
		l    loader
	}{
		{user.SnapshotName, st.Users},
		{auth.SnapshotName, gate},
		{gympackage.SnapshotName, st.Packages},
		{membership.SnapshotName, st.Memberships},
		{payment.SnapshotName, st.Payments},
		{pt.SnapshotName, st.PT},
		{checkin.SnapshotName, st.CheckIns},
		{schedule.SnapshotName, st.Schedules},
		{activity.SnapshotName, st.Activity},
	}
	for _, step := range steps {
		if err := step.l.Load(ctx); err != nil {
			return Stores{}, nil, fmt.Errorf("load %s: %w", step.name, err)
		}
	}

	return st, gate, nil
}
