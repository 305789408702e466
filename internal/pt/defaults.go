package pt

import "time"

var catalogCreated = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultPackages is the session catalog installed on first run.
func DefaultPackages() []Package {
	return []Package{
		{ID: "pt-pkg-001", Name: "4 Sesi PT", Sessions: 4, PricePerSession: 150000, TotalPrice: 600000, Description: "Paket personal trainer 4 sesi, cocok untuk pemula", IsActive: true, CreatedAt: catalogCreated},
		{ID: "pt-pkg-002", Name: "8 Sesi PT", Sessions: 8, PricePerSession: 140000, TotalPrice: 1120000, Description: "Paket personal trainer 8 sesi, paling populer", IsActive: true, CreatedAt: catalogCreated},
		{ID: "pt-pkg-003", Name: "12 Sesi PT", Sessions: 12, PricePerSession: 125000, TotalPrice: 1500000, Description: "Paket personal trainer 12 sesi, hemat 17%", IsActive: true, CreatedAt: catalogCreated},
		{ID: "pt-pkg-004", Name: "16 Sesi PT", Sessions: 16, PricePerSession: 115000, TotalPrice: 1840000, Description: "Paket personal trainer 16 sesi, hemat 23%", IsActive: true, CreatedAt: catalogCreated},
		{ID: "pt-pkg-005", Name: "24 Sesi PT", Sessions: 24, PricePerSession: 100000, TotalPrice: 2400000, Description: "Paket personal trainer 24 sesi, harga terbaik!", IsActive: true, CreatedAt: catalogCreated},
	}
}

func DefaultSubscriptions() []Subscription {
	day := func(y int, m time.Month, d int) time.Time { return time.Date(y, m, d, 0, 0, 0, 0, time.UTC) }
	return []Subscription{
		{ID: "pt-sub-001", MemberID: "u-member-002", TrainerID: "u-trainer-001", PackageID: "pt-pkg-002", TotalSessions: 8, UsedSessions: 3, Status: StatusActive, StartDate: "2026-01-20", EndDate: "2026-03-20", Notes: "Program diet & fitness", CreatedAt: day(2026, time.January, 20)},
		{ID: "pt-sub-002", MemberID: "u-member-005", TrainerID: "u-trainer-001", PackageID: "pt-pkg-002", TotalSessions: 8, UsedSessions: 2, Status: StatusActive, StartDate: "2026-02-01", EndDate: "2026-04-01", Notes: "Program bulking", CreatedAt: day(2026, time.February, 1)},
		{ID: "pt-sub-003", MemberID: "u-member-006", TrainerID: "u-trainer-003", PackageID: "pt-pkg-003", TotalSessions: 12, UsedSessions: 8, Status: StatusActive, StartDate: "2025-12-01", EndDate: "2026-04-01", Notes: "Member VIP tahunan", CreatedAt: day(2025, time.December, 1)},
		{ID: "pt-sub-004", MemberID: "u-member-004", TrainerID: "u-trainer-002", PackageID: "pt-pkg-001", TotalSessions: 4, UsedSessions: 4, Status: StatusCompleted, StartDate: "2026-01-01", EndDate: "2026-01-31", CreatedAt: day(2026, time.January, 1)},
	}
}
