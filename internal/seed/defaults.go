package seed

import (
	"time"

	"gymdash/internal/gympackage"
	"gymdash/internal/membership"
	"gymdash/internal/payment"
	"gymdash/internal/user"
)

func at(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func paidAt(y int, m time.Month, d, hour int) *time.Time {
	t := time.Date(y, m, d, hour, 0, 0, 0, time.UTC)
	return &t
}

func avatar(name string) string {
	return "https://ui-avatars.com/api/?background=random&name=" + name
}

func Default() Dataset {
	return Dataset{
		Users:       defaultUsers(),
		Packages:    defaultPackages(),
		Memberships: defaultMemberships(),
		Payments:    defaultPayments(),
	}
}

func defaultUsers() []user.SeedUser {
	seedUser := func(u user.User, pass string) user.SeedUser {
		u.IsActive = true
		if u.Avatar == "" {
			u.Avatar = avatar(u.Name)
		}
		u.UpdatedAt = u.CreatedAt
		return user.SeedUser{User: u, Password: pass}
	}

	users := []user.SeedUser{
		seedUser(user.User{ID: "u-admin-001", Name: "Admin Utama", Email: "admin@example.com", Phone: "081200000001", Role: user.RoleAdmin, Gender: user.GenderMale, Address: "Jl. Sudirman No. 1, Jakarta", CreatedAt: at(2024, time.January, 1)}, "admin123"),
		seedUser(user.User{ID: "u-staff-001", Name: "Siti Rahma", Email: "staff@example.com", Phone: "081200000002", Role: user.RoleStaff, Gender: user.GenderFemale, Address: "Jl. Thamrin No. 8, Jakarta", CreatedAt: at(2024, time.February, 1)}, "staff123"),
		seedUser(user.User{ID: "u-staff-002", Name: "Budi Santoso", Email: "budi.staff@example.com", Phone: "081200000003", Role: user.RoleStaff, Gender: user.GenderMale, Address: "Jl. Gatot Subroto No. 12, Jakarta", CreatedAt: at(2024, time.March, 15)}, "staff123"),
		seedUser(user.User{ID: "u-trainer-001", Name: "Andi Pratama", Email: "andi.trainer@example.com", Phone: "081300000001", Role: user.RoleTrainer, Gender: user.GenderMale, BirthDate: "1992-04-11", Address: "Jl. Kemang Raya No. 5, Jakarta", Notes: "Spesialis strength & conditioning", CreatedAt: at(2024, time.January, 10)}, "trainer123"),
		seedUser(user.User{ID: "u-trainer-002", Name: "Dewi Lestari", Email: "dewi.trainer@example.com", Phone: "081300000002", Role: user.RoleTrainer, Gender: user.GenderFemale, BirthDate: "1995-09-23", Address: "Jl. Fatmawati No. 20, Jakarta", Notes: "Instruktur yoga & pilates", CreatedAt: at(2024, time.March, 1)}, "trainer123"),
		seedUser(user.User{ID: "u-trainer-003", Name: "Rizky Hidayat", Email: "rizky.trainer@example.com", Phone: "081300000003", Role: user.RoleTrainer, Gender: user.GenderMale, BirthDate: "1990-12-02", Address: "Jl. Panglima Polim No. 3, Jakarta", Notes: "Coach CrossFit bersertifikat", CreatedAt: at(2024, time.June, 1)}, "trainer123"),
		seedUser(user.User{ID: "u-member-001", Name: "Ahmad Fauzi", Email: "ahmad@example.com", Phone: "081400000001", Role: user.RoleMember, Gender: user.GenderMale, NIK: "3171010101900001", BirthDate: "1990-01-01", BloodType: "O", EmergencyContact: "Nur Aini", EmergencyPhone: "081499990001", Address: "Jl. Cikini No. 7, Jakarta", CreatedAt: at(2025, time.March, 5)}, "member123"),
		seedUser(user.User{ID: "u-member-002", Name: "Putri Ayu", Email: "putri@example.com", Phone: "081400000002", Role: user.RoleMember, Gender: user.GenderFemale, NIK: "3171014505950002", BirthDate: "1995-05-05", BloodType: "A", EmergencyContact: "Hendra", EmergencyPhone: "081499990002", Address: "Jl. Menteng No. 9, Jakarta", CreatedAt: at(2025, time.June, 12)}, "member123"),
		seedUser(user.User{ID: "u-member-003", Name: "Joko Widodo", Email: "joko@example.com", Phone: "081400000003", Role: user.RoleMember, Gender: user.GenderMale, BirthDate: "1988-07-17", BloodType: "B", Address: "Jl. Tebet Raya No. 30, Jakarta", CreatedAt: at(2025, time.August, 20)}, "member123"),
		seedUser(user.User{ID: "u-member-004", Name: "Maya Sari", Email: "maya@example.com", Phone: "081400000004", Role: user.RoleMember, Gender: user.GenderFemale, BirthDate: "1998-02-14", BloodType: "AB", Address: "Jl. Kuningan No. 4, Jakarta", CreatedAt: at(2025, time.December, 28)}, "member123"),
		seedUser(user.User{ID: "u-member-005", Name: "Fajar Nugroho", Email: "fajar@example.com", Phone: "081400000005", Role: user.RoleMember, Gender: user.GenderMale, BirthDate: "1993-11-30", BloodType: "O", Address: "Jl. Senopati No. 15, Jakarta", CreatedAt: at(2026, time.January, 30)}, "member123"),
		seedUser(user.User{ID: "u-member-006", Name: "Rina Wulandari", Email: "rina@example.com", Phone: "081400000006", Role: user.RoleMember, Gender: user.GenderFemale, BirthDate: "1985-06-21", BloodType: "A", Address: "Jl. Pondok Indah No. 2, Jakarta", Notes: "Member VIP", CreatedAt: at(2025, time.November, 25)}, "member123"),
	}
	// Dormant account kept for the inactive-member views.
	users[8].IsActive = false
	return users
}

func defaultPackages() []gympackage.GymPackage {
	created := at(2024, time.January, 1)
	return []gympackage.GymPackage{
		{ID: "pkg-001", Name: "Harian", Description: "Akses gym satu hari", DurationDays: 1, Price: 50000, Features: []string{"Akses area gym", "Loker"}, IsActive: true, CreatedAt: created},
		{ID: "pkg-002", Name: "Bulanan", Description: "Akses gym 30 hari", DurationDays: 30, Price: 350000, Features: []string{"Akses area gym", "Loker", "Kelas grup"}, IsActive: true, CreatedAt: created},
		{ID: "pkg-003", Name: "3 Bulan", Description: "Akses gym 90 hari", DurationDays: 90, Price: 900000, Features: []string{"Akses area gym", "Loker", "Kelas grup", "1 sesi konsultasi"}, IsActive: true, CreatedAt: created},
		{ID: "pkg-004", Name: "6 Bulan", Description: "Akses gym 180 hari", DurationDays: 180, Price: 1650000, Features: []string{"Akses area gym", "Loker", "Kelas grup", "2 sesi PT"}, IsActive: true, CreatedAt: created},
		{ID: "pkg-005", Name: "Tahunan VIP", Description: "Akses penuh 365 hari", DurationDays: 365, Price: 3000000, Features: []string{"Akses area gym", "Loker pribadi", "Semua kelas", "4 sesi PT", "Handuk"}, IsActive: true, CreatedAt: created},
		{ID: "pkg-006", Name: "Pelajar", Description: "Paket bulanan khusus pelajar", DurationDays: 30, Price: 250000, Features: []string{"Akses area gym"}, IsActive: false, CreatedAt: created},
	}
}

func defaultMemberships() []membership.Membership {
	return []membership.Membership{
		{ID: "ms-001", MemberID: "u-member-001", PackageID: "pkg-005", StartDate: "2026-03-05", EndDate: "2027-03-05", Status: membership.StatusActive, CreatedAt: at(2026, time.March, 5)},
		{ID: "ms-002", MemberID: "u-member-002", PackageID: "pkg-003", TrainerID: "u-trainer-001", StartDate: "2026-07-20", EndDate: "2026-10-18", Status: membership.StatusActive, Notes: "Program diet", CreatedAt: at(2026, time.July, 20)},
		{ID: "ms-003", MemberID: "u-member-003", PackageID: "pkg-002", StartDate: "2026-01-01", EndDate: "2026-01-31", Status: membership.StatusExpired, CreatedAt: at(2026, time.January, 1)},
		{ID: "ms-004", MemberID: "u-member-004", PackageID: "pkg-004", TrainerID: "u-trainer-002", StartDate: "2026-05-01", EndDate: "2026-10-28", Status: membership.StatusActive, CreatedAt: at(2026, time.May, 1)},
		{ID: "ms-005", MemberID: "u-member-005", PackageID: "pkg-002", StartDate: "2026-10-01", EndDate: "2026-10-31", Status: membership.StatusActive, CreatedAt: at(2026, time.October, 1)},
		{ID: "ms-006", MemberID: "u-member-006", PackageID: "pkg-005", TrainerID: "u-trainer-003", StartDate: "2025-11-25", EndDate: "2026-11-25", Status: membership.StatusActive, Notes: "Member VIP", CreatedAt: at(2025, time.November, 25)},
		{ID: "ms-007", MemberID: "u-member-003", PackageID: "pkg-002", StartDate: "2026-10-20", EndDate: "2026-11-19", Status: membership.StatusPending, Notes: "Menunggu pembayaran", CreatedAt: at(2026, time.October, 14)},
	}
}

func defaultPayments() []payment.Payment {
	return []payment.Payment{
		{ID: "pay-001", MembershipID: "ms-006", MemberID: "u-member-006", Amount: 3000000, Method: payment.MethodTransfer, Status: payment.StatusPaid, InvoiceNumber: "INV-2511-0001", PaidAt: paidAt(2025, time.November, 25, 10), CreatedAt: at(2025, time.November, 25)},
		{ID: "pay-002", MembershipID: "ms-003", MemberID: "u-member-003", Amount: 350000, Method: payment.MethodCash, Status: payment.StatusPaid, InvoiceNumber: "INV-2601-0002", PaidAt: paidAt(2026, time.January, 1, 9), CreatedAt: at(2026, time.January, 1)},
		{ID: "pay-003", MembershipID: "ms-001", MemberID: "u-member-001", Amount: 3000000, Method: payment.MethodQRIS, Status: payment.StatusPaid, InvoiceNumber: "INV-2603-0003", PaidAt: paidAt(2026, time.March, 5, 14), CreatedAt: at(2026, time.March, 5)},
		{ID: "pay-004", MembershipID: "ms-004", MemberID: "u-member-004", Amount: 1650000, Method: payment.MethodDebit, Status: payment.StatusPaid, InvoiceNumber: "INV-2605-0004", PaidAt: paidAt(2026, time.May, 1, 11), CreatedAt: at(2026, time.May, 1)},
		{ID: "pay-005", MembershipID: "ms-002", MemberID: "u-member-002", Amount: 900000, Method: payment.MethodTransfer, Status: payment.StatusPaid, InvoiceNumber: "INV-2607-0005", PaidAt: paidAt(2026, time.July, 20, 16), CreatedAt: at(2026, time.July, 20)},
		{ID: "pay-006", MembershipID: "ms-005", MemberID: "u-member-005", Amount: 350000, Method: payment.MethodQRIS, Status: payment.StatusPaid, InvoiceNumber: "INV-2610-0006", PaidAt: paidAt(2026, time.October, 1, 8), CreatedAt: at(2026, time.October, 1)},
		{ID: "pay-007", MembershipID: "ms-007", MemberID: "u-member-003", Amount: 350000, Method: payment.MethodTransfer, Status: payment.StatusPending, InvoiceNumber: "INV-2610-0007", Notes: "Menunggu konfirmasi transfer", CreatedAt: at(2026, time.October, 14)},
		{ID: "pay-008", MembershipID: "ms-003", MemberID: "u-member-003", Amount: 350000, Method: payment.MethodCash, Status: payment.StatusOverdue, InvoiceNumber: "INV-2602-0008", Notes: "Perpanjangan Februari belum dibayar", CreatedAt: at(2026, time.February, 1)},
	}
}
