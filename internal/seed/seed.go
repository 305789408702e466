// Package seed supplies the dataset copied into the users, packages,
// memberships and payments stores on first run. A JSON file named by
// SEED_FILE can replace any of the collections.
package seed

import (
	"encoding/json"
	"fmt"
	"os"

	"gymdash/internal/gympackage"
	"gymdash/internal/membership"
	"gymdash/internal/payment"
	"gymdash/internal/user"
)

type Dataset struct {
	Users       []user.SeedUser         `json:"users"`
	Packages    []gympackage.GymPackage `json:"packages"`
	Memberships []membership.Membership `json:"memberships"`
	Payments    []payment.Payment       `json:"payments"`
}

// Load returns Default with every collection present in the file at path
// swapped in. An empty path yields Default unchanged.
func Load(path string) (Dataset, error) {
	ds := Default()
	if path == "" {
		return ds, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Dataset{}, fmt.Errorf("read seed file: %w", err)
	}

	var file struct {
		Users       *[]user.SeedUser         `json:"users"`
		Packages    *[]gympackage.GymPackage `json:"packages"`
		Memberships *[]membership.Membership `json:"memberships"`
		Payments    *[]payment.Payment       `json:"payments"`
	}
	if err := json.Unmarshal(data, &file); err != nil {
		return Dataset{}, fmt.Errorf("decode seed file %s: %w", path, err)
	}

	if file.Users != nil {
		ds.Users = *file.Users
	}
	if file.Packages != nil {
		ds.Packages = *file.Packages
	}
	if file.Memberships != nil {
		ds.Memberships = *file.Memberships
	}
	if file.Payments != nil {
		ds.Payments = *file.Payments
	}
	return ds, nil
}

// DashboardUsers returns the admin and staff seed accounts, the ones the
// login fallback may match.
func (d Dataset) DashboardUsers() []user.SeedUser {
	out := make([]user.SeedUser, 0)
	for _, su := range d.Users {
		if su.Role.CanUseDashboard() {
			out = append(out, su)
		}
	}
	return out
}
