// Package helpers holds the stateless utilities shared by the stores:
// identifiers, invoice numbers, Rupiah and date formatting, day arithmetic
// and the display labels used by the dashboard.
package helpers

import (
	"crypto/rand"
	"fmt"
	"math"
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/ksuid"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const DateLayout = "2006-01-02"

var shortMonths = [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Agu", "Sep", "Okt", "Nov", "Des"}

var idPrinter = message.NewPrinter(language.Indonesian)

func GenerateID() string {
	return uuid.NewString()
}

// GenerateSortableID returns a k-sortable id for append-only records, so
// lexical order follows creation order.
func GenerateSortableID() string {
	return ksuid.New().String()
}

// GenerateInvoiceNumber formats INV-YYMM-RRRR with a random zero-padded
// suffix. Uniqueness against existing invoices is not checked.
func GenerateInvoiceNumber(t time.Time) string {
	return fmt.Sprintf("INV-%s-%04d", t.Format("0601"), RandomInt(10000))
}

// RandomInt returns a uniform integer in [0, n).
func RandomInt(n int) int {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(fmt.Sprintf("crypto/rand unavailable: %v", err))
	}
	return int(v.Int64())
}

// FormatCurrency renders whole Rupiah the way id-ID does: "Rp 1.500.000".
func FormatCurrency(amount int64) string {
	if amount < 0 {
		return "-Rp " + idPrinter.Sprintf("%d", -amount)
	}
	return "Rp " + idPrinter.Sprintf("%d", amount)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%02d %s %d", t.Day(), shortMonths[t.Month()-1], t.Year())
}

func FormatDateTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return fmt.Sprintf("%s, %02d.%02d", FormatDate(t), t.Hour(), t.Minute())
}

// DaysRemaining is ceil((end - now) in days). Past dates give negative values.
func DaysRemaining(end, now time.Time) int {
	diff := end.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

func CalculateAge(birth, now time.Time) int {
	if birth.IsZero() {
		return 0
	}
	age := now.Year() - birth.Year()
	if now.Month() < birth.Month() || (now.Month() == birth.Month() && now.Day() < birth.Day()) {
		age--
	}
	return age
}

// AddDays shifts an ISO date (YYYY-MM-DD) by days.
func AddDays(date string, days int) (string, error) {
	d, err := time.Parse(DateLayout, date)
	if err != nil {
		return "", fmt.Errorf("invalid date %q: %w", date, err)
	}
	return d.AddDate(0, 0, days).Format(DateLayout), nil
}

// DateKey truncates t to its UTC calendar date. Every "same day" comparison
// in the stores goes through it so timestamps compare in one zone.
func DateKey(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

func TodayISO(now time.Time) string {
	return DateKey(now)
}

// SameMonth reports whether t falls in the calendar month of ref, in ref's zone.
func SameMonth(t, ref time.Time) bool {
	t = t.In(ref.Location())
	return t.Year() == ref.Year() && t.Month() == ref.Month()
}

func StatusColor(status string) string {
	colors := map[string]string{
		"active":    "bg-emerald-100 text-emerald-700",
		"expired":   "bg-red-100 text-red-700",
		"pending":   "bg-amber-100 text-amber-700",
		"frozen":    "bg-blue-100 text-blue-700",
		"paid":      "bg-emerald-100 text-emerald-700",
		"overdue":   "bg-red-100 text-red-700",
		"cancelled": "bg-gray-100 text-gray-600",
	}
	if c, ok := colors[status]; ok {
		return c
	}
	return "bg-gray-100 text-gray-600"
}

func RoleColor(role string) string {
	colors := map[string]string{
		"admin":   "bg-purple-100 text-purple-700",
		"staff":   "bg-blue-100 text-blue-700",
		"trainer": "bg-orange-100 text-orange-700",
		"member":  "bg-emerald-100 text-emerald-700",
	}
	if c, ok := colors[role]; ok {
		return c
	}
	return "bg-gray-100 text-gray-600"
}

func RoleLabel(role string) string {
	labels := map[string]string{
		"admin":   "Admin",
		"staff":   "Staff",
		"trainer": "Personal Trainer",
		"member":  "Member",
	}
	if l, ok := labels[role]; ok {
		return l
	}
	return role
}

func PaymentMethodLabel(method string) string {
	labels := map[string]string{
		"cash":     "Cash",
		"transfer": "Transfer Bank",
		"qris":     "QRIS",
		"debit":    "Kartu Debit",
	}
	if l, ok := labels[method]; ok {
		return l
	}
	return method
}

func GenderLabel(gender string) string {
	if gender == "male" {
		return "Laki-laki"
	}
	return "Perempuan"
}
