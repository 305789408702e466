package payment

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gymdash/internal/helpers"
	"gymdash/internal/metrics"
	"gymdash/internal/storage"
)

const (
	SnapshotName = "payments"

	RevenueMonths = 6
)

var chartMonths = [12]string{"Jan", "Feb", "Mar", "Apr", "Mei", "Jun", "Jul", "Ags", "Sep", "Okt", "Nov", "Des"}

type snapshot struct {
	Payments    []Payment `json:"payments"`
	Initialized bool      `json:"initialized"`
}

type Store struct {
	mu          sync.RWMutex
	payments    []Payment
	initialized bool

	seed []Payment
	snap storage.Snapshotter
	now  func() time.Time
}

func NewStore(snap storage.Snapshotter, seed []Payment) *Store {
	return &Store{
		seed: seed,
		snap: snap,
		now:  time.Now,
	}
}

func (s *Store) Load(ctx context.Context) error {
	var snap snapshot
	found := storage.Restore(ctx, s.snap, SnapshotName, &snap)

	s.mu.Lock()
	defer s.mu.Unlock()

	if !found || !snap.Initialized {
		s.payments = append([]Payment(nil), s.seed...)
	} else {
		s.payments = snap.Payments
	}
	s.initialized = true
	s.persistLocked(ctx)
	return nil
}

func (s *Store) persistLocked(ctx context.Context) {
	storage.Persist(ctx, s.snap, SnapshotName, snapshot{Payments: s.payments, Initialized: s.initialized})
}

func (s *Store) indexLocked(id string) int {
	for i := range s.payments {
		if s.payments[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) filter(keep func(Payment) bool) []Payment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Payment, 0)
	for _, p := range s.payments {
		if keep(p) {
			out = append(out, p)
		}
	}
	return out
}

func (s *Store) All() []Payment {
	return s.filter(func(Payment) bool { return true })
}

func (s *Store) byStatus(status Status) []Payment {
	return s.filter(func(p Payment) bool { return p.Status == status })
}

func (s *Store) Paid() []Payment    { return s.byStatus(StatusPaid) }
func (s *Store) Pending() []Payment { return s.byStatus(StatusPending) }
func (s *Store) Overdue() []Payment { return s.byStatus(StatusOverdue) }

func (s *Store) GetByID(id string) (Payment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if i := s.indexLocked(id); i != -1 {
		return s.payments[i], true
	}
	return Payment{}, false
}

func (s *Store) GetByMember(memberID string) []Payment {
	return s.filter(func(p Payment) bool { return p.MemberID == memberID })
}

func (s *Store) GetByMembership(membershipID string) []Payment {
	return s.filter(func(p Payment) bool { return p.MembershipID == membershipID })
}

// TotalRevenue sums every paid amount.
func (s *Store) TotalRevenue() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, p := range s.payments {
		if p.Status == StatusPaid {
			total += p.Amount
		}
	}
	return total
}

// MonthlyRevenue sums paid amounts whose paidAt falls in the current month.
func (s *Store) MonthlyRevenue() int64 {
	return s.revenueIn(s.now())
}

func (s *Store) revenueIn(month time.Time) int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var total int64
	for _, p := range s.payments {
		if p.Revenue() && helpers.SameMonth(*p.PaidAt, month) {
			total += p.Amount
		}
	}
	return total
}

// RevenueByMonth returns the trailing RevenueMonths months, current month
// last. Labels look like "Ags 26".
func (s *Store) RevenueByMonth() ChartData {
	now := s.now()
	chart := ChartData{
		Labels: make([]string, 0, RevenueMonths),
		Values: make([]int64, 0, RevenueMonths),
	}
	for i := RevenueMonths - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location())
		chart.Labels = append(chart.Labels, fmt.Sprintf("%s %02d", chartMonths[month.Month()-1], month.Year()%100))
		chart.Values = append(chart.Values, s.revenueIn(month))
	}
	return chart
}

// Add records a payment with a fresh invoice number. Paid payments without
// a paidAt are stamped with the current time.
func (s *Store) Add(ctx context.Context, req CreatePaymentRequest) Payment {
	now := s.now()
	p := Payment{
		ID:            helpers.GenerateID(),
		MembershipID:  req.MembershipID,
		MemberID:      req.MemberID,
		Amount:        req.Amount,
		Method:        req.Method,
		Status:        req.Status,
		InvoiceNumber: helpers.GenerateInvoiceNumber(now),
		Notes:         req.Notes,
		PaidAt:        req.PaidAt,
		CreatedAt:     now,
	}
	if p.Status == StatusPaid && p.PaidAt == nil {
		p.PaidAt = &now
	}

	s.mu.Lock()
	s.payments = append(s.payments, p)
	s.persistLocked(ctx)
	s.mu.Unlock()

	metrics.RecordPayment(string(p.Method), string(p.Status))
	return p
}

func (s *Store) Update(ctx context.Context, id string, req UpdatePaymentRequest) (Payment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i == -1 {
		return Payment{}, false
	}
	req.Apply(&s.payments[i])
	if s.payments[i].Status == StatusPaid && s.payments[i].PaidAt == nil {
		now := s.now()
		s.payments[i].PaidAt = &now
	}
	s.persistLocked(ctx)
	return s.payments[i], true
}

func (s *Store) Delete(ctx context.Context, id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexLocked(id)
	if i == -1 {
		return false
	}
	s.payments = append(s.payments[:i], s.payments[i+1:]...)
	s.persistLocked(ctx)
	return true
}
