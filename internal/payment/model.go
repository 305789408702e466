package payment

import "time"

type Status string

const (
	StatusPaid      Status = "paid"
	StatusPending   Status = "pending"
	StatusOverdue   Status = "overdue"
	StatusCancelled Status = "cancelled"
)

type Method string

const (
	MethodCash     Method = "cash"
	MethodTransfer Method = "transfer"
	MethodQRIS     Method = "qris"
	MethodDebit    Method = "debit"
)

type Payment struct {
	ID            string     `json:"id"`
	MembershipID  string     `json:"membership_id"`
	MemberID      string     `json:"member_id"`
	Amount        int64      `json:"amount"`
	Method        Method     `json:"method"`
	Status        Status     `json:"status"`
	InvoiceNumber string     `json:"invoice_number"`
	Notes         string     `json:"notes"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Revenue reports whether the payment counts towards revenue.
func (p Payment) Revenue() bool {
	return p.Status == StatusPaid && p.PaidAt != nil
}

// ChartData is a revenue series, oldest point first.
type ChartData struct {
	Labels []string `json:"labels"`
	Values []int64  `json:"values"`
}

type RevenueSummary struct {
	Total   int64     `json:"total"`
	Monthly int64     `json:"monthly"`
	Chart   ChartData `json:"chart"`
}

type CreatePaymentRequest struct {
	MembershipID string     `json:"membership_id" binding:"required"`
	MemberID     string     `json:"member_id" binding:"required"`
	Amount       int64      `json:"amount" binding:"required,gt=0"`
	Method       Method     `json:"method" binding:"required,oneof=cash transfer qris debit"`
	Status       Status     `json:"status" binding:"required,oneof=paid pending overdue cancelled"`
	Notes        string     `json:"notes"`
	PaidAt       *time.Time `json:"paid_at"`
}

type UpdatePaymentRequest struct {
	Amount *int64     `json:"amount" binding:"omitempty,gt=0"`
	Method *Method    `json:"method" binding:"omitempty,oneof=cash transfer qris debit"`
	Status *Status    `json:"status" binding:"omitempty,oneof=paid pending overdue cancelled"`
	Notes  *string    `json:"notes"`
	PaidAt *time.Time `json:"paid_at"`
}

func (r UpdatePaymentRequest) Apply(p *Payment) {
	if r.Amount != nil {
		p.Amount = *r.Amount
	}
	if r.Method != nil {
		p.Method = *r.Method
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.Notes != nil {
		p.Notes = *r.Notes
	}
	if r.PaidAt != nil {
		paidAt := *r.PaidAt
		p.PaidAt = &paidAt
	}
}
