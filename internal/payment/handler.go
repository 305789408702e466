package payment

import (
	"net/http"

	"gymdash/internal/activity"
	"gymdash/internal/api"
	"gymdash/internal/helpers"
	"gymdash/internal/pagination"
	"gymdash/internal/user"

	"github.com/gin-gonic/gin"
)

type MemberFinder interface {
	GetByID(id string) (user.User, bool)
}

type Handler struct {
	store   *Store
	members MemberFinder
	log     activity.Recorder
}

func NewHandler(store *Store, members MemberFinder, log activity.Recorder) *Handler {
	return &Handler{
		store:   store,
		members: members,
		log:     log,
	}
}

func (h *Handler) memberName(id string) string {
	if u, ok := h.members.GetByID(id); ok {
		return u.Name
	}
	return id
}

// @Summary      List payments
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "paid, pending or overdue"
// @Param        member_id query string false "Member ID"
// @Param        membership_id query string false "Membership ID"
// @Param        page query int false "Page"
// @Param        per_page query int false "Items per page"
// @Success      200 {object} pagination.Page[payment.Payment]
// @Router       /payments [get]
func (h *Handler) ListPayments(c *gin.Context) {
	var payments []Payment
	switch {
	case c.Query("member_id") != "":
		payments = h.store.GetByMember(c.Query("member_id"))
	case c.Query("membership_id") != "":
		payments = h.store.GetByMembership(c.Query("membership_id"))
	case c.Query("status") == string(StatusPaid):
		payments = h.store.Paid()
	case c.Query("status") == string(StatusPending):
		payments = h.store.Pending()
	case c.Query("status") == string(StatusOverdue):
		payments = h.store.Overdue()
	default:
		payments = h.store.All()
	}

	page, perPage := api.PageQuery(c)
	c.JSON(http.StatusOK, pagination.Paginate(payments, page, perPage))
}

// @Summary      Revenue summary
// @Description  Total and current-month revenue plus the 6-month trend
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} payment.RevenueSummary
// @Router       /payments/revenue [get]
func (h *Handler) GetRevenue(c *gin.Context) {
	c.JSON(http.StatusOK, RevenueSummary{
		Total:   h.store.TotalRevenue(),
		Monthly: h.store.MonthlyRevenue(),
		Chart:   h.store.RevenueByMonth(),
	})
}

// @Summary      Get a payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payment ID"
// @Success      200 {object} payment.Payment
// @Failure      404 {object} api.ErrorResponse
// @Router       /payments/{id} [get]
func (h *Handler) GetPayment(c *gin.Context) {
	p, ok := h.store.GetByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Payment not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// @Summary      Record a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body payment.CreatePaymentRequest true "Payment payload"
// @Success      201 {object} payment.Payment
// @Failure      400 {object} api.ErrorResponse
// @Router       /payments [post]
func (h *Handler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	p := h.store.Add(ctx, req)
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionCreate,
		TargetType: activity.TargetPayment,
		TargetID:   p.ID,
		TargetName: h.memberName(p.MemberID),
		Details:    p.InvoiceNumber + " " + helpers.FormatCurrency(p.Amount) + " (" + helpers.PaymentMethodLabel(string(p.Method)) + ")",
	})

	c.JSON(http.StatusCreated, p)
}

// @Summary      Update a payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payment ID"
// @Param        request body payment.UpdatePaymentRequest true "Fields to change"
// @Success      200 {object} payment.Payment
// @Failure      400 {object} api.ErrorResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /payments/{id} [patch]
func (h *Handler) UpdatePayment(c *gin.Context) {
	var req UpdatePaymentRequest
	if !api.BindJSON(c, &req) {
		return
	}

	ctx := c.Request.Context()
	p, ok := h.store.Update(ctx, c.Param("id"), req)
	if !ok {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Payment not found"})
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionUpdate,
		TargetType: activity.TargetPayment,
		TargetID:   p.ID,
		TargetName: h.memberName(p.MemberID),
		Details:    p.InvoiceNumber + " is now " + string(p.Status),
	})

	c.JSON(http.StatusOK, p)
}

// @Summary      Delete a payment
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path string true "Payment ID"
// @Success      200 {object} api.MessageResponse
// @Failure      404 {object} api.ErrorResponse
// @Router       /payments/{id} [delete]
func (h *Handler) DeletePayment(c *gin.Context) {
	id := c.Param("id")
	p, _ := h.store.GetByID(id)

	ctx := c.Request.Context()
	if !h.store.Delete(ctx, id) {
		c.JSON(http.StatusNotFound, api.ErrorResponse{Error: "Payment not found"})
		return
	}
	h.log.Add(ctx, activity.Record{
		Action:     activity.ActionDelete,
		TargetType: activity.TargetPayment,
		TargetID:   p.ID,
		TargetName: h.memberName(p.MemberID),
		Details:    "Deleted " + p.InvoiceNumber,
	})

	c.JSON(http.StatusOK, api.MessageResponse{Message: "Payment deleted"})
}
