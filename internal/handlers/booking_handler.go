package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/CoachLinkServices/coach-scheduler/internal/cache"
	"github.com/CoachLinkServices/coach-scheduler/internal/httperr"
	"github.com/CoachLinkServices/coach-scheduler/internal/httpresp"
	"github.com/CoachLinkServices/coach-scheduler/internal/middleware"
	ucBooking "github.com/CoachLinkServices/coach-scheduler/internal/usecase/booking"
)

// ======================================================
// HANDLER
// ======================================================

type BookingHandler struct {
	createUC       *ucBooking.CreateBooking
	selfBlockUC    *ucBooking.SelfBlock
	updateStatusUC *ucBooking.UpdateStatus
	cancelUC       *ucBooking.CancelBooking
	listByDateUC   *ucBooking.ListByDate
	listByMonthUC  *ucBooking.ListByMonth
	slots          *cache.SlotCache
}

func NewBookingHandler(
	createUC *ucBooking.CreateBooking,
	selfBlockUC *ucBooking.SelfBlock,
	updateStatusUC *ucBooking.UpdateStatus,
	cancelUC *ucBooking.CancelBooking,
	listByDateUC *ucBooking.ListByDate,
	listByMonthUC *ucBooking.ListByMonth,
	slots *cache.SlotCache,
) *BookingHandler {
	return &BookingHandler{
		createUC:       createUC,
		selfBlockUC:    selfBlockUC,
		updateStatusUC: updateStatusUC,
		cancelUC:       cancelUC,
		listByDateUC:   listByDateUC,
		listByMonthUC:  listByMonthUC,
		slots:          slots,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateBookingRequest struct {
	CoachID   uint   `json:"coach_id" binding:"required"`
	SportID   uint   `json:"sport_id" binding:"required"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
	PackageID *uint  `json:"package_id"`
}

type SelfBlockRequest struct {
	SportID   uint   `json:"sport_id"`
	Date      string `json:"date" binding:"required"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type CancelBookingRequest struct {
	Reason string `json:"reason"`
}

// ======================================================
// CREATE
// ======================================================

func (h *BookingHandler) Create(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid booking payload.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	result, err := h.createUC.Execute(c.Request.Context(), ucBooking.CreateBookingInput{
		UserID:    userID,
		CoachID:   req.CoachID,
		SportID:   req.SportID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		PackageID: req.PackageID,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.slots.Bump(c.Request.Context(), req.CoachID)

	httpresp.Created(c, gin.H{
		"booking":            result.Booking,
		"sessions_remaining": result.SessionsRemaining,
	})
}

// ======================================================
// SELF-BLOCK
// ======================================================

func (h *BookingHandler) SelfBlock(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	var req SelfBlockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid block payload.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	b, err := h.selfBlockUC.Execute(c.Request.Context(), ucBooking.SelfBlockInput{
		CoachID:   coachID,
		SportID:   req.SportID,
		Date:      date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.slots.Bump(c.Request.Context(), coachID)
	httpresp.Created(c, b)
}

// ======================================================
// STATUS
// ======================================================

func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid status payload.")
		return
	}

	updated, err := h.updateStatusUC.Execute(
		c.Request.Context(),
		uint(bookingID),
		req.Status,
		coachID,
	)
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.slots.Bump(c.Request.Context(), coachID)
	httpresp.OK(c, gin.H{"is_updated": updated})
}

// ======================================================
// CANCEL
// ======================================================

func (h *BookingHandler) Cancel(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)
	actorRole := c.MustGet(middleware.ContextUserRole).(string)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_booking_id", "Invalid booking id.")
		return
	}

	// Body is optional; an absent reason is an empty string.
	var req CancelBookingRequest
	_ = c.ShouldBindJSON(&req)

	result, err := h.cancelUC.Execute(c.Request.Context(), ucBooking.CancelInput{
		BookingID:   uint(bookingID),
		Reason:      req.Reason,
		RequestedAt: time.Now(),
		ActorID:     actorID,
		ActorRole:   actorRole,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.slots.Bump(c.Request.Context(), result.CoachID)
	httpresp.OK(c, result)
}

// ======================================================
// LIST
// ======================================================

func (h *BookingHandler) ListByDate(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	date, err := parseDate(c.Query("date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Invalid date.")
		return
	}

	bookings, err := h.listByDateUC.Execute(c.Request.Context(), coachID, date)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, bookings)
}

func (h *BookingHandler) ListByMonth(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	bookings, err := h.listByMonthUC.Execute(c.Request.Context(), coachID, year, month)
	if err != nil {
		httperr.From(c, err)
		return
	}

	httpresp.List(c, bookings)
}
