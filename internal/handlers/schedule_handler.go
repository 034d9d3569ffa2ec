package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CoachLinkServices/coach-scheduler/internal/cache"
	domain "github.com/CoachLinkServices/coach-scheduler/internal/domain/schedule"
	"github.com/CoachLinkServices/coach-scheduler/internal/httperr"
	"github.com/CoachLinkServices/coach-scheduler/internal/httpresp"
	"github.com/CoachLinkServices/coach-scheduler/internal/middleware"
	ucSchedule "github.com/CoachLinkServices/coach-scheduler/internal/usecase/schedule"
)

// ======================================================
// HANDLER
// ======================================================

type ScheduleHandler struct {
	repo     domain.Repository
	createUC *ucSchedule.CreateSchedule
	updateUC *ucSchedule.UpdateSchedule
	deleteUC *ucSchedule.DeleteSchedule
	slots    *cache.SlotCache
}

func NewScheduleHandler(
	repo domain.Repository,
	createUC *ucSchedule.CreateSchedule,
	updateUC *ucSchedule.UpdateSchedule,
	deleteUC *ucSchedule.DeleteSchedule,
	slots *cache.SlotCache,
) *ScheduleHandler {
	return &ScheduleHandler{
		repo:     repo,
		createUC: createUC,
		updateUC: updateUC,
		deleteUC: deleteUC,
		slots:    slots,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ScheduleRequest struct {
	DayOfWeek int    `json:"day_of_week" binding:"required,min=1,max=7"`
	StartTime string `json:"start_time" binding:"required"`
	EndTime   string `json:"end_time" binding:"required"`
}

// ======================================================
// HANDLERS
// ======================================================

func (h *ScheduleHandler) List(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	rows, err := h.repo.GetByCoach(c.Request.Context(), coachID)
	if err != nil {
		httperr.Internal(c, "failed_to_list_schedules", "Could not list schedules.")
		return
	}

	httpresp.List(c, rows)
}

func (h *ScheduleHandler) Create(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule payload.")
		return
	}

	s, err := h.createUC.Execute(c.Request.Context(), ucSchedule.CreateScheduleInput{
		CoachID:   coachID,
		DayOfWeek: req.DayOfWeek,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.slots.Bump(c.Request.Context(), coachID)
	httpresp.Created(c, s)
}

func (h *ScheduleHandler) Update(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	scheduleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_schedule_id", "Invalid schedule id.")
		return
	}

	var req ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid schedule payload.")
		return
	}

	s, err := h.updateUC.Execute(c.Request.Context(), ucSchedule.UpdateScheduleInput{
		ScheduleID: uint(scheduleID),
		CoachID:    coachID,
		DayOfWeek:  req.DayOfWeek,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	h.slots.Bump(c.Request.Context(), coachID)
	httpresp.OK(c, s)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	scheduleID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_schedule_id", "Invalid schedule id.")
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), uint(scheduleID), coachID); err != nil {
		httperr.From(c, err)
		return
	}

	h.slots.Bump(c.Request.Context(), coachID)
	httpresp.OK(c, gin.H{"status": "deleted"})
}
