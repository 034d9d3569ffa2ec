package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/CoachLinkServices/coach-scheduler/internal/cache"
	"github.com/CoachLinkServices/coach-scheduler/internal/dto"
	"github.com/CoachLinkServices/coach-scheduler/internal/httperr"
	"github.com/CoachLinkServices/coach-scheduler/internal/httpresp"
	ucAvailability "github.com/CoachLinkServices/coach-scheduler/internal/usecase/availability"
)

type AvailabilityHandler struct {
	getSlotsUC *ucAvailability.GetSlots
	slots      *cache.SlotCache
}

func NewAvailabilityHandler(
	getSlotsUC *ucAvailability.GetSlots,
	slots *cache.SlotCache,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		getSlotsUC: getSlotsUC,
		slots:      slots,
	}
}

// GetSlots serves GET /coaches/:id/availability. Pages are cached per
// coach; a cache miss or unreachable redis falls through to the database.
func (h *AvailabilityHandler) GetSlots(c *gin.Context) {
	coachID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_coach_id", "Invalid coach id.")
		return
	}

	startDate, err := parseDate(c.Query("start_date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_start_date", "Invalid start date.")
		return
	}

	endDate, err := parseDate(c.Query("end_date"))
	if err != nil {
		httperr.BadRequest(c, "invalid_end_date", "Invalid end date.")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))

	cacheKey := fmt.Sprintf(
		"%s:%s:%d:%d",
		c.Query("start_date"), c.Query("end_date"), page, pageSize,
	)

	if payload, ok := h.slots.Get(c.Request.Context(), uint(coachID), cacheKey); ok {
		c.Data(http.StatusOK, "application/json", payload)
		return
	}

	out, err := h.getSlotsUC.Execute(c.Request.Context(), ucAvailability.GetSlotsInput{
		CoachID:   uint(coachID),
		StartDate: startDate,
		EndDate:   endDate,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		httperr.From(c, err)
		return
	}

	resp := httpresp.PageResponse[dto.Slot]{
		Data:         out.Slots,
		Page:         page,
		PageSize:     pageSize,
		TotalRecords: out.TotalRecords,
		TotalPages:   out.TotalPages,
	}

	if payload, err := json.Marshal(resp); err == nil {
		h.slots.Set(c.Request.Context(), uint(coachID), cacheKey, payload)
	}

	c.JSON(http.StatusOK, resp)
}
