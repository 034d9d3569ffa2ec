package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/CoachLinkServices/coach-scheduler/internal/httperr"
	"github.com/CoachLinkServices/coach-scheduler/internal/httpresp"
	"github.com/CoachLinkServices/coach-scheduler/internal/middleware"
	"github.com/CoachLinkServices/coach-scheduler/internal/models"
)

// ======================================================
// HANDLER
// ======================================================

type PackageHandler struct {
	db *gorm.DB
}

func NewPackageHandler(db *gorm.DB) *PackageHandler {
	return &PackageHandler{db: db}
}

// ======================================================
// REQUESTS
// ======================================================

type PackageRequest struct {
	Name         string  `json:"name" binding:"required"`
	SessionCount int     `json:"session_count" binding:"required,min=1"`
	Price        float64 `json:"price" binding:"required"`
	ValidityDays int     `json:"validity_days"`
}

// ======================================================
// COACH SIDE
// ======================================================

func (h *PackageHandler) ListMine(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	var packages []models.SessionPackage
	if err := h.db.
		Where("coach_id = ?", coachID).
		Order("id ASC").
		Find(&packages).Error; err != nil {
		httperr.Internal(c, "failed_to_list_packages", "Could not list packages.")
		return
	}

	httpresp.List(c, packages)
}

func (h *PackageHandler) Create(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	var req PackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid package payload.")
		return
	}

	validity := req.ValidityDays
	if validity <= 0 {
		validity = 90
	}

	pkg := models.SessionPackage{
		CoachID:      coachID,
		Name:         req.Name,
		SessionCount: req.SessionCount,
		Price:        req.Price,
		ValidityDays: validity,
		Status:       "active",
	}

	if err := h.db.Create(&pkg).Error; err != nil {
		httperr.Internal(c, "failed_to_create_package", "Could not create package.")
		return
	}

	httpresp.Created(c, pkg)
}

func (h *PackageHandler) Deactivate(c *gin.Context) {
	coachID := c.MustGet(middleware.ContextUserID).(uint)

	packageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_package_id", "Invalid package id.")
		return
	}

	var pkg models.SessionPackage
	if err := h.db.
		Where("id = ? AND coach_id = ?", packageID, coachID).
		First(&pkg).Error; err != nil {
		httperr.NotFound(c, "package_not_found", "Package not found")
		return
	}

	pkg.Status = "inactive"
	if err := h.db.Save(&pkg).Error; err != nil {
		httperr.Internal(c, "failed_to_update_package", "Could not update package.")
		return
	}

	httpresp.OK(c, pkg)
}

// ======================================================
// USER SIDE
// ======================================================

func (h *PackageHandler) ListForCoach(c *gin.Context) {
	coachID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_coach_id", "Invalid coach id.")
		return
	}

	var packages []models.SessionPackage
	if err := h.db.
		Where("coach_id = ? AND status = 'active'", coachID).
		Order("id ASC").
		Find(&packages).Error; err != nil {
		httperr.Internal(c, "failed_to_list_packages", "Could not list packages.")
		return
	}

	httpresp.List(c, packages)
}

// Purchase records a prepaid purchase; payment settlement itself happens
// off-platform.
func (h *PackageHandler) Purchase(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	packageID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_package_id", "Invalid package id.")
		return
	}

	var pkg models.SessionPackage
	if err := h.db.
		Where("id = ? AND status = 'active'", packageID).
		First(&pkg).Error; err != nil {
		httperr.NotFound(c, "package_not_found", "Package not found")
		return
	}

	now := time.Now()
	purchase := models.PackagePurchase{
		UserID:       userID,
		PackageID:    pkg.ID,
		PurchaseDate: now,
		SessionsUsed: 0,
		ExpiryDate:   now.AddDate(0, 0, pkg.ValidityDays),
	}

	if err := h.db.Create(&purchase).Error; err != nil {
		httperr.Internal(c, "failed_to_create_purchase", "Could not record purchase.")
		return
	}

	httpresp.Created(c, purchase)
}

func (h *PackageHandler) ListMyPurchases(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var purchases []models.PackagePurchase
	if err := h.db.
		Where("user_id = ?", userID).
		Order("purchase_date DESC").
		Find(&purchases).Error; err != nil {
		httperr.Internal(c, "failed_to_list_purchases", "Could not list purchases.")
		return
	}

	httpresp.List(c, purchases)
}
