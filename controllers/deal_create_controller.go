package controllers

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/n4en/dil2deal/config"
	"github.com/n4en/dil2deal/models"
	"github.com/n4en/dil2deal/utils"
)

// DealVendorRequest represents the vendor block of a deal submission
type DealVendorRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CreateDealRequest represents the request body for publishing a deal
type CreateDealRequest struct {
	Name        string            `json:"name" binding:"required"`
	Description string            `json:"description"`
	Discount    string            `json:"discount" binding:"required"`
	StartDate   string            `json:"startDate" binding:"required"`
	EndDate     string            `json:"endDate" binding:"required"`
	CategoryID  string            `json:"categoryId" binding:"required"`
	PlaceID     string            `json:"placeId" binding:"required"`
	Vendor      DealVendorRequest `json:"vendor" binding:"required"`
}

// CreateDeal handles publishing a new deal. The vendor is resolved by
// email (find-or-create, existing vendor data is not refreshed) and both
// writes share one transaction so a failed deal insert leaves no orphan
// vendor row.
func CreateDeal(c *gin.Context) {
	utils.LogInfo("CreateDeal called")

	var req CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid deal request format: %v", err)
		utils.BadRequest(c, "Invalid request")
		return
	}
	utils.LogInfo("Processing deal submission: %s by vendor %s", req.Name, req.Vendor.Email)

	startDate, endDate, appErr := validateDealRequest(req)
	if appErr != nil {
		utils.LogError("Deal submission rejected: %v", appErr)
		utils.Error(c, appErr.Code, appErr.Message)
		return
	}

	// Start a transaction covering vendor resolution and the deal insert
	var err error
	tx := config.DB.Begin()
	if tx.Error != nil {
		utils.LogError("Failed to start transaction: %v", tx.Error)
		utils.InternalServerError(c, "Failed to create deal")
		return
	}

	var vendor models.Vendor
	err = tx.Where("email = ?", req.Vendor.Email).First(&vendor).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		vendor = models.Vendor{
			Name:    req.Vendor.Name,
			Email:   req.Vendor.Email,
			Phone:   req.Vendor.Phone,
			Address: req.Vendor.Address,
		}
		if err := tx.Create(&vendor).Error; err != nil {
			tx.Rollback()
			// Two first-time publishes for the same email can race here;
			// the unique index on vendor email makes the loser fail fast.
			utils.LogError("Failed to create vendor %s: %v", req.Vendor.Email, err)
			utils.InternalServerError(c, "Failed to create deal")
			return
		}
		utils.LogDebug("Created new vendor %s for email %s", vendor.ID, vendor.Email)
	} else if err != nil {
		tx.Rollback()
		utils.LogError("Failed to look up vendor %s: %v", req.Vendor.Email, err)
		utils.InternalServerError(c, "Failed to create deal")
		return
	} else {
		utils.LogDebug("Reusing existing vendor %s for email %s", vendor.ID, vendor.Email)
	}

	deal := models.Deal{
		Name:        req.Name,
		Description: req.Description,
		Discount:    req.Discount,
		StartDate:   startDate,
		EndDate:     endDate,
		IsActive:    true,
		CategoryID:  req.CategoryID,
		PlaceID:     req.PlaceID,
		VendorID:    vendor.ID,
	}
	if err := tx.Create(&deal).Error; err != nil {
		tx.Rollback()
		utils.LogError("Failed to create deal: %v", err)
		utils.InternalServerError(c, "Failed to create deal")
		return
	}

	if err := tx.Commit().Error; err != nil {
		utils.LogError("Failed to commit deal transaction: %v", err)
		utils.InternalServerError(c, "Failed to create deal")
		return
	}

	// Reload with the full nested shape the client renders
	var created models.Deal
	err = config.DB.
		Preload("Category").
		Preload("Place.District.State").
		Preload("Vendor").
		Preload("Reviews").
		First(&created, "id = ?", deal.ID).Error
	if err != nil {
		utils.LogError("Failed to reload created deal %s: %v", deal.ID, err)
		utils.InternalServerError(c, "Failed to create deal")
		return
	}

	utils.LogInfo("Successfully created deal %s for vendor %s", created.ID, vendor.ID)
	utils.Created(c, created)
}

// validateDealRequest checks vendor contact fields and the deal date
// window, returning the parsed dates.
func validateDealRequest(req CreateDealRequest) (time.Time, time.Time, *utils.AppError) {
	if !utils.IsValidEmail(req.Vendor.Email) {
		return time.Time{}, time.Time{}, utils.BadRequestError("Invalid vendor email", nil)
	}
	if req.Vendor.Phone != "" && !utils.IsValidPhone(req.Vendor.Phone) {
		return time.Time{}, time.Time{}, utils.BadRequestError("Invalid vendor phone", nil)
	}

	startDate, err := parseDealDate(req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, utils.BadRequestError("Invalid startDate", err)
	}
	endDate, err := parseDealDate(req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, utils.BadRequestError("Invalid endDate", err)
	}
	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, utils.BadRequestError("endDate must not precede startDate", nil)
	}

	return startDate, endDate, nil
}

// parseDealDate accepts both full timestamps and bare dates from the
// publish form date pickers.
func parseDealDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
