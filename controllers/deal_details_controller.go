package controllers

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/n4en/dil2deal/config"
	"github.com/n4en/dil2deal/models"
	"github.com/n4en/dil2deal/utils"
)

// GetDealByID handles fetching a single deal with its full nested
// category, location chain, vendor, and reviews.
func GetDealByID(c *gin.Context) {
	utils.LogInfo("GetDealByID called")

	dealID := c.Param("id")
	utils.LogDebug("Fetching deal ID: %s", dealID)

	var deal models.Deal
	err := config.DB.
		Preload("Category").
		Preload("Place.District.State").
		Preload("Vendor").
		Preload("Reviews").
		First(&deal, "id = ?", dealID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogError("Deal not found: %s", dealID)
			utils.NotFound(c, "Deal not found")
			return
		}
		utils.LogError("Failed to fetch deal %s: %v", dealID, err)
		utils.InternalServerError(c, "Failed to fetch deal")
		return
	}

	// Detail views must always be fresh; the service worker bypasses its
	// cache for this route and these headers keep intermediaries honest.
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
	c.Header("ETag", fmt.Sprintf("\"deal-%s-%d\"", deal.ID, deal.CreatedAt.UnixMilli()))
	c.Header("Vary", "Accept-Encoding")

	utils.LogInfo("Successfully fetched deal %s with %d reviews", deal.ID, len(deal.Reviews))
	utils.OK(c, deal)
}
