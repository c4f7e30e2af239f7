package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/n4en/dil2deal/config"
	"github.com/n4en/dil2deal/models"
	"github.com/n4en/dil2deal/utils"
)

// GetCategories handles listing all deal categories. Categories are
// static reference data, so the response carries long-lived cache headers.
func GetCategories(c *gin.Context) {
	utils.LogInfo("GetCategories called")

	var categories []models.Category
	if err := config.DB.Order("name asc").Find(&categories).Error; err != nil {
		utils.LogError("Failed to fetch categories: %v", err)
		utils.InternalServerError(c, "Failed to fetch categories")
		return
	}

	utils.LogDebug("Found %d categories", len(categories))

	c.Header("Cache-Control", fmt.Sprintf("public, max-age=%d, s-maxage=%d",
		utils.CategoryCacheMaxAge, utils.CategoryCacheSharedMaxAge))
	c.Header("ETag", "categories-all")
	utils.OK(c, categories)
}
