package controllers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/n4en/dil2deal/config"
	"github.com/n4en/dil2deal/models"
	"github.com/n4en/dil2deal/utils"
)

// DealListRequest represents the request parameters for listing deals
type DealListRequest struct {
	Search      string `form:"search"`
	Category    string `form:"category"`
	StateID     string `form:"stateId"`
	DistrictID  string `form:"districtId"`
	PlaceID     string `form:"placeId"`
	ShowExpired bool   `form:"showExpired"`
}

// GetDeals handles listing deals with search, location filters, and pagination.
// Only the most specific location filter present is applied: placeId wins
// over districtId, which wins over stateId.
func GetDeals(c *gin.Context) {
	utils.LogInfo("GetDeals called with query params: %v", c.Request.URL.Query())

	req := DealListRequest{
		Search:      c.Query("search"),
		Category:    c.Query("category"),
		StateID:     c.Query("stateId"),
		DistrictID:  c.Query("districtId"),
		PlaceID:     c.Query("placeId"),
		ShowExpired: c.Query("showExpired") == "true",
	}

	pagination := utils.NewPagination(c, utils.DefaultDealPageSize)
	utils.LogDebug("Processed request parameters - Page: %d, Limit: %d, Search: %q, Category: %q",
		pagination.Page, pagination.Limit, req.Search, req.Category)

	query := buildDealFilter(config.DB, req)

	// Get total count for pagination
	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.LogError("Failed to count deals: %v", err)
		utils.InternalServerError(c, "Failed to fetch deals")
		return
	}
	pagination.SetTotal(total)
	utils.LogDebug("Total deals count: %d", total)

	deals := []models.Deal{}
	err := query.
		Order("deals.is_active DESC").
		Order("deals.created_at DESC").
		Offset(pagination.Offset).
		Limit(pagination.Limit).
		Preload("Category").
		Preload("Place.District.State").
		Preload("Vendor").
		Preload("Reviews").
		Find(&deals).Error
	if err != nil {
		utils.LogError("Failed to fetch deals: %v", err)
		utils.InternalServerError(c, "Failed to fetch deals")
		return
	}

	utils.LogInfo("Successfully fetched %d deals (page %d of %d)",
		len(deals), pagination.Page, pagination.TotalPages())
	utils.OK(c, gin.H{
		"deals":      deals,
		"pagination": pagination.Meta(),
	})
}

// buildDealFilter translates the flat filter parameters into a single
// deals query. Search matches case-insensitively against deal name,
// description, and vendor name.
func buildDealFilter(db *gorm.DB, req DealListRequest) *gorm.DB {
	query := db.Model(&models.Deal{})

	if !req.ShowExpired {
		query = query.Where("deals.is_active = ? AND deals.end_date >= ?", true, time.Now())
	}

	if req.Search != "" {
		term := "%" + strings.ToLower(req.Search) + "%"
		utils.LogDebug("Filtering by search term: %s", req.Search)
		query = query.
			Joins("JOIN vendors ON vendors.id = deals.vendor_id").
			Where("LOWER(deals.name) LIKE ? OR LOWER(deals.description) LIKE ? OR LOWER(vendors.name) LIKE ?",
				term, term, term)
	}

	if req.Category != "" {
		utils.LogDebug("Filtering by category: %s", req.Category)
		query = query.Where("deals.category_id = ?", req.Category)
	}

	// Location precedence: the most specific id present wins
	switch {
	case req.PlaceID != "":
		utils.LogDebug("Filtering by placeId: %s", req.PlaceID)
		query = query.Where("deals.place_id = ?", req.PlaceID)
	case req.DistrictID != "":
		utils.LogDebug("Filtering by districtId: %s", req.DistrictID)
		query = query.
			Joins("JOIN places ON places.id = deals.place_id").
			Where("places.district_id = ?", req.DistrictID)
	case req.StateID != "":
		utils.LogDebug("Filtering by stateId: %s", req.StateID)
		query = query.
			Joins("JOIN places ON places.id = deals.place_id").
			Joins("JOIN districts ON districts.id = places.district_id").
			Where("districts.state_id = ?", req.StateID)
	}

	return query
}
