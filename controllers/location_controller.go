package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/n4en/dil2deal/config"
	"github.com/n4en/dil2deal/models"
	"github.com/n4en/dil2deal/utils"
)

// GetStates handles listing all states
func GetStates(c *gin.Context) {
	utils.LogInfo("GetStates called")

	var states []models.State
	if err := config.DB.Order("name asc").Find(&states).Error; err != nil {
		utils.LogError("Failed to fetch states: %v", err)
		utils.InternalServerError(c, "Failed to fetch states")
		return
	}

	utils.LogDebug("Found %d states", len(states))
	utils.OK(c, states)
}

// GetDistricts handles listing the districts of a state. District lists
// are cached per state id since the hierarchy never changes at runtime.
func GetDistricts(c *gin.Context) {
	utils.LogInfo("GetDistricts called")

	stateID := c.Query("stateId")
	if stateID == "" {
		utils.LogError("Missing stateId in districts request")
		utils.BadRequest(c, "Missing stateId")
		return
	}

	if districts, ok := utils.Locations.GetDistricts(stateID); ok {
		utils.LogDebug("Serving %d districts for state %s from cache", len(districts), stateID)
		utils.OK(c, districts)
		return
	}

	var districts []models.District
	if err := config.DB.Where("state_id = ?", stateID).Order("name asc").Find(&districts).Error; err != nil {
		utils.LogError("Failed to fetch districts for state %s: %v", stateID, err)
		utils.InternalServerError(c, "Failed to fetch districts")
		return
	}

	utils.Locations.SetDistricts(stateID, districts)
	utils.LogDebug("Found %d districts for state %s", len(districts), stateID)
	utils.OK(c, districts)
}

// GetPlaces handles listing the places of a district
func GetPlaces(c *gin.Context) {
	utils.LogInfo("GetPlaces called")

	districtID := c.Query("districtId")
	if districtID == "" {
		utils.LogError("Missing districtId in places request")
		utils.BadRequest(c, "Missing districtId")
		return
	}

	if places, ok := utils.Locations.GetPlaces(districtID); ok {
		utils.LogDebug("Serving %d places for district %s from cache", len(places), districtID)
		utils.OK(c, places)
		return
	}

	var places []models.Place
	if err := config.DB.Where("district_id = ?", districtID).Order("name asc").Find(&places).Error; err != nil {
		utils.LogError("Failed to fetch places for district %s: %v", districtID, err)
		utils.InternalServerError(c, "Failed to fetch places")
		return
	}

	utils.Locations.SetPlaces(districtID, places)
	utils.LogDebug("Found %d places for district %s", len(places), districtID)
	utils.OK(c, places)
}

// GetLocationTree handles listing the full state/district/place hierarchy
func GetLocationTree(c *gin.Context) {
	utils.LogInfo("GetLocationTree called")

	var states []models.State
	if err := config.DB.Preload("Districts.Places").Order("name asc").Find(&states).Error; err != nil {
		utils.LogError("Failed to fetch location tree: %v", err)
		utils.InternalServerError(c, "Failed to fetch locations")
		return
	}

	utils.LogDebug("Location tree contains %d states", len(states))
	utils.OK(c, states)
}
