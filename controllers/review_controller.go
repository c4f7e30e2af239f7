package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/n4en/dil2deal/config"
	"github.com/n4en/dil2deal/models"
	"github.com/n4en/dil2deal/utils"
)

// CreateReviewRequest represents the request body for submitting a review
type CreateReviewRequest struct {
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
	DealID  string `json:"dealId"`
}

// CreateReview handles submitting a review against a deal. A rating of 0
// is rejected as out of range rather than as a missing field; the valid
// range is 1-5 inclusive.
func CreateReview(c *gin.Context) {
	utils.LogInfo("CreateReview called")

	var req CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid review request format: %v", err)
		utils.BadRequest(c, "Missing fields")
		return
	}

	if req.User == "" || req.Comment == "" || req.DealID == "" {
		utils.LogError("Review submission missing fields: user=%q comment-present=%t dealId=%q",
			req.User, req.Comment != "", req.DealID)
		utils.BadRequest(c, "Missing fields")
		return
	}
	if !utils.IsValidRating(req.Rating) {
		utils.LogError("Invalid review rating: %d", req.Rating)
		utils.BadRequest(c, "Rating must be between 1 and 5")
		return
	}

	review := models.Review{
		User:    utils.SanitizeString(req.User),
		Rating:  req.Rating,
		Comment: utils.SanitizeString(req.Comment),
		DealID:  req.DealID,
	}

	// Deal existence is not pre-checked; the foreign key on deal_id is
	// the backstop for dangling ids.
	if err := config.DB.Create(&review).Error; err != nil {
		utils.LogError("Failed to create review for deal %s: %v", req.DealID, err)
		utils.InternalServerError(c, "Failed to add review")
		return
	}

	utils.LogInfo("Successfully created review %s for deal %s", review.ID, review.DealID)
	utils.Created(c, review)
}
