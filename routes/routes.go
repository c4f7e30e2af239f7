package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/n4en/dil2deal/controllers"
	"github.com/n4en/dil2deal/utils"
)

// SetupRouter initializes and returns the Gin router with all routes
func SetupRouter() *gin.Engine {
	router := gin.New()

	router.Use(utils.LoggerMiddleware())
	router.Use(utils.CORSMiddleware())
	router.Use(utils.RecoveryMiddleware())
	router.Use(utils.RequestIDMiddleware())

	// The offline cache worker is a plain browser asset
	router.StaticFile("/sw.js", "./static/sw.js")

	api := router.Group("/api")
	{
		api.GET("/categories", controllers.GetCategories)

		locations := api.Group("/locations")
		{
			locations.GET("", controllers.GetLocationTree)
			locations.GET("/states", controllers.GetStates)
			locations.GET("/districts", controllers.GetDistricts)
			locations.GET("/places", controllers.GetPlaces)
		}

		api.GET("/deals", controllers.GetDeals)
		api.GET("/deals/:id", controllers.GetDealByID)
		api.POST("/deals", controllers.CreateDeal)

		api.POST("/reviews", controllers.CreateReview)

		admin := api.Group("/admin")
		{
			admin.GET("/reports/deals/excel", controllers.DownloadDealsReportExcel)
			admin.GET("/reports/deals/pdf", controllers.DownloadDealsReportPDF)
		}
	}

	return router
}
