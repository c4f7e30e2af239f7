package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/n4en/dil2deal/config"
	"github.com/n4en/dil2deal/models"
	"github.com/n4en/dil2deal/utils"
)

// setupTestDB points the shared database handle at a fresh in-memory
// sqlite database. A single connection keeps the :memory: database alive
// for the whole test.
func setupTestDB(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, config.Migrate(db))
	config.DB = db
	utils.Locations.Reset()
}

// newTestRouter builds a router with the same routes as routes.SetupRouter,
// minus the global middleware.
func newTestRouter() *gin.Engine {
	router := gin.New()

	api := router.Group("/api")
	{
		api.GET("/categories", GetCategories)

		locations := api.Group("/locations")
		{
			locations.GET("", GetLocationTree)
			locations.GET("/states", GetStates)
			locations.GET("/districts", GetDistricts)
			locations.GET("/places", GetPlaces)
		}

		api.GET("/deals", GetDeals)
		api.GET("/deals/:id", GetDealByID)
		api.POST("/deals", CreateDeal)

		api.POST("/reviews", CreateReview)

		admin := api.Group("/admin")
		{
			admin.GET("/reports/deals/excel", DownloadDealsReportExcel)
			admin.GET("/reports/deals/pdf", DownloadDealsReportPDF)
		}
	}

	return router
}

func performRequest(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody *bytes.Buffer
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewBuffer(data)
	} else {
		reqBody = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequest(method, path, reqBody)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

// testFixture holds the seeded chain used across tests: one category,
// one Maharashtra/Mumbai/Andheri location chain, one vendor, one active
// deal with a future end date.
type testFixture struct {
	Category models.Category
	State    models.State
	District models.District
	Place    models.Place
	Vendor   models.Vendor
	Deal     models.Deal
}

func seedFixture(t *testing.T) testFixture {
	t.Helper()

	f := testFixture{}

	f.Category = models.Category{ID: "food", Name: "Food & Dining", Icon: "🍽️"}
	require.NoError(t, config.DB.Create(&f.Category).Error)

	f.State = models.State{Name: "Maharashtra"}
	require.NoError(t, config.DB.Create(&f.State).Error)

	f.District = models.District{Name: "Mumbai", StateID: f.State.ID}
	require.NoError(t, config.DB.Create(&f.District).Error)

	f.Place = models.Place{Name: "Andheri", DistrictID: f.District.ID}
	require.NoError(t, config.DB.Create(&f.Place).Error)

	f.Vendor = models.Vendor{
		Name:    "Mama Mia's Restaurant",
		Address: "123 Andheri, Mumbai, Maharashtra",
		Phone:   "9876543210",
		Email:   "info@mamamias.com",
	}
	require.NoError(t, config.DB.Create(&f.Vendor).Error)

	f.Deal = models.Deal{
		Name:        "50% Off Italian Dinner",
		Description: "Enjoy authentic Italian cuisine with 50% off your entire meal.",
		Discount:    "50%",
		StartDate:   time.Now().AddDate(0, 0, -7),
		EndDate:     time.Now().AddDate(0, 1, 0),
		IsActive:    true,
		CategoryID:  f.Category.ID,
		PlaceID:     f.Place.ID,
		VendorID:    f.Vendor.ID,
	}
	require.NoError(t, config.DB.Create(&f.Deal).Error)

	return f
}

func createDeal(t *testing.T, name string, categoryID, placeID, vendorID string, isActive bool, endDate time.Time) models.Deal {
	t.Helper()

	deal := models.Deal{
		Name:       name,
		Discount:   "10%",
		StartDate:  time.Now().AddDate(0, 0, -1),
		EndDate:    endDate,
		IsActive:   isActive,
		CategoryID: categoryID,
		PlaceID:    placeID,
		VendorID:   vendorID,
	}
	require.NoError(t, config.DB.Create(&deal).Error)
	return deal
}

// dealListResponse mirrors the GET /api/deals response body
type dealListResponse struct {
	Deals      []models.Deal `json:"deals"`
	Pagination struct {
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		Total      int64 `json:"total"`
		TotalPages int64 `json:"totalPages"`
		HasNext    bool  `json:"hasNext"`
		HasPrev    bool  `json:"hasPrev"`
	} `json:"pagination"`
}
