package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n4en/dil2deal/models"
)

func TestGetDealByIDNotFound(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	seedFixture(t)

	w := performRequest(t, router, http.MethodGet, "/api/deals/no-such-deal", nil)
	require.Equal(t, http.StatusNotFound, w.Code)

	var body map[string]string
	decodeJSON(t, w, &body)
	assert.Equal(t, "Deal not found", body["error"])
}

func TestGetDealByIDReturnsNestedShape(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()
	f := seedFixture(t)

	w := performRequest(t, router, http.MethodGet, "/api/deals/"+f.Deal.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var deal models.Deal
	decodeJSON(t, w, &deal)
	assert.Equal(t, f.Deal.ID, deal.ID)
	assert.Equal(t, f.Category.Name, deal.Category.Name)
	assert.Equal(t, f.Vendor.Email, deal.Vendor.Email)
	require.NotNil(t, deal.Place.District)
	require.NotNil(t, deal.Place.District.State)
	assert.Equal(t, f.State.Name, deal.Place.District.State.Name)

	// Detail responses are explicitly uncacheable
	assert.Equal(t, "no-cache, no-store, must-revalidate", w.Header().Get("Cache-Control"))
	assert.Contains(t, w.Header().Get("ETag"), "deal-"+f.Deal.ID)
}
