package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/n4en/dil2deal/config"
	"github.com/n4en/dil2deal/models"
)

func TestGetStatesOrderedByName(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	for _, name := range []string{"Maharashtra", "Delhi", "Karnataka"} {
		require.NoError(t, config.DB.Create(&models.State{Name: name}).Error)
	}

	w := performRequest(t, router, http.MethodGet, "/api/locations/states", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var states []models.State
	decodeJSON(t, w, &states)
	require.Len(t, states, 3)
	assert.Equal(t, "Delhi", states[0].Name)
	assert.Equal(t, "Karnataka", states[1].Name)
	assert.Equal(t, "Maharashtra", states[2].Name)
}

func TestGetDistrictsRequiresStateID(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	w := performRequest(t, router, http.MethodGet, "/api/locations/districts", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	decodeJSON(t, w, &body)
	assert.Equal(t, "Missing stateId", body["error"])
}

func TestGetDistrictsScopedToState(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	mh := models.State{Name: "Maharashtra"}
	require.NoError(t, config.DB.Create(&mh).Error)
	ka := models.State{Name: "Karnataka"}
	require.NoError(t, config.DB.Create(&ka).Error)

	require.NoError(t, config.DB.Create(&models.District{Name: "Mumbai", StateID: mh.ID}).Error)
	require.NoError(t, config.DB.Create(&models.District{Name: "Pune", StateID: mh.ID}).Error)
	require.NoError(t, config.DB.Create(&models.District{Name: "Bengaluru", StateID: ka.ID}).Error)

	w := performRequest(t, router, http.MethodGet, "/api/locations/districts?stateId="+mh.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var districts []models.District
	decodeJSON(t, w, &districts)
	require.Len(t, districts, 2)
	for _, district := range districts {
		assert.Equal(t, mh.ID, district.StateID)
	}
}

func TestGetDistrictsServedFromCache(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	mh := models.State{Name: "Maharashtra"}
	require.NoError(t, config.DB.Create(&mh).Error)
	require.NoError(t, config.DB.Create(&models.District{Name: "Mumbai", StateID: mh.ID}).Error)

	w := performRequest(t, router, http.MethodGet, "/api/locations/districts?stateId="+mh.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// A district inserted behind the cache's back must not appear;
	// the hierarchy is static after seeding so the list is cached as-is
	require.NoError(t, config.DB.Create(&models.District{Name: "Pune", StateID: mh.ID}).Error)

	w = performRequest(t, router, http.MethodGet, "/api/locations/districts?stateId="+mh.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var districts []models.District
	decodeJSON(t, w, &districts)
	assert.Len(t, districts, 1)
}

func TestGetPlacesRequiresDistrictID(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	w := performRequest(t, router, http.MethodGet, "/api/locations/places", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var body map[string]string
	decodeJSON(t, w, &body)
	assert.Equal(t, "Missing districtId", body["error"])
}

func TestGetPlacesScopedToDistrict(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	f := seedFixture(t)

	other := models.District{Name: "Pune", StateID: f.State.ID}
	require.NoError(t, config.DB.Create(&other).Error)
	require.NoError(t, config.DB.Create(&models.Place{Name: "Kothrud", DistrictID: other.ID}).Error)

	w := performRequest(t, router, http.MethodGet, "/api/locations/places?districtId="+f.District.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var places []models.Place
	decodeJSON(t, w, &places)
	require.Len(t, places, 1)
	for _, place := range places {
		assert.Equal(t, f.District.ID, place.DistrictID)
	}
}

func TestGetLocationTree(t *testing.T) {
	setupTestDB(t)
	router := newTestRouter()

	f := seedFixture(t)

	w := performRequest(t, router, http.MethodGet, "/api/locations", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var states []models.State
	decodeJSON(t, w, &states)
	require.Len(t, states, 1)
	require.Len(t, states[0].Districts, 1)
	assert.Equal(t, f.District.Name, states[0].Districts[0].Name)
	require.Len(t, states[0].Districts[0].Places, 1)
	assert.Equal(t, f.Place.Name, states[0].Districts[0].Places[0].Name)
}
