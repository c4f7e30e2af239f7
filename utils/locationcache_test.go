package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/n4en/dil2deal/models"
)

func TestLocationCacheDistricts(t *testing.T) {
	cache := NewLocationCache()

	_, ok := cache.GetDistricts("state-1")
	assert.False(t, ok)

	districts := []models.District{{ID: "d-1", Name: "Mumbai", StateID: "state-1"}}
	cache.SetDistricts("state-1", districts)

	got, ok := cache.GetDistricts("state-1")
	assert.True(t, ok)
	assert.Equal(t, districts, got)

	// Other parent ids stay independent
	_, ok = cache.GetDistricts("state-2")
	assert.False(t, ok)
}

func TestLocationCachePlaces(t *testing.T) {
	cache := NewLocationCache()

	places := []models.Place{{ID: "p-1", Name: "Andheri", DistrictID: "d-1"}}
	cache.SetPlaces("d-1", places)

	got, ok := cache.GetPlaces("d-1")
	assert.True(t, ok)
	assert.Equal(t, places, got)
}

func TestLocationCacheCachesEmptyLists(t *testing.T) {
	cache := NewLocationCache()

	// An empty list is a valid cached value, not a miss
	cache.SetDistricts("state-1", []models.District{})
	got, ok := cache.GetDistricts("state-1")
	assert.True(t, ok)
	assert.Empty(t, got)
}

func TestLocationCacheReset(t *testing.T) {
	cache := NewLocationCache()
	cache.SetDistricts("state-1", []models.District{{ID: "d-1"}})
	cache.SetPlaces("d-1", []models.Place{{ID: "p-1"}})

	cache.Reset()

	_, ok := cache.GetDistricts("state-1")
	assert.False(t, ok)
	_, ok = cache.GetPlaces("d-1")
	assert.False(t, ok)
}
