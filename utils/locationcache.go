package utils

import (
	"sync"

	"github.com/n4en/dil2deal/models"
)

// LocationCache holds district and place lists keyed by their parent id.
// The location hierarchy is seeded once and effectively immutable, so
// entries are never evicted; Reset clears everything after a re-seed.
type LocationCache struct {
	mu        sync.RWMutex
	districts map[string][]models.District
	places    map[string][]models.Place
}

// NewLocationCache creates an empty LocationCache
func NewLocationCache() *LocationCache {
	return &LocationCache{
		districts: make(map[string][]models.District),
		places:    make(map[string][]models.Place),
	}
}

// Locations is the process-wide location list cache
var Locations = NewLocationCache()

// GetDistricts returns the cached district list for a state
func (c *LocationCache) GetDistricts(stateID string) ([]models.District, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	districts, ok := c.districts[stateID]
	return districts, ok
}

// SetDistricts caches the district list for a state
func (c *LocationCache) SetDistricts(stateID string, districts []models.District) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.districts[stateID] = districts
}

// GetPlaces returns the cached place list for a district
func (c *LocationCache) GetPlaces(districtID string) ([]models.Place, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	places, ok := c.places[districtID]
	return places, ok
}

// SetPlaces caches the place list for a district
func (c *LocationCache) SetPlaces(districtID string, places []models.Place) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.places[districtID] = places
}

// Reset drops all cached lists
func (c *LocationCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.districts = make(map[string][]models.District)
	c.places = make(map[string][]models.Place)
}
