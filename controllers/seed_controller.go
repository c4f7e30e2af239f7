package controllers

import (
	"fmt"
	"time"

	"github.com/n4en/dil2deal/config"
	"github.com/n4en/dil2deal/models"
	"github.com/n4en/dil2deal/utils"
)

type seedDistrict struct {
	name   string
	places []string
}

type seedState struct {
	name      string
	districts []seedDistrict
}

var seedCategories = []models.Category{
	{ID: "food", Name: "Food & Dining", Icon: "🍽️"},
	{ID: "shopping", Name: "Shopping", Icon: "🛍️"},
	{ID: "services", Name: "Services", Icon: "🔧"},
	{ID: "entertainment", Name: "Entertainment", Icon: "🎬"},
	{ID: "health", Name: "Health & Wellness", Icon: "💊"},
	{ID: "beauty", Name: "Beauty & Spa", Icon: "💄"},
	{ID: "fitness", Name: "Fitness", Icon: "💪"},
	{ID: "automotive", Name: "Automotive", Icon: "🚗"},
}

var seedStates = []seedState{
	{
		name: "Maharashtra",
		districts: []seedDistrict{
			{name: "Mumbai", places: []string{"Andheri", "Borivali", "Dadar"}},
			{name: "Pune", places: []string{"Shivajinagar", "Kothrud", "Hinjewadi"}},
		},
	},
	{
		name: "Karnataka",
		districts: []seedDistrict{
			{name: "Bengaluru", places: []string{"Indiranagar", "Whitefield", "Koramangala"}},
			{name: "Mysuru", places: []string{"VV Mohalla", "Gokulam"}},
		},
	},
	{
		name: "Delhi",
		districts: []seedDistrict{
			{name: "New Delhi", places: []string{"Connaught Place", "Karol Bagh"}},
			{name: "South Delhi", places: []string{"Saket", "Hauz Khas"}},
		},
	},
	{
		name: "Andhra Pradesh",
		districts: []seedDistrict{
			{name: "Visakhapatnam", places: []string{"Gajuwaka", "MVP Colony", "Dwaraka Nagar"}},
			{name: "Vijayawada", places: []string{"Benz Circle", "Governorpet", "Labbipet"}},
			{name: "Guntur", places: []string{"Brodipet", "Arundelpet", "Lakshmipuram"}},
		},
	},
}

// SeedReferenceData creates categories and the location hierarchy if
// they do not exist yet, plus a handful of demo vendors and deals on a
// completely empty database. Safe to run on every startup.
func SeedReferenceData() error {
	utils.LogInfo("SeedReferenceData called")

	for _, cat := range seedCategories {
		category := models.Category{ID: cat.ID}
		if err := config.DB.Where(models.Category{ID: cat.ID}).
			Attrs(models.Category{Name: cat.Name, Icon: cat.Icon}).
			FirstOrCreate(&category).Error; err != nil {
			return fmt.Errorf("failed to seed category %s: %w", cat.ID, err)
		}
	}
	utils.LogDebug("Seeded %d categories", len(seedCategories))

	for _, s := range seedStates {
		state := models.State{Name: s.name}
		if err := config.DB.Where(models.State{Name: s.name}).FirstOrCreate(&state).Error; err != nil {
			return fmt.Errorf("failed to seed state %s: %w", s.name, err)
		}
		for _, d := range s.districts {
			district := models.District{Name: d.name, StateID: state.ID}
			if err := config.DB.Where(models.District{Name: d.name, StateID: state.ID}).FirstOrCreate(&district).Error; err != nil {
				return fmt.Errorf("failed to seed district %s: %w", d.name, err)
			}
			for _, p := range d.places {
				place := models.Place{Name: p, DistrictID: district.ID}
				if err := config.DB.Where(models.Place{Name: p, DistrictID: district.ID}).FirstOrCreate(&place).Error; err != nil {
					return fmt.Errorf("failed to seed place %s: %w", p, err)
				}
			}
		}
	}
	utils.LogDebug("Seeded location hierarchy with %d states", len(seedStates))

	// The cached district/place lists may predate a fresh seed
	utils.Locations.Reset()

	if err := seedDemoDeals(); err != nil {
		return err
	}

	utils.LogInfo("Reference data seeding complete")
	return nil
}

// seedDemoDeals inserts sample vendors, deals, and reviews, but only
// when no deals exist at all.
func seedDemoDeals() error {
	var dealCount int64
	if err := config.DB.Model(&models.Deal{}).Count(&dealCount).Error; err != nil {
		return fmt.Errorf("failed to count deals: %w", err)
	}
	if dealCount > 0 {
		utils.LogDebug("Skipping demo deals, %d deals already present", dealCount)
		return nil
	}

	now := time.Now()
	demos := []struct {
		vendor   models.Vendor
		deal     models.Deal
		state    string
		district string
		place    string
		review   models.Review
	}{
		{
			vendor: models.Vendor{
				Name:    "Mama Mia's Restaurant",
				Address: "123 Andheri, Mumbai, Maharashtra",
				Phone:   "9876543210",
				Email:   "info@mamamias.com",
			},
			deal: models.Deal{
				Name:        "50% Off Italian Dinner",
				Description: "Enjoy authentic Italian cuisine with 50% off your entire meal. Valid for dine-in only.",
				Discount:    "50%",
				StartDate:   now.AddDate(0, 0, -7),
				EndDate:     now.AddDate(0, 1, 0),
				IsActive:    true,
				CategoryID:  "food",
			},
			state: "Maharashtra", district: "Mumbai", place: "Andheri",
			review: models.Review{User: "John D.", Rating: 5, Comment: "Amazing food and great deal!"},
		},
		{
			vendor: models.Vendor{
				Name:    "Zen Spa & Wellness",
				Address: "456 Indiranagar, Bengaluru, Karnataka",
				Phone:   "9123456780",
				Email:   "bookings@zenspa.com",
			},
			deal: models.Deal{
				Name:        "Buy 1 Get 1 Free Massage",
				Description: "Relax and rejuvenate with our professional massage services. BOGO deal valid for 60-minute sessions.",
				Discount:    "BOGO",
				StartDate:   now.AddDate(0, 0, -14),
				EndDate:     now.AddDate(0, 2, 0),
				IsActive:    true,
				CategoryID:  "health",
			},
			state: "Karnataka", district: "Bengaluru", place: "Indiranagar",
			review: models.Review{User: "Emily R.", Rating: 5, Comment: "Very relaxing, professional staff."},
		},
		{
			vendor: models.Vendor{
				Name:    "TechHub Electronics",
				Address: "789 Connaught Place, New Delhi, Delhi",
				Phone:   "9988776655",
				Email:   "sales@techhub.com",
			},
			deal: models.Deal{
				Name:        "30% Off Electronics Store",
				Description: "Get 30% off on all electronics including smartphones, laptops, tablets, and accessories.",
				Discount:    "30%",
				StartDate:   now.AddDate(0, 0, -21),
				EndDate:     now.AddDate(0, 0, 10),
				IsActive:    true,
				CategoryID:  "shopping",
			},
			state: "Delhi", district: "New Delhi", place: "Connaught Place",
			review: models.Review{User: "Mike T.", Rating: 4, Comment: "Great prices and good selection."},
		},
	}

	for _, demo := range demos {
		vendor := demo.vendor
		if err := config.DB.Where(models.Vendor{Email: vendor.Email}).
			Attrs(models.Vendor{Name: vendor.Name, Address: vendor.Address, Phone: vendor.Phone}).
			FirstOrCreate(&vendor).Error; err != nil {
			return fmt.Errorf("failed to seed vendor %s: %w", demo.vendor.Email, err)
		}

		var place models.Place
		err := config.DB.
			Joins("JOIN districts ON districts.id = places.district_id").
			Joins("JOIN states ON states.id = districts.state_id").
			Where("places.name = ? AND districts.name = ? AND states.name = ?", demo.place, demo.district, demo.state).
			First(&place).Error
		if err != nil {
			return fmt.Errorf("failed to resolve seed place %s/%s/%s: %w", demo.state, demo.district, demo.place, err)
		}

		deal := demo.deal
		deal.PlaceID = place.ID
		deal.VendorID = vendor.ID
		if err := config.DB.Create(&deal).Error; err != nil {
			return fmt.Errorf("failed to seed deal %s: %w", deal.Name, err)
		}

		review := demo.review
		review.DealID = deal.ID
		if err := config.DB.Create(&review).Error; err != nil {
			return fmt.Errorf("failed to seed review for deal %s: %w", deal.Name, err)
		}
	}

	utils.LogInfo("Seeded %d demo deals", len(demos))
	return nil
}
