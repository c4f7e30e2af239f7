package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category represents a deal category. IDs are human-readable slugs
// (e.g. "food") so they can double as stable filter values.
type Category struct {
	ID    string `json:"id" gorm:"primaryKey;size:64"`
	Name  string `json:"name" gorm:"not null"`
	Icon  string `json:"icon"`
	Deals []Deal `json:"deals,omitempty" gorm:"foreignKey:CategoryID"`
}

// State is the top level of the location hierarchy
type State struct {
	ID        string     `json:"id" gorm:"primaryKey;size:36"`
	Name      string     `json:"name" gorm:"uniqueIndex;not null"`
	Districts []District `json:"districts,omitempty" gorm:"foreignKey:StateID"`
	CreatedAt time.Time  `json:"createdAt"`
}

// District belongs to a State; names are unique within a state
type District struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null;uniqueIndex:idx_district_name_state"`
	StateID   string    `json:"stateId" gorm:"size:36;not null;uniqueIndex:idx_district_name_state"`
	State     *State    `json:"state,omitempty" gorm:"foreignKey:StateID"`
	Places    []Place   `json:"places,omitempty" gorm:"foreignKey:DistrictID"`
	CreatedAt time.Time `json:"createdAt"`
}

// Place belongs to a District; names are unique within a district
type Place struct {
	ID         string    `json:"id" gorm:"primaryKey;size:36"`
	Name       string    `json:"name" gorm:"not null;uniqueIndex:idx_place_name_district"`
	DistrictID string    `json:"districtId" gorm:"size:36;not null;uniqueIndex:idx_place_name_district"`
	District   *District `json:"district,omitempty" gorm:"foreignKey:DistrictID"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Vendor is a business that publishes deals, identified by email
type Vendor struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	Name      string    `json:"name" gorm:"not null"`
	Address   string    `json:"address"`
	Phone     string    `json:"phone"`
	Email     string    `json:"email" gorm:"uniqueIndex;not null"`
	Deals     []Deal    `json:"deals,omitempty" gorm:"foreignKey:VendorID"`
	CreatedAt time.Time `json:"createdAt"`
}

// Deal is a time-bound discount offer tied to a category, a place and a vendor
type Deal struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	Name        string    `json:"name" gorm:"not null"`
	Description string    `json:"description"`
	Discount    string    `json:"discount"`
	StartDate   time.Time `json:"startDate"`
	EndDate     time.Time `json:"endDate"`
	IsActive    bool      `json:"isActive" gorm:"default:true"`
	CategoryID  string    `json:"categoryId" gorm:"size:64;not null;index"`
	Category    Category  `json:"category" gorm:"foreignKey:CategoryID"`
	PlaceID     string    `json:"placeId" gorm:"size:36;not null;index"`
	Place       Place     `json:"place" gorm:"foreignKey:PlaceID"`
	VendorID    string    `json:"vendorId" gorm:"size:36;not null;index"`
	Vendor      Vendor    `json:"vendor" gorm:"foreignKey:VendorID"`
	Reviews     []Review  `json:"reviews" gorm:"foreignKey:DealID"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Review is a consumer rating attached to a deal. The user is a free-text
// display name, not an account reference.
type Review struct {
	ID        string    `json:"id" gorm:"primaryKey;size:36"`
	User      string    `json:"user" gorm:"not null"`
	Rating    int       `json:"rating" gorm:"check:rating >= 1 AND rating <= 5"`
	Comment   string    `json:"comment"`
	DealID    string    `json:"dealId" gorm:"size:36;not null;index"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s *State) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

func (d *District) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

func (p *Place) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == "" {
		v.ID = uuid.NewString()
	}
	return nil
}

func (d *Deal) BeforeCreate(tx *gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
