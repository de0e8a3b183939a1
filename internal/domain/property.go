package domain

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PropertyType is the fixed category of a listed property.
type PropertyType string

const (
	TypeHouse     PropertyType = "House"
	TypeApartment PropertyType = "Apartment"
	TypeStudio    PropertyType = "Studio"
	TypeVilla     PropertyType = "Villa"

	// TypeAll is the filter wildcard; it is never stored on a property.
	TypeAll PropertyType = "All"
)

// PropertyTypes lists the storable categories in display order.
var PropertyTypes = []PropertyType{TypeApartment, TypeHouse, TypeStudio, TypeVilla}

// IsValid reports whether t is one of the storable categories.
func (t PropertyType) IsValid() bool {
	for _, v := range PropertyTypes {
		if v == t {
			return true
		}
	}
	return false
}

// Property is one listed property. Records are never updated in place; the
// collection only grows by prepending new listings.
type Property struct {
	ID          string                      `gorm:"column:id;primaryKey" json:"id"`
	Title       string                      `gorm:"column:title;not null" json:"title"`
	Price       float64                     `gorm:"column:price;type:decimal(14,2);not null" json:"price"`
	Address     string                      `gorm:"column:address;not null" json:"address"`
	City        string                      `gorm:"column:city;not null;index" json:"city"`
	Type        PropertyType                `gorm:"column:type;type:varchar(20);not null" json:"type"`
	Bedrooms    int                         `gorm:"column:bedrooms;not null" json:"bedrooms"`
	Bathrooms   int                         `gorm:"column:bathrooms;not null" json:"bathrooms"`
	Area        float64                     `gorm:"column:area;not null" json:"area"`
	Description string                      `gorm:"column:description;type:text" json:"description"`
	Images      datatypes.JSONSlice[string] `gorm:"column:images" json:"images"`
	SellerName  string                      `gorm:"column:seller_name;not null" json:"seller_name"`
	SellerPhone string                      `gorm:"column:seller_phone;not null" json:"seller_phone"`
	ListedAt    time.Time                   `gorm:"column:listed_at;not null;index" json:"listed_at"`
	IsPremium   bool                        `gorm:"column:is_premium;not null;default:false" json:"is_premium"`
}

func (Property) TableName() string {
	return "properties"
}

// BeforeCreate sets id if not already set.
func (p *Property) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = NewPropertyID()
	}
	return nil
}

// NewPropertyID returns a fresh listing identifier.
func NewPropertyID() string {
	return uuid.NewString()
}
