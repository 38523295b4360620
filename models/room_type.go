package models

import (
	"strings"
	"time"
)

const (
	maxRoomTypeNameLen        = 100
	maxRoomTypeDescriptionLen = 500
	maxBedTypeLen             = 50
	maxViewTypeLen            = 50
)

// RoomType is a bookable room category. It cannot exist without an owning
// hotel; the reference check lives at the storage boundary, not here.
type RoomType struct {
	Entity
	HotelID        uint    `gorm:"not null;index" json:"hotelId"`
	Name           string  `gorm:"size:100;not null" json:"name"`
	Description    string  `gorm:"size:500" json:"description"`
	MaxOccupancy   int     `gorm:"not null" json:"maxOccupancy"`
	BasePrice      float64 `gorm:"type:decimal(10,2);not null" json:"basePrice"`
	Size           float64 `gorm:"type:decimal(8,2)" json:"size"`
	BedType        string  `gorm:"size:50" json:"bedType"`
	ViewType       string  `gorm:"size:50" json:"viewType"`
	HasBalcony     bool    `gorm:"not null;default:false" json:"hasBalcony"`
	HasKitchen     bool    `gorm:"not null;default:false" json:"hasKitchen"`
	SmokingAllowed bool    `gorm:"not null;default:false" json:"smokingAllowed"`
}

func NewRoomType(hotelID uint, name, description string, maxOccupancy int, basePrice, size float64) (*RoomType, error) {
	if hotelID == 0 {
		return nil, NewValidationError("hotel id required")
	}
	if err := validateRoomTypeName(name); err != nil {
		return nil, err
	}
	if err := validateOccupancy(maxOccupancy); err != nil {
		return nil, err
	}
	if err := validateBasePrice(basePrice); err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, NewValidationError("size cannot be negative")
	}
	if len(description) > maxRoomTypeDescriptionLen {
		return nil, NewValidationError("description must be at most %d characters", maxRoomTypeDescriptionLen)
	}
	return &RoomType{
		Entity:       Entity{CreatedAt: time.Now()},
		HotelID:      hotelID,
		Name:         name,
		Description:  description,
		MaxOccupancy: maxOccupancy,
		BasePrice:    basePrice,
		Size:         size,
	}, nil
}

func (rt *RoomType) UpdateDetails(name, description string, maxOccupancy int, basePrice float64) error {
	if err := validateRoomTypeName(name); err != nil {
		return err
	}
	if err := validateOccupancy(maxOccupancy); err != nil {
		return err
	}
	if err := validateBasePrice(basePrice); err != nil {
		return err
	}
	if len(description) > maxRoomTypeDescriptionLen {
		return NewValidationError("description must be at most %d characters", maxRoomTypeDescriptionLen)
	}
	rt.Name = name
	rt.Description = description
	rt.MaxOccupancy = maxOccupancy
	rt.BasePrice = basePrice
	rt.Touch()
	return nil
}

func (rt *RoomType) UpdatePrice(basePrice float64) error {
	if err := validateBasePrice(basePrice); err != nil {
		return err
	}
	rt.BasePrice = basePrice
	rt.Touch()
	return nil
}

// UpdateFeatures needs no validation; booleans cannot be invalid.
func (rt *RoomType) UpdateFeatures(hasBalcony, hasKitchen, smokingAllowed bool) {
	rt.HasBalcony = hasBalcony
	rt.HasKitchen = hasKitchen
	rt.SmokingAllowed = smokingAllowed
	rt.Touch()
}

// SetBedding updates the descriptive bed/view fields.
func (rt *RoomType) SetBedding(bedType, viewType string) error {
	if len(bedType) > maxBedTypeLen {
		return NewValidationError("bed type must be at most %d characters", maxBedTypeLen)
	}
	if len(viewType) > maxViewTypeLen {
		return NewValidationError("view type must be at most %d characters", maxViewTypeLen)
	}
	rt.BedType = bedType
	rt.ViewType = viewType
	rt.Touch()
	return nil
}

func validateRoomTypeName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name required")
	}
	if len(name) > maxRoomTypeNameLen {
		return NewValidationError("name must be at most %d characters", maxRoomTypeNameLen)
	}
	return nil
}

func validateOccupancy(maxOccupancy int) error {
	if maxOccupancy <= 0 {
		return NewValidationError("max occupancy must be positive")
	}
	return nil
}

func validateBasePrice(basePrice float64) error {
	if basePrice < 0 {
		return NewValidationError("base price cannot be negative")
	}
	return nil
}
