package models

import (
	"encoding/json"
	"net/mail"
	"strings"
	"time"

	"gorm.io/datatypes"
)

const (
	maxHotelNameLen        = 200
	maxHotelDescriptionLen = 1000
	maxCityLen             = 100
	maxCountryLen          = 100
)

// Hotel is the aggregate root of the catalog. It owns its RoomTypes; the FK
// is declared RESTRICT so a hotel with room types can never be hard-deleted.
//
// Application code must go through NewHotel and the Update* methods so the
// invariants (non-empty name/city/country, valid rating and status) cannot be
// bypassed. gorm rehydrates rows into the struct directly, trusting storage.
type Hotel struct {
	Entity
	Name        string         `gorm:"size:200;not null" json:"name"`
	Description string         `gorm:"size:1000" json:"description"`
	StarRating  int            `gorm:"not null" json:"starRating"`
	Status      HotelStatus    `gorm:"not null;default:1" json:"status"`
	Street      string         `gorm:"size:200" json:"street"`
	City        string         `gorm:"size:100;not null;index" json:"city"`
	State       string         `gorm:"size:100" json:"state"`
	Country     string         `gorm:"size:100;not null;index" json:"country"`
	ZipCode     string         `gorm:"size:20" json:"zipCode"`
	Email       string         `gorm:"size:150" json:"email"`
	Phone       string         `gorm:"size:50" json:"phone"`
	Website     string         `gorm:"size:255" json:"website"`
	Amenities   datatypes.JSON `json:"amenities,omitempty"`
	RoomTypes   []RoomType     `gorm:"foreignKey:HotelID;constraint:OnDelete:RESTRICT" json:"roomTypes,omitempty"`
}

// NewHotel validates and builds a hotel. Address and contact fields default to
// empty, status defaults to Active. The identifier is assigned by storage.
func NewHotel(name, description string, starRating int, city, country string) (*Hotel, error) {
	if err := validateHotelName(name); err != nil {
		return nil, err
	}
	if err := validateCity(city); err != nil {
		return nil, err
	}
	if err := validateCountry(country); err != nil {
		return nil, err
	}
	if err := validateStarRating(starRating); err != nil {
		return nil, err
	}
	if len(description) > maxHotelDescriptionLen {
		return nil, NewValidationError("description must be at most %d characters", maxHotelDescriptionLen)
	}
	return &Hotel{
		Entity:      Entity{CreatedAt: time.Now()},
		Name:        name,
		Description: description,
		StarRating:  starRating,
		Status:      StatusActive,
		City:        city,
		Country:     country,
	}, nil
}

// UpdateDetails overwrites name, description and star rating. Nothing is
// assigned until every input has passed validation.
func (h *Hotel) UpdateDetails(name, description string, starRating int) error {
	if err := validateHotelName(name); err != nil {
		return err
	}
	if err := validateStarRating(starRating); err != nil {
		return err
	}
	if len(description) > maxHotelDescriptionLen {
		return NewValidationError("description must be at most %d characters", maxHotelDescriptionLen)
	}
	h.Name = name
	h.Description = description
	h.StarRating = starRating
	h.Touch()
	return nil
}

func (h *Hotel) UpdateAddress(street, city, state, country, zipCode string) error {
	if err := validateCity(city); err != nil {
		return err
	}
	if err := validateCountry(country); err != nil {
		return err
	}
	h.Street = street
	h.City = city
	h.State = state
	h.Country = country
	h.ZipCode = zipCode
	h.Touch()
	return nil
}

func (h *Hotel) UpdateContactInfo(email, phone, website string) error {
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return NewValidationError("email %q is not a valid address", email)
		}
	}
	h.Email = email
	h.Phone = phone
	h.Website = website
	h.Touch()
	return nil
}

// ChangeStatus accepts any defined status; there are no transition rules.
func (h *Hotel) ChangeStatus(status HotelStatus) error {
	if !status.Valid() {
		return NewValidationError("unknown hotel status %d", int(status))
	}
	h.Status = status
	h.Touch()
	return nil
}

// UpdateAmenities replaces the amenity list, stored as a JSON column.
func (h *Hotel) UpdateAmenities(amenities []string) error {
	raw, err := json.Marshal(amenities)
	if err != nil {
		return err
	}
	h.Amenities = datatypes.JSON(raw)
	h.Touch()
	return nil
}

func validateHotelName(name string) error {
	if strings.TrimSpace(name) == "" {
		return NewValidationError("name required")
	}
	if len(name) > maxHotelNameLen {
		return NewValidationError("name must be at most %d characters", maxHotelNameLen)
	}
	return nil
}

func validateCity(city string) error {
	if strings.TrimSpace(city) == "" {
		return NewValidationError("city required")
	}
	if len(city) > maxCityLen {
		return NewValidationError("city must be at most %d characters", maxCityLen)
	}
	return nil
}

func validateCountry(country string) error {
	if strings.TrimSpace(country) == "" {
		return NewValidationError("country required")
	}
	if len(country) > maxCountryLen {
		return NewValidationError("country must be at most %d characters", maxCountryLen)
	}
	return nil
}

func validateStarRating(starRating int) error {
	if starRating < 1 || starRating > 5 {
		return NewValidationError("star rating must be between 1 and 5")
	}
	return nil
}
