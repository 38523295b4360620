package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hotel-catalog/models"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// HotelSearchFilter combines the optional search criteria. Zero values mean
// "no filter". City and country are matched as case-insensitive substrings,
// the star rating as "hotel rating >= given value", the status exactly.
type HotelSearchFilter struct {
	City          string
	Country       string
	MinStarRating int
	Status        *models.HotelStatus
	PageNumber    int
	PageSize      int
}

// Normalize applies the paging defaults and clamps: page numbers below 1
// become 1, the page size is capped at 100.
func (f *HotelSearchFilter) Normalize() {
	if f.PageNumber < 1 {
		f.PageNumber = 1
	}
	if f.PageSize <= 0 {
		f.PageSize = defaultPageSize
	}
	if f.PageSize > maxPageSize {
		f.PageSize = maxPageSize
	}
}

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

// GetByID returns the hotel with the given id, or NotFoundError if no such
// hotel exists or it has been soft-deleted.
func (s *HotelService) GetByID(id uint) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.Scopes(notDeleted).First(&hotel, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewHotelNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (s *HotelService) GetAll() ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.Scopes(notDeleted).Order("id").Find(&hotels).Error
	return hotels, err
}

// Create persists a new hotel and fills in its storage-assigned id.
func (s *HotelService) Create(hotel *models.Hotel) error {
	return s.DB.Create(hotel).Error
}

// Update writes an already-identified hotel back. There is no existence check
// here (last-writer-wins); callers that need one fetch the hotel first.
func (s *HotelService) Update(hotel *models.Hotel) error {
	return s.DB.Save(hotel).Error
}

// Delete soft-deletes: the row is flagged and timestamped, never removed.
// A second Delete on the same id fails with NotFoundError because the first
// one made the row invisible to GetByID.
func (s *HotelService) Delete(id uint) error {
	hotel, err := s.GetByID(id)
	if err != nil {
		return err
	}
	hotel.MarkAsDeleted()
	return s.DB.Save(hotel).Error
}

// Search returns the matching page plus the total match count before
// pagination. The page size is silently clamped to 100.
func (s *HotelService) Search(filter HotelSearchFilter) ([]models.Hotel, int64, error) {
	filter.Normalize()

	apply := func(db *gorm.DB) *gorm.DB {
		db = db.Scopes(notDeleted)
		if filter.City != "" {
			db = db.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(filter.City)+"%")
		}
		if filter.Country != "" {
			db = db.Where("LOWER(country) LIKE ?", "%"+strings.ToLower(filter.Country)+"%")
		}
		if filter.MinStarRating > 0 {
			db = db.Where("star_rating >= ?", filter.MinStarRating)
		}
		if filter.Status != nil {
			db = db.Where("status = ?", *filter.Status)
		}
		return db
	}

	var total int64
	if err := apply(s.DB.Model(&models.Hotel{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var hotels []models.Hotel
	err := apply(s.DB).
		Order("id").
		Offset((filter.PageNumber - 1) * filter.PageSize).
		Limit(filter.PageSize).
		Find(&hotels).Error
	if err != nil {
		return nil, 0, err
	}
	return hotels, total, nil
}
