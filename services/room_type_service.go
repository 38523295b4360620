package services

import (
	"errors"

	"gorm.io/gorm"

	"hotel-catalog/models"
)

type RoomTypeService struct {
	DB *gorm.DB
}

func NewRoomTypeService(db *gorm.DB) *RoomTypeService {
	return &RoomTypeService{DB: db}
}

func (s *RoomTypeService) GetByID(id uint) (*models.RoomType, error) {
	var rt models.RoomType
	err := s.DB.Scopes(notDeleted).First(&rt, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, models.NewRoomTypeNotFound(id)
	}
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

// GetAllByHotel lists a hotel's room types. It fails with the hotel's
// NotFoundError when the hotel itself is absent or soft-deleted.
func (s *RoomTypeService) GetAllByHotel(hotelID uint) ([]models.RoomType, error) {
	if err := s.checkHotel(hotelID); err != nil {
		return nil, err
	}
	var types []models.RoomType
	err := s.DB.Scopes(notDeleted).Where("hotel_id = ?", hotelID).Order("id").Find(&types).Error
	return types, err
}

// Create persists a new room type. The owning hotel must exist and not be
// soft-deleted; that reference check belongs here, at the storage boundary.
func (s *RoomTypeService) Create(rt *models.RoomType) error {
	if err := s.checkHotel(rt.HotelID); err != nil {
		return err
	}
	return s.DB.Create(rt).Error
}

func (s *RoomTypeService) Update(rt *models.RoomType) error {
	return s.DB.Save(rt).Error
}

func (s *RoomTypeService) Delete(id uint) error {
	rt, err := s.GetByID(id)
	if err != nil {
		return err
	}
	rt.MarkAsDeleted()
	return s.DB.Save(rt).Error
}

func (s *RoomTypeService) checkHotel(hotelID uint) error {
	var count int64
	err := s.DB.Model(&models.Hotel{}).Scopes(notDeleted).Where("id = ?", hotelID).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return models.NewHotelNotFound(hotelID)
	}
	return nil
}
