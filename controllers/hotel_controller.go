package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-catalog/models"
	"hotel-catalog/services"
	"hotel-catalog/utils"
)

type HotelController struct {
	HotelSvc *services.HotelService
}

func NewHotelController(svc *services.HotelService) *HotelController {
	return &HotelController{HotelSvc: svc}
}

// CreateHotelRequest mirrors the entity's own invariants on purpose: the
// binding layer rejects bad input early, the entity re-validates regardless.
type CreateHotelRequest struct {
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description" binding:"omitempty,max=1000"`
	StarRating  int      `json:"starRating" binding:"required,min=1,max=5"`
	Street      string   `json:"street" binding:"omitempty,max=200"`
	City        string   `json:"city" binding:"required,max=100"`
	State       string   `json:"state" binding:"omitempty,max=100"`
	Country     string   `json:"country" binding:"required,max=100"`
	ZipCode     string   `json:"zipCode" binding:"omitempty,max=20"`
	Email       string   `json:"email" binding:"omitempty,email"`
	Phone       string   `json:"phone" binding:"omitempty,max=50"`
	Website     string   `json:"website" binding:"omitempty,max=255"`
	Amenities   []string `json:"amenities"`
}

type UpdateHotelRequest struct {
	ID          uint     `json:"id" binding:"required"`
	Name        string   `json:"name" binding:"required,max=200"`
	Description string   `json:"description" binding:"omitempty,max=1000"`
	StarRating  int      `json:"starRating" binding:"required,min=1,max=5"`
	Status      string   `json:"status" binding:"required,oneof=Active Inactive UnderMaintenance"`
	Street      string   `json:"street" binding:"omitempty,max=200"`
	City        string   `json:"city" binding:"required,max=100"`
	State       string   `json:"state" binding:"omitempty,max=100"`
	Country     string   `json:"country" binding:"required,max=100"`
	ZipCode     string   `json:"zipCode" binding:"omitempty,max=20"`
	Email       string   `json:"email" binding:"omitempty,email"`
	Phone       string   `json:"phone" binding:"omitempty,max=50"`
	Website     string   `json:"website" binding:"omitempty,max=255"`
	Amenities   []string `json:"amenities"`
}

// GET /api/hotels
func (hc *HotelController) GetHotels(c *gin.Context) {
	hotels, err := hc.HotelSvc.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// GET /api/hotels/:id
func (hc *HotelController) GetHotelByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	hotel, err := hc.HotelSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// POST /api/hotels
func (hc *HotelController) CreateHotel(c *gin.Context) {
	var req CreateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	hotel, err := models.NewHotel(req.Name, req.Description, req.StarRating, req.City, req.Country)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.Street != "" || req.State != "" || req.ZipCode != "" {
		if err := hotel.UpdateAddress(req.Street, req.City, req.State, req.Country, req.ZipCode); err != nil {
			respondError(c, err)
			return
		}
	}
	if req.Email != "" || req.Phone != "" || req.Website != "" {
		if err := hotel.UpdateContactInfo(req.Email, req.Phone, req.Website); err != nil {
			respondError(c, err)
			return
		}
	}
	if len(req.Amenities) > 0 {
		if err := hotel.UpdateAmenities(req.Amenities); err != nil {
			respondError(c, err)
			return
		}
	}

	if err := hc.HotelSvc.Create(hotel); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/hotels/%d", hotel.ID))
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

// PUT /api/hotels/:id
//
// The repository Update itself has no existence check, so the handler fetches
// first; an unknown id is a 404 here, not a silent write.
func (hc *HotelController) UpdateHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateHotelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}
	if req.ID != id {
		utils.JSONError(c, http.StatusBadRequest, "id in body does not match id in path")
		return
	}

	hotel, err := hc.HotelSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	status, err := models.ParseHotelStatus(req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := hotel.UpdateDetails(req.Name, req.Description, req.StarRating); err != nil {
		respondError(c, err)
		return
	}
	if err := hotel.UpdateAddress(req.Street, req.City, req.State, req.Country, req.ZipCode); err != nil {
		respondError(c, err)
		return
	}
	if err := hotel.UpdateContactInfo(req.Email, req.Phone, req.Website); err != nil {
		respondError(c, err)
		return
	}
	if err := hotel.ChangeStatus(status); err != nil {
		respondError(c, err)
		return
	}
	if req.Amenities != nil {
		if err := hotel.UpdateAmenities(req.Amenities); err != nil {
			respondError(c, err)
			return
		}
	}

	if err := hc.HotelSvc.Update(hotel); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/hotels/:id
func (hc *HotelController) DeleteHotel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := hc.HotelSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// GET /api/hotels/search
func (hc *HotelController) SearchHotels(c *gin.Context) {
	filter := services.HotelSearchFilter{
		City:    c.Query("city"),
		Country: c.Query("country"),
	}
	if raw := c.Query("minStarRating"); raw != "" {
		rating, err := strconv.Atoi(raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "minStarRating must be an integer")
			return
		}
		filter.MinStarRating = rating
	}
	if raw := c.Query("status"); raw != "" {
		status, err := models.ParseHotelStatus(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		filter.Status = &status
	}
	if raw := c.Query("pageNumber"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			filter.PageNumber = n
		}
	}
	if raw := c.Query("pageSize"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			filter.PageSize = n
		}
	}

	filter.Normalize()
	hotels, total, err := hc.HotelSvc.Search(filter)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"items":      hotels,
		"totalCount": total,
		"pageNumber": filter.PageNumber,
		"pageSize":   filter.PageSize,
	})
}
