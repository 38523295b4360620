package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-catalog/models"
	"hotel-catalog/services"
	"hotel-catalog/utils"
)

type RoomTypeController struct {
	RoomTypeSvc *services.RoomTypeService
}

func NewRoomTypeController(svc *services.RoomTypeService) *RoomTypeController {
	return &RoomTypeController{RoomTypeSvc: svc}
}

type CreateRoomTypeRequest struct {
	Name           string  `json:"name" binding:"required,max=100"`
	Description    string  `json:"description" binding:"omitempty,max=500"`
	MaxOccupancy   int     `json:"maxOccupancy" binding:"required,min=1"`
	BasePrice      float64 `json:"basePrice" binding:"min=0"`
	Size           float64 `json:"size" binding:"min=0"`
	BedType        string  `json:"bedType" binding:"omitempty,max=50"`
	ViewType       string  `json:"viewType" binding:"omitempty,max=50"`
	HasBalcony     bool    `json:"hasBalcony"`
	HasKitchen     bool    `json:"hasKitchen"`
	SmokingAllowed bool    `json:"smokingAllowed"`
}

type UpdateRoomTypeRequest struct {
	ID           uint    `json:"id" binding:"required"`
	Name         string  `json:"name" binding:"required,max=100"`
	Description  string  `json:"description" binding:"omitempty,max=500"`
	MaxOccupancy int     `json:"maxOccupancy" binding:"required,min=1"`
	BasePrice    float64 `json:"basePrice" binding:"min=0"`
	BedType      string  `json:"bedType" binding:"omitempty,max=50"`
	ViewType     string  `json:"viewType" binding:"omitempty,max=50"`
}

type UpdatePriceRequest struct {
	BasePrice float64 `json:"basePrice" binding:"min=0"`
}

type UpdateFeaturesRequest struct {
	HasBalcony     bool `json:"hasBalcony"`
	HasKitchen     bool `json:"hasKitchen"`
	SmokingAllowed bool `json:"smokingAllowed"`
}

// GET /api/hotels/:id/room-types
func (rc *RoomTypeController) GetRoomTypesByHotel(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	types, err := rc.RoomTypeSvc.GetAllByHotel(hotelID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, types)
}

// GET /api/room-types/:id
func (rc *RoomTypeController) GetRoomTypeByID(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	rt, err := rc.RoomTypeSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rt)
}

// POST /api/hotels/:id/room-types
func (rc *RoomTypeController) CreateRoomType(c *gin.Context) {
	hotelID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	rt, err := models.NewRoomType(hotelID, req.Name, req.Description, req.MaxOccupancy, req.BasePrice, req.Size)
	if err != nil {
		respondError(c, err)
		return
	}
	if req.BedType != "" || req.ViewType != "" {
		if err := rt.SetBedding(req.BedType, req.ViewType); err != nil {
			respondError(c, err)
			return
		}
	}
	if req.HasBalcony || req.HasKitchen || req.SmokingAllowed {
		rt.UpdateFeatures(req.HasBalcony, req.HasKitchen, req.SmokingAllowed)
	}

	if err := rc.RoomTypeSvc.Create(rt); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Location", fmt.Sprintf("/api/room-types/%d", rt.ID))
	utils.JSONSuccess(c, http.StatusCreated, rt)
}

// PUT /api/room-types/:id
func (rc *RoomTypeController) UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}
	if req.ID != id {
		utils.JSONError(c, http.StatusBadRequest, "id in body does not match id in path")
		return
	}

	rt, err := rc.RoomTypeSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := rt.UpdateDetails(req.Name, req.Description, req.MaxOccupancy, req.BasePrice); err != nil {
		respondError(c, err)
		return
	}
	if err := rt.SetBedding(req.BedType, req.ViewType); err != nil {
		respondError(c, err)
		return
	}

	if err := rc.RoomTypeSvc.Update(rt); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PATCH /api/room-types/:id/price
func (rc *RoomTypeController) UpdateRoomTypePrice(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdatePriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	rt, err := rc.RoomTypeSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := rt.UpdatePrice(req.BasePrice); err != nil {
		respondError(c, err)
		return
	}
	if err := rc.RoomTypeSvc.Update(rt); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// PATCH /api/room-types/:id/features
func (rc *RoomTypeController) UpdateRoomTypeFeatures(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	var req UpdateFeaturesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, utils.BindingErrorMessage(err))
		return
	}

	rt, err := rc.RoomTypeSvc.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}
	rt.UpdateFeatures(req.HasBalcony, req.HasKitchen, req.SmokingAllowed)
	if err := rc.RoomTypeSvc.Update(rt); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DELETE /api/room-types/:id
func (rc *RoomTypeController) DeleteRoomType(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	if err := rc.RoomTypeSvc.Delete(id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
