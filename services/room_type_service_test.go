package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-catalog/models"
)

func TestRoomTypeService_Create(t *testing.T) {
	db := openTestDB(t)
	hotels := NewHotelService(db)
	svc := NewRoomTypeService(db)

	hotel := mustHotel(t, hotels, "Hilton", "Paris", "France", 4)

	rt, err := models.NewRoomType(hotel.ID, "Deluxe", "Deluxe double", 2, 180, 24)
	require.NoError(t, err)
	require.NoError(t, svc.Create(rt))
	require.NotZero(t, rt.ID)

	got, err := svc.GetByID(rt.ID)
	require.NoError(t, err)
	assert.Equal(t, "Deluxe", got.Name)
	assert.Equal(t, hotel.ID, got.HotelID)
}

func TestRoomTypeService_Create_UnknownHotel(t *testing.T) {
	svc := NewRoomTypeService(openTestDB(t))

	rt, err := models.NewRoomType(12345, "Deluxe", "", 2, 180, 24)
	require.NoError(t, err)

	err = svc.Create(rt)
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestRoomTypeService_Create_DeletedHotel(t *testing.T) {
	db := openTestDB(t)
	hotels := NewHotelService(db)
	svc := NewRoomTypeService(db)

	hotel := mustHotel(t, hotels, "Hilton", "Paris", "France", 4)
	require.NoError(t, hotels.Delete(hotel.ID))

	rt, err := models.NewRoomType(hotel.ID, "Deluxe", "", 2, 180, 24)
	require.NoError(t, err)

	// a soft-deleted hotel cannot take new room types
	err = svc.Create(rt)
	require.Error(t, err)
	assert.True(t, models.IsNotFound(err))
}

func TestRoomTypeService_GetAllByHotel(t *testing.T) {
	db := openTestDB(t)
	hotels := NewHotelService(db)
	svc := NewRoomTypeService(db)

	hotel := mustHotel(t, hotels, "Hilton", "Paris", "France", 4)
	other := mustHotel(t, hotels, "Harbor", "Lisbon", "Portugal", 3)

	for _, name := range []string{"Standard", "Deluxe"} {
		rt, err := models.NewRoomType(hotel.ID, name, "", 2, 100, 20)
		require.NoError(t, err)
		require.NoError(t, svc.Create(rt))
	}
	rt, err := models.NewRoomType(other.ID, "Standard", "", 2, 80, 16)
	require.NoError(t, err)
	require.NoError(t, svc.Create(rt))

	types, err := svc.GetAllByHotel(hotel.ID)
	require.NoError(t, err)
	assert.Len(t, types, 2)

	_, err = svc.GetAllByHotel(99999)
	assert.True(t, models.IsNotFound(err))
}

func TestRoomTypeService_Delete(t *testing.T) {
	db := openTestDB(t)
	hotels := NewHotelService(db)
	svc := NewRoomTypeService(db)

	hotel := mustHotel(t, hotels, "Hilton", "Paris", "France", 4)
	rt, err := models.NewRoomType(hotel.ID, "Deluxe", "", 2, 180, 24)
	require.NoError(t, err)
	require.NoError(t, svc.Create(rt))

	require.NoError(t, svc.Delete(rt.ID))

	_, err = svc.GetByID(rt.ID)
	assert.True(t, models.IsNotFound(err))

	err = svc.Delete(rt.ID)
	assert.True(t, models.IsNotFound(err))

	// soft delete leaves the hotel's other reads unaffected
	types, err := svc.GetAllByHotel(hotel.ID)
	require.NoError(t, err)
	assert.Empty(t, types)
}

func TestRoomTypeService_Update(t *testing.T) {
	db := openTestDB(t)
	hotels := NewHotelService(db)
	svc := NewRoomTypeService(db)

	hotel := mustHotel(t, hotels, "Hilton", "Paris", "France", 4)
	rt, err := models.NewRoomType(hotel.ID, "Deluxe", "", 2, 180, 24)
	require.NoError(t, err)
	require.NoError(t, svc.Create(rt))

	require.NoError(t, rt.UpdatePrice(210))
	require.NoError(t, svc.Update(rt))

	got, err := svc.GetByID(rt.ID)
	require.NoError(t, err)
	assert.Equal(t, 210.0, got.BasePrice)
}

func TestHotelService_SoftDelete_LeavesRoomTypes(t *testing.T) {
	db := openTestDB(t)
	hotels := NewHotelService(db)
	svc := NewRoomTypeService(db)

	hotel := mustHotel(t, hotels, "Hilton", "Paris", "France", 4)
	rt, err := models.NewRoomType(hotel.ID, "Deluxe", "", 2, 180, 24)
	require.NoError(t, err)
	require.NoError(t, svc.Create(rt))

	// soft delete is a flag flip; children stay in place untouched
	require.NoError(t, hotels.Delete(hotel.ID))

	var raw models.RoomType
	require.NoError(t, db.First(&raw, rt.ID).Error)
	assert.False(t, raw.IsDeleted)
}
