package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoomType(t *testing.T) {
	rt, err := NewRoomType(7, "Deluxe", "Deluxe double", 2, 180, 24.5)
	require.NoError(t, err)

	assert.Equal(t, uint(7), rt.HotelID)
	assert.Equal(t, "Deluxe", rt.Name)
	assert.Equal(t, 2, rt.MaxOccupancy)
	assert.Equal(t, 180.0, rt.BasePrice)
	assert.Equal(t, 24.5, rt.Size)
	assert.False(t, rt.HasBalcony)
	assert.False(t, rt.HasKitchen)
	assert.False(t, rt.SmokingAllowed)
	assert.Nil(t, rt.UpdatedAt)
}

func TestNewRoomType_Validation(t *testing.T) {
	cases := []struct {
		label        string
		hotelID      uint
		name         string
		maxOccupancy int
		basePrice    float64
		size         float64
	}{
		{"missing hotel id", 0, "Deluxe", 2, 100, 20},
		{"empty name", 7, "", 2, 100, 20},
		{"whitespace name", 7, "  ", 2, 100, 20},
		{"long name", 7, strings.Repeat("a", 101), 2, 100, 20},
		{"zero occupancy", 7, "Deluxe", 0, 100, 20},
		{"negative occupancy", 7, "Deluxe", -1, 100, 20},
		{"negative price", 7, "Deluxe", 2, -0.01, 20},
		{"negative size", 7, "Deluxe", 2, 100, -5},
	}

	for _, tc := range cases {
		t.Run(tc.label, func(t *testing.T) {
			rt, err := NewRoomType(tc.hotelID, tc.name, "", tc.maxOccupancy, tc.basePrice, tc.size)
			assert.Nil(t, rt)
			assert.True(t, IsValidation(err))
		})
	}

	// zero price and zero size are both legal
	_, err := NewRoomType(7, "Deluxe", "", 1, 0, 0)
	assert.NoError(t, err)
}

func TestRoomType_UpdateDetails(t *testing.T) {
	rt, err := NewRoomType(7, "Deluxe", "Old", 2, 180, 24)
	require.NoError(t, err)

	require.NoError(t, rt.UpdateDetails("Suite", "New", 4, 320))
	assert.Equal(t, "Suite", rt.Name)
	assert.Equal(t, 4, rt.MaxOccupancy)
	assert.Equal(t, 320.0, rt.BasePrice)
	assert.NotNil(t, rt.UpdatedAt)

	err = rt.UpdateDetails("", "New", 4, 320)
	assert.True(t, IsValidation(err))
	assert.Equal(t, "Suite", rt.Name)

	err = rt.UpdateDetails("Suite", "New", 0, 320)
	assert.True(t, IsValidation(err))
	assert.Equal(t, 4, rt.MaxOccupancy)
}

func TestRoomType_UpdatePrice(t *testing.T) {
	rt, err := NewRoomType(7, "Deluxe", "", 2, 180, 24)
	require.NoError(t, err)

	require.NoError(t, rt.UpdatePrice(199.99))
	assert.Equal(t, 199.99, rt.BasePrice)
	assert.NotNil(t, rt.UpdatedAt)

	err = rt.UpdatePrice(-1)
	assert.True(t, IsValidation(err))
	assert.Equal(t, 199.99, rt.BasePrice)
}

func TestRoomType_UpdateFeatures(t *testing.T) {
	rt, err := NewRoomType(7, "Deluxe", "", 2, 180, 24)
	require.NoError(t, err)

	rt.UpdateFeatures(true, false, true)
	assert.True(t, rt.HasBalcony)
	assert.False(t, rt.HasKitchen)
	assert.True(t, rt.SmokingAllowed)
	assert.NotNil(t, rt.UpdatedAt)
}

func TestRoomType_SetBedding(t *testing.T) {
	rt, err := NewRoomType(7, "Deluxe", "", 2, 180, 24)
	require.NoError(t, err)

	require.NoError(t, rt.SetBedding("King", "Sea"))
	assert.Equal(t, "King", rt.BedType)
	assert.Equal(t, "Sea", rt.ViewType)

	err = rt.SetBedding(strings.Repeat("a", 51), "Sea")
	assert.True(t, IsValidation(err))
	assert.Equal(t, "King", rt.BedType)
}
