package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-catalog/models"
)

// openTestDB gives each test its own in-memory database. The pool is pinned
// to a single connection because every sqlite :memory: connection is a
// separate database.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&models.Hotel{}, &models.RoomType{}))
	return db
}

func mustHotel(t *testing.T, svc *HotelService, name, city, country string, starRating int) *models.Hotel {
	t.Helper()
	hotel, err := models.NewHotel(name, "", starRating, city, country)
	require.NoError(t, err)
	require.NoError(t, svc.Create(hotel))
	return hotel
}
