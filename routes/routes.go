package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-catalog/controllers"
	"hotel-catalog/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(hc *controllers.HotelController, rtc *controllers.RoomTypeController) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length", "Location"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		hotels := api.Group("/hotels")
		{
			hotels.GET("", hc.GetHotels)

			// fixed segment must come before /:id
			hotels.GET("/search", hc.SearchHotels)

			hotels.GET("/:id", hc.GetHotelByID)
			hotels.POST("", hc.CreateHotel)
			hotels.PUT("/:id", hc.UpdateHotel)
			hotels.DELETE("/:id", hc.DeleteHotel)

			hotels.GET("/:id/room-types", rtc.GetRoomTypesByHotel)
			hotels.POST("/:id/room-types", rtc.CreateRoomType)
		}

		roomTypes := api.Group("/room-types")
		{
			roomTypes.GET("/:id", rtc.GetRoomTypeByID)
			roomTypes.PUT("/:id", rtc.UpdateRoomType)
			roomTypes.PATCH("/:id/price", rtc.UpdateRoomTypePrice)
			roomTypes.PATCH("/:id/features", rtc.UpdateRoomTypeFeatures)
			roomTypes.DELETE("/:id", rtc.DeleteRoomType)
		}
	}

	return r
}
