package controllers

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-catalog/models"
	"hotel-catalog/utils"
)

// respondError maps the error taxonomy onto status codes: validation failures
// are the client's fault, not-found is its own thing, everything else is an
// opaque 500 that gets logged server-side.
func respondError(c *gin.Context, err error) {
	switch {
	case models.IsValidation(err):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case models.IsNotFound(err):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	default:
		log.Printf("unhandled error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name+" parameter")
		return 0, false
	}
	return uint(id), true
}
