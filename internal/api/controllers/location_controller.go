package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"retreatly/internal/services"
	"retreatly/pkg/utils"
)

type LocationController struct {
	locationService services.LocationService
}

func NewLocationController(locationService services.LocationService) *LocationController {
	return &LocationController{
		locationService: locationService,
	}
}

// ResolveCity turns browser coordinates into a display city. Missing or bad
// coordinates resolve to the default city rather than an error.
func (l *LocationController) ResolveCity(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Query("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Query("lng"), 64)

	if latErr != nil || lngErr != nil {
		utils.RespondSuccess(c, gin.H{"city": services.DefaultCity}, "Default location")
		return
	}
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		utils.RespondError(c, http.StatusBadRequest, "Coordinates out of range")
		return
	}

	city := l.locationService.ResolveCity(c.Request.Context(), lat, lng)
	utils.RespondSuccess(c, gin.H{"city": city}, "Location resolved")
}
