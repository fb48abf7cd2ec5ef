package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibeplan/internal/services"
	"vibeplan/pkg/utils"
)

type PlacesController struct {
	placeService services.PlaceServiceInterface
}

func NewPlacesController(placeService services.PlaceServiceInterface) *PlacesController {
	return &PlacesController{
		placeService: placeService,
	}
}

func (p *PlacesController) GetPlacesByCity(c *gin.Context) {
	city := c.Param("city")
	if city == "" {
		utils.RespondError(c, http.StatusBadRequest, "City is required")
		return
	}

	places, err := p.placeService.ListPlacesByCity(c.Request.Context(), city)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places fetched successfully")
}
