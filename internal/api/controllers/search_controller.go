package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibeplan/internal/models/request_models"
	"vibeplan/internal/services"
	"vibeplan/pkg/utils"
)

type SearchController struct {
	searchService services.SearchServiceInterface
}

func NewSearchController(searchService services.SearchServiceInterface) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

func (s *SearchController) SearchPlacesHandler(c *gin.Context) {
	var req request_models.PlaceSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "query is required")
		return
	}

	places, err := s.searchService.SearchPlaces(c.Request.Context(), req.Query, req.Limit)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, places, "Places found")
}
