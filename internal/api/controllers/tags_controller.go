package controllers

import (
	"github.com/gin-gonic/gin"

	"vibeplan/internal/services"
	"vibeplan/pkg/utils"
)

type TagController struct {
	tagService services.TagServiceInterface
}

func NewTagController(tagService services.TagServiceInterface) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

func (t *TagController) ListTagOptionsHandler(c *gin.Context) {
	options, err := t.tagService.ListTagOptions(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, options, "Tag options fetched successfully")
}
