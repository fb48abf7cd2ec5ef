package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"vibeplan/internal/models/request_models"
	"vibeplan/internal/services"
	"vibeplan/pkg/utils"
)

type PlanController struct {
	planService services.PlanServiceInterface
}

func NewPlanController(planService services.PlanServiceInterface) *PlanController {
	return &PlanController{
		planService: planService,
	}
}

// GeneratePlanHandler answers POST /plan. The service never errors; whatever
// happened downstream, the response carries a valid plan with its source tag.
func (p *PlanController) GeneratePlanHandler(c *gin.Context) {
	var req request_models.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "city and time_slot are required")
		return
	}

	plan := p.planService.GeneratePlan(c.Request.Context(), req)

	utils.RespondSuccess(c, plan, "Plan generated")
}
