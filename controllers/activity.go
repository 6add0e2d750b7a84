package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/diyorbe-beep/kino11111/services/activity"
	"github.com/diyorbe-beep/kino11111/utils"
)

type ActivityController struct {
	activityService *activity.ActivityService
}

func NewActivityController(activityService *activity.ActivityService) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// GetRecentActivities godoc
// @Summary      Recent back-office activity feed
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        limit query int false "Number of records (default 20)" minimum(1) maximum(100)
// @Success      200  {object}  utils.Envelope
// @Router       /admin/activities [get]
func (ac *ActivityController) GetRecentActivities(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "20")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}

	activities, err := ac.activityService.GetRecentActivities(limit)
	if err != nil {
		utils.InternalError(c, "activity feed read failed", err)
		return
	}
	utils.Success(c, "SUCCESS_MESSAGE", activities)
}
