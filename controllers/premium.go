package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diyorbe-beep/kino11111/middleware"
	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/services/activity"
	"github.com/diyorbe-beep/kino11111/utils"
)

type PremiumController struct {
	DB              *gorm.DB
	activityService *activity.ActivityService
}

func NewPremiumController(db *gorm.DB, activityService *activity.ActivityService) *PremiumController {
	return &PremiumController{DB: db, activityService: activityService}
}

// RedeemCodeRequest carries the premium code to redeem.
type RedeemCodeRequest struct {
	Code string `json:"code" binding:"required"`
}

// GetPremiumStatus godoc
// @Summary      Get the current user's premium status
// @Tags         premium
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  utils.Envelope
// @Router       /premium/status [get]
func (pc *PremiumController) GetPremiumStatus(c *gin.Context) {
	user := middleware.CurrentUser(c)
	now := time.Now()
	utils.Success(c, "SUCCESS_MESSAGE", gin.H{
		"is_premium":         user.IsPremium,
		"premium_until":      user.PremiumUntil,
		"has_active_premium": user.HasActivePremium(now),
	})
}

// RedeemCode godoc
// @Summary      Redeem a premium code
// @Description  Single-use; extends the premium window from its current end
// @Tags         premium
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        code body RedeemCodeRequest true "Premium code"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /premium/redeem [post]
func (pc *PremiumController) RedeemCode(c *gin.Context) {
	var req RedeemCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)
	now := time.Now()

	var code models.PremiumCode
	if err := pc.DB.Where("code = ?", req.Code).First(&code).Error; err != nil {
		utils.NotFound(c, "CODE_NOT_FOUND")
		return
	}
	if !code.Redeemable(now) {
		utils.NotFound(c, "CODE_NOT_FOUND")
		return
	}

	if err := models.RedeemPremiumCode(pc.DB, &code, user, now); err != nil {
		// the guarded UPDATE lost a race: the code went used under us
		utils.NotFound(c, "CODE_NOT_FOUND")
		return
	}

	pc.activityService.RecordActivity(models.ActivityPremium,
		fmt.Sprintf("user %q redeemed a %d-day premium code", user.Username, code.Days))

	utils.SuccessContext(c, "PREMIUM_GRANTED", gin.H{
		"is_premium":    user.IsPremium,
		"premium_until": user.PremiumUntil,
	}, map[string]interface{}{
		"until": user.PremiumUntil.Format("2006-01-02"),
	})
}
