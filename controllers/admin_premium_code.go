package controllers

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diyorbe-beep/kino11111/config"
	"github.com/diyorbe-beep/kino11111/middleware"
	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/services/activity"
	"github.com/diyorbe-beep/kino11111/utils"
)

type AdminPremiumCodeController struct {
	DB              *gorm.DB
	activityService *activity.ActivityService
}

func NewAdminPremiumCodeController(db *gorm.DB, activityService *activity.ActivityService) *AdminPremiumCodeController {
	return &AdminPremiumCodeController{DB: db, activityService: activityService}
}

// GenerateCodesRequest asks for a batch of premium codes.
type GenerateCodesRequest struct {
	Count     int        `json:"count" binding:"required,min=1,max=100"`
	Days      int        `json:"days"`
	ExpiresAt *time.Time `json:"expires_at"`
}

// GenerateCodes godoc
// @Summary      Generate premium codes
// @Description  Each code is single use; days defaults to the configured value
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        request body GenerateCodesRequest true "Batch size and validity"
// @Success      201  {object}  utils.Envelope
// @Failure      400  {object}  utils.Envelope
// @Router       /admin/premium-codes [post]
func (apc *AdminPremiumCodeController) GenerateCodes(c *gin.Context) {
	var req GenerateCodesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	days := req.Days
	if days <= 0 {
		days = config.GetConfig().PremiumCodeDays
	}

	admin := middleware.CurrentUser(c)
	codes := make([]models.PremiumCode, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		raw, err := utils.GenerateRandomString(16)
		if err != nil {
			utils.InternalError(c, "code generation failed", err)
			return
		}
		codes = append(codes, models.PremiumCode{
			Code:        raw,
			Days:        days,
			ExpiresAt:   req.ExpiresAt,
			GeneratedBy: &admin.ID,
		})
	}

	if err := apc.DB.Create(&codes).Error; err != nil {
		utils.InternalError(c, "code batch insert failed", err)
		return
	}

	apc.activityService.RecordActivity(models.ActivityPremium,
		fmt.Sprintf("admin %q generated %d premium codes (%d days)", admin.Username, req.Count, days))

	out := make([]gin.H, 0, len(codes))
	for i := range codes {
		out = append(out, gin.H{
			"id":         codes[i].ID,
			"code":       codes[i].Code,
			"days":       codes[i].Days,
			"expires_at": codes[i].ExpiresAt,
		})
	}
	utils.Success(c, "CREATED", out)
}

// ListCodes godoc
// @Summary      List premium codes
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        page      query int  false "Page number"
// @Param        page_size query int  false "Items per page"
// @Param        used      query bool false "Used flag filter"
// @Success      200  {object}  utils.Envelope
// @Router       /admin/premium-codes [get]
func (apc *AdminPremiumCodeController) ListCodes(c *gin.Context) {
	query := apc.DB.Model(&models.PremiumCode{})
	if used := c.Query("used"); used != "" {
		query = query.Where("is_used = ?", used == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalError(c, "code count failed", err)
		return
	}

	page := utils.GetPage(c)
	pageSize := utils.GetPageSize(c)

	var codes []models.PremiumCode
	if err := query.Preload("UsedByUser").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&codes).Error; err != nil {
		utils.InternalError(c, "code listing failed", err)
		return
	}

	items := make([]gin.H, 0, len(codes))
	for i := range codes {
		item := gin.H{
			"id":         codes[i].ID,
			"code":       codes[i].Code,
			"days":       codes[i].Days,
			"is_used":    codes[i].IsUsed,
			"used_at":    codes[i].UsedAt,
			"expires_at": codes[i].ExpiresAt,
			"created_at": codes[i].CreatedAt,
		}
		if codes[i].UsedByUser != nil {
			item["used_by"] = codes[i].UsedByUser.Username
		}
		items = append(items, item)
	}
	utils.Success(c, "SUCCESS_MESSAGE", gin.H{
		"items":      items,
		"pagination": utils.Paginate(total, page, pageSize),
	})
}

// DeleteCode godoc
// @Summary      Delete an unused premium code
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Code ID"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/premium-codes/{id} [delete]
func (apc *AdminPremiumCodeController) DeleteCode(c *gin.Context) {
	res := apc.DB.Where("is_used = ?", false).
		Delete(&models.PremiumCode{}, c.Param("id"))
	if res.Error != nil {
		utils.InternalError(c, "code deletion failed", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "CODE_NOT_FOUND")
		return
	}
	utils.Success(c, "DELETED", nil)
}
