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

type UserManagementController struct {
	DB              *gorm.DB
	activityService *activity.ActivityService
}

func NewUserManagementController(db *gorm.DB, activityService *activity.ActivityService) *UserManagementController {
	return &UserManagementController{DB: db, activityService: activityService}
}

// AdminUserUpdateRequest is the admin payload for account changes.
type AdminUserUpdateRequest struct {
	Role     *string `json:"role"`
	IsActive *bool   `json:"is_active"`
}

// GrantPremiumRequest gives a user premium days directly.
type GrantPremiumRequest struct {
	Days int `json:"days" binding:"required,min=1"`
}

// ListUsers godoc
// @Summary      List users
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        page      query int    false "Page number"
// @Param        page_size query int    false "Items per page"
// @Param        search    query string false "Username or email substring"
// @Param        role      query string false "admin or regular"
// @Param        premium   query bool   false "Premium flag filter"
// @Success      200  {object}  utils.Envelope
// @Router       /admin/users [get]
func (umc *UserManagementController) ListUsers(c *gin.Context) {
	query := umc.DB.Model(&models.User{})

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("username LIKE ? OR email LIKE ?", like, like)
	}
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}
	if premium := c.Query("premium"); premium != "" {
		query = query.Where("is_premium = ?", premium == "true")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalError(c, "user count failed", err)
		return
	}

	page := utils.GetPage(c)
	pageSize := utils.GetPageSize(c)

	var users []models.User
	if err := query.Preload("Profile").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&users).Error; err != nil {
		utils.InternalError(c, "user listing failed", err)
		return
	}

	items := make([]gin.H, 0, len(users))
	for i := range users {
		items = append(items, adminUserPayload(&users[i]))
	}
	utils.Success(c, "SUCCESS_MESSAGE", gin.H{
		"items":      items,
		"pagination": utils.Paginate(total, page, pageSize),
	})
}

// GetUser godoc
// @Summary      Get a user
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id path int true "User ID"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/users/{id} [get]
func (umc *UserManagementController) GetUser(c *gin.Context) {
	var user models.User
	if err := umc.DB.Preload("Profile").First(&user, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "USER_NOT_FOUND")
		return
	}
	utils.Success(c, "SUCCESS_MESSAGE", adminUserPayload(&user))
}

// UpdateUser godoc
// @Summary      Update a user's role or active flag
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id   path int                    true "User ID"
// @Param        user body AdminUserUpdateRequest true "Fields to update"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/users/{id} [put]
func (umc *UserManagementController) UpdateUser(c *gin.Context) {
	var user models.User
	if err := umc.DB.First(&user, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "USER_NOT_FOUND")
		return
	}

	var req AdminUserUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	admin := middleware.CurrentUser(c)
	// admins cannot demote or deactivate themselves
	if user.ID == admin.ID {
		utils.Forbidden(c)
		return
	}

	updates := map[string]interface{}{}
	if req.Role != nil {
		if *req.Role != models.RoleAdmin && *req.Role != models.RoleRegular {
			utils.ValidationError(c, gin.H{"role": "unknown role"})
			return
		}
		updates["role"] = *req.Role
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := umc.DB.Model(&user).Updates(updates).Error; err != nil {
			utils.InternalError(c, "user update failed", err)
			return
		}
	}

	umc.activityService.RecordActivity(models.ActivityUser,
		fmt.Sprintf("user %q updated by %q", user.Username, admin.Username))
	utils.Success(c, "UPDATED", adminUserPayload(&user))
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id path int true "User ID"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/users/{id} [delete]
func (umc *UserManagementController) DeleteUser(c *gin.Context) {
	var user models.User
	if err := umc.DB.First(&user, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "USER_NOT_FOUND")
		return
	}

	admin := middleware.CurrentUser(c)
	if user.ID == admin.ID {
		utils.Forbidden(c)
		return
	}

	if err := umc.DB.Delete(&user).Error; err != nil {
		utils.InternalError(c, "user deletion failed", err)
		return
	}

	umc.activityService.RecordActivity(models.ActivityUser,
		fmt.Sprintf("user %q deleted by %q", user.Username, admin.Username))
	utils.Success(c, "DELETED", nil)
}

// GrantPremium godoc
// @Summary      Grant premium days to a user
// @Description  Extends the premium window from its current end, like a code
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path int                 true "User ID"
// @Param        grant body GrantPremiumRequest true "Days to grant"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/users/{id}/premium [post]
func (umc *UserManagementController) GrantPremium(c *gin.Context) {
	var user models.User
	if err := umc.DB.First(&user, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "USER_NOT_FOUND")
		return
	}

	var req GrantPremiumRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	now := time.Now()
	from := now
	if user.PremiumUntil != nil && user.PremiumUntil.After(now) {
		from = *user.PremiumUntil
	}
	until := from.AddDate(0, 0, req.Days)

	if err := umc.DB.Model(&user).Updates(map[string]interface{}{
		"is_premium":    true,
		"premium_until": until,
	}).Error; err != nil {
		utils.InternalError(c, "premium grant failed", err)
		return
	}

	admin := middleware.CurrentUser(c)
	umc.activityService.RecordActivity(models.ActivityPremium,
		fmt.Sprintf("admin %q granted %d premium days to %q", admin.Username, req.Days, user.Username))

	utils.SuccessContext(c, "PREMIUM_GRANTED", gin.H{
		"user_id":       user.ID,
		"is_premium":    true,
		"premium_until": until,
	}, map[string]interface{}{
		"until": until.Format("2006-01-02"),
	})
}

// adminUserPayload is the back-office view of an account.
func adminUserPayload(user *models.User) gin.H {
	return gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"email":         user.Email,
		"phone":         user.Phone,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"role":          user.Role,
		"is_active":     user.IsActive,
		"is_premium":    user.IsPremium,
		"premium_until": user.PremiumUntil,
		"created_at":    user.CreatedAt,
	}
}
