package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diyorbe-beep/kino11111/middleware"
	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/services/activity"
	"github.com/diyorbe-beep/kino11111/utils"
)

type AdminModerationController struct {
	DB              *gorm.DB
	activityService *activity.ActivityService
}

func NewAdminModerationController(db *gorm.DB, activityService *activity.ActivityService) *AdminModerationController {
	return &AdminModerationController{DB: db, activityService: activityService}
}

// ListComments godoc
// @Summary      List comments across movies
// @Description  Includes hidden comments; filter with the active flag
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        page      query int    false "Page number"
// @Param        page_size query int    false "Items per page"
// @Param        active    query bool   false "Active flag filter"
// @Param        movie_id  query int    false "Movie filter"
// @Param        search    query string false "Text substring"
// @Success      200  {object}  utils.Envelope
// @Router       /admin/comments [get]
func (amo *AdminModerationController) ListComments(c *gin.Context) {
	query := amo.DB.Model(&models.Comment{})
	if active := c.Query("active"); active != "" {
		query = query.Where("is_active = ?", active == "true")
	}
	if movieID := c.Query("movie_id"); movieID != "" {
		query = query.Where("movie_id = ?", movieID)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("text LIKE ?", "%"+search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalError(c, "comment count failed", err)
		return
	}

	page := utils.GetPage(c)
	pageSize := utils.GetPageSize(c)

	var comments []models.Comment
	if err := query.Preload("User").Preload("Movie").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&comments).Error; err != nil {
		utils.InternalError(c, "comment listing failed", err)
		return
	}

	lang := utils.ResolveLanguage(c)
	items := make([]gin.H, 0, len(comments))
	for i := range comments {
		items = append(items, gin.H{
			"id":          comments[i].ID,
			"user":        comments[i].User.PublicInfo(),
			"movie_id":    comments[i].MovieID,
			"movie_title": comments[i].Movie.TitleTr.Resolve(lang, comments[i].Movie.Title),
			"text":        comments[i].Text,
			"parent_id":   comments[i].ParentID,
			"is_active":   comments[i].IsActive,
			"created_at":  comments[i].CreatedAt,
		})
	}
	utils.Success(c, "SUCCESS_MESSAGE", gin.H{
		"items":      items,
		"pagination": utils.Paginate(total, page, pageSize),
	})
}

// SetCommentVisibility godoc
// @Summary      Hide or restore a comment
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id     path  int  true "Comment ID"
// @Param        active query bool true "Target visibility"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/comments/{id}/visibility [put]
func (amo *AdminModerationController) SetCommentVisibility(c *gin.Context) {
	var comment models.Comment
	if err := amo.DB.First(&comment, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "COMMENT_NOT_FOUND")
		return
	}

	active := c.Query("active") == "true"
	if err := amo.DB.Model(&comment).Update("is_active", active).Error; err != nil {
		utils.InternalError(c, "comment visibility update failed", err)
		return
	}

	admin := middleware.CurrentUser(c)
	verb := "hid"
	if active {
		verb = "restored"
	}
	amo.activityService.RecordActivity(models.ActivityComment,
		fmt.Sprintf("admin %q %s comment %d", admin.Username, verb, comment.ID))
	utils.Success(c, "UPDATED", gin.H{"id": comment.ID, "is_active": active})
}

// PurgeComment godoc
// @Summary      Permanently remove a comment
// @Description  Hard delete for moderation, unlike the author's soft delete
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Comment ID"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/comments/{id} [delete]
func (amo *AdminModerationController) PurgeComment(c *gin.Context) {
	res := amo.DB.Unscoped().Delete(&models.Comment{}, c.Param("id"))
	if res.Error != nil {
		utils.InternalError(c, "comment purge failed", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "COMMENT_NOT_FOUND")
		return
	}
	utils.Success(c, "DELETED", nil)
}

// ListRatings godoc
// @Summary      List ratings across movies
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        page      query int false "Page number"
// @Param        page_size query int false "Items per page"
// @Param        movie_id  query int false "Movie filter"
// @Param        user_id   query int false "User filter"
// @Success      200  {object}  utils.Envelope
// @Router       /admin/ratings [get]
func (amo *AdminModerationController) ListRatings(c *gin.Context) {
	query := amo.DB.Model(&models.Rating{})
	if movieID := c.Query("movie_id"); movieID != "" {
		query = query.Where("movie_id = ?", movieID)
	}
	if userID := c.Query("user_id"); userID != "" {
		query = query.Where("user_id = ?", userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalError(c, "rating count failed", err)
		return
	}

	page := utils.GetPage(c)
	pageSize := utils.GetPageSize(c)

	var ratings []models.Rating
	if err := query.Preload("User").Preload("Movie").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&ratings).Error; err != nil {
		utils.InternalError(c, "rating listing failed", err)
		return
	}

	lang := utils.ResolveLanguage(c)
	items := make([]models.RatingResponse, 0, len(ratings))
	for i := range ratings {
		items = append(items, ratings[i].ToResponse(lang))
	}
	utils.Success(c, "SUCCESS_MESSAGE", gin.H{
		"items":      items,
		"pagination": utils.Paginate(total, page, pageSize),
	})
}

// PurgeRating godoc
// @Summary      Permanently remove a rating
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Rating ID"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/ratings/{id} [delete]
func (amo *AdminModerationController) PurgeRating(c *gin.Context) {
	res := amo.DB.Unscoped().Delete(&models.Rating{}, c.Param("id"))
	if res.Error != nil {
		utils.InternalError(c, "rating purge failed", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "NOT_FOUND")
		return
	}
	utils.Success(c, "DELETED", nil)
}
