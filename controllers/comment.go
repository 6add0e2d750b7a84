package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/diyorbe-beep/kino11111/middleware"
	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/utils"
)

// CommentRequest is the create/update payload for a comment.
type CommentRequest struct {
	Text     string `json:"text" binding:"required"`
	ParentID *uint  `json:"parent_id"`
}

// GetMovieComments godoc
// @Summary      List a movie's comments
// @Description  Active top-level comments, newest first, replies nested
// @Tags         comments
// @Produce      json
// @Param        slug      path  string true  "Movie slug"
// @Param        page      query int    false "Page number"
// @Param        page_size query int    false "Items per page"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /movies/{slug}/comments [get]
func GetMovieComments(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var movie models.Movie
	if err := models.DB.Where("slug = ?", c.Param("slug")).First(&movie).Error; err != nil {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}
	if !models.CanView(user, &movie) {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}

	query := models.DB.Model(&models.Comment{}).
		Where("movie_id = ? AND parent_id IS NULL AND is_active = ?", movie.ID, true)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalError(c, "comment count failed", err)
		return
	}

	page := utils.GetPage(c)
	pageSize := utils.GetPageSize(c)

	var comments []models.Comment
	if err := query.Preload("User").
		Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&comments).Error; err != nil {
		utils.InternalError(c, "comment listing failed", err)
		return
	}

	lang := utils.ResolveLanguage(c)
	items := make([]models.CommentResponse, 0, len(comments))
	for i := range comments {
		items = append(items, comments[i].ToResponse(models.DB, lang))
	}
	utils.Success(c, "SUCCESS_MESSAGE", gin.H{
		"items":      items,
		"pagination": utils.Paginate(total, page, pageSize),
	})
}

// CreateComment godoc
// @Summary      Comment on a movie
// @Description  Creates a comment or, with parent_id, a reply on the same movie
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        slug    path string         true "Movie slug"
// @Param        comment body CommentRequest true "Comment text and optional parent"
// @Success      201  {object}  utils.Envelope
// @Failure      400  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /movies/{slug}/comments [post]
func CreateComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)

	var movie models.Movie
	if err := models.DB.Where("slug = ?", c.Param("slug")).First(&movie).Error; err != nil {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}
	if !models.CanView(user, &movie) {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}

	if req.ParentID != nil {
		var parent models.Comment
		if err := models.DB.First(&parent, *req.ParentID).Error; err != nil {
			utils.NotFound(c, "COMMENT_NOT_FOUND")
			return
		}
		// a reply always stays on its parent's movie
		if parent.MovieID != movie.ID {
			utils.ValidationError(c, utils.FieldErrors{
				"parent_id": {
					"en": "Reply must belong to the same movie as its parent.",
					"uz": "Javob asosiy izoh bilan bir xil kinoga tegishli bo'lishi kerak.",
					"ru": "Ответ должен относиться к тому же фильму, что и родительский комментарий.",
				},
			})
			return
		}
	}

	comment := models.Comment{
		UserID:   user.ID,
		MovieID:  movie.ID,
		Text:     req.Text,
		ParentID: req.ParentID,
		IsActive: true,
	}
	if err := models.DB.Create(&comment).Error; err != nil {
		utils.InternalError(c, "comment creation failed", err)
		return
	}

	comment.User = *user
	lang := utils.ResolveLanguage(c)
	utils.Success(c, "CREATED", comment.ToResponse(models.DB, lang))
}

// ReplyRequest carries the text of a direct reply.
type ReplyRequest struct {
	Text string `json:"text" binding:"required"`
}

// ReplyToComment godoc
// @Summary      Reply to a comment
// @Description  The reply lands on the parent's movie
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path int          true "Parent comment ID"
// @Param        reply body ReplyRequest true "Reply text"
// @Success      201  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /comments/{id}/reply [post]
func ReplyToComment(c *gin.Context) {
	var req ReplyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)

	var parent models.Comment
	if err := models.DB.
		Where("id = ? AND is_active = ?", c.Param("id"), true).
		First(&parent).Error; err != nil {
		utils.NotFound(c, "COMMENT_NOT_FOUND")
		return
	}

	var movie models.Movie
	if err := models.DB.First(&movie, parent.MovieID).Error; err != nil {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}
	if !models.CanView(user, &movie) {
		utils.NotFound(c, "MOVIE_NOT_FOUND")
		return
	}

	reply := models.Comment{
		UserID:   user.ID,
		MovieID:  parent.MovieID,
		Text:     req.Text,
		ParentID: &parent.ID,
		IsActive: true,
	}
	if err := models.DB.Create(&reply).Error; err != nil {
		utils.InternalError(c, "reply creation failed", err)
		return
	}

	reply.User = *user
	lang := utils.ResolveLanguage(c)
	utils.Success(c, "CREATED", reply.ToResponse(models.DB, lang))
}

// UpdateComment godoc
// @Summary      Edit a comment
// @Description  Only the author may edit; others get a not-found
// @Tags         comments
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id      path int            true "Comment ID"
// @Param        comment body CommentRequest true "New text"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /comments/{id} [put]
func UpdateComment(c *gin.Context) {
	var req CommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)

	var comment models.Comment
	if err := models.DB.Preload("User").
		Where("id = ? AND user_id = ? AND is_active = ?", c.Param("id"), user.ID, true).
		First(&comment).Error; err != nil {
		utils.NotFound(c, "COMMENT_NOT_FOUND")
		return
	}

	if err := models.DB.Model(&comment).Update("text", req.Text).Error; err != nil {
		utils.InternalError(c, "comment update failed", err)
		return
	}

	lang := utils.ResolveLanguage(c)
	utils.Success(c, "UPDATED", comment.ToResponse(models.DB, lang))
}

// DeleteComment godoc
// @Summary      Delete a comment
// @Description  Soft delete by the author; replies keep their own visibility
// @Tags         comments
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Comment ID"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /comments/{id} [delete]
func DeleteComment(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var comment models.Comment
	if err := models.DB.
		Where("id = ? AND user_id = ? AND is_active = ?", c.Param("id"), user.ID, true).
		First(&comment).Error; err != nil {
		utils.NotFound(c, "COMMENT_NOT_FOUND")
		return
	}

	if err := models.DB.Model(&comment).Update("is_active", false).Error; err != nil {
		utils.InternalError(c, "comment deletion failed", err)
		return
	}
	utils.Success(c, "DELETED", nil)
}
