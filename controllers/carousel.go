package controllers

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/utils"
)

type CarouselController struct {
	DB *gorm.DB
}

func NewCarouselController(db *gorm.DB) *CarouselController {
	return &CarouselController{DB: db}
}

// CarouselRequest is the admin create/update payload for a slide.
type CarouselRequest struct {
	Title      string               `json:"title" binding:"required"`
	TitleTr    models.LocalizedText `json:"title_tr"`
	Subtitle   string               `json:"subtitle"`
	SubtitleTr models.LocalizedText `json:"subtitle_tr"`
	ImageURL   string               `json:"image_url" binding:"required"`
	MovieID    *uint                `json:"movie_id"`
	Link       string               `json:"link"`
	Order      int                  `json:"order"`
	IsActive   *bool                `json:"is_active"`
	StartDate  *time.Time           `json:"start_date"`
	EndDate    *time.Time           `json:"end_date"`
}

// GetCarousels godoc
// @Summary      List visible carousel slides
// @Tags         carousel
// @Produce      json
// @Success      200  {object}  utils.Envelope
// @Router       /carousels [get]
func (cc *CarouselController) GetCarousels(c *gin.Context) {
	var slides []models.Carousel
	if err := cc.DB.Where("is_active = ?", true).
		Order("`order` ASC, id ASC").Find(&slides).Error; err != nil {
		utils.InternalError(c, "carousel listing failed", err)
		return
	}

	now := time.Now()
	lang := utils.ResolveLanguage(c)
	items := make([]models.CarouselResponse, 0, len(slides))
	for i := range slides {
		if slides[i].VisibleAt(now) {
			items = append(items, slides[i].ToResponse(lang))
		}
	}
	utils.Success(c, "SUCCESS_MESSAGE", items)
}

// AdminListCarousels godoc
// @Summary      List all carousel slides
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  utils.Envelope
// @Router       /admin/carousels [get]
func (cc *CarouselController) AdminListCarousels(c *gin.Context) {
	var slides []models.Carousel
	if err := cc.DB.Order("`order` ASC, id ASC").Find(&slides).Error; err != nil {
		utils.InternalError(c, "carousel listing failed", err)
		return
	}
	lang := utils.ResolveLanguage(c)
	items := make([]models.CarouselResponse, 0, len(slides))
	for i := range slides {
		items = append(items, slides[i].ToResponse(lang))
	}
	utils.Success(c, "SUCCESS_MESSAGE", items)
}

// CreateCarousel godoc
// @Summary      Create a carousel slide
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        carousel body CarouselRequest true "Slide data"
// @Success      201  {object}  utils.Envelope
// @Failure      400  {object}  utils.Envelope
// @Router       /admin/carousels [post]
func (cc *CarouselController) CreateCarousel(c *gin.Context) {
	var req CarouselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	if req.MovieID != nil {
		var n int64
		cc.DB.Model(&models.Movie{}).Where("id = ?", *req.MovieID).Count(&n)
		if n == 0 {
			utils.NotFound(c, "MOVIE_NOT_FOUND")
			return
		}
	}

	slide := models.Carousel{
		Title:      req.Title,
		TitleTr:    req.TitleTr,
		Subtitle:   req.Subtitle,
		SubtitleTr: req.SubtitleTr,
		ImageURL:   req.ImageURL,
		MovieID:    req.MovieID,
		Link:       req.Link,
		Order:      req.Order,
		IsActive:   true,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
	}
	if req.IsActive != nil {
		slide.IsActive = *req.IsActive
	}

	if err := cc.DB.Create(&slide).Error; err != nil {
		utils.InternalError(c, "carousel creation failed", err)
		return
	}
	utils.Success(c, "CREATED", slide.ToResponse(utils.ResolveLanguage(c)))
}

// UpdateCarousel godoc
// @Summary      Update a carousel slide
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path int             true "Slide ID"
// @Param        carousel body CarouselRequest true "Slide data"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/carousels/{id} [put]
func (cc *CarouselController) UpdateCarousel(c *gin.Context) {
	var slide models.Carousel
	if err := cc.DB.First(&slide, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "NOT_FOUND")
		return
	}

	var req CarouselRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	slide.Title = req.Title
	slide.TitleTr = req.TitleTr
	slide.Subtitle = req.Subtitle
	slide.SubtitleTr = req.SubtitleTr
	slide.ImageURL = req.ImageURL
	slide.MovieID = req.MovieID
	slide.Link = req.Link
	slide.Order = req.Order
	slide.StartDate = req.StartDate
	slide.EndDate = req.EndDate
	if req.IsActive != nil {
		slide.IsActive = *req.IsActive
	}

	if err := cc.DB.Save(&slide).Error; err != nil {
		utils.InternalError(c, "carousel update failed", err)
		return
	}
	utils.Success(c, "UPDATED", slide.ToResponse(utils.ResolveLanguage(c)))
}

// DeleteCarousel godoc
// @Summary      Delete a carousel slide
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Slide ID"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/carousels/{id} [delete]
func (cc *CarouselController) DeleteCarousel(c *gin.Context) {
	res := cc.DB.Delete(&models.Carousel{}, c.Param("id"))
	if res.Error != nil {
		utils.InternalError(c, "carousel deletion failed", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "NOT_FOUND")
		return
	}
	utils.Success(c, "DELETED", nil)
}
