package controllers

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/utils"
)

type AdminCatalogController struct {
	DB *gorm.DB
}

func NewAdminCatalogController(db *gorm.DB) *AdminCatalogController {
	return &AdminCatalogController{DB: db}
}

// CategoryRequest is the admin payload for a taxonomy category.
type CategoryRequest struct {
	Name          string               `json:"name" binding:"required"`
	NameTr        models.LocalizedText `json:"name_tr"`
	Description   string               `json:"description"`
	DescriptionTr models.LocalizedText `json:"description_tr"`
	Icon          string               `json:"icon"`
	Order         int                  `json:"order"`
	IsActive      *bool                `json:"is_active"`
}

// GenreRequest is the admin payload for a genre.
type GenreRequest struct {
	Name          string               `json:"name" binding:"required"`
	NameTr        models.LocalizedText `json:"name_tr"`
	Description   string               `json:"description"`
	DescriptionTr models.LocalizedText `json:"description_tr"`
	CategoryID    *uint                `json:"category_id"`
}

// CreateCategory godoc
// @Summary      Create a category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        category body CategoryRequest true "Category data"
// @Success      201  {object}  utils.Envelope
// @Failure      400  {object}  utils.Envelope
// @Router       /admin/categories [post]
func (acc *AdminCatalogController) CreateCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	category := models.Category{
		Name:          req.Name,
		NameTr:        req.NameTr,
		Slug:          utils.UniqueSlug(acc.DB, "categories", req.Name),
		Description:   req.Description,
		DescriptionTr: req.DescriptionTr,
		Icon:          req.Icon,
		Order:         req.Order,
		IsActive:      true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := acc.DB.Create(&category).Error; err != nil {
		utils.ValidationError(c, utils.FieldErrors{
			"name": {
				"en": "A category with this name already exists.",
				"uz": "Bu nomdagi kategoriya allaqachon mavjud.",
				"ru": "Категория с таким названием уже существует.",
			},
		})
		return
	}
	utils.Success(c, "CREATED", category.ToResponse(utils.ResolveLanguage(c)))
}

// UpdateCategory godoc
// @Summary      Update a category
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id       path int             true "Category ID"
// @Param        category body CategoryRequest true "Category data"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/categories/{id} [put]
func (acc *AdminCatalogController) UpdateCategory(c *gin.Context) {
	var category models.Category
	if err := acc.DB.First(&category, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "NOT_FOUND")
		return
	}

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	category.Name = req.Name
	category.NameTr = req.NameTr
	category.Description = req.Description
	category.DescriptionTr = req.DescriptionTr
	category.Icon = req.Icon
	category.Order = req.Order
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if err := acc.DB.Save(&category).Error; err != nil {
		utils.InternalError(c, "category update failed", err)
		return
	}
	utils.Success(c, "UPDATED", category.ToResponse(utils.ResolveLanguage(c)))
}

// DeleteCategory godoc
// @Summary      Delete a category
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Category ID"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/categories/{id} [delete]
func (acc *AdminCatalogController) DeleteCategory(c *gin.Context) {
	res := acc.DB.Delete(&models.Category{}, c.Param("id"))
	if res.Error != nil {
		utils.InternalError(c, "category deletion failed", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "NOT_FOUND")
		return
	}
	utils.Success(c, "DELETED", nil)
}

// CreateGenre godoc
// @Summary      Create a genre
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        genre body GenreRequest true "Genre data"
// @Success      201  {object}  utils.Envelope
// @Failure      400  {object}  utils.Envelope
// @Router       /admin/genres [post]
func (acc *AdminCatalogController) CreateGenre(c *gin.Context) {
	var req GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	if req.CategoryID != nil {
		var n int64
		acc.DB.Model(&models.Category{}).Where("id = ?", *req.CategoryID).Count(&n)
		if n == 0 {
			utils.NotFound(c, "GENRE_NOT_FOUND")
			return
		}
	}

	genre := models.Genre{
		Name:          req.Name,
		NameTr:        req.NameTr,
		Slug:          utils.UniqueSlug(acc.DB, "genres", req.Name),
		Description:   req.Description,
		DescriptionTr: req.DescriptionTr,
		CategoryID:    req.CategoryID,
	}
	if err := acc.DB.Create(&genre).Error; err != nil {
		utils.ValidationError(c, utils.FieldErrors{
			"name": {
				"en": "A genre with this name already exists.",
				"uz": "Bu nomdagi janr allaqachon mavjud.",
				"ru": "Жанр с таким названием уже существует.",
			},
		})
		return
	}
	utils.Success(c, "CREATED", genre.ToResponse(utils.ResolveLanguage(c)))
}

// UpdateGenre godoc
// @Summary      Update a genre
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path int          true "Genre ID"
// @Param        genre body GenreRequest true "Genre data"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/genres/{id} [put]
func (acc *AdminCatalogController) UpdateGenre(c *gin.Context) {
	var genre models.Genre
	if err := acc.DB.First(&genre, c.Param("id")).Error; err != nil {
		utils.NotFound(c, "GENRE_NOT_FOUND")
		return
	}

	var req GenreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	genre.Name = req.Name
	genre.NameTr = req.NameTr
	genre.Description = req.Description
	genre.DescriptionTr = req.DescriptionTr
	genre.CategoryID = req.CategoryID

	if err := acc.DB.Save(&genre).Error; err != nil {
		utils.InternalError(c, "genre update failed", err)
		return
	}
	utils.Success(c, "UPDATED", genre.ToResponse(utils.ResolveLanguage(c)))
}

// DeleteGenre godoc
// @Summary      Delete a genre
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        id path int true "Genre ID"
// @Success      200  {object}  utils.Envelope
// @Failure      404  {object}  utils.Envelope
// @Router       /admin/genres/{id} [delete]
func (acc *AdminCatalogController) DeleteGenre(c *gin.Context) {
	res := acc.DB.Delete(&models.Genre{}, c.Param("id"))
	if res.Error != nil {
		utils.InternalError(c, "genre deletion failed", res.Error)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, "GENRE_NOT_FOUND")
		return
	}
	utils.Success(c, "DELETED", nil)
}
