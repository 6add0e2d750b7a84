package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/utils"
)

// GetCategories godoc
// @Summary      List active categories
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  utils.Envelope
// @Router       /categories [get]
func GetCategories(c *gin.Context) {
	var categories []models.Category
	if err := models.DB.Where("is_active = ?", true).
		Order("name ASC").Find(&categories).Error; err != nil {
		utils.InternalError(c, "category listing failed", err)
		return
	}
	lang := utils.ResolveLanguage(c)
	items := make([]models.CategoryResponse, 0, len(categories))
	for i := range categories {
		items = append(items, categories[i].ToResponse(lang))
	}
	utils.Success(c, "SUCCESS_MESSAGE", items)
}

// GetGenres godoc
// @Summary      List genres
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  utils.Envelope
// @Router       /genres [get]
func GetGenres(c *gin.Context) {
	var genres []models.Genre
	if err := models.DB.Order("name ASC").Find(&genres).Error; err != nil {
		utils.InternalError(c, "genre listing failed", err)
		return
	}
	lang := utils.ResolveLanguage(c)
	items := make([]models.GenreResponse, 0, len(genres))
	for i := range genres {
		items = append(items, genres[i].ToResponse(lang))
	}
	utils.Success(c, "SUCCESS_MESSAGE", items)
}
