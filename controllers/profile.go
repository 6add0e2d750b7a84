package controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diyorbe-beep/kino11111/middleware"
	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/utils"
)

type ProfileController struct {
	DB        *gorm.DB
	AvatarDir string
}

func NewProfileController(db *gorm.DB) *ProfileController {
	return &ProfileController{DB: db, AvatarDir: "uploads/avatars"}
}

// UpdateProfileRequest carries the editable account fields. Pointers
// distinguish "leave unchanged" from "set to empty".
type UpdateProfileRequest struct {
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	Bio         *string `json:"bio"`
	Phone       *string `json:"phone"`
	DateOfBirth *string `json:"date_of_birth"` // YYYY-MM-DD
	Language    *string `json:"language"`
	Theme       *string `json:"theme"`
	EmailNotify *bool   `json:"email_notifications"`
}

// GetProfile godoc
// @Summary      Get the current user's profile
// @Tags         profile
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  utils.Envelope
// @Router       /users/me [get]
func (pc *ProfileController) GetProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if err := pc.DB.Preload("Profile").First(user, user.ID).Error; err != nil {
		utils.Error(c, "USER_NOT_FOUND", nil)
		return
	}
	utils.Success(c, "SUCCESS_MESSAGE", userPayload(user))
}

// UpdateProfile godoc
// @Summary      Update the current user's profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        profile body UpdateProfileRequest true "Fields to update"
// @Success      200  {object}  utils.Envelope
// @Failure      400  {object}  utils.Envelope
// @Router       /users/me [put]
func (pc *ProfileController) UpdateProfile(c *gin.Context) {
	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	user := middleware.CurrentUser(c)

	userUpdates := map[string]interface{}{}
	if req.FirstName != nil {
		userUpdates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		userUpdates["last_name"] = *req.LastName
	}
	if req.Bio != nil {
		userUpdates["bio"] = *req.Bio
	}
	if req.Phone != nil {
		if *req.Phone == "" {
			userUpdates["phone"] = nil
		} else {
			userUpdates["phone"] = *req.Phone
		}
	}
	if req.DateOfBirth != nil {
		dob, err := time.Parse("2006-01-02", *req.DateOfBirth)
		if err != nil {
			utils.ValidationError(c, utils.FieldErrors{
				"date_of_birth": {
					"en": "Date must be in YYYY-MM-DD format.",
					"uz": "Sana YYYY-MM-DD formatida bo'lishi kerak.",
					"ru": "Дата должна быть в формате YYYY-MM-DD.",
				},
			})
			return
		}
		userUpdates["date_of_birth"] = dob
	}

	profileUpdates := map[string]interface{}{}
	if req.Language != nil {
		if !models.SupportedLanguage(*req.Language) {
			utils.ValidationError(c, utils.FieldErrors{
				"language": {
					"en": "Unsupported language.",
					"uz": "Qo'llab-quvvatlanmaydigan til.",
					"ru": "Неподдерживаемый язык.",
				},
			})
			return
		}
		profileUpdates["language"] = *req.Language
	}
	if req.Theme != nil {
		profileUpdates["theme"] = *req.Theme
	}
	if req.EmailNotify != nil {
		profileUpdates["email_notifications"] = *req.EmailNotify
	}

	err := pc.DB.Transaction(func(tx *gorm.DB) error {
		if len(userUpdates) > 0 {
			if err := tx.Model(user).Updates(userUpdates).Error; err != nil {
				return err
			}
		}
		if len(profileUpdates) > 0 {
			if err := tx.Model(&models.UserProfile{}).
				Where("user_id = ?", user.ID).
				Updates(profileUpdates).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		utils.InternalError(c, "profile update failed", err)
		return
	}

	if err := pc.DB.Preload("Profile").First(user, user.ID).Error; err != nil {
		utils.Error(c, "USER_NOT_FOUND", nil)
		return
	}
	utils.Success(c, "UPDATED", userPayload(user))
}

// UploadAvatar godoc
// @Summary      Upload the current user's avatar
// @Tags         profile
// @Accept       multipart/form-data
// @Produce      json
// @Security     Bearer
// @Param        avatar formData file true "Avatar image"
// @Success      200  {object}  utils.Envelope
// @Failure      400  {object}  utils.Envelope
// @Router       /users/me/avatar [post]
func (pc *ProfileController) UploadAvatar(c *gin.Context) {
	file, err := c.FormFile("avatar")
	if err != nil {
		utils.ValidationError(c, gin.H{"avatar": "required"})
		return
	}
	if file.Size > 10*1024*1024 {
		utils.ValidationError(c, utils.FieldErrors{
			"avatar": {
				"en": "Avatar must be smaller than 10MB.",
				"uz": "Avatar 10MB dan kichik bo'lishi kerak.",
				"ru": "Аватар должен быть меньше 10МБ.",
			},
		})
		return
	}

	ext := filepath.Ext(file.Filename)
	switch ext {
	case ".jpg", ".jpeg", ".png", ".webp":
	default:
		utils.ValidationError(c, utils.FieldErrors{
			"avatar": {
				"en": "Only jpg, png and webp images are allowed.",
				"uz": "Faqat jpg, png va webp rasmlar qabul qilinadi.",
				"ru": "Допускаются только изображения jpg, png и webp.",
			},
		})
		return
	}

	user := middleware.CurrentUser(c)
	if err := os.MkdirAll(pc.AvatarDir, 0755); err != nil {
		utils.InternalError(c, "avatar directory creation failed", err)
		return
	}
	suffix, err := utils.GenerateRandomString(8)
	if err != nil {
		utils.InternalError(c, "avatar name generation failed", err)
		return
	}
	name := fmt.Sprintf("%d_%s%s", user.ID, suffix, ext)
	dst := filepath.Join(pc.AvatarDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		utils.InternalError(c, "avatar save failed", err)
		return
	}

	if err := pc.DB.Model(user).Update("avatar", "/"+dst).Error; err != nil {
		utils.InternalError(c, "avatar update failed", err)
		return
	}
	utils.Success(c, "UPDATED", gin.H{"avatar": "/" + dst})
}
