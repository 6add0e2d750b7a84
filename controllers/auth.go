package controllers

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/diyorbe-beep/kino11111/middleware"
	"github.com/diyorbe-beep/kino11111/models"
	"github.com/diyorbe-beep/kino11111/services/activity"
	"github.com/diyorbe-beep/kino11111/services/mail"
	"github.com/diyorbe-beep/kino11111/utils"
)

type AuthController struct {
	DB              *gorm.DB
	activityService *activity.ActivityService
	mailService     *mail.MailService
}

func NewAuthController(db *gorm.DB, activityService *activity.ActivityService, mailService *mail.MailService) *AuthController {
	return &AuthController{
		DB:              db,
		activityService: activityService,
		mailService:     mailService,
	}
}

// RegisterRequest is the registration payload
type RegisterRequest struct {
	Username        string `json:"username" binding:"required" example:"user123"`
	Email           string `json:"email" binding:"required,email" example:"user@example.com"`
	Password        string `json:"password" binding:"required" example:"password123"`
	PasswordConfirm string `json:"password_confirm" binding:"required" example:"password123"`
	FirstName       string `json:"first_name" example:"John"`
	LastName        string `json:"last_name" example:"Doe"`
	Phone           string `json:"phone" example:"+998901234567"`
}

// LoginRequest is the login payload; username also accepts email or phone
type LoginRequest struct {
	Username string `json:"username" binding:"required" example:"user123"`
	Password string `json:"password" binding:"required" example:"password123"`
}

// RefreshRequest carries the refresh token
type RefreshRequest struct {
	Refresh string `json:"refresh" binding:"required"`
}

// ChangePasswordRequest is the password change payload
type ChangePasswordRequest struct {
	OldPassword        string `json:"old_password" binding:"required"`
	NewPassword        string `json:"new_password" binding:"required"`
	NewPasswordConfirm string `json:"new_password_confirm" binding:"required"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user with its profile and returns a token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        registration body RegisterRequest true "Registration data"
// @Success      201  {object}  utils.Envelope
// @Failure      400  {object}  utils.Envelope
// @Router       /auth/register [post]
func (ac *AuthController) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	fieldErrors := utils.FieldErrors{}
	if len(req.Password) < 6 {
		fieldErrors["password"] = map[string]string{
			"en": "Password must be at least 6 characters.",
			"uz": "Parol kamida 6 belgidan iborat bo'lishi kerak.",
			"ru": "Пароль должен содержать не менее 6 символов.",
		}
	}
	if req.Password != req.PasswordConfirm {
		fieldErrors["password_confirm"] = map[string]string{
			"en": "Passwords do not match.",
			"uz": "Parollar mos kelmadi.",
			"ru": "Пароли не совпадают.",
		}
	}

	var n int64
	ac.DB.Model(&models.User{}).Where("email = ?", req.Email).Count(&n)
	if n > 0 {
		fieldErrors["email"] = map[string]string{
			"en": "A user with this email already exists.",
			"uz": "Bu email bilan foydalanuvchi allaqachon mavjud.",
			"ru": "Пользователь с этим email уже существует.",
		}
	}
	ac.DB.Model(&models.User{}).Where("username = ?", req.Username).Count(&n)
	if n > 0 {
		fieldErrors["username"] = map[string]string{
			"en": "A user with this username already exists.",
			"uz": "Bu foydalanuvchi nomi bilan allaqachon mavjud.",
			"ru": "Пользователь с этим именем уже существует.",
		}
	}

	if len(fieldErrors) > 0 {
		utils.ValidationError(c, fieldErrors)
		return
	}

	user := models.User{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      models.RoleRegular,
		IsActive:  true,
	}
	if req.Phone != "" {
		user.Phone = &req.Phone
	}

	if err := user.HashPassword(); err != nil {
		utils.InternalError(c, "password hashing failed", err)
		return
	}

	// user and profile are created in one transaction: no user row ever
	// exists without its profile
	if err := models.CreateUserWithProfile(ac.DB, &user); err != nil {
		// racing registration past the checks above still loses here on
		// the unique indexes
		utils.ValidationError(c, utils.FieldErrors{
			"non_field_errors": {
				"en": "A user with these credentials already exists.",
				"uz": "Bunday ma'lumotli foydalanuvchi allaqachon mavjud.",
				"ru": "Пользователь с такими данными уже существует.",
			},
		})
		return
	}

	access, refresh, err := middleware.GenerateTokenPair(&user)
	if err != nil {
		utils.InternalError(c, "token generation failed", err)
		return
	}

	ac.activityService.RecordActivity(models.ActivityUser,
		fmt.Sprintf("new user %q registered", user.Username))
	go ac.mailService.SendWelcome(user.Email, user.Username)

	utils.Success(c, "CREATED", gin.H{
		"user":    userPayload(&user),
		"access":  access,
		"refresh": refresh,
	})
}

// Login godoc
// @Summary      Log in
// @Description  Authenticates by username, email or phone and returns a token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        login body LoginRequest true "Credentials"
// @Success      200  {object}  utils.Envelope
// @Failure      401  {object}  utils.Envelope
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	var user models.User
	if err := ac.DB.Where("username = ? OR email = ? OR phone = ?",
		req.Username, req.Username, req.Username).First(&user).Error; err != nil {
		utils.Error(c, "INVALID_CREDENTIALS", nil)
		return
	}

	if err := user.ComparePassword(req.Password); err != nil {
		utils.Error(c, "INVALID_CREDENTIALS", nil)
		return
	}

	if !user.IsActive {
		utils.Error(c, "AUTHENTICATION_FAILED", nil)
		return
	}

	access, refresh, err := middleware.GenerateTokenPair(&user)
	if err != nil {
		utils.InternalError(c, "token generation failed", err)
		return
	}

	utils.Success(c, "SUCCESS_MESSAGE", gin.H{
		"user":    userPayload(&user),
		"access":  access,
		"refresh": refresh,
	})
}

// RefreshToken godoc
// @Summary      Refresh the token pair
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        refresh body RefreshRequest true "Refresh token"
// @Success      200  {object}  utils.Envelope
// @Failure      401  {object}  utils.Envelope
// @Router       /auth/token/refresh [post]
func (ac *AuthController) RefreshToken(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	claims, err := middleware.ParseToken(req.Refresh)
	if err != nil {
		utils.Error(c, "INVALID_TOKEN", nil)
		return
	}
	user, err := middleware.UserFromClaims(claims, middleware.TokenRefresh)
	if err != nil {
		utils.Error(c, "INVALID_TOKEN", nil)
		return
	}

	access, refresh, err := middleware.GenerateTokenPair(user)
	if err != nil {
		utils.InternalError(c, "token generation failed", err)
		return
	}

	utils.Success(c, "SUCCESS_MESSAGE", gin.H{
		"access":  access,
		"refresh": refresh,
	})
}

// Logout godoc
// @Summary      Log out
// @Description  Ends the session; token revocation is handled by the token service
// @Tags         auth
// @Produce      json
// @Security     Bearer
// @Success      200  {object}  utils.Envelope
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *gin.Context) {
	utils.Success(c, "SUCCESS_MESSAGE", gin.H{"message": "Successfully logged out"})
}

// ChangePassword godoc
// @Summary      Change the current user's password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        passwords body ChangePasswordRequest true "Old and new password"
// @Success      200  {object}  utils.Envelope
// @Failure      400  {object}  utils.Envelope
// @Router       /auth/change-password [post]
func (ac *AuthController) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ValidationError(c, gin.H{"detail": err.Error()})
		return
	}

	if len(req.NewPassword) < 6 {
		utils.ValidationError(c, utils.FieldErrors{
			"new_password": {
				"en": "Password must be at least 6 characters.",
				"uz": "Parol kamida 6 belgidan iborat bo'lishi kerak.",
				"ru": "Пароль должен содержать не менее 6 символов.",
			},
		})
		return
	}
	if req.NewPassword != req.NewPasswordConfirm {
		utils.ValidationError(c, utils.FieldErrors{
			"new_password_confirm": {
				"en": "New passwords do not match.",
				"uz": "Yangi parollar mos kelmadi.",
				"ru": "Новые пароли не совпадают.",
			},
		})
		return
	}

	user := middleware.CurrentUser(c)
	if err := user.ComparePassword(req.OldPassword); err != nil {
		utils.ValidationError(c, utils.FieldErrors{
			"old_password": {
				"en": "Current password is incorrect",
				"uz": "Joriy parol noto'g'ri",
				"ru": "Текущий пароль неверен",
			},
		})
		return
	}

	user.Password = req.NewPassword
	if err := user.HashPassword(); err != nil {
		utils.InternalError(c, "password hashing failed", err)
		return
	}
	if err := ac.DB.Model(user).Update("password", user.Password).Error; err != nil {
		utils.InternalError(c, "password update failed", err)
		return
	}

	utils.Success(c, "UPDATED", nil)
}

// CheckUsername godoc
// @Summary      Check username availability
// @Tags         auth
// @Produce      json
// @Param        username query string true "Username to check"
// @Success      200  {object}  utils.Envelope
// @Router       /auth/check-username [get]
func (ac *AuthController) CheckUsername(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		utils.ValidationError(c, gin.H{"username": "required"})
		return
	}
	var n int64
	ac.DB.Model(&models.User{}).Where("username = ?", username).Count(&n)
	utils.Success(c, "SUCCESS_MESSAGE", gin.H{"username": username, "available": n == 0})
}

// CheckEmail godoc
// @Summary      Check email availability
// @Tags         auth
// @Produce      json
// @Param        email query string true "Email to check"
// @Success      200  {object}  utils.Envelope
// @Router       /auth/check-email [get]
func (ac *AuthController) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.ValidationError(c, gin.H{"email": "required"})
		return
	}
	var n int64
	ac.DB.Model(&models.User{}).Where("email = ?", email).Count(&n)
	utils.Success(c, "SUCCESS_MESSAGE", gin.H{"email": email, "available": n == 0})
}

// userPayload is the account-owner view of a user, profile included.
func userPayload(user *models.User) gin.H {
	payload := gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"email":         user.Email,
		"first_name":    user.FirstName,
		"last_name":     user.LastName,
		"phone":         user.Phone,
		"bio":           user.Bio,
		"avatar":        user.Avatar,
		"role":          user.Role,
		"is_premium":    user.IsPremium,
		"premium_until": user.PremiumUntil,
		"created_at":    user.CreatedAt,
	}
	if user.Profile != nil {
		payload["profile"] = user.Profile
	}
	return payload
}
