package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diyorbe-beep/kino11111/models"
)

func TestRegisterCreatesUserWithProfileAndTokens(t *testing.T) {
	db, r := setupRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"username":         "newuser",
		"email":            "newuser@example.com",
		"password":         "password123",
		"password_confirm": "password123",
		"first_name":       "New",
	}, nil)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "CREATED", env.ID)

	var data struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Access)
	assert.NotEmpty(t, data.Refresh)

	var user models.User
	require.NoError(t, db.Where("username = ?", "newuser").First(&user).Error)
	assert.NotEqual(t, "password123", user.Password, "password is stored hashed")

	var profiles int64
	db.Model(&models.UserProfile{}).Where("user_id = ?", user.ID).Count(&profiles)
	assert.Equal(t, int64(1), profiles)
}

func TestRegisterPasswordMismatchCreatesNoUser(t *testing.T) {
	db, r := setupRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"username":         "mismatch",
		"email":            "mismatch@example.com",
		"password":         "password123",
		"password_confirm": "different456",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.ID)

	var fieldErrors map[string]map[string]string
	require.NoError(t, json.Unmarshal(env.Errors, &fieldErrors))
	require.Contains(t, fieldErrors, "password_confirm")
	for _, lang := range []string{"en", "uz", "ru"} {
		assert.NotEmpty(t, fieldErrors["password_confirm"][lang])
	}

	var n int64
	db.Model(&models.User{}).Count(&n)
	assert.Equal(t, int64(0), n, "failed validation must not create a user")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db, r := setupRouter(t)
	seedUser(t, db, "existing", nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/register", map[string]interface{}{
		"username":         "someoneelse",
		"email":            "existing@example.com",
		"password":         "password123",
		"password_confirm": "password123",
	}, nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "VALIDATION_ERROR", env.ID)

	var fieldErrors map[string]map[string]string
	require.NoError(t, json.Unmarshal(env.Errors, &fieldErrors))
	assert.Contains(t, fieldErrors, "email")
}

func TestLoginWithUsernameOrEmail(t *testing.T) {
	db, r := setupRouter(t)
	seedUser(t, db, "loginuser", nil)

	for _, identifier := range []string{"loginuser", "loginuser@example.com"} {
		w, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
			"username": identifier,
			"password": "password123",
		}, nil)
		assert.Equal(t, http.StatusOK, w.Code, identifier)
		assert.Equal(t, "SUCCESS_MESSAGE", env.ID)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db, r := setupRouter(t)
	seedUser(t, db, "victim", nil)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"username": "victim",
		"password": "wrong",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_CREDENTIALS", env.ID)
}

func TestRefreshTokenRejectsAccessToken(t *testing.T) {
	db, r := setupRouter(t)
	user := seedUser(t, db, "refresher", nil)

	// an access token must not pass as a refresh token
	access := authHeader(t, user)["Authorization"][len("Bearer "):]
	w, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/token/refresh", map[string]interface{}{
		"refresh": access,
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "INVALID_TOKEN", env.ID)
}

func TestErrorMessagesFollowAcceptLanguage(t *testing.T) {
	_, r := setupRouter(t)

	w, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"username": "ghost",
		"password": "whatever",
	}, map[string]string{"Accept-Language": "ru-RU,en;q=0.8"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Неверные учетные данные", env.Message)

	// unsupported language falls back to English
	w, env = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", map[string]interface{}{
		"username": "ghost",
		"password": "whatever",
	}, map[string]string{"Accept-Language": "fr"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Invalid credentials", env.Message)
}
