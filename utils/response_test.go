package utils

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEnvelopeUsesRequestLanguage(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Set(LangContextKey, "ru")

	status, body := BuildEnvelope(c, "MOVIE_NOT_FOUND", nil)
	assert.Equal(t, 404, status)
	assert.Equal(t, "MOVIE_NOT_FOUND", body.ID)
	assert.Equal(t, "Фильм не найден", body.Message)
}

func TestSuccessWritesEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/", nil)

	Success(c, "SUCCESS_MESSAGE", gin.H{"value": 42})

	assert.Equal(t, 200, w.Code)
	var envelope Envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "SUCCESS_MESSAGE", envelope.ID)
	assert.NotEmpty(t, envelope.Message)
	assert.NotNil(t, envelope.Data)
	assert.Nil(t, envelope.Errors)
}

func TestValidationErrorCarriesFieldDetails(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("POST", "/", nil)

	ValidationError(c, FieldErrors{
		"password_confirm": {
			"en": "Passwords do not match.",
			"uz": "Parollar mos kelmadi.",
			"ru": "Пароли не совпадают.",
		},
	})

	assert.Equal(t, 400, w.Code)
	var envelope struct {
		ID     string                       `json:"id"`
		Errors map[string]map[string]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "VALIDATION_ERROR", envelope.ID)
	require.Contains(t, envelope.Errors, "password_confirm")
	assert.Equal(t, "Passwords do not match.", envelope.Errors["password_confirm"]["en"])
	assert.Equal(t, "Пароли не совпадают.", envelope.Errors["password_confirm"]["ru"])
}
