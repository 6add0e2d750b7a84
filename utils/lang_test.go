package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestParseAcceptLanguage(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"en", "en"},
		{"uz", "uz"},
		{"ru", "ru"},
		{"ru-RU,en;q=0.8", "ru"},
		{"uz-Latn-UZ", "uz"},
		{"en-US,en;q=0.9,ru;q=0.8", "en"},
		{"RU", "ru"},
		{"fr", "en"},
		{"fr-FR,de;q=0.7", "en"},
		{"", "en"},
		{"*", "en"},
	}
	for _, tt := range tests {
		t.Run(tt.header, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAcceptLanguage(tt.header))
		})
	}
}

func TestResolveLanguagePrecedence(t *testing.T) {
	gin.SetMode(gin.TestMode)

	// explicit context value wins over the header
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Accept-Language", "ru")
	c.Set(LangContextKey, "uz")
	assert.Equal(t, "uz", ResolveLanguage(c))

	// header alone
	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	c.Request.Header.Set("Accept-Language", "ru-RU,en;q=0.8")
	assert.Equal(t, "ru", ResolveLanguage(c))

	// nothing resolves to English
	c, _ = gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, "en", ResolveLanguage(c))
}
