package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDetailResolvesPerLanguage(t *testing.T) {
	en := GetDetail("SUCCESS_MESSAGE", "en", nil)
	assert.Equal(t, "SUCCESS_MESSAGE", en.ID)
	assert.Equal(t, 200, en.StatusCode)
	assert.Equal(t, "Operation completed successfully", en.Message)

	uz := GetDetail("SUCCESS_MESSAGE", "uz", nil)
	assert.Equal(t, "Operatsiya muvaffaqiyatli yakunlandi", uz.Message)

	ru := GetDetail("SUCCESS_MESSAGE", "ru", nil)
	assert.Equal(t, "Операция успешно завершена", ru.Message)
}

func TestGetDetailUnknownLanguageFallsBackToEnglish(t *testing.T) {
	detail := GetDetail("MOVIE_NOT_FOUND", "fr", nil)
	assert.Equal(t, GetDetail("MOVIE_NOT_FOUND", "en", nil).Message, detail.Message)
	assert.Equal(t, 404, detail.StatusCode)
}

func TestGetDetailUnknownKey(t *testing.T) {
	detail := GetDetail("NO_SUCH_KEY", "en", nil)
	assert.Equal(t, "UNKNOWN_ERROR", detail.ID)
	assert.Equal(t, "Unknown error occurred", detail.Message)
	assert.Equal(t, 500, detail.StatusCode)
}

func TestGetDetailInterpolatesContext(t *testing.T) {
	detail := GetDetail("PREMIUM_GRANTED", "en", map[string]interface{}{
		"until": "2026-10-01",
	})
	assert.Equal(t, "Premium activated until 2026-10-01", detail.Message)

	// a missing value leaves the placeholder untouched
	plain := GetDetail("PREMIUM_GRANTED", "en", nil)
	assert.Contains(t, plain.Message, "{until}")
}

func TestCatalogHasNoDuplicateKeys(t *testing.T) {
	assert.Empty(t, Validate())
}

func TestCatalogStatusCodes(t *testing.T) {
	cases := map[string]int{
		"CREATED":               201,
		"VALIDATION_ERROR":      400,
		"UNAUTHORIZED":          401,
		"PERMISSION_DENIED":     403,
		"NOT_FOUND":             404,
		"INTERNAL_SERVER_ERROR": 500,
		"PREMIUM_REQUIRED":      403,
		"ALREADY_RATED":         400,
		"INVALID_RATING":        400,
		"MOVIE_NOT_FOUND":       404,
		"INVALID_TOKEN":         401,
	}
	for key, status := range cases {
		assert.Equal(t, status, GetDetail(key, "en", nil).StatusCode, key)
	}
}

func TestCatalogCoversAllLanguages(t *testing.T) {
	for key, tmpl := range Catalog {
		for _, lang := range []string{"en", "uz", "ru"} {
			assert.NotEmpty(t, tmpl.Messages[lang], "%s missing %s", key, lang)
		}
	}
}
