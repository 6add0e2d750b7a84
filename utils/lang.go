package utils

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/diyorbe-beep/kino11111/models"
)

// LangContextKey is where the language middleware stores the resolved
// language in the gin context.
const LangContextKey = "lang"

// ParseAcceptLanguage extracts the primary 2-letter subtag from the first
// value of an Accept-Language header, e.g. "ru-RU,en;q=0.8" -> "ru".
// Unsupported or empty values resolve to English.
func ParseAcceptLanguage(header string) string {
	first := strings.TrimSpace(strings.Split(strings.Split(header, ";")[0], ",")[0])
	if len(first) > 2 {
		first = first[:2]
	}
	first = strings.ToLower(first)
	if !models.SupportedLanguage(first) {
		return models.LangEn
	}
	return first
}

// ResolveLanguage determines the request language: an explicit value already
// on the context wins, then the Accept-Language header, then English.
func ResolveLanguage(c *gin.Context) string {
	if c != nil {
		if v, ok := c.Get(LangContextKey); ok {
			if lang, ok := v.(string); ok && models.SupportedLanguage(lang) {
				return lang
			}
		}
		if header := c.GetHeader("Accept-Language"); header != "" {
			return ParseAcceptLanguage(header)
		}
	}
	return models.LangEn
}
