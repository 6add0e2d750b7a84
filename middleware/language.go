package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/diyorbe-beep/kino11111/utils"
)

// LanguageMiddleware resolves the request language from the Accept-Language
// header, stores it in the context for everything downstream and reflects it
// in the Content-Language response header. Unsupported languages fall back
// to English.
func LanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := utils.ParseAcceptLanguage(c.GetHeader("Accept-Language"))
		c.Set(utils.LangContextKey, lang)
		c.Header("Content-Language", lang)
		c.Next()
	}
}
