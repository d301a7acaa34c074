package middleware

import (
	"strings"

	"sufra/config"

	"github.com/gin-gonic/gin"
)

// LanguageContextKey is where the resolved request language is stored.
const LanguageContextKey = "language"

// RequestLanguageMiddleware resolves the editing language for a request from
// the X-Language header (falling back to Accept-Language), validated against
// the configured locale catalog. Unknown or missing languages resolve to the
// default language.
func RequestLanguageMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := strings.TrimSpace(c.GetHeader("X-Language"))
		if lang == "" {
			lang = primaryAcceptLanguage(c.GetHeader("Accept-Language"))
		}
		if !supportedLanguage(lang) {
			lang = config.AppConfig.DefaultLanguage
		}
		c.Set(LanguageContextKey, lang)
		c.Next()
	}
}

// primaryAcceptLanguage extracts the first language code from an
// Accept-Language header, ignoring quality weights and region subtags.
func primaryAcceptLanguage(header string) string {
	if header == "" {
		return ""
	}
	first := strings.Split(header, ",")[0]
	first = strings.Split(first, ";")[0]
	first = strings.Split(first, "-")[0]
	return strings.ToLower(strings.TrimSpace(first))
}

func supportedLanguage(lang string) bool {
	if lang == "" {
		return false
	}
	for _, l := range config.Languages() {
		if l == lang {
			return true
		}
	}
	return false
}

// GetRequestLanguage reads the resolved language back out of the context.
func GetRequestLanguage(c *gin.Context) string {
	if v, ok := c.Get(LanguageContextKey); ok {
		if lang, ok := v.(string); ok {
			return lang
		}
	}
	return config.AppConfig.DefaultLanguage
}
