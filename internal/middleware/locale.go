package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/plantilla/apiestudiantes/internal/pkg/messages"
	"golang.org/x/text/language"
)

// LocaleExtractor parses the Accept-Language header and stores the request
// locale in the request context, where the services pick it up for message
// resolution. Requests without the header get the configured default locale.
func LocaleExtractor(defaultLocale language.Tag) gin.HandlerFunc {
	return func(c *gin.Context) {
		locale := defaultLocale
		if header := c.GetHeader("Accept-Language"); header != "" {
			if tags, _, err := language.ParseAcceptLanguage(header); err == nil && len(tags) > 0 {
				locale = tags[0]
			}
		}
		ctx := messages.WithLocale(c.Request.Context(), locale)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
