package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

var botUserAgents = []string{
	"bot",
	"crawler",
	"spider",
	"slurp",
	"baidu",
	"yandex",
	"bingbot",
	"googlebot",
	"duckduckbot",
	"curl",
	"wget",
	"python",
	"node",
	"axios",
	"postman",
	"selenium",
	"puppeteer",
	"playwright",
	"phantomjs",
	"headless",
}

func looksLikeBot(r *http.Request) bool {
	userAgent := strings.ToLower(r.UserAgent())
	for _, bot := range botUserAgents {
		if strings.Contains(userAgent, bot) {
			return true
		}
	}

	// Real browsers always send these
	return r.Header.Get("Accept") == "" &&
		r.Header.Get("Accept-Language") == "" &&
		r.Header.Get("Accept-Encoding") == ""
}

// BotDetection rejects requests that look automated
func BotDetection() gin.HandlerFunc {
	return func(c *gin.Context) {
		if looksLikeBot(c.Request) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error":   true,
				"message": "This endpoint is not available for automated access.",
			})
			return
		}
		c.Next()
	}
}
