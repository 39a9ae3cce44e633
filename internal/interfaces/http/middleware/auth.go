package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"verifyme.backend/pkg/jwt"
)

const (
	// AuthorizationHeader is the header key for authorization
	AuthorizationHeader = "Authorization"
	// BearerPrefix is the prefix for bearer tokens
	BearerPrefix = "Bearer "
	// CompanyIDKey is the context key for the authenticated company id
	CompanyIDKey = "companyId"
	// CompanyEmailKey is the context key for the authenticated company email
	CompanyEmailKey = "companyEmail"
)

// AuthMiddleware creates a new authentication middleware
func AuthMiddleware(jwtService *jwt.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(AuthorizationHeader)
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   true,
				"message": "Authorization header is required",
			})
			return
		}

		if !strings.HasPrefix(authHeader, BearerPrefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   true,
				"message": "Invalid authorization format. Use: Bearer <token>",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, BearerPrefix)
		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			message := "Invalid token"
			if err == jwt.ErrExpiredToken {
				message = "Token has expired"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   true,
				"message": message,
			})
			return
		}

		c.Set(CompanyIDKey, claims.CompanyID)
		c.Set(CompanyEmailKey, claims.Email)

		c.Next()
	}
}

// GetCompanyID gets the authenticated company id from context
func GetCompanyID(c *gin.Context) (uuid.UUID, bool) {
	companyID, exists := c.Get(CompanyIDKey)
	if !exists {
		return uuid.Nil, false
	}
	return companyID.(uuid.UUID), true
}

// GetCompanyEmail gets the authenticated company email from context
func GetCompanyEmail(c *gin.Context) (string, bool) {
	email, exists := c.Get(CompanyEmailKey)
	if !exists {
		return "", false
	}
	return email.(string), true
}
