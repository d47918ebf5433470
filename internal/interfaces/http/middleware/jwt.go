package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/foodcourt/storefront/internal/infrastructure/auth"
	"github.com/foodcourt/storefront/internal/interfaces/http/dto"
)

// JWT context keys
const (
	JWTClaimsKey  = "jwt_claims"
	AuthHeaderKey = "Authorization"
	BearerPrefix  = "Bearer "
)

// JWTAuth validates the bearer token and rejects blacklisted tokens.
// A 401 here is the storefront's signal to clear its stored token.
func JWTAuth(jwtService *auth.JWTService, blacklist auth.TokenBlacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader(AuthHeaderKey)
		if header == "" || !strings.HasPrefix(header, BearerPrefix) {
			unauthorized(c, "Authentication required.")
			return
		}
		tokenString := strings.TrimPrefix(header, BearerPrefix)
		if tokenString == "" {
			unauthorized(c, "Authentication required.")
			return
		}

		claims, err := jwtService.ValidateToken(tokenString)
		if err != nil {
			unauthorized(c, "Invalid or expired token.")
			return
		}

		if blacklist != nil {
			blocked, err := blacklist.Contains(c.Request.Context(), claims.ID)
			if err == nil && blocked {
				unauthorized(c, "Token has been revoked.")
				return
			}
		}

		c.Set(JWTClaimsKey, claims)
		c.Next()
	}
}

// GetClaims returns the validated claims set by JWTAuth, or nil
func GetClaims(c *gin.Context) *auth.Claims {
	v, ok := c.Get(JWTClaimsKey)
	if !ok {
		return nil
	}
	claims, ok := v.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

func unauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewMessageResponse(message))
}
