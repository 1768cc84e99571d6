package middleware

import (
	"net/http"
	"strings"
	"time"

	"print_shop/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims carries the tenant context. Every authenticated request
// resolves to exactly one organization; handlers read it from the gin
// context and pass it down so no query can run unscoped.
type AuthClaims struct {
	UserID         uint   `json:"uid"`
	OrganizationID uint   `json:"org_id"`
	Name           string `json:"name"`
	Role           string `json:"role"`
	jwt.RegisteredClaims
}

// RequestID tags every request for log correlation.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Request.Header.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set("request_id", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)
		c.Next()
	}
}

// JWTAuth validates the bearer token and resolves the tenant context.
func JWTAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}
		if tokenString == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "authorization is required"})
			c.Abort()
			return
		}

		claims := &AuthClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid || claims.OrganizationID == 0 {
			c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "invalid token"})
			c.Abort()
			return
		}

		c.Set("org_id", claims.OrganizationID)
		c.Set("user_id", claims.UserID)
		c.Set("user_name", claims.Name)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// IssueToken signs a tenant-scoped token for the user.
func IssueToken(secret string, user *models.User, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := AuthClaims{
		UserID:         user.ID,
		OrganizationID: user.OrganizationID,
		Name:           user.Name,
		Role:           user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "print_shop",
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        uuid.New().String(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// OrgID reads the resolved organization id from the gin context.
func OrgID(c *gin.Context) uint {
	return c.GetUint("org_id")
}

// ActorFrom reads the authenticated actor from the gin context.
func ActorFrom(c *gin.Context) models.Actor {
	return models.Actor{
		UserID: c.GetUint("user_id"),
		Name:   c.GetString("user_name"),
		Role:   c.GetString("role"),
	}
}
