package middleware

import (
	"net/http"
	"strings"

	"cantina/internal/apierror"
	"cantina/internal/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimsKey = "claims"
)

// SessionClaims is the session object carried by every access token: the
// selected user and their role, threaded through the request context instead
// of an ambient mutable singleton.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// SessionAuth validates the Bearer token on every protected route.
func SessionAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Autenticação necessária"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &SessionClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Sessão inválida ou expirada"))
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose session role is not in the allowed list.
func RequireRole(roles ...model.Role) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[string(r)] = true
	}
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*SessionClaims)
		if !ok || !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Permissão insuficiente"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve the typed session from the Gin context.
func GetClaims(c *gin.Context) *SessionClaims {
	claims, _ := c.MustGet(ClaimsKey).(*SessionClaims)
	return claims
}
