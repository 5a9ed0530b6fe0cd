package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/quizforge/quizforge-backend/internal/response"
	"github.com/quizforge/quizforge-backend/internal/service"
)

// ContextKeyClaims is the Gin context key for operator token claims.
const ContextKeyClaims = "claims"

// RequireOperator validates the operator token from the Authorization header
// and stores its claims on the context. Every question written downstream is
// attributed to this identity.
func RequireOperator(tokens *service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenRequired)
			return
		}

		tokenStr, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		claims, err := tokens.Validate(tokenStr)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, response.ErrTokenInvalid)
			return
		}

		c.Set(ContextKeyClaims, claims)
		c.Next()
	}
}

// OperatorID extracts the acting user's id set by RequireOperator.
// Returns 0 when the middleware did not run.
func OperatorID(c *gin.Context) int64 {
	v, ok := c.Get(ContextKeyClaims)
	if !ok {
		return 0
	}
	claims, ok := v.(*service.Claims)
	if !ok {
		return 0
	}
	return claims.UserID
}
