package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/Hasini-Stu/tasknew/cmd/api/auth"
)

const (
	ContextUID   = "uid"
	ContextEmail = "email"
)

// RequireAuth verifies the bearer token and stores the caller's uid and email
// in the request context.
func RequireAuth(jwtManager *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := auth.ExtractBearerToken(c)
		if err != nil {
			auth.AbortWithUnauthorized(c, err)
			return
		}

		uid, email, err := jwtManager.Parse(token)
		if err != nil {
			auth.AbortWithUnauthorized(c, errors.New("invalid or expired token"))
			return
		}

		c.Set(ContextUID, uid)
		c.Set(ContextEmail, email)
		c.Next()
	}
}
