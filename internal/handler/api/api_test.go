//go:build unit

package api_test

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"staybook/internal/domain/user"
	"staybook/internal/handler/httperr"
	"staybook/internal/handler/middleware"
)

const bearer = "bearer-token"

// fakeAuth stands in for RequireAuth: any bearer token authenticates as
// userID with role.
func fakeAuth(userID uuid.UUID, role user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			httperr.AbortUnauthorized(c)
			return
		}
		middleware.SetActor(c, userID, role)
		c.Next()
	}
}

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	return r
}
