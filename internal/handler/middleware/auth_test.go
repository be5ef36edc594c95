//go:build unit

package middleware_test

import (
	"errors"
	"net/http"
	"testing"

	"staybook/internal/domain/user"
	"staybook/internal/handler/middleware"
	"staybook/internal/testutil/httptest"
	usecasemock "staybook/internal/testutil/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T) (*gin.Engine, *usecasemock.MockTokenValidator) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	auth := middleware.NewAuthMiddleware(validator)

	echo := func(c *gin.Context) {
		id, _ := middleware.GetUserID(c)
		role, _ := middleware.GetUserRole(c)
		c.JSON(http.StatusOK, gin.H{"user_id": id.String(), "role": string(role)})
	}

	r := gin.New()
	r.GET("/me", auth.RequireAuth(), echo)
	r.GET("/owner", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleOwner), echo)
	r.GET("/admin", auth.RequireAuth(), auth.RequireRoleAtLeast(user.RoleAdmin), echo)
	r.GET("/search", auth.OptionalAuth(), echo)
	return r, validator
}

func TestRequireAuth(t *testing.T) {
	userID := uuid.New()

	testCases := []struct {
		name       string
		header     map[string]string
		setup      func(v *usecasemock.MockTokenValidator)
		expectCode int
	}{
		{
			name:       "missing header",
			expectCode: http.StatusUnauthorized,
		},
		{
			name:       "not a bearer scheme",
			header:     map[string]string{"Authorization": "Basic dXNlcjpwYXNz"},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:   "invalid token",
			header: map[string]string{"Authorization": "Bearer bad"},
			setup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("bad").Return(uuid.Nil, user.Role(""), errors.New("token is expired"))
			},
			expectCode: http.StatusUnauthorized,
		},
		{
			name:   "valid token",
			header: map[string]string{"Authorization": "Bearer good"},
			setup: func(v *usecasemock.MockTokenValidator) {
				v.EXPECT().ValidateToken("good").Return(userID, user.RoleGuest, nil)
			},
			expectCode: http.StatusOK,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, v := newAuthRouter(t)
			if tc.setup != nil {
				tc.setup(v)
			}

			rec := httptest.PerformRawRequest(t, r, http.MethodGet, "/me", nil, tc.header)

			assert.Equal(t, tc.expectCode, rec.Code)
			if tc.expectCode == http.StatusOK {
				assert.Contains(t, rec.Body.String(), userID.String())
			}
		})
	}
}

func TestRequireRoleAtLeast(t *testing.T) {
	testCases := []struct {
		name       string
		path       string
		role       user.Role
		expectCode int
	}{
		{name: "guest cannot manage listings", path: "/owner", role: user.RoleGuest, expectCode: http.StatusForbidden},
		{name: "owner manages listings", path: "/owner", role: user.RoleOwner, expectCode: http.StatusOK},
		{name: "admin outranks owner", path: "/owner", role: user.RoleAdmin, expectCode: http.StatusOK},
		{name: "owner is not admin", path: "/admin", role: user.RoleOwner, expectCode: http.StatusForbidden},
		{name: "admin route", path: "/admin", role: user.RoleAdmin, expectCode: http.StatusOK},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r, v := newAuthRouter(t)
			v.EXPECT().ValidateToken("tok").Return(uuid.New(), tc.role, nil)

			rec := httptest.PerformRequest(t, r, http.MethodGet, tc.path, nil, "tok")
			assert.Equal(t, tc.expectCode, rec.Code)
		})
	}
}

func TestOptionalAuth(t *testing.T) {
	t.Run("anonymous passes without an actor", func(t *testing.T) {
		r, _ := newAuthRouter(t)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/search", nil, "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), uuid.Nil.String())
	})

	t.Run("a bad token is ignored", func(t *testing.T) {
		r, v := newAuthRouter(t)
		v.EXPECT().ValidateToken("stale").Return(uuid.Nil, user.Role(""), errors.New("expired"))

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/search", nil, "stale")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), uuid.Nil.String())
	})

	t.Run("a valid token sets the actor", func(t *testing.T) {
		r, v := newAuthRouter(t)
		id := uuid.New()
		v.EXPECT().ValidateToken("tok").Return(id, user.RoleOwner, nil)

		rec := httptest.PerformRequest(t, r, http.MethodGet, "/search", nil, "tok")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), id.String())
		assert.Contains(t, rec.Body.String(), `"role":"owner"`)
	})
}
