package api

import (
	"net/http"
	"strconv"

	"staybook/internal/domain/user"
	resdto "staybook/internal/handler/dto/response"
	"staybook/internal/handler/httperr"
	"staybook/internal/handler/middleware"
	"staybook/internal/pkg/errs"
	"staybook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errInvalidID = errs.New("invalid id")

// render maps src into T and writes it with status.
func render[T any](c *gin.Context, status int, src any) {
	out, err := resdto.Map[T](src)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	c.JSON(status, out)
}

func renderPage[T any](c *gin.Context, items any, next *queries.Cursor) {
	out, err := resdto.Map[[]T](items)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to build response", nil)
		return
	}
	if out == nil {
		out = []T{}
	}
	page := resdto.Page[T]{Items: out}
	if next != nil {
		page.NextCursor = next.After
	}
	c.JSON(http.StatusOK, page)
}

func pathID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(errInvalidID, err.Error()), "Invalid "+name, nil)
		return uuid.Nil, false
	}
	return id, true
}

func actor(c *gin.Context) (uuid.UUID, user.Role, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortUnauthorized(c)
		return uuid.Nil, "", false
	}
	role, _ := middleware.GetUserRole(c)
	return id, role, true
}

// pageParams reads limit and after from the query string.
func pageParams(c *gin.Context) (*queries.Cursor, int) {
	limit := queries.DefaultListLimit
	if v := c.Query("limit"); v != "" {
		if iv, e := strconv.Atoi(v); e == nil {
			limit = queries.ValidateLimit(iv)
		}
	}
	var cursor *queries.Cursor
	if after := c.Query("after"); after != "" {
		cursor = &queries.Cursor{After: after}
	}
	return cursor, limit
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
		return false
	}
	return true
}

func invalid(c *gin.Context, err error) {
	httperr.AbortWithError(c, http.StatusBadRequest, errs.Validation(err), "Invalid request", err.Error())
}
