//go:build unit

package httperr

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"staybook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	base := errs.New("boom")
	testCases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", errs.Validation(base), http.StatusBadRequest},
		{"not found", errs.NotFound(base), http.StatusNotFound},
		{"forbidden", errs.Forbidden(base), http.StatusForbidden},
		{"conflict", errs.Conflict(base), http.StatusConflict},
		{"gateway", errs.Gateway(base), http.StatusBadGateway},
		{"unavailable", errs.Unavailable(base), http.StatusServiceUnavailable},
		{"wrapped kind survives", errs.Wrap(errs.Conflict(base), "confirm"), http.StatusConflict},
		{"unmarked", base, http.StatusInternalServerError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StatusOf(tc.err))
		})
	}
}

func TestAbort(t *testing.T) {
	gin.SetMode(gin.TestMode)

	testCases := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail bool
	}{
		{"client error carries detail", errs.Validation(errs.New("check-out must be after check-in")), http.StatusBadRequest, true},
		{"server error hides detail", errs.New("db down"), http.StatusInternalServerError, false},
		{"gateway error hides detail", errs.Gateway(errs.New("stripe: card_declined")), http.StatusBadGateway, false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			Abort(c, tc.err, "Request failed")

			require.Equal(t, tc.wantStatus, w.Code)
			require.True(t, c.IsAborted())
			require.Len(t, c.Errors, 1)

			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.Equal(t, "Request failed", body["error"].(map[string]any)["message"])
			_, hasDetail := body["detail"]
			assert.Equal(t, tc.wantDetail, hasDetail)
		})
	}
}
