package httperr

import (
	"net/http"

	"staybook/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Status int `json:"-"`
	Error  struct {
		Message string `json:"message"`
	} `json:"error"`
	Detail any `json:"detail,omitempty"`
}

// preserves original error for future monitoring
func AbortWithError(c *gin.Context, status int, err error, msg string, detail any) {
	if err == nil {
		panic("AbortWithError: err cannot be nil")
	}

	resp := Response{Status: status}
	resp.Error.Message = msg
	resp.Detail = detail

	_ = c.Error(gin.Error{
		Err:  err,
		Type: gin.ErrorTypePublic,
		Meta: resp,
	})
	c.AbortWithStatusJSON(status, resp)
}

// StatusOf maps an error kind to its HTTP status.
func StatusOf(err error) int {
	switch errs.KindOf(err) {
	case errs.ErrValidation:
		return http.StatusBadRequest
	case errs.ErrNotFound:
		return http.StatusNotFound
	case errs.ErrForbidden:
		return http.StatusForbidden
	case errs.ErrConflict:
		return http.StatusConflict
	case errs.ErrGateway:
		return http.StatusBadGateway
	case errs.ErrUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// Abort responds with the status of err's kind. Client errors carry the
// error text; server errors only carry msg.
func Abort(c *gin.Context, err error, msg string) {
	status := StatusOf(err)
	if status < http.StatusInternalServerError && status != http.StatusBadGateway {
		AbortWithError(c, status, err, msg, err.Error())
		return
	}
	AbortWithError(c, status, err, msg, nil)
}

var ErrUnauthorized = errs.New("unauthorized")

func AbortUnauthorized(c *gin.Context) {
	AbortWithError(c, http.StatusUnauthorized, ErrUnauthorized, "Unauthorized", nil)
}
