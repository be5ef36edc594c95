package middleware

import (
	"log/slog"
	"net/http"

	"staybook/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler writes the response for handlers that recorded an error with
// c.Error but did not write a body themselves.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() || len(c.Errors) == 0 {
			return
		}

		last := c.Errors.Last()
		for i := len(c.Errors) - 1; i >= 0; i-- {
			if resp, ok := c.Errors[i].Meta.(httperr.Response); ok && c.Errors[i].IsType(gin.ErrorTypePublic) {
				c.JSON(resp.Status, resp)
				return
			}
		}

		status := httperr.StatusOf(last.Err)
		resp := httperr.Response{Status: status}
		resp.Error.Message = http.StatusText(status)
		if status < http.StatusInternalServerError {
			resp.Detail = last.Err.Error()
		}
		c.JSON(status, resp)
	}
}

func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("recovered from panic",
					"error", err,
					"path", c.Request.URL.Path,
					"request_id", GetRequestID(c),
				)

				resp := httperr.Response{Status: http.StatusInternalServerError}
				resp.Error.Message = "Internal server error"

				c.AbortWithStatusJSON(http.StatusInternalServerError, resp)
			}
		}()
		c.Next()
	}
}
