package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"shopadmin/internal/store"
	"shopadmin/internal/upload"
	"shopadmin/internal/views"
)

var errBadForm = errors.New("malformed form")

// handle adapts a handler that returns an error. A failed request is
// logged and answered with the error page; nothing is retried or swallowed.
func (p *ProductRoutes) handle(h func(c *gin.Context) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		err := h(c)
		if err == nil {
			return
		}
		_ = c.Error(err)

		status := statusFor(err)
		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("id", c.Param("id")),
			zap.Int("status", status),
			zap.Error(err),
		}
		if status >= http.StatusInternalServerError {
			p.Log.Error("request failed", fields...)
		} else {
			p.Log.Warn("request rejected", fields...)
		}

		if c.Writer.Written() {
			return
		}
		if c.Request.Method == http.MethodDelete {
			c.AbortWithStatusJSON(status, gin.H{"result": false, "error": http.StatusText(status)})
			return
		}
		c.HTML(status, "error.tmpl", p.page(c, http.StatusText(status), views.ViewData{
			"Status":     status,
			"StatusText": http.StatusText(status),
			"Message":    messageFor(status),
		}))
		c.Abort()
	}
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, store.ErrInvalidField),
		errors.Is(err, upload.ErrUnsupportedFormat),
		errors.Is(err, errBadForm):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func messageFor(status int) string {
	switch status {
	case http.StatusNotFound:
		return "This product does not exist."
	case http.StatusBadRequest:
		return "The submitted form could not be saved. Check the values and the image type."
	default:
		return "Something went wrong. Please try again."
	}
}
