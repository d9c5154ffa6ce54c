package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Aleph-Alpha/embedding-service/pkg/service"
)

// statusFor maps a service error kind to an HTTP status. Untagged errors are 500.
func statusFor(err error) int {
	var svcErr *service.Error
	if !errors.As(err, &svcErr) {
		return http.StatusInternalServerError
	}
	switch svcErr.Kind {
	case service.KindValidation:
		return http.StatusBadRequest
	case service.KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// abortWithError writes {"detail": ...} and attaches err to the gin context
// so the logging middleware can report it.
func abortWithError(c *gin.Context, status int, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(status, ErrorResponse{Detail: err.Error()})
}

func abortWithServiceError(c *gin.Context, err error) {
	abortWithError(c, statusFor(err), err)
}
