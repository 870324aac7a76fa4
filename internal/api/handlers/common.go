package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/yoockh/chatrelay/internal/api/middleware"
	"github.com/yoockh/chatrelay/internal/utils"
)

type APIError struct {
	Detail string `json:"detail"`
}

func writeError(c *gin.Context, err error) {
	status := utils.HTTPStatus(err)
	_ = c.Error(err)

	var ae *utils.AppError
	if errors.As(err, &ae) {
		c.JSON(status, APIError{Detail: ae.Detail()})
		return
	}

	c.JSON(status, APIError{Detail: http.StatusText(status)})
}

func requestID(c *gin.Context) string {
	if v, ok := c.Get(middleware.RequestIDKey); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
