package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/yoockh/chatrelay/internal/utils"
)

const (
	RequestIDHeader = "X-Request-Id"
	RequestIDKey    = "request_id"

	maxRequestIDLen = 128
)

// RequestLogger assigns a request id and writes one access line per request.
// Failed requests carry the AppError code of the last handler error.
func RequestLogger(l *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := c.GetHeader(RequestIDHeader)
		if reqID == "" || len(reqID) > maxRequestIDLen {
			reqID = uuid.NewString()
		}
		c.Header(RequestIDHeader, reqID)
		c.Set(RequestIDKey, reqID)

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = c.Request.URL.Path
		}
		fields := logrus.Fields{
			"request_id": reqID,
			"method":     c.Request.Method,
			"route":      route,
			"status":     c.Writer.Status(),
			"latency_ms": time.Since(start).Milliseconds(),
			"bytes_out":  c.Writer.Size(),
			"client_ip":  c.ClientIP(),
		}

		last := c.Errors.Last()
		if last == nil {
			l.WithFields(fields).Info("request")
			return
		}

		code := utils.CodeOf(last.Err)
		fields["error_code"] = string(code)
		fields["error"] = last.Err.Error()
		entry := l.WithFields(fields)

		// rejected input is the caller's problem; everything else is ours
		if code == utils.CodeValidation {
			entry.Warn("request rejected")
			return
		}
		entry.Error("request failed")
	}
}
