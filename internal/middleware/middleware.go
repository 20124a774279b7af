package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"storefront-api/internal/metrics"
	"storefront-api/pkg/lambda"
)

// CORS middleware for handling Cross-Origin Resource Sharing
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		for key, value := range lambda.CORSHeaders {
			c.Header(key, value)
		}

		if c.Request.Method == http.MethodOptions {
			resp := lambda.Preflight()
			for key, value := range resp.Headers {
				c.Header(key, value)
			}
			c.Data(resp.StatusCode, resp.Headers["Content-Type"], resp.Body)
			c.Abort()
			return
		}

		c.Next()
	}
}

// Recovery turns handler panics into INTERNAL_ERROR responses
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logrus.WithFields(logrus.Fields{
					"request_id": c.GetString(RequestIDKey),
					"method":     c.Request.Method,
					"path":       c.Request.URL.Path,
					"panic":      rec,
				}).Error("Unhandled error in handler")

				c.AbortWithStatusJSON(http.StatusInternalServerError, lambda.ErrorBody{
					Error: fmt.Sprint(rec),
					Code:  lambda.CodeInternalError,
				})
			}
		}()

		c.Next()
	}
}

// Metrics records request counts and latency for the local server
func Metrics(function string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		metrics.TrackActiveRequest(true)
		defer metrics.TrackActiveRequest(false)

		c.Next()

		metrics.RecordRequest(function, routeOf(c), c.Writer.Status(), time.Since(start))
	}
}
