package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Recovery converts panics into a 500 JSON body. The stack trace is included
// in the response only in development; it is always logged server-side.
func Recovery(logger *logrus.Logger, env string) gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered interface{}) {
		stack := string(debug.Stack())
		if logger != nil {
			logger.WithFields(logrus.Fields{
				"panic":      recovered,
				"path":       c.Request.URL.Path,
				"request_id": c.GetString("request_id"),
				"client_ip":  ClientIP(c),
				"stack":      stack,
			}).Error("panic recovered")
		}
		body := gin.H{"message": "Server error"}
		if env == "development" {
			body["stack"] = stack
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, body)
	})
}
