package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventSink receives usage events. Satisfied by utils.AnalyticsClient.
type EventSink interface {
	IsInitialized() bool
	Enqueue(distinctID, event string, properties map[string]any)
}

// untrackedPaths are never captured.
var untrackedPaths = map[string]bool{
	"/health": true,
}

// EventCapture records one event per successful authenticated request, named
// after the matched route (e.g. "/api/v1/quotes" -> "api_v1_quotes"). Failed
// requests and anonymous requests are skipped.
func EventCapture(sink EventSink) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sink == nil || !sink.IsInitialized() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		eventName := strings.ReplaceAll(strings.TrimPrefix(c.FullPath(), "/"), "/", "_")
		if eventName == "" {
			// Unmatched routes have no FullPath.
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}

		sink.Enqueue(userID, eventName, props)
	}
}
