package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedEvent struct {
	distinctID string
	event      string
	properties map[string]any
}

type recordingSink struct {
	events []capturedEvent
}

func (s *recordingSink) IsInitialized() bool { return true }

func (s *recordingSink) Enqueue(distinctID, event string, properties map[string]any) {
	s.events = append(s.events, capturedEvent{distinctID, event, properties})
}

func stubAuth(userID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.WithValue(c.Request.Context(), userIDKey, userID)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

func newCaptureRouter(sink EventSink, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if userID != "" {
		r.Use(EventCapture(sink), stubAuth(userID))
	} else {
		r.Use(EventCapture(sink))
	}
	return r
}

func TestEventCapture_RecordsSuccessfulAuthenticatedRequest(t *testing.T) {
	sink := &recordingSink{}
	r := newCaptureRouter(sink, "user-1")
	r.POST("/api/v1/quotes", func(c *gin.Context) { c.Status(http.StatusCreated) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/quotes", nil))

	require.Len(t, sink.events, 1)
	assert.Equal(t, "user-1", sink.events[0].distinctID)
	assert.Equal(t, "api_v1_quotes", sink.events[0].event)
	assert.Equal(t, http.MethodPost, sink.events[0].properties["method"])
	assert.Equal(t, http.StatusCreated, sink.events[0].properties["status_code"])
}

func TestEventCapture_IncludesRouteParams(t *testing.T) {
	sink := &recordingSink{}
	r := newCaptureRouter(sink, "user-1")
	r.DELETE("/api/v1/quotes/:id", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/quotes/q-1", nil))

	require.Len(t, sink.events, 1)
	assert.Equal(t, "api_v1_quotes_:id", sink.events[0].event)
	assert.Equal(t, map[string]string{"id": "q-1"}, sink.events[0].properties["params"])
}

func TestEventCapture_SkipsFailedRequests(t *testing.T) {
	sink := &recordingSink{}
	r := newCaptureRouter(sink, "user-1")
	r.POST("/api/v1/quotes", func(c *gin.Context) { c.Status(http.StatusBadRequest) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/quotes", nil))

	assert.Empty(t, sink.events)
}

func TestEventCapture_SkipsAnonymousRequests(t *testing.T) {
	sink := &recordingSink{}
	r := newCaptureRouter(sink, "")
	r.GET("/api/v1/quotes", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/quotes", nil))

	assert.Empty(t, sink.events)
}

func TestEventCapture_SkipsUntrackedPaths(t *testing.T) {
	sink := &recordingSink{}
	r := newCaptureRouter(sink, "user-1")
	r.GET("/health", func(c *gin.Context) { c.String(http.StatusOK, "OK") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Empty(t, sink.events)
}
