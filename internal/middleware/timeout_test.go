package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestTimeout_RequestCompletesInTime(t *testing.T) {
	tests := []struct {
		name         string
		timeout      time.Duration
		handlerDelay time.Duration
		wantStatus   int
	}{
		{
			name:         "fast request completes",
			timeout:      time.Second,
			handlerDelay: 10 * time.Millisecond,
			wantStatus:   http.StatusOK,
		},
		{
			name:       "zero delay request completes",
			timeout:    time.Second,
			wantStatus: http.StatusOK,
		},
		{
			name:         "non-positive timeout uses the default",
			timeout:      0,
			handlerDelay: 10 * time.Millisecond,
			wantStatus:   http.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gin.SetMode(gin.TestMode)
			router := gin.New()
			router.Use(Timeout(tt.timeout))
			router.GET("/test", func(c *gin.Context) {
				if tt.handlerDelay > 0 {
					time.Sleep(tt.handlerDelay)
				}
				c.Status(http.StatusOK)
			})

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestTimeout_ContextHasDeadline(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()

	var deadline time.Time
	hasDeadline := false
	router.Use(Timeout(time.Second))
	router.GET("/test", func(c *gin.Context) {
		deadline, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/test", nil))

	assert.True(t, hasDeadline, "context should have deadline set")
	assert.WithinDuration(t, time.Now().Add(time.Second), deadline, time.Second)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTimeout_SlowLookupTimesOut(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RequestID(), Timeout(50*time.Millisecond))
	router.POST("/api/orders/:id/containers/:slot/items", func(c *gin.Context) {
		SetSessionID(c, c.Param("id"))
		// A catalog call that gives up once the deadline passes.
		<-c.Request.Context().Done()
		time.Sleep(50 * time.Millisecond)
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/orders/sess-1/containers/0/items", nil))

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), "timeout")
	assert.Contains(t, w.Body.String(), w.Header().Get(RequestIDHeader))
}

func TestTimeout_FastRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Timeout(100 * time.Millisecond))
	router.GET("/fast", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	for range 5 {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/fast", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}

func TestTimeout_PanicReachesRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(Recovery())
	router.Use(Timeout(time.Second))
	router.GET("/panic", func(c *gin.Context) {
		panic("container totals out of sync")
	})

	w := httptest.NewRecorder()
	assert.NotPanics(t, func() {
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	})
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
