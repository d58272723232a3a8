package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func assertUUID(t *testing.T, id string) {
	t.Helper()
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name     string
		headers  map[string]string
		validate func(*testing.T, string)
	}{
		{
			name:     "generates new request ID when not provided",
			validate: assertUUID,
		},
		{
			name:    "uses provided request ID from header",
			headers: map[string]string{RequestIDHeader: "order-req-123"},
			validate: func(t *testing.T, id string) {
				assert.Equal(t, "order-req-123", id)
			},
		},
		{
			name:    "falls back to the correlation ID",
			headers: map[string]string{CorrelationIDHeader: "storefront-42"},
			validate: func(t *testing.T, id string) {
				assert.Equal(t, "storefront-42", id)
			},
		},
		{
			name: "prefers the request ID over the correlation ID",
			headers: map[string]string{
				RequestIDHeader:     "order-req-123",
				CorrelationIDHeader: "storefront-42",
			},
			validate: func(t *testing.T, id string) {
				assert.Equal(t, "order-req-123", id)
			},
		},
		{
			name:     "replaces an ID with spaces",
			headers:  map[string]string{RequestIDHeader: "id with spaces"},
			validate: assertUUID,
		},
		{
			name:     "replaces an overlong ID",
			headers:  map[string]string{RequestIDHeader: strings.Repeat("a", maxRequestIDLength+1)},
			validate: assertUUID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(RequestID())
			router.GET("/test", func(c *gin.Context) {
				c.String(http.StatusOK, GetRequestID(c))
			})

			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			for k, v := range tt.headers {
				req.Header.Set(k, v)
			}
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, http.StatusOK, w.Code)
			requestID := w.Body.String()
			assert.Equal(t, requestID, w.Header().Get(RequestIDHeader))
			tt.validate(t, requestID)
		})
	}
}

func TestGetRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name  string
		value interface{}
		want  string
	}{
		{name: "returns empty string when not set"},
		{name: "returns request ID when set", value: "test-id-123", want: "test-id-123"},
		{name: "ignores a non-string value", value: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := gin.CreateTestContext(httptest.NewRecorder())
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
			if tt.value != nil {
				c.Set(string(RequestIDKey), tt.value)
			}

			assert.Equal(t, tt.want, GetRequestID(c))
		})
	}
}
