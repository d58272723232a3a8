package http

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/container-order-service/internal/domain/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBodyContext(t *testing.T, body io.Reader) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	return c
}

func TestBuildRequest(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{name: "valid request", body: `{"variant_id": "V-1", "quantity": 251}`},
		{name: "invalid JSON", body: `{"variant_id": invalid}`, expectError: true},
		{name: "missing variant", body: `{"quantity": 251}`, expectError: true},
		{name: "empty body", body: ``, expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := BuildRequest[dto.AddItemRequest](newBodyContext(t, bytes.NewBufferString(tt.body)))

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "V-1", result.VariantID)
			assert.Equal(t, 251, result.Quantity)
		})
	}
}

func TestBuildOptionalRequest(t *testing.T) {
	tests := []struct {
		name         string
		body         io.Reader
		expectError  bool
		wantCopyFrom *int
	}{
		{name: "no body", body: nil},
		{name: "empty body", body: bytes.NewBufferString("")},
		{name: "copy from a slot", body: bytes.NewBufferString(`{"copy_from": 2}`), wantCopyFrom: intPtr(2)},
		{name: "invalid JSON", body: bytes.NewBufferString(`{"copy_from": "two"}`), expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := BuildOptionalRequest[dto.OpenContainerRequest](newBodyContext(t, tt.body))

			if tt.expectError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, result)
			assert.Equal(t, tt.wantCopyFrom, result.CopyFrom)
		})
	}
}

func TestBuildRequestAndValidate(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		expectError bool
	}{
		{
			name: "valid request",
			body: `{"size": "40ft", "transport_mode": "Sea", "destination_id": "DST-1"}`,
		},
		{
			name:        "invalid request - unknown transport mode",
			body:        `{"size": "40ft", "transport_mode": "rail", "destination_id": "DST-1"}`,
			expectError: true,
		},
		{
			name:        "invalid request - missing destination",
			body:        `{"size": "40ft", "transport_mode": "sea"}`,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := BuildRequestAndValidate[dto.CreateOrderRequest](newBodyContext(t, bytes.NewBufferString(tt.body)))

			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, result)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "DST-1", result.DestinationID)
		})
	}
}

func intPtr(v int) *int {
	return &v
}
