//go:build contract

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/container-order-service/internal/domain/dto"
	"github.com/guttosm/container-order-service/internal/domain/model"
	"github.com/guttosm/container-order-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newContractRouter returns a router with one open order holding 10 boxes of ambientBox.
func newContractRouter(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	env := newTestEnv(t, false)
	order := env.createOrder(t, dryOrderBody)
	require.Equal(t, http.StatusOK, env.addItem(order.ID, 0, ambientBox, 10).Code)
	return env.router, order.ID
}

// TestAPI_ContractCompliance validates that API responses match the documented contract.
func TestAPI_ContractCompliance(t *testing.T) {
	router, id := newContractRouter(t)

	tests := []struct {
		name             string
		method           string
		path             string
		body             string
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "GET /api/capacity-classes - Success 200",
			method:         http.MethodGet,
			path:           "/api/capacity-classes",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := decodeDataMap(t, w)
				assert.Contains(t, data, "classes")
				assert.Contains(t, data, "submission_enabled")

				classes, ok := data["classes"].([]interface{})
				require.True(t, ok)
				require.NotEmpty(t, classes)
				class, ok := classes[0].(map[string]interface{})
				require.True(t, ok)
				for _, field := range []string{"size", "refrigerated", "max_volume", "max_weight"} {
					assert.Contains(t, class, field)
				}
			},
		},
		{
			name:           "GET /api/orders/:id - Success 200",
			method:         http.MethodGet,
			path:           "/api/orders/" + id,
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := decodeDataMap(t, w)
				for _, field := range []string{"id", "active_index", "containers", "box_count", "total_price", "created_at", "updated_at"} {
					assert.Contains(t, data, field)
				}
				// Prices travel as decimal strings.
				assert.IsType(t, "", data["total_price"])

				containers, ok := data["containers"].([]interface{})
				require.True(t, ok)
				require.Len(t, containers, 1)
				container, ok := containers[0].(map[string]interface{})
				require.True(t, ok)
				for _, field := range []string{"slot", "active", "capacity_class", "transport_mode", "destination_id",
					"line_items", "total_volume", "total_weight", "total_price", "box_count", "fill_ratio", "near_full"} {
					assert.Contains(t, container, field)
				}
			},
		},
		{
			name:           "POST /api/orders/:id/containers/:slot/items - Rejection 409",
			method:         http.MethodPost,
			path:           "/api/orders/" + id + "/containers/0/items",
			body:           `{"variant_id": "V-1", "quantity": 100000}`,
			expectedStatus: http.StatusConflict,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

				assert.Equal(t, string(service.ReasonCapacityExceeded), resp.Error)
				assert.NotEmpty(t, resp.Message)
				for _, field := range []string{"slot", "detail", "axis", "max_addable"} {
					assert.Contains(t, resp.Details, field)
				}
			},
		},
		{
			name:           "POST /api/orders - Error 400 Invalid JSON",
			method:         http.MethodPost,
			path:           "/api/orders",
			body:           `{"size": }`,
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)
			},
		},
		{
			name:           "GET /api/orders/:id/payload - Success 200",
			method:         http.MethodGet,
			path:           "/api/orders/" + id + "/payload",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				data := decodeDataMap(t, w)
				containers, ok := data["containers"].([]interface{})
				require.True(t, ok)
				require.Len(t, containers, 1)
				container, ok := containers[0].(map[string]interface{})
				require.True(t, ok)
				for _, field := range []string{"slot", "box_count", "total_weight", "total_volume", "total_price",
					"destination_id", "transport_mode", "capacity_class", "line_items"} {
					assert.Contains(t, container, field)
				}
			},
		},
		{
			name:           "GET /readyz - Success 200",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

				assert.Contains(t, resp, "status")
				assert.Contains(t, resp, "checks")
				assert.Equal(t, "ok", resp["status"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, bytes.NewReader([]byte(tt.body)))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch")
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "Response must include X-Request-ID header")

			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
		})
	}
}

// TestAPI_ResponseSchema validates that typed responses decode into the documented models.
func TestAPI_ResponseSchema(t *testing.T) {
	router, id := newContractRouter(t)

	t.Run("MutationResult schema validation", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPut, "/api/orders/"+id+"/containers/0/items/V-1",
			bytes.NewReader([]byte(`{"quantity": 12}`)))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		require.Equal(t, http.StatusOK, w.Code)

		var result service.MutationResult
		decodeData(t, w, &result)
		assert.True(t, result.Outcome.Accepted)
		assert.Empty(t, result.Outcome.Reason)
		assert.Equal(t, 12, result.Order.BoxCount)
	})

	t.Run("SubmissionPayload schema validation", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/orders/"+id+"/payload", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var payload model.SubmissionPayload
		decodeData(t, w, &payload)
		require.Len(t, payload.Containers, 1)
		assert.Equal(t, "20ft", payload.Containers[0].CapacityClass.Size)
		assert.Equal(t, model.TransportSea, payload.Containers[0].TransportMode)
	})
}

func decodeDataMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RequestID, "Response must include request_id")
	assert.NotZero(t, resp.Timestamp, "Response must include timestamp")
	data, ok := resp.Data.(map[string]interface{})
	require.True(t, ok, "data must be an object")
	return data
}
