package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-travel-itinerary-ai/internal/types"
)

func postItinerary(t *testing.T, handler *HandlerImpl, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/generate-itinerary", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler.GenerateItinerary(rr, req)
	return rr
}

func TestGenerateItineraryHandler(t *testing.T) {
	// Backend unset: the service always degrades to the template itinerary
	service := NewItineraryService(nil, testLogger(), 0)
	handler := NewItineraryHandler(service, testLogger())

	t.Run("Valid request returns itinerary", func(t *testing.T) {
		body := `{"destination": "Paris", "startDate": "2024-06-01T00:00:00Z", "endDate": "2024-06-03T00:00:00Z", "budget": 1000, "travelers": 2}`
		rr := postItinerary(t, handler, body)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

		var itin types.Itinerary
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &itin))
		assert.Len(t, itin.Activities, 10)
		require.Len(t, itin.Accommodations, 1)
		assert.Equal(t, 400.0, itin.Accommodations[0].Cost)
	})

	t.Run("Unknown fields tolerated", func(t *testing.T) {
		body := `{"destination": "Paris", "startDate": "2024-06-01T00:00:00Z", "endDate": "2024-06-02T00:00:00Z", "tripName": "weekend"}`
		rr := postItinerary(t, handler, body)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Travel style read from nested userPreferences", func(t *testing.T) {
		body := `{"destination": "Paris", "startDate": "2024-06-01T00:00:00Z", "endDate": "2024-06-02T00:00:00Z", "userPreferences": {"travelStyle": "luxury"}}`
		rr := postItinerary(t, handler, body)
		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("Missing required fields", func(t *testing.T) {
		body := `{"startDate": "2024-06-01T00:00:00Z", "endDate": "2024-06-03T00:00:00Z"}`
		rr := postItinerary(t, handler, body)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp["error"], "missing required fields")
	})

	t.Run("Invalid date range", func(t *testing.T) {
		body := `{"destination": "Paris", "startDate": "2024-06-03T00:00:00Z", "endDate": "2024-06-01T00:00:00Z"}`
		rr := postItinerary(t, handler, body)

		require.Equal(t, http.StatusBadRequest, rr.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Contains(t, resp["error"], "invalid date range")
	})

	t.Run("Malformed body", func(t *testing.T) {
		rr := postItinerary(t, handler, `{"destination": `)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("Empty body", func(t *testing.T) {
		rr := postItinerary(t, handler, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

// faultyService forces the orchestration into its unexpected-fault path.
type faultyService struct{}

func (f *faultyService) GenerateItinerary(ctx context.Context, req types.ItineraryRequest) (*types.Itinerary, error) {
	return nil, errors.New("pipeline wiring broke")
}

func (f *faultyService) BackendLoaded() bool { return false }

func TestGenerateItineraryHandler_UnexpectedFault(t *testing.T) {
	handler := NewItineraryHandler(&faultyService{}, testLogger())

	body := `{"destination": "Paris", "startDate": "2024-06-01T00:00:00Z", "endDate": "2024-06-03T00:00:00Z"}`
	rr := postItinerary(t, handler, body)

	require.Equal(t, http.StatusInternalServerError, rr.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	// Internal fault text stays in the logs, not in the body
	assert.Equal(t, "internal server error", resp["error"])
}

func TestHealthHandler(t *testing.T) {
	t.Run("Backend not loaded", func(t *testing.T) {
		service := NewItineraryService(nil, testLogger(), 0)
		handler := NewItineraryHandler(service, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		handler.Health(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, "ok", resp["status"])
		assert.Equal(t, false, resp["model_loaded"])
	})

	t.Run("Backend loaded", func(t *testing.T) {
		service := NewItineraryService(new(MockAIClient), testLogger(), 0)
		handler := NewItineraryHandler(service, testLogger())

		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		rr := httptest.NewRecorder()
		handler.Health(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)

		var resp map[string]interface{}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.Equal(t, true, resp["model_loaded"])
	})
}
