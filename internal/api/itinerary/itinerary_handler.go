package itinerary

import (
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/FACorreiaa/go-travel-itinerary-ai/internal/api"
	"github.com/FACorreiaa/go-travel-itinerary-ai/internal/types"
)

var _ Handler = (*HandlerImpl)(nil)

type Handler interface {
	GenerateItinerary(w http.ResponseWriter, r *http.Request)
	Health(w http.ResponseWriter, r *http.Request)
}

type HandlerImpl struct {
	itineraryService Service
	logger           *slog.Logger
}

func NewItineraryHandler(itineraryService Service, logger *slog.Logger) *HandlerImpl {
	return &HandlerImpl{
		itineraryService: itineraryService,
		logger:           logger,
	}
}

// GenerateItinerary handles POST /generate-itinerary. Malformed
// requests fail fast with 400; everything else degrades to a
// best-effort template itinerary rather than failing.
func (h *HandlerImpl) GenerateItinerary(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "GenerateItinerary", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/generate-itinerary"),
	))
	defer span.End()
	l := h.logger.With(slog.String("handler", "GenerateItinerary"))

	var req types.ItineraryRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	itin, err := h.itineraryService.GenerateItinerary(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, types.ErrMissingFields), errors.Is(err, types.ErrInvalidDateRange):
			api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		default:
			// Unexpected fault: log the detail, keep the body generic.
			l.ErrorContext(ctx, "Itinerary generation fault", slog.Any("error", err))
			span.RecordError(err)
			api.ErrorResponse(w, r, http.StatusInternalServerError, "internal server error")
		}
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, itin)
}

// Health handles GET /health and reports whether the generation
// backend was loaded at startup.
func (h *HandlerImpl) Health(w http.ResponseWriter, r *http.Request) {
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]interface{}{
		"status":       "ok",
		"model_loaded": h.itineraryService.BackendLoaded(),
	})
}
