package itinerary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"google.golang.org/genai"

	"github.com/FACorreiaa/go-travel-itinerary-ai/app/observability/metrics"
	"github.com/FACorreiaa/go-travel-itinerary-ai/internal/types"
)

const (
	defaultTravelers    = 1
	defaultTravelStyle  = "mid-range"
	defaultModelTimeout = 30 * time.Second
)

// Generation failures are expected and always recovered via the
// fallback generator; they never reach the caller.
var (
	errModelUnavailable  = errors.New("model unavailable")
	errUnparseableOutput = errors.New("unparseable output")
)

// AIClient is the narrow contract the pipeline needs from the
// generation backend.
type AIClient interface {
	GenerateContent(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (string, error)
}

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	GenerateItinerary(ctx context.Context, req types.ItineraryRequest) (*types.Itinerary, error)
	BackendLoaded() bool
}

type ServiceImpl struct {
	logger       *slog.Logger
	aiClient     AIClient
	cache        *cache.Cache
	modelTimeout time.Duration
}

// NewItineraryService wires the generation pipeline. aiClient may be
// nil: the service then serves template itineraries permanently.
// modelTimeout bounds the single generation call; zero selects the
// default.
func NewItineraryService(aiClient AIClient, logger *slog.Logger, modelTimeout time.Duration) *ServiceImpl {
	if modelTimeout <= 0 {
		modelTimeout = defaultModelTimeout
	}
	return &ServiceImpl{
		logger:       logger,
		aiClient:     aiClient,
		cache:        cache.New(1*time.Hour, 10*time.Minute),
		modelTimeout: modelTimeout,
	}
}

// BackendLoaded reports whether the generation backend was loaded at
// startup.
func (s *ServiceImpl) BackendLoaded() bool {
	return s.aiClient != nil
}

// GenerateItinerary runs the full pipeline: validate, resolve dates,
// build prompt, invoke the model, extract, and fall back to the
// template itinerary on any generation failure. Only missing fields and
// invalid dates surface as errors.
func (s *ServiceImpl) GenerateItinerary(ctx context.Context, req types.ItineraryRequest) (*types.Itinerary, error) {
	ctx, span := otel.Tracer("ItineraryService").Start(ctx, "GenerateItinerary", trace.WithAttributes(
		attribute.String("itinerary.destination", req.Destination),
	))
	defer span.End()
	l := s.logger.With(slog.String("method", "GenerateItinerary"), slog.String("destination", req.Destination))

	if req.Destination == "" || req.StartDate == "" || req.EndDate == "" {
		return nil, types.ErrMissingFields
	}

	startDate, endDate, durationDays, err := resolveDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("itinerary.duration_days", durationDays))

	travelers := req.Travelers
	if travelers <= 0 {
		travelers = defaultTravelers
	}
	travelStyle := req.UserPreferences.TravelStyle
	if travelStyle == "" {
		travelStyle = defaultTravelStyle
	}

	cacheKey := generateItineraryCacheKey(req.Destination, req.StartDate, req.EndDate, req.Budget, travelers, travelStyle, req.Preferences)
	if cached, found := s.cache.Get(cacheKey); found {
		if itin, ok := cached.(*types.Itinerary); ok {
			l.DebugContext(ctx, "Serving itinerary from cache")
			return itin, nil
		}
	}

	m := metrics.Get()
	startTime := time.Now()
	interactionID := uuid.New()

	prompt := buildItineraryPrompt(req.Destination, req.StartDate, req.EndDate, durationDays, req.Budget, travelers, travelStyle, req.Preferences)
	span.SetAttributes(attribute.Int("prompt.length", len(prompt)))

	itin, genErr := s.generateFromModel(ctx, prompt)
	if genErr != nil {
		l.InfoContext(ctx, "Model generation failed, using fallback itinerary",
			slog.Any("reason", genErr),
			slog.String("interaction_id", interactionID.String()),
		)
		span.SetAttributes(attribute.Bool("itinerary.fallback", true))
		m.FallbackGenerationsTotal.Add(ctx, 1)
		itin = generateFallbackItinerary(req.Destination, startDate, endDate, durationDays, req.Budget, travelers)
	} else {
		l.DebugContext(ctx, "Model generation succeeded",
			slog.String("interaction_id", interactionID.String()),
		)
		span.SetAttributes(attribute.Bool("itinerary.fallback", false))
		m.ModelGenerationsTotal.Add(ctx, 1)
	}

	m.ItineraryRequestsTotal.Add(ctx, 1)
	m.GenerationDurationSeconds.Record(ctx, time.Since(startTime).Seconds())

	s.cache.Set(cacheKey, itin, cache.DefaultExpiration)
	return itin, nil
}

// generateFromModel makes the single best-effort generation attempt and
// extracts the itinerary from the raw output. No retries: the fallback
// path already guarantees a valid response.
func (s *ServiceImpl) generateFromModel(ctx context.Context, prompt string) (*types.Itinerary, error) {
	raw, err := s.invokeModel(ctx, prompt)
	if err != nil {
		return nil, err
	}
	itin, err := parseItineraryResponse(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errUnparseableOutput, err)
	}
	return itin, nil
}

// invokeModel wraps the backend call so that backend instability never
// aborts a request; any failure only triggers fallback.
func (s *ServiceImpl) invokeModel(ctx context.Context, prompt string) (string, error) {
	if s.aiClient == nil {
		return "", errModelUnavailable
	}
	ctx, cancel := context.WithTimeout(ctx, s.modelTimeout)
	defer cancel()

	config := &genai.GenerateContentConfig{
		Temperature: genai.Ptr[float32](0.7),
	}
	raw, err := s.aiClient.GenerateContent(ctx, prompt, config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", errModelUnavailable, err)
	}
	if raw == "" {
		return "", fmt.Errorf("%w: empty response", errModelUnavailable)
	}
	return raw, nil
}

func generateItineraryCacheKey(destination, startDate, endDate string, budget float64, travelers int, travelStyle, preferences string) string {
	return fmt.Sprintf("itinerary:%s:%s:%s:%.2f:%d:%s:%s", destination, startDate, endDate, budget, travelers, travelStyle, preferences)
}
