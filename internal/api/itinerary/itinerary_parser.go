package itinerary

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/FACorreiaa/go-travel-itinerary-ai/internal/types"
)

// cleanJSONResponse strips markdown code fences and any explanatory
// text the model wraps around the JSON object.
func cleanJSONResponse(response string) string {
	response = strings.TrimSpace(response)

	if strings.HasPrefix(response, "```json") {
		response = strings.TrimPrefix(response, "```json")
	} else if strings.HasPrefix(response, "```") {
		response = strings.TrimPrefix(response, "```")
	}
	if strings.HasSuffix(response, "```") {
		response = strings.TrimSuffix(response, "```")
	}
	response = strings.TrimSpace(response)

	// Extract the first { .. last } span in case the model added prose.
	firstBrace := strings.Index(response, "{")
	if firstBrace == -1 {
		return response
	}
	lastBrace := strings.LastIndex(response, "}")
	if lastBrace == -1 || lastBrace <= firstBrace {
		return response
	}
	return strings.TrimSpace(response[firstBrace : lastBrace+1])
}

// parseItineraryResponse extracts an itinerary from raw model output.
// It only requires a JSON object carrying both top-level keys; deeper
// field validation is deliberately skipped because the fallback path is
// the safety net for malformed content.
func parseItineraryResponse(raw string) (*types.Itinerary, error) {
	cleaned := cleanJSONResponse(raw)

	var probe map[string]json.RawMessage
	if err := json.Unmarshal([]byte(cleaned), &probe); err != nil {
		return nil, fmt.Errorf("failed to parse itinerary JSON: %w", err)
	}
	if _, ok := probe["activities"]; !ok {
		return nil, fmt.Errorf("itinerary JSON missing %q key", "activities")
	}
	if _, ok := probe["accommodations"]; !ok {
		return nil, fmt.Errorf("itinerary JSON missing %q key", "accommodations")
	}

	var itin types.Itinerary
	if err := json.Unmarshal([]byte(cleaned), &itin); err != nil {
		return nil, fmt.Errorf("failed to parse itinerary JSON: %w", err)
	}
	return &itin, nil
}
