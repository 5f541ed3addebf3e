package itinerary

import (
	"fmt"
	"strings"
	"time"

	"github.com/FACorreiaa/go-travel-itinerary-ai/internal/types"
)

// naiveTimestampLayout accepts ISO-8601 timestamps without an offset.
const naiveTimestampLayout = "2006-01-02T15:04:05"

func parseTimestamp(value string) (time.Time, error) {
	// A trailing literal Z is normalized to an explicit UTC offset
	// before parsing.
	if strings.HasSuffix(value, "Z") {
		value = strings.TrimSuffix(value, "Z") + "+00:00"
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	t, err := time.ParseInLocation(naiveTimestampLayout, value, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("unparseable timestamp %q: %w", value, err)
	}
	return t, nil
}

// resolveDateRange parses the trip boundaries and computes the whole-day
// duration, truncated toward zero. A parse failure or a non-positive
// duration is fatal for the request: the fallback generator needs valid
// dates too.
func resolveDateRange(startStr, endStr string) (time.Time, time.Time, int, error) {
	start, err := parseTimestamp(startStr)
	if err != nil {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("%w: %v", types.ErrInvalidDateRange, err)
	}
	end, err := parseTimestamp(endStr)
	if err != nil {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("%w: %v", types.ErrInvalidDateRange, err)
	}
	durationDays := int(end.Sub(start).Hours() / 24)
	if durationDays <= 0 {
		return time.Time{}, time.Time{}, 0, fmt.Errorf("%w: endDate must be after startDate", types.ErrInvalidDateRange)
	}
	return start, end, durationDays, nil
}
