package advisor

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"google.golang.org/genai"

	"github.com/smartlife/ai-backend/internal/domain"
)

// CleanModelJSON strips the Markdown code fences the model is told to avoid
// but sometimes emits anyway, then trims to the outermost JSON value when
// extra prose surrounds it.
func CleanModelJSON(raw string) string {
	s := strings.TrimSpace(raw)

	// Handle ```json ... ``` or ``` ... ``` wrappers.
	if strings.HasPrefix(s, "```") {
		if idx := strings.Index(s, "\n"); idx != -1 {
			s = s[idx+1:]
		} else {
			// Single-line weirdness; leave it alone.
			return s
		}
		s = strings.TrimSpace(s)
	}
	if idx := strings.LastIndex(s, "```"); idx != -1 {
		s = s[:idx]
	}
	s = strings.TrimSpace(s)

	// If junk still surrounds the JSON, keep only the outermost object or
	// array, whichever opens first.
	objStart := strings.Index(s, "{")
	arrStart := strings.Index(s, "[")
	switch {
	case objStart != -1 && (arrStart == -1 || objStart < arrStart):
		if end := strings.LastIndex(s, "}"); end > objStart {
			s = strings.TrimSpace(s[objStart : end+1])
		}
	case arrStart != -1:
		if end := strings.LastIndex(s, "]"); end > arrStart {
			s = strings.TrimSpace(s[arrStart : end+1])
		}
	}

	return s
}

// ParseInsight interprets raw model text as the two-field insight object.
// Any non-conforming shape fails closed with ErrMalformedResponse so the
// caller can fall back to a locally computed insight.
func ParseInsight(raw string) (domain.Insight, error) {
	clean := CleanModelJSON(raw)

	var out domain.Insight
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return domain.Insight{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}
	if out.Insight == "" || len(out.Actions) == 0 {
		return domain.Insight{}, fmt.Errorf("%w: missing insight or actions", ErrMalformedResponse)
	}
	return out, nil
}

// ParseSchedule interprets raw model text as the schedule extraction union.
// The model's own {"error": ...} variant is a valid outcome, not a failure.
func ParseSchedule(raw string) (domain.ScheduleExtraction, error) {
	clean := CleanModelJSON(raw)

	var out struct {
		Title     string  `json:"title"`
		StartTime string  `json:"start_time"`
		EndTime   string  `json:"end_time"`
		DayOfWeek *int    `json:"day_of_week"`
		Location  *string `json:"location"`
		Error     string  `json:"error"`
	}
	if err := json.Unmarshal([]byte(clean), &out); err != nil {
		return domain.ScheduleExtraction{}, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if out.Error != "" {
		return domain.ScheduleError(out.Error), nil
	}
	if out.Title == "" || out.StartTime == "" || out.EndTime == "" || out.DayOfWeek == nil {
		return domain.ScheduleExtraction{}, fmt.Errorf("%w: incomplete schedule event", ErrMalformedResponse)
	}
	if *out.DayOfWeek < 0 || *out.DayOfWeek > 6 {
		return domain.ScheduleExtraction{}, fmt.Errorf("%w: day_of_week %d out of range", ErrMalformedResponse, *out.DayOfWeek)
	}

	return domain.ScheduleExtraction{
		Title:     out.Title,
		StartTime: out.StartTime,
		EndTime:   out.EndTime,
		DayOfWeek: *out.DayOfWeek,
		Location:  out.Location,
	}, nil
}

// ClassifyProviderError maps a failed provider call onto the error
// taxonomy. Classification relies on the API error code/status and a
// documented substring check, never on parsing full error prose.
func ClassifyProviderError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrMissingAPIKey) {
		return err
	}

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusTooManyRequests || apiErr.Status == "RESOURCE_EXHAUSTED" {
			return fmt.Errorf("%w: %s", ErrQuotaExceeded, apiErr.Message)
		}
		return err
	}

	// Some transports flatten the API error into plain text.
	msg := err.Error()
	if strings.Contains(msg, "429") || strings.Contains(msg, "RESOURCE_EXHAUSTED") {
		return fmt.Errorf("%w: %v", ErrQuotaExceeded, err)
	}

	return err
}
