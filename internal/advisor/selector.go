package advisor

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// modelPrefix is how the Gemini list endpoint qualifies identifiers
// ("models/gemini-1.5-flash"). Selection compares with the prefix stripped
// so callers can configure either form.
const modelPrefix = "models/"

// ModelSelector picks one usable generation model per call. Discovery
// results are cached for a short TTL; the cache is purely advisory and a
// stale read only costs a sub-optimal pick, never a wrong result.
type ModelSelector struct {
	gen       Generator
	preferred []string
	fallback  string
	cacheTTL  time.Duration
	log       zerolog.Logger

	mu       sync.Mutex
	cached   []string
	cachedAt time.Time
}

// NewModelSelector creates a selector over the given generator. preferred
// is ordered by desirability (fast/cheap first); fallback is used whenever
// discovery fails or returns nothing.
func NewModelSelector(gen Generator, preferred []string, fallback string, log zerolog.Logger) *ModelSelector {
	return &ModelSelector{
		gen:       gen,
		preferred: preferred,
		fallback:  fallback,
		cacheTTL:  time.Minute,
		log:       log,
	}
}

// Select returns exactly one model identifier. It never fails and never
// blocks on discovery beyond the caller's context: a failed or empty
// listing resolves to the hardcoded fallback.
func (s *ModelSelector) Select(ctx context.Context) string {
	available, err := s.availableModels(ctx)
	if err != nil {
		s.log.Warn().Err(err).Str("model", s.fallback).Msg("Model discovery failed, using fallback model")
		return s.fallback
	}
	return ChooseModel(s.preferred, available, s.fallback, s.log)
}

func (s *ModelSelector) availableModels(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	if s.cached != nil && time.Since(s.cachedAt) < s.cacheTTL {
		cached := s.cached
		s.mu.Unlock()
		return cached, nil
	}
	s.mu.Unlock()

	models, err := s.gen.ListModelIDs(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = models
	s.cachedAt = time.Now()
	s.mu.Unlock()

	return models, nil
}

// ChooseModel is the deterministic selection rule: the first preferred
// identifier present in the available set wins; otherwise any available
// identifier (logged as a degradation); otherwise the fallback.
func ChooseModel(preferred, available []string, fallback string, log zerolog.Logger) string {
	set := make(map[string]bool, len(available))
	for _, m := range available {
		set[normalizeModelID(m)] = true
	}

	for _, p := range preferred {
		if id := normalizeModelID(p); set[id] {
			return id
		}
	}

	if len(available) > 0 {
		picked := normalizeModelID(available[0])
		log.Warn().Str("model", picked).Msg("No preferred model available, using first discovered model")
		return picked
	}

	return fallback
}

func normalizeModelID(id string) string {
	return strings.TrimPrefix(id, modelPrefix)
}
