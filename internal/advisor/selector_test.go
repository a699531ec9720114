package advisor

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChooseModel(t *testing.T) {
	log := zerolog.Nop()

	tests := []struct {
		name      string
		preferred []string
		available []string
		want      string
	}{
		{
			name:      "first preferred available",
			preferred: []string{"fast", "pro"},
			available: []string{"fast", "pro", "legacy"},
			want:      "fast",
		},
		{
			name:      "second preferred when first missing",
			preferred: []string{"fast", "pro"},
			available: []string{"pro", "legacy"},
			want:      "pro",
		},
		{
			name:      "any available when no preferred matches",
			preferred: []string{"fast", "pro"},
			available: []string{"legacy", "ancient"},
			want:      "legacy",
		},
		{
			name:      "fallback when nothing available",
			preferred: []string{"fast", "pro"},
			available: nil,
			want:      "default",
		},
		{
			name:      "models prefix is normalized",
			preferred: []string{"gemini-1.5-flash"},
			available: []string{"models/gemini-1.5-flash"},
			want:      "gemini-1.5-flash",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ChooseModel(tt.preferred, tt.available, "default", log)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestModelSelectorFallsBackOnDiscoveryFailure(t *testing.T) {
	gen := &mockGenerator{
		listModelsFunc: func(ctx context.Context) ([]string, error) {
			return nil, errors.New("listing blocked for this key")
		},
	}

	selector := NewModelSelector(gen, []string{"fast", "pro"}, "default", zerolog.Nop())

	assert.Equal(t, "default", selector.Select(context.Background()))
}

func TestModelSelectorCachesDiscovery(t *testing.T) {
	calls := 0
	gen := &mockGenerator{
		listModelsFunc: func(ctx context.Context) ([]string, error) {
			calls++
			return []string{"models/pro"}, nil
		},
	}

	selector := NewModelSelector(gen, []string{"pro"}, "default", zerolog.Nop())

	require.Equal(t, "pro", selector.Select(context.Background()))
	require.Equal(t, "pro", selector.Select(context.Background()))
	assert.Equal(t, 1, calls, "second call should hit the cache")
}
