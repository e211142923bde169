package lang

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/kv"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		text string
		want Language
	}{
		{"cyrillic", "Запишите меня к врачу завтра", Russian},
		{"mixed cyrillic wins", "hello Привет", Russian},
		{"spanish punctuation and word", "¿cuánto cuesta la limpieza?", Spanish},
		{"spanish stop words", "quiero una cita para mañana por favor", Spanish},
		{"english", "I want to book a cleaning tomorrow", English},
		{"single ambiguous word", "ok", English},
		{"empty", "   ", English},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.text))
		})
	}
}

func TestService_Resolve_PrefersProfile(t *testing.T) {
	svc := NewService(kv.NewMemoryStore())
	got := svc.Resolve(context.Background(), "+1 555 0100", "hello there", "ru")
	assert.Equal(t, Russian, got)
}

func TestService_Resolve_CachesDetection(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	first := svc.Resolve(ctx, "+1-555-0100", "¿cuánto cuesta una cita?", "")
	assert.Equal(t, Spanish, first)

	// Same phone, different formatting, English text: the cached
	// detection wins over fresh detection.
	svc.Flush()
	second := svc.Resolve(ctx, "15550100", "hello", "")
	assert.Equal(t, Spanish, second)

	var cached cachedLanguage
	require.NoError(t, store.GetJSON(ctx, cacheKey("15550100"), &cached))
	assert.Equal(t, Spanish, cached.Language)
	assert.WithinDuration(t, time.Now(), cached.DetectedAt, time.Minute)
}

func TestService_Resolve_MemoSkipsStore(t *testing.T) {
	store := kv.NewMemoryStore()
	svc := NewService(store)
	ctx := context.Background()

	assert.Equal(t, English, svc.Resolve(ctx, "555", "hello", ""))

	// Deleting the KV entry does not affect the memoized answer.
	require.NoError(t, store.Delete(ctx, cacheKey("555")))
	assert.Equal(t, English, svc.Resolve(ctx, "555", "¿cuánto cuesta?", ""))

	// After a flush the detection runs again.
	svc.Flush()
	assert.Equal(t, Spanish, svc.Resolve(ctx, "555", "¿cuánto cuesta?", ""))
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "79991234567", normalizePhone("+7 (999) 123-45-67"))
	assert.Equal(t, "15550100", normalizePhone("1-555-0100@transport"))
}
