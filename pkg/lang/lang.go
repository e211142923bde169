// Package lang provides deterministic language detection, a 30-day
// per-patient language cache, and the localized template set used by
// fast-path replies and fallback messages.
package lang

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mediqo/mediqo/pkg/kv"
)

// Language is a supported patient language.
type Language string

const (
	Russian Language = "ru"
	Spanish Language = "es"
	English Language = "en"
)

// Supported reports whether code names a supported language.
func Supported(code string) bool {
	switch Language(code) {
	case Russian, Spanish, English:
		return true
	}
	return false
}

const cacheTTL = 30 * 24 * time.Hour

// Service resolves a patient's language, remembering detections in the
// KV store keyed by a hash of the normalized phone. A small in-process
// memo avoids a KV round trip on every turn of the same conversation.
type Service struct {
	store kv.Store

	mu   sync.RWMutex
	memo map[string]Language
}

// NewService creates a language service over the given store.
func NewService(store kv.Store) *Service {
	return &Service{store: store, memo: map[string]Language{}}
}

type cachedLanguage struct {
	Language   Language  `json:"language"`
	DetectedAt time.Time `json:"detected_at"`
}

// Resolve returns the language for a patient, preferring an explicit
// profile preference, then the cache, then fresh detection on the
// message text. Fresh detections are written back with a 30-day TTL;
// cache write failures are logged, never surfaced.
func (s *Service) Resolve(ctx context.Context, phone, text, preferred string) Language {
	if Supported(preferred) {
		return Language(preferred)
	}

	key := cacheKey(phone)

	s.mu.RLock()
	memoized, ok := s.memo[key]
	s.mu.RUnlock()
	if ok {
		return memoized
	}

	var cached cachedLanguage
	if err := s.store.GetJSON(ctx, key, &cached); err == nil && Supported(string(cached.Language)) {
		s.remember(key, cached.Language)
		return cached.Language
	}

	detected := Detect(text)
	s.remember(key, detected)
	if err := s.store.SetJSON(ctx, key, cachedLanguage{Language: detected, DetectedAt: time.Now().UTC()}, cacheTTL); err != nil {
		slog.Warn("language cache write failed", "error", err)
	}
	return detected
}

func (s *Service) remember(key string, language Language) {
	s.mu.Lock()
	s.memo[key] = language
	s.mu.Unlock()
}

// Flush clears the in-process memo. Test hook.
func (s *Service) Flush() {
	s.mu.Lock()
	s.memo = map[string]Language{}
	s.mu.Unlock()
}

// cacheKey hashes the normalized phone so raw numbers never appear as
// KV keys.
func cacheKey(phone string) string {
	sum := sha256.Sum256([]byte(normalizePhone(phone)))
	return "lang:" + hex.EncodeToString(sum[:])
}

func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
