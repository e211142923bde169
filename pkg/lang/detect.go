package lang

import (
	"strings"
	"unicode"
)

// spanishMarkers are words and characters that only (or almost only)
// occur in Spanish among the supported languages. Detection is
// deterministic: no external service is ever consulted.
var spanishWords = map[string]struct{}{
	"hola": {}, "gracias": {}, "cuanto": {}, "cuánto": {}, "cuesta": {},
	"precio": {}, "cita": {}, "quiero": {}, "necesito": {}, "doctor": {},
	"doctora": {}, "mañana": {}, "buenos": {}, "buenas": {}, "dias": {},
	"días": {}, "tardes": {}, "limpieza": {}, "por": {}, "favor": {},
	"donde": {}, "dónde": {}, "como": {}, "cómo": {}, "que": {}, "qué": {},
	"para": {}, "una": {}, "las": {}, "los": {}, "con": {}, "sin": {},
}

// Detect classifies a message into one of the supported languages.
// Cyrillic script wins outright; otherwise Spanish punctuation,
// diacritics and stop-words are scored against a plain-English
// default. Empty or undecidable input falls back to English.
func Detect(text string) Language {
	text = strings.TrimSpace(text)
	if text == "" {
		return English
	}

	for _, r := range text {
		if unicode.Is(unicode.Cyrillic, r) {
			return Russian
		}
	}

	score := 0
	if strings.ContainsAny(text, "¿¡ñÑ") {
		score += 2
	}
	if strings.ContainsAny(text, "áéíóúÁÉÍÓÚü") {
		score++
	}
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,!?¿¡:;\"'()")
		if _, ok := spanishWords[word]; ok {
			score++
		}
	}
	if score >= 2 {
		return Spanish
	}
	return English
}
