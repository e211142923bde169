package constraints

import (
	"strings"

	"github.com/mediqo/mediqo/pkg/lang"
)

// Sentence fragments that show a capture grabbed running prose rather
// than a name. Per language, lowercase.
var fragmentBlacklist = map[lang.Language][]string{
	lang.English: {"please", "want", "need", "book", "booking", "rescheduling", "canceling", "cancelling", "appointment", "about", "it", "that", "everything", "me"},
	lang.Russian: {"пожалуйста", "хочу", "надо", "нужно", "записаться", "запись", "это", "все", "всё", "меня"},
	lang.Spanish: {"quiero", "necesito", "cita", "favor", "por", "eso", "todo", "agendar"},
}

// Verbal suffixes: a candidate ending in one is a verb phrase, not a
// doctor or service name. English gerunds are legitimate service names
// ("cleaning", "whitening"), so English relies on the blacklist alone.
var verbalSuffixes = map[lang.Language][]string{
	lang.Russian: {"ться", "ать", "ить", "еть", "уть"},
	lang.Spanish: {"arme", "arlo", "arla"},
}

const (
	maxEntityChars  = 50
	maxEntityTokens = 4
)

// AcceptEntity validates an extracted doctor/service candidate before
// it can enter the constraint block. Conservative on purpose: false
// negatives are preferred to false constraint injection.
func AcceptEntity(candidate string, language lang.Language) bool {
	candidate = strings.TrimSpace(candidate)
	if candidate == "" || len(candidate) > maxEntityChars {
		return false
	}

	tokens := strings.Fields(strings.ToLower(candidate))
	if len(tokens) == 0 || len(tokens) > maxEntityTokens {
		return false
	}

	for _, token := range tokens {
		token = strings.Trim(token, ".,!?¿¡:;\"'")
		for _, banned := range fragmentBlacklist[language] {
			if token == banned {
				return false
			}
		}
	}

	last := strings.Trim(tokens[len(tokens)-1], ".,!?¿¡:;\"'")
	for _, suffix := range verbalSuffixes[language] {
		if len(last) > len(suffix)+2 && strings.HasSuffix(last, suffix) {
			return false
		}
	}
	return true
}
