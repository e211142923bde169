package constraints

import (
	"strings"

	"github.com/agext/levenshtein"

	"github.com/mediqo/mediqo/pkg/lang"
)

// EntityKind selects the fuzzy-match threshold: doctor names tolerate
// two edits, service names only one.
type EntityKind int

const (
	EntityDoctor EntityKind = iota
	EntityService
)

func (k EntityKind) maxDistance() int {
	if k == EntityDoctor {
		return 2
	}
	return 1
}

// ruSuffixes maps genitive/dative inflections back toward nominative.
// Applied to the last token of a name; longest suffix wins. The table
// is intentionally small: it covers the inflections patients actually
// produce when naming doctors and services, not full Russian grammar.
var ruSuffixes = []struct{ from, to string }{
	{"ого", ""},
	{"его", ""},
	{"ому", ""},
	{"ему", ""},
	{"ой", "а"},
	{"ей", "я"},
	{"ии", "ия"},
	{"ки", "ка"},
	{"ги", "га"},
	{"ны", "на"},
	{"ту", "т"},
	{"ну", "н"},
	{"ру", "р"},
	{"ву", "в"},
	{"а", ""},
	{"я", ""},
	{"у", ""},
	{"ю", ""},
	{"е", ""},
	{"ы", "а"},
	{"и", "а"},
}

var esSuffixes = []struct{ from, to string }{
	{"es", ""},
	{"s", ""},
}

// Variants returns the normalized name plus its nominative candidates.
// The first element is always the normalized input itself.
func Variants(name string, language lang.Language) []string {
	normalized := Normalize(name)
	out := []string{normalized}

	var table []struct{ from, to string }
	switch language {
	case lang.Russian:
		table = ruSuffixes
	case lang.Spanish:
		table = esSuffixes
	default:
		return out
	}

	tokens := strings.Fields(normalized)
	if len(tokens) == 0 {
		return out
	}
	last := tokens[len(tokens)-1]
	for _, s := range table {
		if !strings.HasSuffix(last, s.from) || len(last) <= len(s.from)+2 {
			continue
		}
		variant := last[:len(last)-len(s.from)] + s.to
		tokens[len(tokens)-1] = variant
		out = append(out, strings.Join(tokens, " "))
	}
	return out
}

// Normalize trims, lowercases and strips honorifics so that
// "Dr. Shtern" and "штерн" compare cleanly.
func Normalize(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	for _, prefix := range []string{"dr. ", "dr ", "doctor ", "doctora ", "доктор ", "доктора ", "врач ", "врача "} {
		if strings.HasPrefix(s, prefix) {
			s = strings.TrimSpace(s[len(prefix):])
			break
		}
	}
	return s
}

// IsExcluded reports whether a candidate name matches any entry of the
// excluded set. Matching is morphology-aware in both directions:
// variants of the candidate against variants of each excluded name,
// exact or within the kind's edit-distance threshold.
func IsExcluded(candidate string, excluded []string, language lang.Language, kind EntityKind) bool {
	if strings.TrimSpace(candidate) == "" {
		return false
	}
	candidateVariants := Variants(candidate, language)
	for _, entry := range excluded {
		entryVariants := Variants(entry, language)
		for _, cv := range candidateVariants {
			for _, ev := range entryVariants {
				if cv == ev {
					return true
				}
				if levenshtein.Distance(cv, ev, nil) <= kind.maxDistance() {
					return true
				}
			}
		}
	}
	return false
}
