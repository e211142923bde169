// Package router classifies inbound messages into lanes. Fast lanes
// (FAQ, price, service info) answer from clinic data without the LLM;
// everything else flows to the tool-calling orchestrator.
package router

import (
	"strings"

	"github.com/agext/levenshtein"

	"github.com/mediqo/mediqo/pkg/hydrate"
	"github.com/mediqo/mediqo/pkg/lang"
)

// Lane is a routing outcome.
type Lane string

const (
	LaneFAQ         Lane = "faq"
	LanePrice       Lane = "price"
	LaneServiceInfo Lane = "service_info"
	LaneScheduling  Lane = "scheduling"
	LaneComplex     Lane = "complex"
)

// Route is a classification result. ServiceID is set when a lane
// bound the message to a concrete service.
type Route struct {
	Lane      Lane
	ServiceID string
	// NeedsClarification marks a service-info question with no bound
	// service; the fast path asks which service is meant.
	NeedsClarification bool
}

// aliasMatchThreshold is the fuzzy similarity floor for service
// aliases.
const aliasMatchThreshold = 0.90

var affirmativeWords = map[lang.Language][]string{
	lang.English: {"yes", "yeah", "sure", "ok", "okay", "please do", "go ahead"},
	lang.Russian: {"да", "давай", "давайте", "хорошо", "ок", "конечно"},
	lang.Spanish: {"sí", "si", "claro", "dale", "por supuesto", "ok"},
}

var negativeWords = map[lang.Language][]string{
	lang.English: {"no", "not now", "later", "nope"},
	lang.Russian: {"нет", "не надо", "не сейчас", "потом"},
	lang.Spanish: {"no", "ahora no", "después", "luego"},
}

var serviceInfoKeywords = map[lang.Language][]string{
	lang.English: {"how long", "what's included", "what is included", "what does it include", "duration"},
	lang.Russian: {"сколько длится", "сколько по времени", "что входит", "как проходит"},
	lang.Spanish: {"cuánto dura", "cuanto dura", "qué incluye", "que incluye", "cómo es", "como es"},
}

var faqKeywords = map[lang.Language][]string{
	lang.English: {"hours", "open", "address", "where are you", "location", "parking"},
	lang.Russian: {"часы работы", "до скольки", "адрес", "где вы", "как добраться", "парковка"},
	lang.Spanish: {"horario", "a qué hora abren", "dirección", "direccion", "dónde están", "donde estan"},
}

var schedulingKeywords = map[lang.Language][]string{
	lang.English: {"book", "appointment", "schedule", "reschedule", "available", "slot"},
	lang.Russian: {"запис", "приём", "прием", "свободн", "перенести"},
	lang.Spanish: {"cita", "agendar", "reservar", "turno", "disponib"},
}

// Router classifies messages. Stateless; all inputs come from the
// hydrated context.
type Router struct{}

// New creates a router.
func New() *Router {
	return &Router{}
}

// Classify applies the lane priorities in order; the first match wins.
func (r *Router) Classify(message string, language lang.Language, hctx *hydrate.Context) Route {
	lowered := strings.ToLower(strings.TrimSpace(message))
	if lowered == "" {
		return Route{Lane: LaneComplex}
	}

	// 1-2. A pending action resolves short replies.
	if hctx.Session != nil && hctx.Session.PendingAction != "" {
		if matchesAny(lowered, affirmativeWords[language]) {
			return Route{Lane: LaneScheduling, ServiceID: boundService(hctx)}
		}
		if matchesAny(lowered, negativeWords[language]) {
			return Route{Lane: LaneFAQ}
		}
	}

	// 3. Service-info question, bound to the remembered service when
	// one exists.
	if matchesAny(lowered, serviceInfoKeywords[language]) {
		if sid := boundService(hctx); sid != "" {
			return Route{Lane: LaneServiceInfo, ServiceID: sid}
		}
		if sid, ok := r.matchAlias(lowered, hctx); ok {
			return Route{Lane: LaneServiceInfo, ServiceID: sid}
		}
		return Route{Lane: LaneServiceInfo, NeedsClarification: true}
	}

	// 4. Alias hit binds a price question.
	if sid, ok := r.matchAlias(lowered, hctx); ok {
		return Route{Lane: LanePrice, ServiceID: sid}
	}

	// 5. FAQ keywords.
	if matchesAny(lowered, faqKeywords[language]) {
		return Route{Lane: LaneFAQ}
	}

	// 6. Scheduling keywords need a bound service to stay in the fast
	// scheduling lane.
	if matchesAny(lowered, schedulingKeywords[language]) {
		if sid := boundService(hctx); sid != "" {
			return Route{Lane: LaneScheduling, ServiceID: sid}
		}
		return Route{Lane: LaneComplex}
	}

	// 7. Everything else.
	return Route{Lane: LaneComplex}
}

func matchesAny(lowered string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lowered, kw) {
			return true
		}
	}
	return false
}

// boundService prefers the constraint block's desired service (when it
// resolves to a known service id) over the session's last mention.
func boundService(hctx *hydrate.Context) string {
	if hctx.Constraints.DesiredService != "" {
		if _, ok := hctx.Clinic.ServiceByID(hctx.Constraints.DesiredService); ok {
			return hctx.Constraints.DesiredService
		}
	}
	if hctx.Session != nil {
		return hctx.Session.LastServiceMentioned
	}
	return ""
}

// matchAlias scans message word n-grams (1..3 words) against the
// clinic's service aliases with fuzzy similarity.
func (r *Router) matchAlias(lowered string, hctx *hydrate.Context) (string, bool) {
	if len(hctx.Clinic.ServiceAliases) == 0 {
		return "", false
	}
	words := strings.Fields(strings.Trim(lowered, "?!.,¿¡"))
	bestScore := 0.0
	bestID := ""
	for alias, serviceID := range hctx.Clinic.ServiceAliases {
		alias = strings.ToLower(alias)
		for _, candidate := range ngrams(words, 3) {
			// Match adds a common-prefix bonus over plain similarity,
			// which is what typo'd service names need.
			score := levenshtein.Match(candidate, alias, nil)
			if score > bestScore {
				bestScore = score
				bestID = serviceID
			}
		}
	}
	if bestScore >= aliasMatchThreshold {
		return bestID, true
	}
	return "", false
}

func ngrams(words []string, maxN int) []string {
	var out []string
	for n := 1; n <= maxN; n++ {
		for i := 0; i+n <= len(words); i++ {
			out = append(out, strings.Trim(strings.Join(words[i:i+n], " "), "?!.,¿¡"))
		}
	}
	return out
}
