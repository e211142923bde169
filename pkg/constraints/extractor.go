package constraints

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/mediqo/mediqo/pkg/lang"
	"github.com/mediqo/mediqo/pkg/models"
)

// Extractor derives constraint updates from raw patient messages.
// It is deliberately conservative: a missed constraint costs a softer
// reply, a fabricated one blocks legitimate bookings.
type Extractor struct {
	now func() time.Time
}

// NewExtractor creates an extractor using the wall clock.
func NewExtractor() *Extractor {
	return &Extractor{now: time.Now}
}

// NewExtractorAt creates an extractor with a fixed clock. Test hook.
func NewExtractorAt(now func() time.Time) *Extractor {
	return &Extractor{now: now}
}

var metaResetPhrases = map[lang.Language][]string{
	lang.English: {"start over", "start again", "start fresh", "forget everything", "reset everything", "clear everything"},
	lang.Russian: {"начнем заново", "начнём заново", "начать сначала", "забудь все", "забудь всё", "сбрось все", "сбрось всё", "давай сначала"},
	lang.Spanish: {"empezar de nuevo", "empecemos de nuevo", "olvida todo", "borra todo", "desde cero"},
}

var forgetPatterns = map[lang.Language][]*regexp.Regexp{
	lang.English: {
		regexp.MustCompile(`(?i)\bforget (?:about )?(.{2,60})`),
		regexp.MustCompile(`(?i)\b(?:i )?(?:don't|do not) want (.{2,60})`),
		regexp.MustCompile(`(?i)\bnot (?:with )?(?:dr\.? )(.{2,60})`),
	},
	lang.Russian: {
		regexp.MustCompile(`(?i)забудь(?:те)? (?:про |о )?(.{2,60})`),
		regexp.MustCompile(`(?i)не (?:нужен|нужна|нужно|надо) (.{2,60})`),
		regexp.MustCompile(`(?i)только не (?:к )?(.{2,60})`),
	},
	lang.Spanish: {
		regexp.MustCompile(`(?i)olvida(?:te de)? (.{2,60})`),
		regexp.MustCompile(`(?i)no quiero (?:al? |el |la )?(.{2,60})`),
	},
}

var switchPatterns = map[lang.Language][]*regexp.Regexp{
	lang.English: {
		regexp.MustCompile(`(?i)instead of (.{2,60}?),? (?:i )?(?:want|prefer|give me) (.{2,60})`),
	},
	lang.Russian: {
		regexp.MustCompile(`(?i)вместо (.{2,60}?) (?:хочу|давайте|лучше) (.{2,60})`),
	},
	lang.Spanish: {
		regexp.MustCompile(`(?i)en (?:vez|lugar) de (.{2,60}?) (?:quiero|prefiero|mejor) (.{2,60})`),
	},
}

// Extract derives a constraint update from one message. The returned
// update may be empty; callers check IsEmpty before applying it.
func (e *Extractor) Extract(message string, language lang.Language, clinicTZ *time.Location) models.ConstraintUpdate {
	var update models.ConstraintUpdate
	lowered := strings.ToLower(strings.TrimSpace(message))
	if lowered == "" {
		return update
	}

	for _, phrase := range metaResetPhrases[language] {
		if strings.Contains(lowered, phrase) {
			return models.ConstraintUpdate{MetaReset: true}
		}
	}

	for _, re := range switchPatterns[language] {
		if m := re.FindStringSubmatch(message); m != nil {
			from := cleanEntity(m[1])
			to := cleanEntity(m[2])
			if AcceptEntity(from, language) {
				update.ExcludeDoctors = append(update.ExcludeDoctors, from)
				update.ExcludeServices = append(update.ExcludeServices, from)
			}
			if AcceptEntity(to, language) {
				// Ambiguous target: remember it as the desired service;
				// the router's alias match corrects it to a doctor when
				// the name resolves that way.
				update.DesiredService = to
			}
		}
	}

	if len(update.ExcludeDoctors) == 0 {
		for _, re := range forgetPatterns[language] {
			if m := re.FindStringSubmatch(message); m != nil {
				entity := cleanEntity(m[1])
				if AcceptEntity(entity, language) {
					// The store's morphology check decides whether this
					// names a doctor or a service; candidate goes to both.
					update.ExcludeDoctors = append(update.ExcludeDoctors, entity)
					update.ExcludeServices = append(update.ExcludeServices, entity)
					break
				}
			}
		}
	}

	if window, ok := e.extractTimeWindow(lowered, language, clinicTZ); ok {
		update.TimeWindow = &window
	}

	return update
}

// cleanEntity trims the punctuation and trailing clauses a regex
// capture drags along.
func cleanEntity(s string) string {
	s = strings.TrimSpace(s)
	for _, cut := range []string{",", ".", "!", "?", ";", " at ", " в ", " a las ", " на "} {
		if i := strings.Index(strings.ToLower(s), cut); i > 0 {
			s = s[:i]
		}
	}
	return strings.TrimSpace(s)
}

type dateWord struct {
	phrase string
	days   int
}

var relativeDates = map[lang.Language][]dateWord{
	lang.English: {{"day after tomorrow", 2}, {"tomorrow", 1}, {"today", 0}},
	lang.Russian: {{"послезавтра", 2}, {"завтра", 1}, {"сегодня", 0}},
	lang.Spanish: {{"pasado mañana", 2}, {"mañana", 1}, {"hoy", 0}},
}

var nextWeekPhrases = map[lang.Language][]string{
	lang.English: {"next week"},
	lang.Russian: {"на следующей неделе", "на след неделе"},
	lang.Spanish: {"la próxima semana", "la semana que viene"},
}

var weekdayNames = map[lang.Language]map[string]time.Weekday{
	lang.English: {
		"monday": time.Monday, "tuesday": time.Tuesday, "wednesday": time.Wednesday,
		"thursday": time.Thursday, "friday": time.Friday, "saturday": time.Saturday, "sunday": time.Sunday,
	},
	lang.Russian: {
		"понедельник": time.Monday, "вторник": time.Tuesday, "среду": time.Wednesday, "среда": time.Wednesday,
		"четверг": time.Thursday, "пятницу": time.Friday, "пятница": time.Friday,
		"субботу": time.Saturday, "суббота": time.Saturday, "воскресенье": time.Sunday,
	},
	lang.Spanish: {
		"lunes": time.Monday, "martes": time.Tuesday, "miércoles": time.Wednesday, "miercoles": time.Wednesday,
		"jueves": time.Thursday, "viernes": time.Friday, "sábado": time.Saturday, "sabado": time.Saturday,
		"domingo": time.Sunday,
	},
}

// Word boundaries are ASCII-only in regexp, so the Russian "в" is
// anchored on preceding whitespace instead.
var hourPattern = regexp.MustCompile(`(?:\bat|\sв|\ba las?)\s+(\d{1,2})(?::(\d{2}))?\s*(am|pm)?`)

// extractTimeWindow normalizes relative date expressions against the
// clinic timezone into an absolute inclusive date range plus the
// phrase the patient used.
func (e *Extractor) extractTimeWindow(lowered string, language lang.Language, clinicTZ *time.Location) (models.TimeWindow, bool) {
	if clinicTZ == nil {
		clinicTZ = time.UTC
	}
	today := e.now().In(clinicTZ)

	display := ""
	var start, end time.Time
	found := false

	for _, dw := range relativeDates[language] {
		if strings.Contains(lowered, dw.phrase) {
			day := today.AddDate(0, 0, dw.days)
			start, end = day, day
			display = dw.phrase
			found = true
			break
		}
	}

	if !found {
		for _, phrase := range nextWeekPhrases[language] {
			if strings.Contains(lowered, phrase) {
				// Monday through Sunday of the following week.
				daysUntilMonday := (int(time.Monday) - int(today.Weekday()) + 7) % 7
				if daysUntilMonday == 0 {
					daysUntilMonday = 7
				}
				start = today.AddDate(0, 0, daysUntilMonday)
				end = start.AddDate(0, 0, 6)
				display = phrase
				found = true
				break
			}
		}
	}

	if !found {
		for name, weekday := range weekdayNames[language] {
			if strings.Contains(lowered, name) {
				days := (int(weekday) - int(today.Weekday()) + 7) % 7
				if days == 0 {
					days = 7
				}
				day := today.AddDate(0, 0, days)
				start, end = day, day
				display = name
				found = true
				break
			}
		}
	}

	if !found {
		return models.TimeWindow{}, false
	}

	if m := hourPattern.FindStringSubmatch(lowered); m != nil {
		display = fmt.Sprintf("%s %s", display, strings.TrimSpace(m[0]))
	}

	return models.TimeWindow{
		Start:   start.Format("2006-01-02"),
		End:     end.Format("2006-01-02"),
		Display: display,
	}, true
}
