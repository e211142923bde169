package constraints

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/lang"
)

// Monday in a UTC-5 clinic.
var testClinicTZ = time.FixedZone("UTC-5", -5*3600)

func fixedExtractor() *Extractor {
	return NewExtractorAt(func() time.Time {
		return time.Date(2025, 11, 24, 15, 0, 0, 0, testClinicTZ)
	})
}

func TestExtract_MetaReset(t *testing.T) {
	e := fixedExtractor()

	tests := []struct {
		language lang.Language
		message  string
	}{
		{lang.English, "let's start over please"},
		{lang.Russian, "Давай начнем заново"},
		{lang.Spanish, "mejor empezar de nuevo"},
	}
	for _, tt := range tests {
		update := e.Extract(tt.message, tt.language, testClinicTZ)
		assert.True(t, update.MetaReset, "message %q", tt.message)
	}
}

func TestExtract_ForgetDoctor(t *testing.T) {
	e := fixedExtractor()

	update := e.Extract("forget Dr. Dan", lang.English, testClinicTZ)
	require.False(t, update.IsEmpty())
	assert.Equal(t, []string{"Dr. Dan"}, update.ExcludeDoctors)
	// The candidate also goes to the service side; morphology at the
	// store decides which one it really names.
	assert.Equal(t, []string{"Dr. Dan"}, update.ExcludeServices)
}

func TestExtract_ForgetRussian(t *testing.T) {
	e := fixedExtractor()

	update := e.Extract("не нужен Штерн", lang.Russian, testClinicTZ)
	assert.Equal(t, []string{"Штерн"}, update.ExcludeDoctors)
}

func TestExtract_Switch(t *testing.T) {
	e := fixedExtractor()

	update := e.Extract("instead of cleaning, I want whitening", lang.English, testClinicTZ)
	assert.Contains(t, update.ExcludeServices, "cleaning")
	assert.Equal(t, "whitening", update.DesiredService)
}

func TestExtract_GuardRejectsFragments(t *testing.T) {
	e := fixedExtractor()

	tests := []struct {
		name    string
		message string
	}{
		{"blacklisted token", "forget about booking me please"},
		{"scheduling gerund", "forget rescheduling"},
		{"too many tokens", "forget the long thing I said before about that"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			update := e.Extract(tt.message, lang.English, testClinicTZ)
			assert.Empty(t, update.ExcludeDoctors)
			assert.Empty(t, update.ExcludeServices)
		})
	}
}

func TestExtract_Tomorrow(t *testing.T) {
	e := fixedExtractor()

	update := e.Extract("Book Dr. Shtern tomorrow at 11", lang.English, testClinicTZ)
	require.NotNil(t, update.TimeWindow)
	assert.Equal(t, "2025-11-25", update.TimeWindow.Start)
	assert.Equal(t, "2025-11-25", update.TimeWindow.End)
	assert.Equal(t, "tomorrow at 11", update.TimeWindow.Display)
}

func TestExtract_TomorrowRussianAndSpanish(t *testing.T) {
	e := fixedExtractor()

	ru := e.Extract("запишите меня завтра", lang.Russian, testClinicTZ)
	require.NotNil(t, ru.TimeWindow)
	assert.Equal(t, "2025-11-25", ru.TimeWindow.Start)

	es := e.Extract("quiero una cita pasado mañana", lang.Spanish, testClinicTZ)
	require.NotNil(t, es.TimeWindow)
	assert.Equal(t, "2025-11-26", es.TimeWindow.Start)
	assert.Equal(t, "pasado mañana", es.TimeWindow.Display)
}

func TestExtract_NextWeek(t *testing.T) {
	e := fixedExtractor()

	// Today is Monday 2025-11-24; next week runs Dec 1 through Dec 7.
	update := e.Extract("sometime next week works", lang.English, testClinicTZ)
	require.NotNil(t, update.TimeWindow)
	assert.Equal(t, "2025-12-01", update.TimeWindow.Start)
	assert.Equal(t, "2025-12-07", update.TimeWindow.End)
}

func TestExtract_Weekday(t *testing.T) {
	e := fixedExtractor()

	// Today is Monday; "friday" resolves to the coming Friday.
	update := e.Extract("can we do friday", lang.English, testClinicTZ)
	require.NotNil(t, update.TimeWindow)
	assert.Equal(t, "2025-11-28", update.TimeWindow.Start)
	assert.Equal(t, "2025-11-28", update.TimeWindow.End)
}

func TestExtract_SameWeekdayGoesToNextWeek(t *testing.T) {
	e := fixedExtractor()

	// "Monday" on a Monday means the next one, not today.
	update := e.Extract("monday then", lang.English, testClinicTZ)
	require.NotNil(t, update.TimeWindow)
	assert.Equal(t, "2025-12-01", update.TimeWindow.Start)
}

func TestExtract_NoSignal(t *testing.T) {
	e := fixedExtractor()

	update := e.Extract("thanks!", lang.English, testClinicTZ)
	assert.True(t, update.IsEmpty())
}
