package constraints

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mediqo/mediqo/pkg/lang"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "shtern", Normalize("Dr. Shtern"))
	assert.Equal(t, "штерн", Normalize("доктор Штерн"))
	assert.Equal(t, "lopez", Normalize("  Doctora Lopez "))
}

func TestVariants_Russian(t *testing.T) {
	assert.Contains(t, Variants("Штерна", lang.Russian), "штерн")
	assert.Contains(t, Variants("Ивановой", lang.Russian), "иванова")
	assert.Contains(t, Variants("чистки", lang.Russian), "чистка")
}

func TestIsExcluded(t *testing.T) {
	tests := []struct {
		name      string
		candidate string
		excluded  []string
		language  lang.Language
		kind      EntityKind
		want      bool
	}{
		{"exact case-insensitive", "DR. DAN", []string{"dr. dan"}, lang.English, EntityDoctor, true},
		{"honorific stripped", "Dr. Dan", []string{"Dan"}, lang.English, EntityDoctor, true},
		{"russian genitive candidate", "Штерна", []string{"Штерн"}, lang.Russian, EntityDoctor, true},
		{"russian genitive in excluded set", "Штерн", []string{"Штерна"}, lang.Russian, EntityDoctor, true},
		{"doctor fuzzy two edits", "Shternn", []string{"Shtern"}, lang.English, EntityDoctor, true},
		{"service fuzzy one edit", "cleanin", []string{"cleaning"}, lang.English, EntityService, true},
		{"service two edits too far", "cleanng den", []string{"cleaning dental"}, lang.English, EntityService, false},
		{"unrelated name", "Garcia", []string{"Shtern"}, lang.English, EntityDoctor, false},
		{"empty candidate", "  ", []string{"Shtern"}, lang.English, EntityDoctor, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsExcluded(tt.candidate, tt.excluded, tt.language, tt.kind))
		})
	}
}
