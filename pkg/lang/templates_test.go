package lang

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	out, err := Render(Spanish, TplPrice, map[string]string{
		"service": "Limpieza dental",
		"price":   "$850 MXN",
	})
	require.NoError(t, err)
	assert.Equal(t, "Limpieza dental cuesta $850 MXN. ¿Le gustaría agendar una cita?", out)
}

func TestRender_UnknownKey(t *testing.T) {
	_, err := Render(English, "no_such_template", nil)
	assert.Error(t, err)
}

func TestRender_MissingArgument(t *testing.T) {
	_, err := Render(English, TplPrice, map[string]string{"service": "Cleaning"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "{price}")
}

func TestRender_UnknownLanguageFallsBackToEnglish(t *testing.T) {
	out, err := Render(Language("de"), TplHolding, nil)
	require.NoError(t, err)
	assert.Equal(t, "Let me check with the team and get back to you shortly.", out)
}

func TestFallback(t *testing.T) {
	assert.Contains(t, Fallback(Russian), "Уточню")
	assert.Contains(t, Fallback(Spanish), "equipo")
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		name     string
		language Language
		amount   float64
		code     string
		want     string
	}{
		{"usd english", English, 1500, "USD", "$1,500"},
		{"usd cents", English, 99.5, "USD", "$99.50"},
		{"mxn spanish", Spanish, 1850, "MXN", "$1.850 MXN"},
		{"rub russian", Russian, 3500, "RUB", "3 500 ₽"},
		{"eur spanish", Spanish, 1234.56, "EUR", "1.234,56 €"},
		{"unknown code", English, 200, "GBP", "200 GBP"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.language, tt.amount, tt.code))
		})
	}
}
