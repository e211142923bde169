package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/lang"
	"github.com/mediqo/mediqo/pkg/models"
)

func TestNarrow_AsksForServiceFirst(t *testing.T) {
	n := Narrow(models.ConstraintBlock{}, pipeClinic(), lang.English)
	require.NotNil(t, n)
	assert.Equal(t, NarrowAsk, n.Kind)
	assert.Equal(t, lang.TplServiceClarify, n.TemplateKey)

	block := n.ControlBlock(lang.English)
	assert.Contains(t, block, "exactly one question")
	assert.Contains(t, block, "Limpieza Dental")
}

func TestNarrow_AsksForTimeWindowSecond(t *testing.T) {
	n := Narrow(models.ConstraintBlock{DesiredService: "Limpieza Dental"}, pipeClinic(), lang.English)
	require.NotNil(t, n)
	assert.Equal(t, NarrowAsk, n.Kind)
	assert.Equal(t, lang.TplNarrowTime, n.TemplateKey)
	assert.Contains(t, n.ControlBlock(lang.English), "Limpieza Dental")
}

func TestNarrow_ChecksAvailabilityWhenBound(t *testing.T) {
	block := models.ConstraintBlock{
		DesiredService: "Limpieza Dental",
		DesiredDoctor:  "doc-shtern",
		TimeWindow:     models.TimeWindow{Start: "2025-11-25", End: "2025-11-27", Display: "this week"},
	}
	n := Narrow(block, pipeClinic(), lang.English)
	require.NotNil(t, n)
	assert.Equal(t, NarrowCheck, n.Kind)
	assert.Equal(t, "2025-11-25", n.ToolArgs["date_from"])
	assert.Equal(t, "2025-11-27", n.ToolArgs["date_to"])
	assert.Equal(t, "doc-shtern", n.ToolArgs["doctor_id"])

	control := n.ControlBlock(lang.English)
	assert.Contains(t, control, "check_availability")
	assert.Contains(t, control, "2025-11-25")
}
