package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mediqo/mediqo/pkg/hydrate"
	"github.com/mediqo/mediqo/pkg/lang"
	"github.com/mediqo/mediqo/pkg/models"
	"github.com/mediqo/mediqo/pkg/session"
)

func testContext() *hydrate.Context {
	return &hydrate.Context{
		Clinic: models.ClinicProfile{
			ClinicID: "c1",
			Services: []models.Service{
				{ID: "S1", Name: "Limpieza dental", DurationMinutes: 45, Price: 850, Currency: "MXN", Description: "Professional cleaning."},
				{ID: "S2", Name: "Whitening", DurationMinutes: 60, Price: 200, Currency: "USD", Description: "Teeth whitening."},
			},
			ServiceAliases: map[string]string{
				"limpieza": "S1",
				"cleaning": "S1",
				"whitening": "S2",
			},
			BusinessHours: models.BusinessHours{OpenHour: 9, CloseHour: 18},
		},
		Session: &session.Record{ID: "sess-1"},
	}
}

func TestClassify_PendingActionAffirmative(t *testing.T) {
	r := New()
	hctx := testContext()
	hctx.Session.PendingAction = "offer_booking"
	hctx.Session.LastServiceMentioned = "S1"

	route := r.Classify("yes please", lang.English, hctx)
	assert.Equal(t, LaneScheduling, route.Lane)
	assert.Equal(t, "S1", route.ServiceID)
}

func TestClassify_PendingActionNegative(t *testing.T) {
	r := New()
	hctx := testContext()
	hctx.Session.PendingAction = "offer_booking"

	route := r.Classify("no, not now", lang.English, hctx)
	assert.Equal(t, LaneFAQ, route.Lane)
}

func TestClassify_ServiceInfoWithBoundService(t *testing.T) {
	r := New()
	hctx := testContext()
	hctx.Session.LastServiceMentioned = "S2"

	route := r.Classify("how long does it take?", lang.English, hctx)
	assert.Equal(t, LaneServiceInfo, route.Lane)
	assert.Equal(t, "S2", route.ServiceID)
}

func TestClassify_ServiceInfoNeedsClarification(t *testing.T) {
	r := New()
	route := r.Classify("how long does it take?", lang.English, testContext())
	assert.Equal(t, LaneServiceInfo, route.Lane)
	assert.True(t, route.NeedsClarification)
}

func TestClassify_AliasMatchRoutesToPrice(t *testing.T) {
	r := New()

	route := r.Classify("cuánto cuesta limpieza?", lang.Spanish, testContext())
	assert.Equal(t, LanePrice, route.Lane)
	assert.Equal(t, "S1", route.ServiceID)
}

func TestClassify_FuzzyAliasWithinThreshold(t *testing.T) {
	r := New()

	// One dropped letter still clears the 0.90 similarity floor.
	route := r.Classify("price for whitenin please", lang.English, testContext())
	assert.Equal(t, LanePrice, route.Lane)
	assert.Equal(t, "S2", route.ServiceID)
}

func TestClassify_FAQKeyword(t *testing.T) {
	r := New()
	route := r.Classify("what are your hours?", lang.English, testContext())
	assert.Equal(t, LaneFAQ, route.Lane)
}

func TestClassify_SchedulingWithoutServiceIsComplex(t *testing.T) {
	r := New()
	route := r.Classify("I want to book an appointment", lang.English, testContext())
	assert.Equal(t, LaneComplex, route.Lane)
}

func TestClassify_SchedulingWithBoundService(t *testing.T) {
	r := New()
	hctx := testContext()
	hctx.Constraints = models.ConstraintBlock{DesiredService: "S1"}

	route := r.Classify("can I book a slot?", lang.English, hctx)
	assert.Equal(t, LaneScheduling, route.Lane)
	assert.Equal(t, "S1", route.ServiceID)
}

func TestClassify_DefaultComplex(t *testing.T) {
	r := New()
	route := r.Classify("my tooth hurts when I drink cold water", lang.English, testContext())
	assert.Equal(t, LaneComplex, route.Lane)
}

func TestFastPath_Price(t *testing.T) {
	fp := NewFastPath()
	route := Route{Lane: LanePrice, ServiceID: "S1"}

	res, err := fp.Respond(route, lang.Spanish, testContext())
	require.NoError(t, err)
	assert.True(t, res.FastPath)
	assert.Contains(t, res.Text, "Limpieza dental")
	assert.Contains(t, res.Text, "$850 MXN")
	assert.Equal(t, "S1", res.LastServiceMentioned)
	assert.Equal(t, "offer_booking", res.PendingAction)
	assert.GreaterOrEqual(t, res.LatencyMs, 0)
}

func TestFastPath_ServiceInfo(t *testing.T) {
	fp := NewFastPath()
	route := Route{Lane: LaneServiceInfo, ServiceID: "S2"}

	res, err := fp.Respond(route, lang.English, testContext())
	require.NoError(t, err)
	assert.Contains(t, res.Text, "Whitening")
	assert.Contains(t, res.Text, "60 minutes")
}

func TestFastPath_ServiceInfoClarify(t *testing.T) {
	fp := NewFastPath()
	route := Route{Lane: LaneServiceInfo, NeedsClarification: true}

	res, err := fp.Respond(route, lang.English, testContext())
	require.NoError(t, err)
	assert.Contains(t, res.Text, "Limpieza dental")
	assert.Contains(t, res.Text, "Whitening")
	assert.Empty(t, res.PendingAction)
}

func TestFastPath_FAQRendersHours(t *testing.T) {
	fp := NewFastPath()

	res, err := fp.Respond(Route{Lane: LaneFAQ}, lang.English, testContext())
	require.NoError(t, err)
	assert.Contains(t, res.Text, "09:00-18:00")
}

func TestFastPath_UnknownServiceFails(t *testing.T) {
	fp := NewFastPath()
	_, err := fp.Respond(Route{Lane: LanePrice, ServiceID: "nope"}, lang.English, testContext())
	assert.Error(t, err)
}

func TestFastPath_ComplexLaneRejected(t *testing.T) {
	fp := NewFastPath()
	_, err := fp.Respond(Route{Lane: LaneComplex}, lang.English, testContext())
	assert.Error(t, err)
}
