package router

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mediqo/mediqo/pkg/hydrate"
	"github.com/mediqo/mediqo/pkg/lang"
)

// Result is a rendered fast-path reply with its observability fields.
// SessionUpdates carry the state the pipeline writes back (remembered
// service, pending action).
type Result struct {
	Text      string
	LatencyMs int
	FastPath  bool

	LastServiceMentioned string
	PendingAction        string
}

// FastPath renders template-only replies for the FAQ, price, and
// service-info lanes. Any rendering or lookup failure is returned as
// an error; the pipeline then demotes the turn to the complex lane.
type FastPath struct {
	now func() time.Time
}

// NewFastPath creates a fast path renderer.
func NewFastPath() *FastPath {
	return &FastPath{now: time.Now}
}

// Respond renders the reply for a fast lane.
func (f *FastPath) Respond(route Route, language lang.Language, hctx *hydrate.Context) (Result, error) {
	started := f.now()

	var (
		text string
		err  error
		res  Result
	)
	switch route.Lane {
	case LanePrice:
		text, res, err = f.price(route, language, hctx)
	case LaneServiceInfo:
		text, res, err = f.serviceInfo(route, language, hctx)
	case LaneFAQ:
		text, err = f.faq(language, hctx)
	default:
		return Result{}, fmt.Errorf("fast path: lane %s is not templated", route.Lane)
	}
	if err != nil {
		return Result{}, err
	}

	res.Text = text
	res.FastPath = true
	res.LatencyMs = int(f.now().Sub(started).Milliseconds())
	return res, nil
}

func (f *FastPath) price(route Route, language lang.Language, hctx *hydrate.Context) (string, Result, error) {
	service, ok := hctx.Clinic.ServiceByID(route.ServiceID)
	if !ok {
		return "", Result{}, fmt.Errorf("fast path price: unknown service %q", route.ServiceID)
	}
	text, err := lang.Render(language, lang.TplPrice, map[string]string{
		"service": service.Name,
		"price":   lang.FormatCurrency(language, service.Price, service.Currency),
	})
	if err != nil {
		return "", Result{}, err
	}
	return text, Result{
		LastServiceMentioned: service.ID,
		PendingAction:        "offer_booking",
	}, nil
}

func (f *FastPath) serviceInfo(route Route, language lang.Language, hctx *hydrate.Context) (string, Result, error) {
	if route.NeedsClarification {
		names := make([]string, 0, len(hctx.Clinic.Services))
		for _, s := range hctx.Clinic.Services {
			names = append(names, s.Name)
		}
		text, err := lang.Render(language, lang.TplServiceClarify, map[string]string{
			"services": strings.Join(names, ", "),
		})
		return text, Result{}, err
	}

	service, ok := hctx.Clinic.ServiceByID(route.ServiceID)
	if !ok {
		return "", Result{}, fmt.Errorf("fast path service info: unknown service %q", route.ServiceID)
	}
	text, err := lang.Render(language, lang.TplServiceInfo, map[string]string{
		"service":     service.Name,
		"description": service.Description,
		"duration":    strconv.Itoa(service.DurationMinutes),
	})
	if err != nil {
		return "", Result{}, err
	}
	return text, Result{
		LastServiceMentioned: service.ID,
		PendingAction:        "offer_booking",
	}, nil
}

func (f *FastPath) faq(language lang.Language, hctx *hydrate.Context) (string, error) {
	// Clinic-authored FAQ answers win over the generic hours template.
	if answer, ok := hctx.Clinic.FAQ[string(language)]; ok && answer != "" {
		return answer, nil
	}
	return lang.Render(language, lang.TplFAQHours, map[string]string{
		"hours": fmt.Sprintf("%02d:00-%02d:00", hctx.Clinic.BusinessHours.OpenHour, hctx.Clinic.BusinessHours.CloseHour),
	})
}
