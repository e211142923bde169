package tools

import (
	"fmt"
	"strings"

	"github.com/mediqo/mediqo/pkg/constraints"
	"github.com/mediqo/mediqo/pkg/models"
)

// gateError is a state-gate refusal. hallucination marks refusals
// caused by invented data; constraint-based refusals leave it false.
type gateError struct {
	message       string
	hallucination bool
}

// gate validates and rewrites scheduling tool arguments against the
// live constraint block and the clinic profile. It returns normalized
// arguments: doctor and service references are resolved to ids, and
// dates outside the patient's stated window are corrected into it.
func (e *Executor) gate(name string, args map[string]any) (map[string]any, *gateError) {
	out := make(map[string]any, len(args))
	for k, v := range args {
		out[k] = v
	}
	block := e.tctx.Constraints

	if ref := stringArg(out, "doctor_id"); ref != "" {
		doctor, ok := e.resolveDoctor(ref)
		if !ok {
			return nil, &gateError{
				message:       fmt.Sprintf("no doctor matching %q works at this clinic", ref),
				hallucination: true,
			}
		}
		if e.excludedDoctor(ref) || e.excludedDoctor(doctor.Name) {
			return nil, &gateError{
				message: fmt.Sprintf("the patient excluded %s earlier in this conversation; offer a different doctor", doctor.Name),
			}
		}
		out["doctor_id"] = doctor.ID
	}

	serviceKey := "service_name"
	ref := stringArg(out, serviceKey)
	if ref == "" {
		serviceKey = "service_id"
		ref = stringArg(out, serviceKey)
	}
	if ref != "" {
		service, ok := e.resolveService(ref)
		if !ok {
			return nil, &gateError{
				message:       fmt.Sprintf("this clinic does not offer %q; call get_services for the real list", ref),
				hallucination: true,
			}
		}
		if constraints.IsExcluded(service.Name, block.ExcludedServices, e.tctx.Language, constraints.EntityService) {
			return nil, &gateError{
				message: fmt.Sprintf("the patient ruled out %s earlier in this conversation", service.Name),
			}
		}
		if block.DesiredService != "" && !e.sameService(service.Name, block.DesiredService) && !e.sameService(ref, block.DesiredService) {
			return nil, &gateError{
				message: fmt.Sprintf("the patient asked for %s; do not switch to %s without asking them first", block.DesiredService, service.Name),
			}
		}
		out["service_id"] = service.ID
	}

	if name == ToolCheckAvailability && !block.TimeWindow.IsZero() {
		e.bindTimeWindow(out, block.TimeWindow)
	}
	return out, nil
}

func (e *Executor) excludedDoctor(candidate string) bool {
	return constraints.IsExcluded(candidate, e.tctx.Constraints.ExcludedDoctors, e.tctx.Language, constraints.EntityDoctor)
}

func (e *Executor) sameService(a, b string) bool {
	return constraints.IsExcluded(a, []string{b}, e.tctx.Language, constraints.EntityService)
}

// bindTimeWindow clamps the requested dates into the window the
// patient stated. ISO dates compare lexically.
func (e *Executor) bindTimeWindow(args map[string]any, window models.TimeWindow) {
	clamp := func(key string) {
		date := stringArg(args, key)
		if date == "" {
			return
		}
		if date < window.Start || date > window.End {
			delete(args, key)
			args["date_corrected"] = true
		}
	}
	clamp("preferred_date")
	clamp("date_from")
	clamp("date_to")

	if stringArg(args, "preferred_date") == "" {
		if stringArg(args, "date_from") == "" {
			args["date_from"] = window.Start
		}
		if stringArg(args, "date_to") == "" {
			args["date_to"] = window.End
		}
	}
}

// resolveDoctor matches a model-provided doctor reference against the
// clinic roster, by id first, then by fuzzy name.
func (e *Executor) resolveDoctor(ref string) (models.Doctor, bool) {
	for _, d := range e.tctx.Clinic.Doctors {
		if d.ID == ref {
			return d, true
		}
	}
	for _, d := range e.tctx.Clinic.Doctors {
		if constraints.IsExcluded(ref, []string{d.Name}, e.tctx.Language, constraints.EntityDoctor) {
			return d, true
		}
	}
	return models.Doctor{}, false
}

// resolveService matches a service reference by id, configured alias,
// then fuzzy name.
func (e *Executor) resolveService(ref string) (models.Service, bool) {
	profile := e.tctx.Clinic
	for _, s := range profile.Services {
		if s.ID == ref {
			return s, true
		}
	}
	if id, ok := profile.ServiceAliases[strings.ToLower(strings.TrimSpace(ref))]; ok {
		for _, s := range profile.Services {
			if s.ID == id {
				return s, true
			}
		}
	}
	for _, s := range profile.Services {
		if constraints.IsExcluded(ref, []string{s.Name}, e.tctx.Language, constraints.EntityService) {
			return s, true
		}
	}
	return models.Service{}, false
}
