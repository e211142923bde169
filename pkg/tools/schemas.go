// Package tools mediates every LLM-requested tool call: budget,
// state gate, dependency ordering, dispatch, and audit. The tool set
// is closed; an unknown tool name is a single enumerated error.
package tools

import "github.com/mediqo/mediqo/pkg/llm"

// Tool names. The set is closed: the executor rejects anything else.
const (
	ToolCheckAvailability = "check_availability"
	ToolBookAppointment   = "book_appointment"
	ToolReschedule        = "reschedule_appointment"
	ToolCancelAppointment = "cancel_appointment"
	ToolGetServices       = "get_services"
	ToolGetPrices         = "get_prices"
	ToolGetDoctorInfo     = "get_doctor_info"
)

// toolDependencies declares prerequisite tools: a dependent tool may
// only run after its prerequisite produced a successful result in the
// same turn. Booking without a prior availability check means the
// model invented a slot.
var toolDependencies = map[string]string{
	ToolBookAppointment: ToolCheckAvailability,
	ToolReschedule:      ToolCheckAvailability,
}

// schedulingTools pass through the state gate before dispatch.
var schedulingTools = map[string]bool{
	ToolCheckAvailability: true,
	ToolBookAppointment:   true,
	ToolReschedule:        true,
}

// calendarTools consume the per-turn calendar call budget.
var calendarTools = map[string]bool{
	ToolBookAppointment:   true,
	ToolReschedule:        true,
	ToolCancelAppointment: true,
}

func objectSchema(props map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}

func str(desc string) map[string]any {
	return map[string]any{"type": "string", "description": desc}
}

func integer(desc string) map[string]any {
	return map[string]any{"type": "integer", "description": desc}
}

// Definitions returns the closed tool schema set in the shape the
// provider adapters expect.
func Definitions() []llm.ToolDefinition {
	return []llm.ToolDefinition{
		{
			Name: ToolCheckAvailability,
			Description: "Search bookable appointment slots. Always call this before " +
				"offering any concrete time to the patient.",
			InputSchema: objectSchema(map[string]any{
				"service_name":          str("Service the patient wants, as they named it"),
				"doctor_id":             str("Restrict to one doctor (id or name)"),
				"preferred_date":        str("Single preferred date, YYYY-MM-DD"),
				"date_from":             str("Range start, YYYY-MM-DD"),
				"date_to":               str("Range end, YYYY-MM-DD"),
				"earliest_hour":         integer("Earliest acceptable start hour, clinic time"),
				"latest_hour":           integer("Latest acceptable start hour, clinic time"),
				"preferred_time_of_day": str("morning, afternoon or evening"),
			}, "service_name"),
		},
		{
			Name: ToolBookAppointment,
			Description: "Book one of the slots returned by check_availability. " +
				"datetime_str must be a start time from those results.",
			InputSchema: objectSchema(map[string]any{
				"service_id":   str("Service id from the availability results"),
				"datetime_str": str("Slot start time, e.g. 2025-11-25T11:00:00"),
				"doctor_id":    str("Doctor id, when the patient chose one"),
			}, "service_id", "datetime_str"),
		},
		{
			Name: ToolReschedule,
			Description: "Move an existing appointment to a slot returned by " +
				"check_availability. The old appointment is cancelled after the " +
				"new one is confirmed.",
			InputSchema: objectSchema(map[string]any{
				"appointment_id": str("Appointment to move"),
				"datetime_str":   str("New slot start time from the availability results"),
				"doctor_id":      str("Doctor id, when the patient chose one"),
			}, "appointment_id", "datetime_str"),
		},
		{
			Name:        ToolCancelAppointment,
			Description: "Cancel an existing appointment.",
			InputSchema: objectSchema(map[string]any{
				"appointment_id": str("Appointment to cancel"),
				"reason":         str("Why the patient is cancelling"),
			}, "appointment_id"),
		},
		{
			Name:        ToolGetServices,
			Description: "List the clinic's services with duration and price.",
			InputSchema: objectSchema(map[string]any{}),
		},
		{
			Name:        ToolGetPrices,
			Description: "Price of one service, or all services when none is named.",
			InputSchema: objectSchema(map[string]any{
				"service_name": str("Service to price, as the patient named it"),
			}),
		},
		{
			Name:        ToolGetDoctorInfo,
			Description: "Doctors of the clinic and the services each performs.",
			InputSchema: objectSchema(map[string]any{
				"doctor_name": str("One doctor, as the patient named them"),
			}),
		},
	}
}
