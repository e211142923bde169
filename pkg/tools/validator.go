package tools

import "regexp"

// Concrete claims a response must back with a tool result: clock
// times and prices. Deliberately coarse; a false positive only flags
// the turn for review, it never blocks the reply.
var (
	clockTimePattern = regexp.MustCompile(`\b\d{1,2}:\d{2}\b`)
	pricePattern     = regexp.MustCompile(`(?i)([$€₪]\s?\d[\d,.]*|\d[\d,.]*\s?(?:mxn|usd|eur|pesos?|рубл|шекел))`)
)

// timeBackedTools are successes that justify stating concrete times.
var timeBackedTools = []string{ToolCheckAvailability, ToolBookAppointment, ToolReschedule}

// priceBackedTools are successes that justify stating prices.
var priceBackedTools = []string{ToolGetPrices, ToolGetServices}

// ValidateResponse inspects the model's final natural-language reply
// and reports whether it states concrete times or prices that no
// successful tool call this turn backs. A flagged turn also sets
// Stats.ResponseFlagged.
func (e *Executor) ValidateResponse(content string) bool {
	flagged := false
	if clockTimePattern.MatchString(content) && !e.anySucceeded(timeBackedTools) {
		flagged = true
	}
	if pricePattern.MatchString(content) && !e.anySucceeded(priceBackedTools) {
		flagged = true
	}
	if flagged {
		e.stats.ResponseFlagged = true
	}
	return flagged
}

func (e *Executor) anySucceeded(names []string) bool {
	for _, name := range names {
		if entry, ok := e.prior[name]; ok && entry.ok {
			return true
		}
	}
	return false
}
