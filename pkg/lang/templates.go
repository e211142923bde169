package lang

import (
	"fmt"
	"strings"
)

// Template keys used by the fast path and the fallback replies.
const (
	TplPrice          = "price"
	TplServiceInfo    = "service_info"
	TplServiceClarify = "service_clarify"
	TplFAQHours       = "faq_hours"
	TplFAQAddress     = "faq_address"
	TplHolding        = "holding"
	TplBudgetFallback = "budget_fallback"
	TplHoldExpired    = "hold_expired"
	TplStateEcho      = "state_echo"
	TplOfferBooking   = "offer_booking"
	TplNarrowTime     = "narrow_time"
	TplFollowUpPing   = "follow_up_ping"
)

var templates = map[Language]map[string]string{
	English: {
		TplPrice:          "{service} costs {price}. Would you like to book an appointment?",
		TplServiceInfo:    "{service}: {description} The visit takes about {duration} minutes.",
		TplServiceClarify: "Which service are you asking about? We offer: {services}.",
		TplFAQHours:       "We are open {hours}.",
		TplFAQAddress:     "You can find us at {address}.",
		TplHolding:        "Let me check with the team and get back to you shortly.",
		TplBudgetFallback: "I could not finish that just now. Could you send your request once more?",
		TplHoldExpired:    "That slot reservation expired. Let me find you a fresh set of options.",
		TplStateEcho:      "Noted: {summary}.",
		TplOfferBooking:   "Would you like me to book it?",
		TplNarrowTime:     "When would you like to come in for {service}?",
		TplFollowUpPing:   "Just checking in: we are still working on your request and will update you soon.",
	},
	Spanish: {
		TplPrice:          "{service} cuesta {price}. ¿Le gustaría agendar una cita?",
		TplServiceInfo:    "{service}: {description} La visita dura unos {duration} minutos.",
		TplServiceClarify: "¿Sobre qué servicio pregunta? Ofrecemos: {services}.",
		TplFAQHours:       "Nuestro horario es {hours}.",
		TplFAQAddress:     "Estamos en {address}.",
		TplHolding:        "Permítame consultarlo con el equipo, le respondo en breve.",
		TplBudgetFallback: "No pude completar su solicitud ahora. ¿Podría enviarla de nuevo?",
		TplHoldExpired:    "La reserva de ese horario expiró. Busco nuevas opciones.",
		TplStateEcho:      "Anotado: {summary}.",
		TplOfferBooking:   "¿Quiere que lo agende?",
		TplNarrowTime:     "¿Cuándo le gustaría venir para {service}?",
		TplFollowUpPing:   "Seguimos atendiendo su solicitud y le avisaremos en cuanto tengamos novedades.",
	},
	Russian: {
		TplPrice:          "{service} стоит {price}. Хотите записаться на приём?",
		TplServiceInfo:    "{service}: {description} Приём занимает около {duration} минут.",
		TplServiceClarify: "О какой услуге вы спрашиваете? У нас есть: {services}.",
		TplFAQHours:       "Мы работаем {hours}.",
		TplFAQAddress:     "Наш адрес: {address}.",
		TplHolding:        "Уточню у команды и вернусь к вам в ближайшее время.",
		TplBudgetFallback: "Не получилось обработать запрос. Отправьте его, пожалуйста, ещё раз.",
		TplHoldExpired:    "Бронь на это время истекла. Подберу новые варианты.",
		TplStateEcho:      "Записала: {summary}.",
		TplOfferBooking:   "Записать вас?",
		TplNarrowTime:     "Когда вам удобно прийти на {service}?",
		TplFollowUpPing:   "Мы всё ещё занимаемся вашим запросом и скоро вам напишем.",
	},
}

// Render fills a localized template. Unknown keys return an error so
// the fast path can fall back to the LLM lane; a missing argument
// leaves its placeholder visible, which also counts as an error.
func Render(language Language, key string, args map[string]string) (string, error) {
	byKey, ok := templates[language]
	if !ok {
		byKey = templates[English]
	}
	tpl, ok := byKey[key]
	if !ok {
		return "", fmt.Errorf("lang: no template %q for %s", key, language)
	}

	out := tpl
	for name, value := range args {
		out = strings.ReplaceAll(out, "{"+name+"}", value)
	}
	if i := strings.IndexByte(out, '{'); i >= 0 && strings.IndexByte(out[i:], '}') >= 0 {
		return "", fmt.Errorf("lang: template %q missing argument %s", key, out[i:i+strings.IndexByte(out[i:], '}')+1])
	}
	return out, nil
}

// Fallback returns the generic holding phrase in the given language.
func Fallback(language Language) string {
	out, err := Render(language, TplHolding, nil)
	if err != nil {
		return templates[English][TplHolding]
	}
	return out
}

// FormatCurrency renders an amount with locale-appropriate grouping
// and the currency's symbol when one is known.
func FormatCurrency(language Language, amount float64, code string) string {
	var whole, frac string
	switch language {
	case Russian:
		whole, frac = splitAmount(amount, " ", ",")
	case Spanish:
		whole, frac = splitAmount(amount, ".", ",")
	default:
		whole, frac = splitAmount(amount, ",", ".")
	}

	num := whole
	if frac != "" {
		num = whole + frac
	}

	switch strings.ToUpper(code) {
	case "USD":
		return "$" + num
	case "EUR":
		return num + " €"
	case "RUB":
		return num + " ₽"
	case "MXN":
		return "$" + num + " MXN"
	default:
		return num + " " + strings.ToUpper(code)
	}
}

// splitAmount formats the integer part with a grouping separator and
// returns the fractional part (with its separator) only when non-zero.
func splitAmount(amount float64, group, decimal string) (string, string) {
	cents := int64(amount*100 + 0.5)
	whole := cents / 100
	frac := cents % 100

	digits := fmt.Sprintf("%d", whole)
	var parts []string
	for len(digits) > 3 {
		parts = append([]string{digits[len(digits)-3:]}, parts...)
		digits = digits[:len(digits)-3]
	}
	parts = append([]string{digits}, parts...)

	grouped := strings.Join(parts, group)
	if frac == 0 {
		return grouped, ""
	}
	return grouped, fmt.Sprintf("%s%02d", decimal, frac)
}
