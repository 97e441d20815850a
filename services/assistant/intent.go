package assistant

import "strings"

// Intent is the closed set of conversational intents the assistant
// recognizes.
type Intent string

const (
	IntentAvailability     Intent = "availability"
	IntentBooking          Intent = "booking"
	IntentCancellation     Intent = "cancellation"
	IntentOfficeInfo       Intent = "officeInfo"
	IntentListAppointments Intent = "listAppointments"
	IntentHelp             Intent = "help"
	IntentUnknown          Intent = "unknown"
)

// intentKeywords pairs each intent with the phrases that trigger it.
// Order matters: the first intent with a matching keyword wins, so
// "schedule" classifies as booking even though it also appears in
// office-info phrasings.
var intentKeywords = []struct {
	intent   Intent
	keywords []string
}{
	{IntentAvailability, []string{"available", "free", "open slot", "nearest", "next appointment", "earliest", "find"}},
	{IntentBooking, []string{"book", "schedule", "reserve", "make appointment", "make an appointment"}},
	{IntentCancellation, []string{"cancel", "delete", "remove"}},
	{IntentOfficeInfo, []string{"hours", "office", "when open", "policy"}},
	{IntentListAppointments, []string{"my appointment", "show", "view", "list"}},
	{IntentHelp, []string{"help", "hi", "hello", "hey", "what can you do"}},
}

// Classify maps a free-text message to one intent tag. Pure function; the
// caller decides what to do with the tag.
func Classify(message string) Intent {
	normalized := strings.ToLower(message)
	for _, entry := range intentKeywords {
		for _, keyword := range entry.keywords {
			if strings.Contains(normalized, keyword) {
				return entry.intent
			}
		}
	}
	return IntentUnknown
}
