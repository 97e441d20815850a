package assistant

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		message string
		want    Intent
	}{
		{"What's the nearest available appointment?", IntentAvailability},
		{"Do you have anything free on Thursday?", IntentAvailability},
		{"Find me an appointment", IntentAvailability},
		{"Book an appointment for Jane Doe", IntentBooking},
		{"I'd like to schedule a checkup", IntentBooking},
		{"Please reserve a slot for me", IntentBooking},
		{"Cancel my appointment 2025-06-19-09:00", IntentCancellation},
		{"Please delete appointment 2025-06-19-09:00", IntentCancellation},
		{"What are your office hours?", IntentOfficeInfo},
		{"Tell me about the office", IntentOfficeInfo},
		{"Show all appointments", IntentListAppointments},
		{"List the appointments for today", IntentListAppointments},
		{"hello", IntentHelp},
		{"what can you do", IntentHelp},
		{"asdf qwerty", IntentUnknown},
		{"", IntentUnknown},
	}

	for _, tc := range cases {
		if got := Classify(tc.message); got != tc.want {
			t.Fatalf("Classify(%q) = %s, want %s", tc.message, got, tc.want)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	if got := Classify("BOOK AN APPOINTMENT"); got != IntentBooking {
		t.Fatalf("Classify uppercase = %s, want booking", got)
	}
}

func TestClassifyFirstMatchWins(t *testing.T) {
	// "available" outranks "book" so availability questions that mention
	// booking still classify as availability.
	if got := Classify("Is there an available slot I can book?"); got != IntentAvailability {
		t.Fatalf("Classify = %s, want availability", got)
	}
}
