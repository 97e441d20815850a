package scheduling

import (
	"errors"
	"testing"
	"time"
)

func TestParseNaturalDateTime(t *testing.T) {
	cases := []struct {
		dateText string
		timeText string
		want     string
	}{
		{"2025-06-18", "14:00", "2025-06-18-14:00"},
		{"June 18, 2025", "10:30 AM", "2025-06-18-10:30"},
		{"Jun 18, 2025", "2:30 PM", "2025-06-18-14:30"},
		{"06/18/2025", "10:30am", "2025-06-18-10:30"},
		{"18/06/2025", "3 PM", "2025-06-18-15:00"},
		{"  June 18, 2025  ", " 10:30 AM ", "2025-06-18-10:30"},
	}

	for _, tc := range cases {
		got, err := ParseNaturalDateTime(tc.dateText, tc.timeText)
		if err != nil {
			t.Fatalf("ParseNaturalDateTime(%q, %q): %v", tc.dateText, tc.timeText, err)
		}
		if got != tc.want {
			t.Fatalf("ParseNaturalDateTime(%q, %q) = %q, want %q", tc.dateText, tc.timeText, got, tc.want)
		}
	}
}

func TestParseNaturalDateTimeFailsClosed(t *testing.T) {
	cases := []struct {
		dateText string
		timeText string
	}{
		{"someday soon", "10:30"},
		{"June 18, 2025", "lunchtime"},
		{"", "10:30"},
		{"2025-06-18", ""},
	}

	for _, tc := range cases {
		_, err := ParseNaturalDateTime(tc.dateText, tc.timeText)
		if !errors.Is(err, ErrUnparseableInput) {
			t.Fatalf("ParseNaturalDateTime(%q, %q) err = %v, want ErrUnparseableInput",
				tc.dateText, tc.timeText, err)
		}
	}
}

func TestExtractDateTime(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		text string
		want string
	}{
		{"June 18, 2025 at 10:30 AM", "2025-06-18-10:30"},
		{"June 18 2025 at 2:30 PM", "2025-06-18-14:30"},
		{"2025-06-18 14:30", "2025-06-18-14:30"},
		{"June 18 at 10:30 AM", "2025-06-18-10:30"}, // year defaults to now's
		{"Book an appointment on June 18, 2025 at 10:30 AM for Jane", "2025-06-18-10:30"},
	}

	for _, tc := range cases {
		got, err := ExtractDateTime(tc.text, now)
		if err != nil {
			t.Fatalf("ExtractDateTime(%q): %v", tc.text, err)
		}
		if got != tc.want {
			t.Fatalf("ExtractDateTime(%q) = %q, want %q", tc.text, got, tc.want)
		}
	}
}

func TestExtractDateTimeFailsClosed(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	cases := []string{
		"book me sometime next week",
		"10:30 AM",
		"",
	}

	for _, text := range cases {
		if _, err := ExtractDateTime(text, now); !errors.Is(err, ErrUnparseableInput) {
			t.Fatalf("ExtractDateTime(%q) err = %v, want ErrUnparseableInput", text, err)
		}
	}
}
