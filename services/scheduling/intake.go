package scheduling

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Accepted free-text date and time formats, tried in order. First match wins.
var (
	intakeDateLayouts = []string{
		"2006-01-02",      // 2025-06-18
		"January 2, 2006", // June 18, 2025
		"Jan 2, 2006",     // Jun 18, 2025
		"January 2 2006",  // June 18 2025
		"Jan 2 2006",      // Jun 18 2025
		"01/02/2006",      // 06/18/2025
		"02/01/2006",      // 18/06/2025
	}
	intakeTimeLayouts = []string{
		"15:04",   // 10:30
		"3:04 PM", // 10:30 AM
		"3:04PM",  // 10:30AM
		"3 PM",    // 10 AM
	}
)

// "DATE at TIME" phrasings recognized by ExtractDateTime, tried in order.
var (
	extractPatterns = []*regexp.Regexp{
		// "June 18, 2025 at 10:30 AM"
		regexp.MustCompile(`([A-Za-z]+ \d{1,2},? \d{4}) at (\d{1,2}:\d{2}\s*(?:AM|PM|am|pm))`),
		// "2025-06-18 10:30"
		regexp.MustCompile(`(\d{4}-\d{2}-\d{2})\s+(\d{1,2}:\d{2})`),
		// "June 18 at 10:30 AM"
		regexp.MustCompile(`([A-Za-z]+\s+\d{1,2})\s+at\s+(\d{1,2}:\d{2}\s*(?:AM|PM|am|pm))`),
	}
	yearPattern = regexp.MustCompile(`\d{4}`)
)

// ParseNaturalDateTime normalizes a free-text date and time pair into a
// canonical slot ID. It fails closed with ErrUnparseableInput when either
// part matches no accepted format; it never guesses.
func ParseNaturalDateTime(dateText, timeText string) (string, error) {
	dateText = strings.TrimSpace(dateText)
	timeText = strings.ToUpper(strings.TrimSpace(timeText))

	var date time.Time
	parsed := false
	for _, layout := range intakeDateLayouts {
		if d, err := time.Parse(layout, dateText); err == nil {
			date = d
			parsed = true
			break
		}
	}
	if !parsed {
		return "", fmt.Errorf("date %q: %w", dateText, ErrUnparseableInput)
	}

	var timeOfDay time.Time
	parsed = false
	for _, layout := range intakeTimeLayouts {
		if t, err := time.Parse(layout, timeText); err == nil {
			timeOfDay = t
			parsed = true
			break
		}
	}
	if !parsed {
		return "", fmt.Errorf("time %q: %w", timeText, ErrUnparseableInput)
	}

	return EncodeSlotID(date.Format(slotDateLayout), timeOfDay.Format(slotTimeLayout)), nil
}

// ExtractDateTime pulls a date and time out of a single "DATE at TIME"
// style string and normalizes it into a canonical slot ID. A date with no
// year gets the current year. Fails closed with ErrUnparseableInput when no
// pattern matches.
func ExtractDateTime(text string, now time.Time) (string, error) {
	text = strings.TrimSpace(text)

	for _, pattern := range extractPatterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		datePart, timePart := m[1], m[2]
		if !yearPattern.MatchString(datePart) {
			datePart = fmt.Sprintf("%s, %d", datePart, now.Year())
		}
		if slotID, err := ParseNaturalDateTime(datePart, timePart); err == nil {
			return slotID, nil
		}
	}
	return "", fmt.Errorf("text %q: %w", text, ErrUnparseableInput)
}
