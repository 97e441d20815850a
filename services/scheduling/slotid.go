package scheduling

import (
	"fmt"
	"strings"
	"time"
)

const (
	slotDateLayout = "2006-01-02"
	slotTimeLayout = "15:04"

	// DefaultSlotTime is the time-of-day substituted when a slot ID cannot
	// be decoded. See DecodeSlotID.
	DefaultSlotTime = "10:00"
)

// EncodeSlotID builds the canonical "YYYY-MM-DD-HH:MM" slot identity.
// Equality and ledger uniqueness are defined on this form only.
func EncodeSlotID(date, timeOfDay string) string {
	return date + "-" + timeOfDay
}

// DecodeSlotID splits a slot ID into its date and time-of-day components.
//
// It is a total function under the default-substitution policy: the
// canonical form (4 dash-delimited tokens, last "HH:MM") and the legacy
// form (5 tokens, last two hour and minute) are recognized; anything else
// decodes to today's date at DefaultSlotTime instead of failing. A caller
// that needs hard rejection of malformed IDs uses decodeSlotIDStrict.
func DecodeSlotID(slotID string, now time.Time) (string, string) {
	date, timeOfDay, err := decodeSlotIDStrict(slotID)
	if err != nil {
		return now.Format(slotDateLayout), DefaultSlotTime
	}
	return date, timeOfDay
}

// decodeSlotIDStrict decodes a slot ID or reports ErrInvalidIdentity.
// Never exposed on the public decode path.
//
// The returned components are re-encoded from the parsed values, not the
// input substrings, so non-zero-padded tokens ("9:00", "2025-6-19") still
// collapse to the single canonical ledger key for that date and time.
func decodeSlotIDStrict(slotID string) (string, string, error) {
	parts := strings.Split(slotID, "-")

	var rawDate, rawTime string
	switch len(parts) {
	case 4:
		// Canonical form: YYYY-MM-DD-HH:MM
		rawDate = strings.Join(parts[:3], "-")
		rawTime = parts[3]
	case 5:
		// Legacy form: YYYY-MM-DD-HH-MM
		rawDate = strings.Join(parts[:3], "-")
		rawTime = parts[3] + ":" + parts[4]
	default:
		return "", "", fmt.Errorf("slot id %q: %w", slotID, ErrInvalidIdentity)
	}

	d, err := time.Parse(slotDateLayout, rawDate)
	if err != nil {
		return "", "", fmt.Errorf("slot id %q: %w", slotID, ErrInvalidIdentity)
	}
	t, err := time.Parse(slotTimeLayout, rawTime)
	if err != nil {
		return "", "", fmt.Errorf("slot id %q: %w", slotID, ErrInvalidIdentity)
	}
	return d.Format(slotDateLayout), t.Format(slotTimeLayout), nil
}

// NormalizeSlotID collapses any recognized slot ID form to canonical form,
// so a single ledger key represents a given date and time regardless of
// which textual form the caller used. Unrecognized input normalizes to the
// default identity, same as DecodeSlotID.
func NormalizeSlotID(slotID string, now time.Time) string {
	date, timeOfDay := DecodeSlotID(slotID, now)
	return EncodeSlotID(date, timeOfDay)
}

