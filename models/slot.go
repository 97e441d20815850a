package models

// AvailableSlot is one free, bookable slot as presented to callers.
type AvailableSlot struct {
	SlotID        string `json:"slot_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	DayName       string `json:"day_name"`
	FormattedDate string `json:"formatted_date"`
}
