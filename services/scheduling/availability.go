package scheduling

import (
	"time"

	"sapdoc/models"
)

// MaxAvailableSlots caps how many free slots a single availability query
// returns to callers.
const MaxAvailableSlots = 10

// GenerateAvailableSlots enumerates the free, bookable slots between start
// and end inclusive, in ascending (date, time) order.
//
// Pure function of its inputs: it never touches the ledger. booked holds
// canonical slot IDs that are already taken. Slots on now's calendar day
// whose time of day is at or before now are excluded; non-open weekdays are
// skipped entirely. A zero end defaults to start plus the calendar horizon.
func GenerateAvailableSlots(cal OfficeCalendar, start, end time.Time, booked map[string]struct{}, now time.Time) []models.AvailableSlot {
	if end.IsZero() {
		end = start.AddDate(0, 0, cal.HorizonDays)
	}

	nowDate := now.Format(slotDateLayout)
	nowClock := now.Format(slotTimeLayout)

	slots := make([]models.AvailableSlot, 0, MaxAvailableSlots)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		if !cal.IsOpen(day) {
			continue
		}
		date := day.Format(slotDateLayout)
		for _, timeOfDay := range cal.SlotTimes {
			slotID := EncodeSlotID(date, timeOfDay)
			if _, taken := booked[slotID]; taken {
				continue
			}
			// Zero-padded HH:MM compares correctly as a string.
			if date == nowDate && timeOfDay <= nowClock {
				continue
			}
			slots = append(slots, models.AvailableSlot{
				SlotID:        slotID,
				Date:          date,
				Time:          timeOfDay,
				DayName:       day.Weekday().String(),
				FormattedDate: day.Format("January 2, 2006"),
			})
			if len(slots) == MaxAvailableSlots {
				return slots
			}
		}
	}
	return slots
}
