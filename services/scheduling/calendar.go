package scheduling

import (
	"strings"
	"time"

	"sapdoc/config"
)

// OfficeCalendar is the static slot grid and office-hours configuration.
// It is built once at startup and injected into the scheduling service;
// nothing mutates it during a run.
type OfficeCalendar struct {
	// SlotTimes is the ordered daily grid of offered times ("HH:MM").
	SlotTimes []string
	// OpenDays are the weekdays on which appointments are offered.
	OpenDays []time.Weekday
	// OpensAt and ClosesAt bound the office hours ("HH:MM").
	OpensAt  string
	ClosesAt string
	// HorizonDays is the default availability window when no end date is given.
	HorizonDays int
	// DisplayedHorizonWeeks is the advance-booking cap shown to patients.
	DisplayedHorizonWeeks int
	CancellationPolicy    string
}

// DefaultCalendar returns the standard office calendar: a 12-slot grid with
// a lunch gap, Monday through Friday.
func DefaultCalendar() OfficeCalendar {
	return OfficeCalendar{
		SlotTimes: []string{
			"09:00", "09:30", "10:00", "10:30", "11:00", "11:30",
			"14:00", "14:30", "15:00", "15:30", "16:00", "16:30",
		},
		OpenDays: []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
		},
		OpensAt:               "09:00",
		ClosesAt:              "17:00",
		HorizonDays:           14,
		DisplayedHorizonWeeks: 4,
		CancellationPolicy:    "24 hours notice preferred",
	}
}

// CalendarFromConfig builds the office calendar from loaded app config,
// falling back to defaults for anything unset.
func CalendarFromConfig(cfg config.Config) OfficeCalendar {
	cal := DefaultCalendar()
	if cfg.OfficeSlotTimes != "" {
		var times []string
		for _, t := range strings.Split(cfg.OfficeSlotTimes, ",") {
			if t = strings.TrimSpace(t); t != "" {
				times = append(times, t)
			}
		}
		if len(times) > 0 {
			cal.SlotTimes = times
		}
	}
	if cfg.OfficeOpensAt != "" {
		cal.OpensAt = cfg.OfficeOpensAt
	}
	if cfg.OfficeClosesAt != "" {
		cal.ClosesAt = cfg.OfficeClosesAt
	}
	if cfg.BookingHorizonDays > 0 {
		cal.HorizonDays = cfg.BookingHorizonDays
	}
	if cfg.DisplayedHorizonWeeks > 0 {
		cal.DisplayedHorizonWeeks = cfg.DisplayedHorizonWeeks
	}
	if cfg.CancellationPolicy != "" {
		cal.CancellationPolicy = cfg.CancellationPolicy
	}
	return cal
}

// IsOpen reports whether the office offers appointments on the given day.
func (c OfficeCalendar) IsOpen(day time.Time) bool {
	for _, wd := range c.OpenDays {
		if day.Weekday() == wd {
			return true
		}
	}
	return false
}

// DayNames returns the open weekdays as display names, in calendar order.
func (c OfficeCalendar) DayNames() []string {
	names := make([]string, 0, len(c.OpenDays))
	for _, wd := range c.OpenDays {
		names = append(names, wd.String())
	}
	return names
}
