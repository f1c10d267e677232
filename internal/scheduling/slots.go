// Package scheduling implements the test-drive slot model: which dates and
// times a vehicle can be booked for, and which of those are already taken.
package scheduling

import (
	"fmt"
	"strconv"
	"time"

	"voltdrive/internal/models"
)

// DateLabelLayout is the display format booked slots are keyed by ("Mon, Jan 6").
const DateLabelLayout = "Mon, Jan 2"

func DateLabel(t time.Time) string {
	return t.Format(DateLabelLayout)
}

// AvailableDates enumerates every calendar day of the window, oldest first.
// Days strictly before today are excluded; today itself is selectable.
// An inverted window yields an empty list rather than an error.
func AvailableDates(w models.TestDriveWindow, today time.Time) []time.Time {
	start := startOfDay(w.StartDate)
	end := startOfDay(w.EndDate)
	floor := startOfDay(today)

	var dates []time.Time
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Before(floor) {
			continue
		}
		dates = append(dates, d)
	}
	return dates
}

// TimeSlots generates the bookable time labels for one day: startHour:00
// stepping by the interval, through endHour:00 inclusive when the step lands
// on it exactly.
func TimeSlots(w models.TestDriveWindow) []string {
	if w.IntervalMinutes <= 0 || w.EndHour < w.StartHour {
		return nil
	}
	var slots []string
	for m := w.StartHour * 60; m <= w.EndHour*60; m += w.IntervalMinutes {
		slots = append(slots, formatSlot(m/60, m%60))
	}
	return slots
}

// formatSlot renders a 12-hour clock label. A zero minute renders as "00";
// non-zero minutes render bare, matching the labels already stored on booking
// records (conflict checks are string comparisons against those).
func formatSlot(hour, minute int) string {
	period := "AM"
	h := hour
	switch {
	case hour == 0:
		h = 12
	case hour == 12:
		period = "PM"
	case hour > 12:
		h = hour - 12
		period = "PM"
	}
	min := "00"
	if minute != 0 {
		min = strconv.Itoa(minute)
	}
	return fmt.Sprintf("%d:%s %s", h, min, period)
}

func startOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// BookedSlots maps "vehicleKey|dateLabel" to the time labels already reserved.
// A missing key means nothing is booked for that vehicle and day.
type BookedSlots map[string][]string

func slotKey(vehicleKey, dateLabel string) string {
	return vehicleKey + "|" + dateLabel
}

func (b BookedSlots) IsBooked(vehicleKey, dateLabel, timeLabel string) bool {
	for _, t := range b[slotKey(vehicleKey, dateLabel)] {
		if t == timeLabel {
			return true
		}
	}
	return false
}

// Mark reserves a slot locally. Used for the optimistic update after a booking
// is accepted, so the slot reads as taken without a refetch.
func (b BookedSlots) Mark(vehicleKey, dateLabel, timeLabel string) {
	if b.IsBooked(vehicleKey, dateLabel, timeLabel) {
		return
	}
	key := slotKey(vehicleKey, dateLabel)
	b[key] = append(b[key], timeLabel)
}

// Unmark releases a slot, e.g. when its booking is cancelled.
func (b BookedSlots) Unmark(vehicleKey, dateLabel, timeLabel string) {
	key := slotKey(vehicleKey, dateLabel)
	times := b[key]
	for i, t := range times {
		if t == timeLabel {
			b[key] = append(times[:i], times[i+1:]...)
			return
		}
	}
}

// Replace swaps in a freshly fetched reservation list for one vehicle and day.
func (b BookedSlots) Replace(vehicleKey, dateLabel string, times []string) {
	b[slotKey(vehicleKey, dateLabel)] = times
}
