package schedule

import (
	"fmt"

	"sufra/models"
)

// maxOvernightSpan caps cross-midnight slots at 12 hours. Inherited business
// rule of unclear origin; kept as-is rather than inferring a different bound.
const maxOvernightSpan = 12 * 3600

const secondsPerDay = 24 * 3600

// ScheduleKey is the ErrorMap key for whole-schedule errors.
const ScheduleKey = "schedule"

// DayKey returns the ErrorMap key for a day-level error.
func DayKey(day models.DayOfWeek) string {
	return fmt.Sprintf("schedule.%s", day)
}

// SlotKey returns the ErrorMap key for one side of one slot.
func SlotKey(day models.DayOfWeek, index int, field SlotField) string {
	return fmt.Sprintf("schedule.%s.slots[%d].%s", day, index, field)
}

// Validate checks the whole weekly schedule and returns a possibly empty
// ErrorMap. It is pure and total: any input produces a result, nothing is
// thrown, and re-running it on the same schedule yields the same map.
func Validate(ws models.WeeklySchedule) models.ErrorMap {
	errs := models.ErrorMap{}
	anyWorking := false

	for _, d := range ws {
		if !d.IsWorkingDay() {
			continue
		}
		anyWorking = true
		if d.IsOpen24Hours() {
			continue
		}
		if len(d.TimeSlots) == 0 {
			errs[DayKey(d.DayOfWeek)] = "at least one time slot is required"
			continue
		}
		for i, slot := range d.TimeSlots {
			if msg := slotRangeError(slot); msg != "" {
				errs[SlotKey(d.DayOfWeek, i, SlotCloseTime)] = msg
			}
		}
	}

	if !anyWorking {
		errs[ScheduleKey] = "at least one working day is required"
	}
	return errs
}

// slotRangeError applies the time-range rule to a single slot:
//   - close after open on the same day is an ordinary interval, always valid;
//   - close at or before open is read as spanning midnight, valid only when
//     the resulting overnight span is at most 12 hours. This rejects both the
//     degenerate zero-length slot (a 24h span once wrapped) and implausible
//     multi-day shifts.
func slotRangeError(s models.TimeSlot) string {
	if s.CloseTime > s.OpenTime {
		return ""
	}
	span := int(s.CloseTime) + secondsPerDay - int(s.OpenTime)
	if span > maxOvernightSpan {
		return "close time must be after open time, or at most 12 hours past midnight"
	}
	return ""
}
