package schedule

import (
	"fmt"

	"sufra/models"
)

// ToPayload serializes the weekly schedule into the branch submission form:
// one entry per day in day order, times as "HH:MM:SS" strings.
func ToPayload(ws models.WeeklySchedule) []models.CreateBranchWorkingHourCoreDto {
	out := make([]models.CreateBranchWorkingHourCoreDto, 0, models.DaysPerWeek)
	for _, d := range ws {
		entry := models.CreateBranchWorkingHourCoreDto{
			DayOfWeek:     int(d.DayOfWeek),
			IsWorkingDay:  d.IsWorkingDay(),
			IsOpen24Hours: d.IsOpen24Hours(),
		}
		for _, slot := range d.TimeSlots {
			entry.TimeSlots = append(entry.TimeSlots, models.WorkingHourTimeSlotDto{
				OpenTime:  slot.OpenTime.String(),
				CloseTime: slot.CloseTime.String(),
			})
		}
		out = append(out, entry)
	}
	return out
}

// FromPayload re-hydrates a weekly schedule from wire entries, as done when a
// stored branch is opened in the edit flow. Days absent from the payload are
// closed. Duplicate or out-of-range days and unparsable times are rejected.
func FromPayload(entries []models.CreateBranchWorkingHourCoreDto) (models.WeeklySchedule, error) {
	var ws models.WeeklySchedule
	for d := models.Sunday; d <= models.Saturday; d++ {
		ws[d] = models.DaySchedule{DayOfWeek: d, Availability: models.DayClosed}
	}

	seen := make(map[int]bool, len(entries))
	for _, entry := range entries {
		day := models.DayOfWeek(entry.DayOfWeek)
		if !day.Valid() {
			return ws, fmt.Errorf("invalid day of week %d", entry.DayOfWeek)
		}
		if seen[entry.DayOfWeek] {
			return ws, fmt.Errorf("duplicate entry for %s", day)
		}
		seen[entry.DayOfWeek] = true

		switch {
		case !entry.IsWorkingDay:
			// already closed
		case entry.IsOpen24Hours:
			ws[day].Availability = models.DayOpen24Hours
		default:
			ws[day].Availability = models.DayOpenWithSlots
			for i, slot := range entry.TimeSlots {
				open, err := models.ParseLocalTime(slot.OpenTime)
				if err != nil {
					return ws, fmt.Errorf("%s slot %d: %w", day, i, err)
				}
				closeT, err := models.ParseLocalTime(slot.CloseTime)
				if err != nil {
					return ws, fmt.Errorf("%s slot %d: %w", day, i, err)
				}
				ws[day].TimeSlots = append(ws[day].TimeSlots, models.TimeSlot{
					OpenTime:  open,
					CloseTime: closeT,
				})
			}
		}
	}
	return ws, nil
}
