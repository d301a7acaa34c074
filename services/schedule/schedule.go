// Package schedule owns the weekly operating-hours model: the mutation API
// that keeps day state consistent, the slot validation algorithm, and the
// conversion to and from the branch submission payload.
package schedule

import (
	"fmt"

	"sufra/models"
)

// Default slot seeded whenever a day transitions into the open-with-slots
// state with no slots of its own: 08:00-22:00.
const (
	DefaultOpenTime  = models.LocalTime(8 * 3600)
	DefaultCloseTime = models.LocalTime(22 * 3600)
)

// DefaultSlot returns the seed slot for a freshly opened day.
func DefaultSlot() models.TimeSlot {
	return models.TimeSlot{OpenTime: DefaultOpenTime, CloseTime: DefaultCloseTime}
}

// DefaultWeekly returns the schedule a new branch form starts with: open
// every day, one 08:00-22:00 slot.
func DefaultWeekly() models.WeeklySchedule {
	var ws models.WeeklySchedule
	for d := models.Sunday; d <= models.Saturday; d++ {
		ws[d] = models.DaySchedule{
			DayOfWeek:    d,
			Availability: models.DayOpenWithSlots,
			TimeSlots:    []models.TimeSlot{DefaultSlot()},
		}
	}
	return ws
}

// SetWorkingDay toggles whether the branch operates on the given day. Turning
// a day off clears its slots and 24h state; turning it on seeds the default
// slot when none exist. Never fails.
func SetWorkingDay(ws *models.WeeklySchedule, day models.DayOfWeek, working bool) models.DaySchedule {
	d := &ws[day]
	if !working {
		d.Availability = models.DayClosed
		d.TimeSlots = nil
	} else if d.Availability == models.DayClosed {
		d.Availability = models.DayOpenWithSlots
		if len(d.TimeSlots) == 0 {
			d.TimeSlots = []models.TimeSlot{DefaultSlot()}
		}
	}
	return *d
}

// SetOpen24Hours toggles round-the-clock opening. The 24h state and explicit
// slots are mutually exclusive by construction: turning the flag on clears the
// slots, turning it off re-seeds the default slot. Toggling the flag on a
// closed day is a no-op apart from turning it on, which opens the day.
func SetOpen24Hours(ws *models.WeeklySchedule, day models.DayOfWeek, flag bool) models.DaySchedule {
	d := &ws[day]
	if flag {
		d.Availability = models.DayOpen24Hours
		d.TimeSlots = nil
	} else if d.Availability == models.DayOpen24Hours {
		d.Availability = models.DayOpenWithSlots
		if len(d.TimeSlots) == 0 {
			d.TimeSlots = []models.TimeSlot{DefaultSlot()}
		}
	}
	return *d
}

// AddTimeSlot appends a default slot to an open-with-slots day. Adding a slot
// to a closed or 24h day is rejected, since those states hold no slots.
func AddTimeSlot(ws *models.WeeklySchedule, day models.DayOfWeek) (models.DaySchedule, error) {
	d := &ws[day]
	if d.Availability != models.DayOpenWithSlots {
		return *d, fmt.Errorf("cannot add a time slot to a %s day that is not open with slots", day)
	}
	d.TimeSlots = append(d.TimeSlots, DefaultSlot())
	return *d, nil
}

// RemoveTimeSlot removes the slot at index. A working non-24h day must retain
// at least one slot, so removing the last one is rejected.
func RemoveTimeSlot(ws *models.WeeklySchedule, day models.DayOfWeek, index int) (models.DaySchedule, error) {
	d := &ws[day]
	if index < 0 || index >= len(d.TimeSlots) {
		return *d, fmt.Errorf("no time slot at index %d for %s", index, day)
	}
	if d.Availability == models.DayOpenWithSlots && len(d.TimeSlots) == 1 {
		return *d, fmt.Errorf("a working day must keep at least one time slot")
	}
	d.TimeSlots = append(d.TimeSlots[:index], d.TimeSlots[index+1:]...)
	return *d, nil
}

// SlotField names the editable side of a time slot.
type SlotField int

const (
	SlotOpenTime SlotField = iota
	SlotCloseTime
)

// ParseSlotField resolves the wire name of a slot field.
func ParseSlotField(s string) (SlotField, bool) {
	switch s {
	case "openTime":
		return SlotOpenTime, true
	case "closeTime":
		return SlotCloseTime, true
	}
	return 0, false
}

func (f SlotField) String() string {
	if f == SlotOpenTime {
		return "openTime"
	}
	return "closeTime"
}

// SetSlotTime updates one side of one slot. It deliberately does not
// re-validate: intermediate invalid ranges are representable while the user is
// still editing, and Validate is a separate explicit pass.
func SetSlotTime(ws *models.WeeklySchedule, day models.DayOfWeek, index int, field SlotField, value models.LocalTime) error {
	d := &ws[day]
	if index < 0 || index >= len(d.TimeSlots) {
		return fmt.Errorf("no time slot at index %d for %s", index, day)
	}
	if field == SlotOpenTime {
		d.TimeSlots[index].OpenTime = value
	} else {
		d.TimeSlots[index].CloseTime = value
	}
	return nil
}
