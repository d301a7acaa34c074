package schedule

import (
	"testing"

	"sufra/models"
)

func mustTime(t *testing.T, s string) models.LocalTime {
	t.Helper()
	lt, err := models.ParseLocalTime(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return lt
}

func TestSlotRangeRule(t *testing.T) {
	cases := []struct {
		open, close string
		valid       bool
	}{
		{"09:00", "17:00", true},  // ordinary same-day interval
		{"22:00", "02:00", true},  // 4h across midnight
		{"23:00", "10:00", true},  // 11h across midnight, inside the cap
		{"12:00", "00:00", true},  // exactly 12h to midnight
		{"06:00", "05:00", false}, // 23h wrap
		{"12:00", "12:00", false}, // zero-length reads as a full-day wrap
		{"00:00", "13:00", true},  // 13h but same-day, no wrap involved
		{"23:59", "11:59", true},  // exactly 12h wrapped
		{"23:59", "12:00", false}, // one minute over the cap
	}
	for _, tc := range cases {
		slot := models.TimeSlot{OpenTime: mustTime(t, tc.open), CloseTime: mustTime(t, tc.close)}
		msg := slotRangeError(slot)
		if tc.valid && msg != "" {
			t.Fatalf("%s-%s: expected valid, got %q", tc.open, tc.close, msg)
		}
		if !tc.valid && msg == "" {
			t.Fatalf("%s-%s: expected a range error", tc.open, tc.close)
		}
	}
}

func TestValidateReportsSlotErrorsUnderCloseTimeKey(t *testing.T) {
	ws := DefaultWeekly()
	SetSlotTime(&ws, models.Monday, 0, SlotOpenTime, mustTime(t, "06:00"))
	SetSlotTime(&ws, models.Monday, 0, SlotCloseTime, mustTime(t, "05:00"))

	errs := Validate(ws)
	key := SlotKey(models.Monday, 0, SlotCloseTime)
	if errs[key] == "" {
		t.Fatalf("expected error under %q, got %v", key, errs)
	}
	if len(errs) != 1 {
		t.Fatalf("expected exactly one error, got %v", errs)
	}
}

func TestValidateAllDaysClosed(t *testing.T) {
	var ws models.WeeklySchedule
	for d := models.Sunday; d <= models.Saturday; d++ {
		ws[d] = models.DaySchedule{DayOfWeek: d, Availability: models.DayClosed}
	}
	errs := Validate(ws)
	if len(errs) != 1 {
		t.Fatalf("expected the single schedule-level error, got %v", errs)
	}
	if errs[ScheduleKey] == "" {
		t.Fatalf("expected error under %q, got %v", ScheduleKey, errs)
	}
}

func TestValidateSkipsClosedAnd24hDays(t *testing.T) {
	ws := DefaultWeekly()
	SetWorkingDay(&ws, models.Monday, false)
	SetOpen24Hours(&ws, models.Tuesday, true)
	// Break a slot on a closed day by hand; validation must not look at it.
	ws[models.Monday].TimeSlots = []models.TimeSlot{{OpenTime: mustTime(t, "06:00"), CloseTime: mustTime(t, "05:00")}}

	if errs := Validate(ws); len(errs) != 0 {
		t.Fatalf("expected a clean schedule, got %v", errs)
	}
}

func TestValidateEmptySlotsOnWorkingDay(t *testing.T) {
	ws := DefaultWeekly()
	ws[models.Friday].TimeSlots = nil

	errs := Validate(ws)
	if errs[DayKey(models.Friday)] == "" {
		t.Fatalf("expected day-level error for friday, got %v", errs)
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	ws := DefaultWeekly()
	SetSlotTime(&ws, models.Saturday, 0, SlotCloseTime, mustTime(t, "08:00"))

	first := Validate(ws)
	second := Validate(ws)
	if len(first) != len(second) {
		t.Fatalf("repeated validation differs: %v vs %v", first, second)
	}
	for k, v := range first {
		if second[k] != v {
			t.Fatalf("repeated validation differs at %q: %q vs %q", k, v, second[k])
		}
	}
}
