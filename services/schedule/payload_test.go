package schedule

import (
	"testing"

	"sufra/models"
)

func TestToPayloadCoversEveryDayInOrder(t *testing.T) {
	ws := DefaultWeekly()
	SetWorkingDay(&ws, models.Monday, false)
	SetOpen24Hours(&ws, models.Friday, true)

	payload := ToPayload(ws)
	if len(payload) != models.DaysPerWeek {
		t.Fatalf("expected %d entries, got %d", models.DaysPerWeek, len(payload))
	}
	for i, entry := range payload {
		if entry.DayOfWeek != i {
			t.Fatalf("entry %d carries day %d", i, entry.DayOfWeek)
		}
	}

	mon := payload[int(models.Monday)]
	if mon.IsWorkingDay || len(mon.TimeSlots) != 0 {
		t.Fatalf("closed monday serialized as %+v", mon)
	}
	fri := payload[int(models.Friday)]
	if !fri.IsWorkingDay || !fri.IsOpen24Hours || len(fri.TimeSlots) != 0 {
		t.Fatalf("24h friday serialized as %+v", fri)
	}
	sun := payload[int(models.Sunday)]
	if len(sun.TimeSlots) != 1 || sun.TimeSlots[0].OpenTime != "08:00:00" || sun.TimeSlots[0].CloseTime != "22:00:00" {
		t.Fatalf("sunday slots serialized as %+v", sun.TimeSlots)
	}
}

func TestPayloadRoundTrip(t *testing.T) {
	ws := DefaultWeekly()
	SetWorkingDay(&ws, models.Wednesday, false)
	SetOpen24Hours(&ws, models.Saturday, true)
	if _, err := AddTimeSlot(&ws, models.Sunday); err != nil {
		t.Fatalf("add slot: %v", err)
	}
	SetSlotTime(&ws, models.Sunday, 1, SlotOpenTime, mustTime(t, "23:00"))
	SetSlotTime(&ws, models.Sunday, 1, SlotCloseTime, mustTime(t, "02:00"))

	got, err := FromPayload(ToPayload(ws))
	if err != nil {
		t.Fatalf("round trip: %v", err)
	}
	for d := models.Sunday; d <= models.Saturday; d++ {
		if got[d].Availability != ws[d].Availability {
			t.Fatalf("%s: availability %d != %d", d, got[d].Availability, ws[d].Availability)
		}
		if len(got[d].TimeSlots) != len(ws[d].TimeSlots) {
			t.Fatalf("%s: %d slots != %d", d, len(got[d].TimeSlots), len(ws[d].TimeSlots))
		}
		for i := range got[d].TimeSlots {
			if got[d].TimeSlots[i] != ws[d].TimeSlots[i] {
				t.Fatalf("%s slot %d: %+v != %+v", d, i, got[d].TimeSlots[i], ws[d].TimeSlots[i])
			}
		}
	}
}

func TestFromPayloadMissingDaysAreClosed(t *testing.T) {
	entries := []models.CreateBranchWorkingHourCoreDto{
		{DayOfWeek: int(models.Monday), IsWorkingDay: true, TimeSlots: []models.WorkingHourTimeSlotDto{
			{OpenTime: "09:00", CloseTime: "17:00"},
		}},
	}
	ws, err := FromPayload(entries)
	if err != nil {
		t.Fatalf("from payload: %v", err)
	}
	if !ws[models.Monday].IsWorkingDay() {
		t.Fatalf("monday should be open")
	}
	for d := models.Sunday; d <= models.Saturday; d++ {
		if d == models.Monday {
			continue
		}
		if ws[d].IsWorkingDay() {
			t.Fatalf("%s should default to closed", d)
		}
	}
}

func TestFromPayloadRejectsBadEntries(t *testing.T) {
	if _, err := FromPayload([]models.CreateBranchWorkingHourCoreDto{{DayOfWeek: 7}}); err == nil {
		t.Fatalf("expected error for out-of-range day")
	}
	dup := []models.CreateBranchWorkingHourCoreDto{
		{DayOfWeek: 1}, {DayOfWeek: 1},
	}
	if _, err := FromPayload(dup); err == nil {
		t.Fatalf("expected error for duplicate day")
	}
	bad := []models.CreateBranchWorkingHourCoreDto{
		{DayOfWeek: 2, IsWorkingDay: true, TimeSlots: []models.WorkingHourTimeSlotDto{
			{OpenTime: "9am", CloseTime: "17:00"},
		}},
	}
	if _, err := FromPayload(bad); err == nil {
		t.Fatalf("expected error for unparsable time")
	}
}
