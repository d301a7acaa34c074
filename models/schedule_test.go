package models

import (
	"encoding/json"
	"testing"
)

func TestParseLocalTime(t *testing.T) {
	cases := []struct {
		in   string
		want LocalTime
		ok   bool
	}{
		{"08:00", 8 * 3600, true},
		{"08:00:00", 8 * 3600, true},
		{"23:59:59", 23*3600 + 59*60 + 59, true},
		{"00:00", 0, true},
		{"24:00", 0, false},
		{"12:60", 0, false},
		{"noon", 0, false},
		{"", 0, false},
	}
	for _, tc := range cases {
		got, err := ParseLocalTime(tc.in)
		if tc.ok && err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if !tc.ok && err == nil {
			t.Fatalf("%q: expected parse error", tc.in)
		}
		if tc.ok && got != tc.want {
			t.Fatalf("%q: got %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestLocalTimeJSON(t *testing.T) {
	slot := TimeSlot{OpenTime: 8 * 3600, CloseTime: 22*3600 + 30*60}
	data, err := json.Marshal(slot)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"openTime":"08:00:00","closeTime":"22:30:00"}`
	if string(data) != want {
		t.Fatalf("marshal = %s, want %s", data, want)
	}

	var back TimeSlot
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if back != slot {
		t.Fatalf("round trip changed the slot: %+v", back)
	}
}

func TestDayOfWeek(t *testing.T) {
	if Sunday.String() != "sunday" || Saturday.String() != "saturday" {
		t.Fatalf("day names wrong: %s, %s", Sunday, Saturday)
	}
	if !Wednesday.Valid() {
		t.Fatalf("wednesday invalid")
	}
	if DayOfWeek(7).Valid() || DayOfWeek(-1).Valid() {
		t.Fatalf("out-of-range day considered valid")
	}
}

func TestParseFieldRef(t *testing.T) {
	for _, ref := range []FieldRef{
		FieldBranchName, FieldContactHeader, FieldFooterText,
		FieldAddressStreet, FieldAddressCity, FieldAddressDistrict,
		FieldWhatsAppNumber, FieldMediaURL,
	} {
		got, ok := ParseFieldRef(ref.Key())
		if !ok || got != ref {
			t.Fatalf("%q did not round trip: %d, %v", ref.Key(), got, ok)
		}
	}
	if _, ok := ParseFieldRef("address.zip"); ok {
		t.Fatalf("unknown key must not parse")
	}
}

func TestTranslatableSplit(t *testing.T) {
	for _, ref := range TranslatableFieldRefs() {
		if !ref.Translatable() {
			t.Fatalf("%q listed but not translatable", ref.Key())
		}
	}
	if FieldWhatsAppNumber.Translatable() || FieldAddressCity.Translatable() {
		t.Fatalf("plain fields report translatable")
	}
}
