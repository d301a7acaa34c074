package models

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// DayOfWeek indexes the days of a weekly schedule. The numbering matches the
// branch API: Sunday is 0 and Saturday is 6, regardless of display locale.
type DayOfWeek int

const (
	Sunday DayOfWeek = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday

	DaysPerWeek = 7
)

var dayNames = [DaysPerWeek]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

func (d DayOfWeek) String() string {
	if d < Sunday || d > Saturday {
		return fmt.Sprintf("day(%d)", int(d))
	}
	return dayNames[d]
}

// Valid reports whether d is one of the seven defined days.
func (d DayOfWeek) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// LocalTime is a wall-clock time with second precision, stored as seconds from
// midnight. It serializes as "HH:MM:SS" and also accepts "HH:MM" on input,
// which is the form the editing UI sends.
type LocalTime int

const secondsPerDay = 24 * 60 * 60

// ParseLocalTime parses "HH:MM:SS" or "HH:MM".
func ParseLocalTime(s string) (LocalTime, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 && len(parts) != 3 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM or HH:MM:SS", s)
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, fmt.Errorf("invalid time %q: expected HH:MM or HH:MM:SS", s)
		}
		nums[i] = n
	}
	h, m, sec := nums[0], nums[1], nums[2]
	if h < 0 || h > 23 || m < 0 || m > 59 || sec < 0 || sec > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return LocalTime(h*3600 + m*60 + sec), nil
}

func (t LocalTime) String() string {
	secs := int(t)
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs/60)%60, secs%60)
}

func (t LocalTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *LocalTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseLocalTime(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// TimeSlot is one contiguous open/close interval within a working day. Slots
// have no identity of their own; they live and die with the day that holds them.
type TimeSlot struct {
	OpenTime  LocalTime `json:"openTime" bson:"openTime"`
	CloseTime LocalTime `json:"closeTime" bson:"closeTime"`
}

// DayAvailability is the single tagged state of a day. Modelling this as one
// variant instead of two booleans plus a slice keeps "closed day with slots"
// and "24h day with slots" unrepresentable through the mutation API.
type DayAvailability int

const (
	// DayClosed: the branch does not operate on this day.
	DayClosed DayAvailability = iota
	// DayOpen24Hours: open the whole day, no explicit slots.
	DayOpen24Hours
	// DayOpenWithSlots: open during the listed time slots.
	DayOpenWithSlots
)

// DaySchedule holds one day's availability. TimeSlots is non-empty only when
// Availability is DayOpenWithSlots and the day has been fully edited.
type DaySchedule struct {
	DayOfWeek    DayOfWeek       `json:"dayOfWeek" bson:"dayOfWeek"`
	Availability DayAvailability `json:"availability" bson:"availability"`
	TimeSlots    []TimeSlot      `json:"timeSlots,omitempty" bson:"timeSlots,omitempty"`
}

// IsWorkingDay reports whether the branch operates at all on this day.
func (d DaySchedule) IsWorkingDay() bool {
	return d.Availability != DayClosed
}

// IsOpen24Hours reports whether the day is open round the clock.
func (d DaySchedule) IsOpen24Hours() bool {
	return d.Availability == DayOpen24Hours
}

// WeeklySchedule is exactly one DaySchedule per DayOfWeek, in day order.
type WeeklySchedule [DaysPerWeek]DaySchedule
