package utils

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"

	"sufra/models"
)

func TestFormSessionJSONRoundTrip(t *testing.T) {
	sess := FormSession{
		SessionID:      "sess-1",
		BranchID:       "branch-1",
		ActiveLanguage: "ar",
		CurrentStep:    2,
		Form: models.FormData{
			Fields: models.FieldGroup{
				models.FieldBranchName.Key(): {"en": "Downtown", "ar": "وسط المدينة"},
			},
			Flat: map[string]string{
				models.FieldBranchName.Key():     "وسط المدينة",
				models.FieldWhatsAppNumber.Key(): "+15551234567",
			},
			Schedule: models.WeeklySchedule{
				{DayOfWeek: models.Sunday, Availability: models.DayOpenWithSlots,
					TimeSlots: []models.TimeSlot{{OpenTime: 8 * 3600, CloseTime: 22 * 3600}}},
				{DayOfWeek: models.Monday, Availability: models.DayOpen24Hours},
				{DayOfWeek: models.Tuesday, Availability: models.DayClosed},
				{DayOfWeek: models.Wednesday, Availability: models.DayClosed},
				{DayOfWeek: models.Thursday, Availability: models.DayClosed},
				{DayOfWeek: models.Friday, Availability: models.DayClosed},
				{DayOfWeek: models.Saturday, Availability: models.DayClosed},
			},
		},
		CreatedAt: time.Now().UTC().Truncate(time.Second),
	}

	data, err := json.Marshal(&sess)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var back FormSession
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !reflect.DeepEqual(back, sess) {
		t.Fatalf("round trip changed the session:\n got %+v\nwant %+v", back, sess)
	}
}
