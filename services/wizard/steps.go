package wizard

import (
	"strings"

	"sufra/models"
	"sufra/services/schedule"
)

// BranchSteps defines the three-step branch onboarding flow: basics, address,
// working hours. The same definitions back the onboarding wizard and the edit
// modal.
func BranchSteps() []Step {
	return []Step{
		{
			Index:    1,
			Required: []models.FieldRef{models.FieldBranchName, models.FieldWhatsAppNumber},
			Check:    checkWhatsappNumber,
		},
		{
			Index:    2,
			Required: []models.FieldRef{models.FieldAddressStreet, models.FieldAddressCity},
		},
		{
			Index: 3,
			Check: func(form *models.FormData) models.ErrorMap {
				return schedule.Validate(form.Schedule)
			},
		},
	}
}

// checkWhatsappNumber accepts an international number: optional leading "+",
// then 7 to 15 digits. Spaces are tolerated and ignored.
func checkWhatsappNumber(form *models.FormData) models.ErrorMap {
	errs := models.ErrorMap{}
	raw := strings.ReplaceAll(form.Value(models.FieldWhatsAppNumber), " ", "")
	if raw == "" {
		return errs // required-field check reports the empty case
	}
	digits := strings.TrimPrefix(raw, "+")
	if len(digits) < 7 || len(digits) > 15 {
		errs[models.FieldWhatsAppNumber.Key()] = "must be a valid phone number"
		return errs
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			errs[models.FieldWhatsAppNumber.Key()] = "must be a valid phone number"
			return errs
		}
	}
	return errs
}
