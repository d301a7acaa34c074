package models

import "time"

// Branch is a stored restaurant branch. Localized field values are kept as the
// full per-language maps so that opening the edit flow can re-hydrate the form
// exactly as it was submitted.
type Branch struct {
	ID                  string            `bson:"id" json:"id"`
	Fields              FieldGroup        `bson:"fields" json:"fields"`
	Address             Address           `bson:"address" json:"address"`
	WhatsappOrderNumber string            `bson:"whatsappOrderNumber" json:"whatsappOrderNumber"`
	MediaURL            string            `bson:"mediaUrl,omitempty" json:"mediaUrl,omitempty"`
	WorkingHours        WeeklySchedule    `bson:"workingHours" json:"workingHours"`

	Deleted   bool       `bson:"deleted" json:"deleted"`
	DeletedAt *time.Time `bson:"deletedAt,omitempty" json:"deletedAt,omitempty"`
	CreatedAt time.Time  `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time  `bson:"updatedAt" json:"updatedAt"`
}

// Address is the branch street address.
type Address struct {
	Street   string `bson:"street" json:"street"`
	City     string `bson:"city" json:"city"`
	District string `bson:"district,omitempty" json:"district,omitempty"`
}

// CreateBranchRequest is the submission payload produced at the end of the
// onboarding wizard. branchName and the contact texts carry the flat
// default-language values; the per-language maps ride alongside so the server
// keeps the translations.
type CreateBranchRequest struct {
	BranchName                     string                           `json:"branchName" binding:"required"`
	WhatsappOrderNumber            string                           `json:"whatsappOrderNumber" binding:"required"`
	MediaURL                       string                           `json:"mediaUrl,omitempty"`
	Fields                         FieldGroup                       `json:"fields,omitempty"`
	CreateAddressDto               CreateAddressDto                 `json:"createAddressDto"`
	CreateContactDto               CreateContactDto                 `json:"createContactDto"`
	CreateBranchWorkingHourCoreDto []CreateBranchWorkingHourCoreDto `json:"createBranchWorkingHourCoreDto" binding:"required"`
}

// CreateAddressDto mirrors the address slice of the branch form.
type CreateAddressDto struct {
	Street   string `json:"street" binding:"required"`
	City     string `json:"city" binding:"required"`
	District string `json:"district,omitempty"`
}

// CreateContactDto carries the contact header and footer copy shown on the
// branch page, in the default language.
type CreateContactDto struct {
	Header     string `json:"header,omitempty"`
	FooterText string `json:"footerText,omitempty"`
}

// CreateBranchWorkingHourCoreDto is one day of the weekly schedule on the
// wire. Times are serialized as "HH:MM:SS" strings.
type CreateBranchWorkingHourCoreDto struct {
	DayOfWeek     int                      `json:"dayOfWeek"`
	IsWorkingDay  bool                     `json:"isWorkingDay"`
	IsOpen24Hours bool                     `json:"isOpen24Hours"`
	TimeSlots     []WorkingHourTimeSlotDto `json:"timeSlots,omitempty"`
}

// WorkingHourTimeSlotDto is a single open/close interval on the wire.
type WorkingHourTimeSlotDto struct {
	OpenTime  string `json:"openTime"`
	CloseTime string `json:"closeTime"`
}
