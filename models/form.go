package models

// ErrorMap carries validation errors keyed by field path. An empty map means
// the validated snapshot is acceptable. Validation failures are values, never
// Go errors: they block forward wizard progress but are always recoverable.
type ErrorMap map[string]string

// Merge copies every entry of other into e.
func (e ErrorMap) Merge(other ErrorMap) {
	for k, v := range other {
		e[k] = v
	}
}

// FieldRef enumerates every addressable form field. Using a closed enum with
// typed accessors replaces the dot-path string writers the front end used and
// makes an unknown field a compile- or parse-time failure instead of a silent
// no-op write.
type FieldRef int

const (
	FieldBranchName FieldRef = iota
	FieldContactHeader
	FieldFooterText
	FieldAddressStreet
	FieldAddressCity
	FieldAddressDistrict
	FieldWhatsAppNumber
	FieldMediaURL
)

var fieldKeys = map[FieldRef]string{
	FieldBranchName:      "branchName",
	FieldContactHeader:   "contactHeader",
	FieldFooterText:      "footerText",
	FieldAddressStreet:   "address.street",
	FieldAddressCity:     "address.city",
	FieldAddressDistrict: "address.district",
	FieldWhatsAppNumber:  "whatsappOrderNumber",
	FieldMediaURL:        "mediaUrl",
}

// translatableFields are the fields that carry one value per language.
var translatableFields = map[FieldRef]bool{
	FieldBranchName:    true,
	FieldContactHeader: true,
	FieldFooterText:    true,
}

// Key returns the stable field path used in payloads and error maps.
func (f FieldRef) Key() string {
	return fieldKeys[f]
}

// Translatable reports whether the field holds per-language values.
func (f FieldRef) Translatable() bool {
	return translatableFields[f]
}

// TranslatableFieldRefs returns the fields holding per-language values, in a
// stable order.
func TranslatableFieldRefs() []FieldRef {
	return []FieldRef{FieldBranchName, FieldContactHeader, FieldFooterText}
}

// ParseFieldRef resolves a field path back to its reference.
func ParseFieldRef(key string) (FieldRef, bool) {
	for ref, k := range fieldKeys {
		if k == key {
			return ref, true
		}
	}
	return 0, false
}

// TranslatableField maps a language code to the value entered for that
// language. The form's default language is the privileged key: it is the only
// one required-field validation looks at.
type TranslatableField map[string]string

// FieldGroup is the set of translatable fields attached to one form, keyed by
// field path.
type FieldGroup map[string]TranslatableField

// FormData is the full snapshot of one branch form: translatable fields, the
// flat derived values step validation reads, and the weekly schedule. It is
// owned by exactly one wizard session at a time.
type FormData struct {
	Fields   FieldGroup        `json:"fields"`
	Flat     map[string]string `json:"flat"`
	Schedule WeeklySchedule    `json:"schedule"`
}

// Value returns the flat value for a field, which for translatable fields is
// maintained by the locale synchronizer's write-through.
func (f *FormData) Value(ref FieldRef) string {
	if f.Flat == nil {
		return ""
	}
	return f.Flat[ref.Key()]
}

// Set writes a non-translatable field. Translatable fields must go through the
// locale synchronizer so the per-language map and the flat value stay in step.
func (f *FormData) Set(ref FieldRef, value string) {
	if f.Flat == nil {
		f.Flat = make(map[string]string)
	}
	f.Flat[ref.Key()] = value
}
