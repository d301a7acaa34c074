// Package locale keeps the translatable fields of a form consistent: one
// value per language, a privileged default language, and a flat derived value
// per field that step validation and submission read.
package locale

import (
	"fmt"

	"sufra/models"
)

// Synchronizer manages the translatable fields of one form session. The
// language catalog is fixed input for the lifetime of the session.
type Synchronizer struct {
	languages       []string
	defaultLanguage string
	activeLanguage  string
}

// NewSynchronizer builds a synchronizer for the given catalog. The default
// language must be part of the catalog; the active editing language starts as
// the default.
func NewSynchronizer(languages []string, defaultLanguage string) (*Synchronizer, error) {
	s := &Synchronizer{
		languages:       languages,
		defaultLanguage: defaultLanguage,
		activeLanguage:  defaultLanguage,
	}
	if !s.knows(defaultLanguage) {
		return nil, fmt.Errorf("default language %q is not in the supported set %v", defaultLanguage, languages)
	}
	return s, nil
}

func (s *Synchronizer) knows(lang string) bool {
	for _, l := range s.languages {
		if l == lang {
			return true
		}
	}
	return false
}

// DefaultLanguage returns the mandatory source-of-truth language.
func (s *Synchronizer) DefaultLanguage() string {
	return s.defaultLanguage
}

// ActiveLanguage returns the language currently being edited.
func (s *Synchronizer) ActiveLanguage() string {
	return s.activeLanguage
}

// SetActiveLanguage switches the editing language and re-derives every flat
// value, so the fallback chain holds for the new language.
func (s *Synchronizer) SetActiveLanguage(form *models.FormData, lang string) error {
	if !s.knows(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}
	s.activeLanguage = lang
	for _, ref := range models.TranslatableFieldRefs() {
		s.syncFlat(form, ref)
	}
	return nil
}

// InitGroup seeds the form's field group with an entry for every translatable
// field, so later writes never have to create maps lazily in two places.
func (s *Synchronizer) InitGroup(form *models.FormData) {
	if form.Fields == nil {
		form.Fields = models.FieldGroup{}
	}
	if form.Flat == nil {
		form.Flat = map[string]string{}
	}
	for _, ref := range models.TranslatableFieldRefs() {
		if form.Fields[ref.Key()] == nil {
			form.Fields[ref.Key()] = models.TranslatableField{}
		}
	}
}

// SetValue stores value under the given language for one translatable field
// and writes the derived flat value through to the form, which is what lets
// step validation see a plain string instead of a locale map.
func (s *Synchronizer) SetValue(form *models.FormData, ref models.FieldRef, lang, value string) error {
	if !ref.Translatable() {
		return fmt.Errorf("field %q is not translatable", ref.Key())
	}
	if !s.knows(lang) {
		return fmt.Errorf("unsupported language %q", lang)
	}
	s.InitGroup(form)
	form.Fields[ref.Key()][lang] = value
	s.syncFlat(form, ref)
	return nil
}

// BulkFill copies the default-language value of every translatable field into
// the target language. It only ever copies from the default language, it
// overwrites whatever the target held, and it is idempotent: a second call
// with no intervening edits changes nothing.
func (s *Synchronizer) BulkFill(form *models.FormData, target string) error {
	if !s.knows(target) {
		return fmt.Errorf("unsupported language %q", target)
	}
	if target == s.defaultLanguage {
		return fmt.Errorf("bulk fill target cannot be the default language")
	}
	s.InitGroup(form)
	for _, ref := range models.TranslatableFieldRefs() {
		field := form.Fields[ref.Key()]
		if v, ok := field[s.defaultLanguage]; ok {
			field[target] = v
		}
		s.syncFlat(form, ref)
	}
	return nil
}

// DefaultValue returns the default-language entry of a field. Required-field
// validation reads only this: a missing translation in any other language is
// never a blocking error.
func (s *Synchronizer) DefaultValue(form *models.FormData, ref models.FieldRef) string {
	if form.Fields == nil {
		return ""
	}
	return form.Fields[ref.Key()][s.defaultLanguage]
}

// syncFlat maintains the invariant that the flat value used for submission
// equals field[active] ?? field[default] ?? "".
func (s *Synchronizer) syncFlat(form *models.FormData, ref models.FieldRef) {
	if form.Flat == nil {
		form.Flat = map[string]string{}
	}
	field := form.Fields[ref.Key()]
	if v, ok := field[s.activeLanguage]; ok {
		form.Flat[ref.Key()] = v
		return
	}
	if v, ok := field[s.defaultLanguage]; ok {
		form.Flat[ref.Key()] = v
		return
	}
	form.Flat[ref.Key()] = ""
}
