package locale

import (
	"testing"

	"sufra/models"
)

func newTestSync(t *testing.T) *Synchronizer {
	t.Helper()
	s, err := NewSynchronizer([]string{"en", "ar"}, "en")
	if err != nil {
		t.Fatalf("new synchronizer: %v", err)
	}
	return s
}

func TestNewSynchronizerRejectsUnknownDefault(t *testing.T) {
	if _, err := NewSynchronizer([]string{"en", "ar"}, "fr"); err == nil {
		t.Fatalf("expected error for default language outside the catalog")
	}
}

func TestSetValueWritesThroughToFlat(t *testing.T) {
	s := newTestSync(t)
	form := &models.FormData{}
	s.InitGroup(form)

	if err := s.SetValue(form, models.FieldBranchName, "en", "Downtown"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if got := form.Value(models.FieldBranchName); got != "Downtown" {
		t.Fatalf("flat value = %q, want %q", got, "Downtown")
	}
	if got := form.Fields[models.FieldBranchName.Key()]["en"]; got != "Downtown" {
		t.Fatalf("stored value = %q", got)
	}
}

func TestSetValueRejectsPlainFieldsAndUnknownLanguages(t *testing.T) {
	s := newTestSync(t)
	form := &models.FormData{}
	if err := s.SetValue(form, models.FieldWhatsAppNumber, "en", "+15551234567"); err == nil {
		t.Fatalf("expected error for non-translatable field")
	}
	if err := s.SetValue(form, models.FieldBranchName, "fr", "Centre"); err == nil {
		t.Fatalf("expected error for unsupported language")
	}
}

func TestFlatFallsBackToDefaultLanguage(t *testing.T) {
	s := newTestSync(t)
	form := &models.FormData{}
	s.InitGroup(form)
	if err := s.SetValue(form, models.FieldBranchName, "en", "Downtown"); err != nil {
		t.Fatalf("set value: %v", err)
	}

	// Switching to a language with no entry keeps the default visible.
	if err := s.SetActiveLanguage(form, "ar"); err != nil {
		t.Fatalf("set active language: %v", err)
	}
	if got := form.Value(models.FieldBranchName); got != "Downtown" {
		t.Fatalf("flat value after switch = %q, want default fallback", got)
	}

	// An arabic entry then takes precedence while arabic is active.
	if err := s.SetValue(form, models.FieldBranchName, "ar", "وسط المدينة"); err != nil {
		t.Fatalf("set value: %v", err)
	}
	if got := form.Value(models.FieldBranchName); got != "وسط المدينة" {
		t.Fatalf("flat value = %q, want the active-language entry", got)
	}

	// Back to the default language, the default entry shows again.
	if err := s.SetActiveLanguage(form, "en"); err != nil {
		t.Fatalf("set active language: %v", err)
	}
	if got := form.Value(models.FieldBranchName); got != "Downtown" {
		t.Fatalf("flat value = %q after switching back", got)
	}
}

func TestSetActiveLanguageRejectsUnknown(t *testing.T) {
	s := newTestSync(t)
	form := &models.FormData{}
	if err := s.SetActiveLanguage(form, "de"); err == nil {
		t.Fatalf("expected error for unsupported language")
	}
	if s.ActiveLanguage() != "en" {
		t.Fatalf("active language changed on failed switch: %q", s.ActiveLanguage())
	}
}

func TestBulkFillCopiesDefaultsAndOverwrites(t *testing.T) {
	s := newTestSync(t)
	form := &models.FormData{}
	s.InitGroup(form)
	s.SetValue(form, models.FieldBranchName, "en", "Downtown")
	s.SetValue(form, models.FieldContactHeader, "en", "Call us")
	s.SetValue(form, models.FieldContactHeader, "ar", "اتصل بنا")

	if err := s.BulkFill(form, "ar"); err != nil {
		t.Fatalf("bulk fill: %v", err)
	}
	if got := form.Fields[models.FieldBranchName.Key()]["ar"]; got != "Downtown" {
		t.Fatalf("branch name not copied: %q", got)
	}
	// Existing target values are overwritten, not preserved.
	if got := form.Fields[models.FieldContactHeader.Key()]["ar"]; got != "Call us" {
		t.Fatalf("contact header not overwritten: %q", got)
	}
	// Fields with no default entry stay absent.
	if _, ok := form.Fields[models.FieldFooterText.Key()]["ar"]; ok {
		t.Fatalf("footer copied despite empty default")
	}
}

func TestBulkFillIsIdempotent(t *testing.T) {
	s := newTestSync(t)
	form := &models.FormData{}
	s.InitGroup(form)
	s.SetValue(form, models.FieldBranchName, "en", "Downtown")

	if err := s.BulkFill(form, "ar"); err != nil {
		t.Fatalf("bulk fill: %v", err)
	}
	if err := s.BulkFill(form, "ar"); err != nil {
		t.Fatalf("second bulk fill: %v", err)
	}
	if got := form.Fields[models.FieldBranchName.Key()]["ar"]; got != "Downtown" {
		t.Fatalf("value drifted after repeat: %q", got)
	}
}

func TestBulkFillRejectsDefaultTarget(t *testing.T) {
	s := newTestSync(t)
	form := &models.FormData{}
	if err := s.BulkFill(form, "en"); err == nil {
		t.Fatalf("expected error for default-language target")
	}
	if err := s.BulkFill(form, "fr"); err == nil {
		t.Fatalf("expected error for unsupported target")
	}
}

func TestDefaultValueReadsOnlyTheDefaultLanguage(t *testing.T) {
	s := newTestSync(t)
	form := &models.FormData{}
	s.InitGroup(form)
	s.SetValue(form, models.FieldBranchName, "ar", "وسط المدينة")

	if got := s.DefaultValue(form, models.FieldBranchName); got != "" {
		t.Fatalf("default value = %q, want empty when only arabic is set", got)
	}
	s.SetValue(form, models.FieldBranchName, "en", "Downtown")
	if got := s.DefaultValue(form, models.FieldBranchName); got != "Downtown" {
		t.Fatalf("default value = %q", got)
	}
}
