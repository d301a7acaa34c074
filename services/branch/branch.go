// Package branch implements the branch service the wizard submits to.
package branch

import (
	"fmt"
	"time"

	branchRepo "sufra/database/repository/branch"
	"sufra/models"
	"sufra/services/schedule"
	"sufra/utils"

	"github.com/google/uuid"
)

// DefaultBranchService is the production BranchService backed by the mongo
// repository.
type DefaultBranchService struct {
	Repo branchRepo.BranchRepository
}

// BuildPayload assembles the submission payload from a form snapshot: flat
// field values, the full per-language maps, and the working hours serialized
// as HH:MM:SS wire entries.
func BuildPayload(form *models.FormData) models.CreateBranchRequest {
	return models.CreateBranchRequest{
		BranchName:          form.Value(models.FieldBranchName),
		WhatsappOrderNumber: form.Value(models.FieldWhatsAppNumber),
		MediaURL:            form.Value(models.FieldMediaURL),
		Fields:              form.Fields,
		CreateAddressDto: models.CreateAddressDto{
			Street:   form.Value(models.FieldAddressStreet),
			City:     form.Value(models.FieldAddressCity),
			District: form.Value(models.FieldAddressDistrict),
		},
		CreateContactDto: models.CreateContactDto{
			Header:     form.Value(models.FieldContactHeader),
			FooterText: form.Value(models.FieldFooterText),
		},
		CreateBranchWorkingHourCoreDto: schedule.ToPayload(form.Schedule),
	}
}

// SubmitBranch persists the branch described by a completed form session. A
// session carrying a BranchID updates that branch, otherwise a new branch is
// created. A failed write leaves no partial state: the session itself is not
// touched here, so the caller can correct input and resubmit.
func (s *DefaultBranchService) SubmitBranch(sess *utils.FormSession) (*models.Branch, error) {
	payload := BuildPayload(&sess.Form)

	branch := &models.Branch{
		ID:     sess.BranchID,
		Fields: sess.Form.Fields,
		Address: models.Address{
			Street:   payload.CreateAddressDto.Street,
			City:     payload.CreateAddressDto.City,
			District: payload.CreateAddressDto.District,
		},
		WhatsappOrderNumber: payload.WhatsappOrderNumber,
		MediaURL:            payload.MediaURL,
		WorkingHours:        sess.Form.Schedule,
	}

	now := time.Now()
	if branch.ID == "" {
		branch.ID = uuid.NewString()
		branch.CreatedAt = now
		branch.UpdatedAt = now
		if err := s.Repo.Create(branch); err != nil {
			return nil, fmt.Errorf("failed to submit new branch: %w", err)
		}
		return branch, nil
	}

	existing, err := s.Repo.GetByID(branch.ID)
	if err != nil {
		return nil, fmt.Errorf("branch not found: %w", err)
	}
	branch.CreatedAt = existing.CreatedAt
	branch.UpdatedAt = now
	if err := s.Repo.Update(branch); err != nil {
		return nil, fmt.Errorf("failed to update branch: %w", err)
	}
	return branch, nil
}

func (s *DefaultBranchService) GetBranch(id string) (*models.Branch, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultBranchService) ListBranches() ([]models.Branch, error) {
	return s.Repo.GetAll()
}

// EditForm re-hydrates a stored branch into a form snapshot so the edit modal
// shows exactly what was submitted, working hours included.
func (s *DefaultBranchService) EditForm(branchID string) (*models.FormData, error) {
	b, err := s.Repo.GetByID(branchID)
	if err != nil {
		return nil, fmt.Errorf("branch not found: %w", err)
	}
	if b.Deleted {
		return nil, fmt.Errorf("branch %s is in the recycle bin", branchID)
	}

	form := &models.FormData{
		Fields:   b.Fields,
		Flat:     map[string]string{},
		Schedule: b.WorkingHours,
	}
	form.Set(models.FieldAddressStreet, b.Address.Street)
	form.Set(models.FieldAddressCity, b.Address.City)
	form.Set(models.FieldAddressDistrict, b.Address.District)
	form.Set(models.FieldWhatsAppNumber, b.WhatsappOrderNumber)
	form.Set(models.FieldMediaURL, b.MediaURL)
	return form, nil
}

func (s *DefaultBranchService) DeleteBranch(id string) error {
	return s.Repo.SoftDelete(id)
}

func (s *DefaultBranchService) RestoreBranch(id string) error {
	return s.Repo.Restore(id)
}

func (s *DefaultBranchService) ListRecycleBin() ([]models.Branch, error) {
	return s.Repo.ListDeleted()
}
