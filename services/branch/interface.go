package branch

import (
	"sufra/models"
	"sufra/utils"
)

// BranchService manages restaurant branches: submissions coming out of the
// onboarding wizard, edit-session hydration, and the recycle bin.
type BranchService interface {
	// SubmitBranch turns a completed form session into a stored branch. The
	// session must already have passed the wizard's final validation; the
	// service performs no re-validation of its own.
	SubmitBranch(sess *utils.FormSession) (*models.Branch, error)

	GetBranch(id string) (*models.Branch, error)
	ListBranches() ([]models.Branch, error)

	// EditForm re-hydrates the form snapshot for an existing branch, as used
	// by the edit modal. Translatable flat values still need a pass through
	// the locale synchronizer for the session's active language.
	EditForm(branchID string) (*models.FormData, error)

	DeleteBranch(id string) error
	RestoreBranch(id string) error
	ListRecycleBin() ([]models.Branch, error)
}
