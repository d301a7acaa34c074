package branchRepo

import (
	"time"

	"sufra/models"
)

// BranchRepository defines persistence for restaurant branches, including the
// recycle bin: deletion is soft, restorable until the purge retention passes.
type BranchRepository interface {
	Create(branch *models.Branch) error
	GetByID(id string) (*models.Branch, error)
	GetAll() ([]models.Branch, error)
	Update(branch *models.Branch) error
	SoftDelete(id string) error
	Restore(id string) error
	ListDeleted() ([]models.Branch, error)
	Purge(olderThan time.Time) (int64, error)
}
