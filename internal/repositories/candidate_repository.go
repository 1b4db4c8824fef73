package repositories

import (
	"talentscout_backend/internal/models"

	"gorm.io/gorm"
)

type CandidateRepository interface {
	ListByTask(db *gorm.DB, taskID uint, skip, limit int) ([]models.Candidate, error)
	Create(db *gorm.DB, candidate *models.Candidate) error
	// CreateBatch inserts all rows in one transaction, preserving input order.
	CreateBatch(db *gorm.DB, candidates []models.Candidate) ([]models.Candidate, error)
}

type CandidateRepositoryImpl struct{}

func NewCandidateRepository() CandidateRepository {
	return &CandidateRepositoryImpl{}
}

func (r *CandidateRepositoryImpl) ListByTask(db *gorm.DB, taskID uint, skip, limit int) ([]models.Candidate, error) {
	var candidates []models.Candidate
	err := db.Where("task_id = ?", taskID).
		Order("id").
		Offset(skip).Limit(limit).
		Find(&candidates).Error
	return candidates, err
}

func (r *CandidateRepositoryImpl) Create(db *gorm.DB, candidate *models.Candidate) error {
	return db.Create(candidate).Error
}

func (r *CandidateRepositoryImpl) CreateBatch(db *gorm.DB, candidates []models.Candidate) ([]models.Candidate, error) {
	err := db.Transaction(func(tx *gorm.DB) error {
		for i := range candidates {
			if err := tx.Create(&candidates[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return candidates, nil
}
