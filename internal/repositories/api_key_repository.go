package repositories

import (
	"errors"
	"time"

	"talentscout_backend/internal/models"

	"gorm.io/gorm"
)

var ErrAPIKeyNotFound = errors.New("api key not found")

type APIKeyRepository interface {
	// FindValidByUser returns the newest key with valid_until still in the
	// future. Expired rows stay in place and are simply skipped.
	FindValidByUser(db *gorm.DB, userID uint, now time.Time) (*models.ApiKey, error)
	Create(db *gorm.DB, key *models.ApiKey) error
}

type APIKeyRepositoryImpl struct{}

func NewAPIKeyRepository() APIKeyRepository {
	return &APIKeyRepositoryImpl{}
}

func (r *APIKeyRepositoryImpl) FindValidByUser(db *gorm.DB, userID uint, now time.Time) (*models.ApiKey, error) {
	var key models.ApiKey
	err := db.Where("user_id = ? AND valid_until > ?", userID, now).
		Order("valid_until DESC").
		First(&key).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAPIKeyNotFound
		}
		return nil, err
	}
	return &key, nil
}

func (r *APIKeyRepositoryImpl) Create(db *gorm.DB, key *models.ApiKey) error {
	return db.Create(key).Error
}
