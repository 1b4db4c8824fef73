package repositories

import (
	"errors"

	"talentscout_backend/internal/models"

	"gorm.io/gorm"
)

// ErrTaskNotFound is returned both when the row is missing and when it is
// owned by someone else. Repositories never reveal which.
var ErrTaskNotFound = errors.New("task not found")

type TaskRepository interface {
	FindByIDAndOwner(db *gorm.DB, taskID, userID uint) (*models.Task, error)
	ListByOwner(db *gorm.DB, userID uint) ([]models.Task, error)
	Create(db *gorm.DB, task *models.Task) error
	Update(db *gorm.DB, task *models.Task) error
	Delete(db *gorm.DB, taskID uint) error
	CountCandidates(db *gorm.DB, taskID uint) (int64, error)
}

type TaskRepositoryImpl struct{}

func NewTaskRepository() TaskRepository {
	return &TaskRepositoryImpl{}
}

func (r *TaskRepositoryImpl) FindByIDAndOwner(db *gorm.DB, taskID, userID uint) (*models.Task, error) {
	var task models.Task
	err := db.Where("id = ? AND user_id = ?", taskID, userID).First(&task).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTaskNotFound
		}
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepositoryImpl) ListByOwner(db *gorm.DB, userID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := db.Where("user_id = ?", userID).Order("created_at").Find(&tasks).Error
	return tasks, err
}

func (r *TaskRepositoryImpl) Create(db *gorm.DB, task *models.Task) error {
	return db.Create(task).Error
}

func (r *TaskRepositoryImpl) Update(db *gorm.DB, task *models.Task) error {
	result := db.Model(task).Updates(map[string]interface{}{
		"task_name":       task.TaskName,
		"job_description": task.JobDescription,
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// Delete removes the task and all its candidates in one transaction.
func (r *TaskRepositoryImpl) Delete(db *gorm.DB, taskID uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("task_id = ?", taskID).Delete(&models.Candidate{}).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", taskID).Delete(&models.Task{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrTaskNotFound
		}
		return nil
	})
}

func (r *TaskRepositoryImpl) CountCandidates(db *gorm.DB, taskID uint) (int64, error) {
	var count int64
	err := db.Model(&models.Candidate{}).Where("task_id = ?", taskID).Count(&count).Error
	return count, err
}
