package services

import (
	"talentscout_backend/internal/models"
	"talentscout_backend/internal/repositories"
	"talentscout_backend/internal/services/dto"
	"talentscout_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// TaskService is owner-scoped end to end: every operation takes the acting
// user's ID and treats foreign tasks as missing.
type TaskService interface {
	List(db *gorm.DB, userID uint) ([]dto.TaskResponse, error)
	Create(db *gorm.DB, userID uint, req *dto.TaskRequest) (*dto.TaskResponse, error)
	Get(db *gorm.DB, userID, taskID uint) (*dto.TaskResponse, error)
	Update(db *gorm.DB, userID, taskID uint, req *dto.TaskRequest) (*dto.TaskResponse, error)
	Delete(db *gorm.DB, userID, taskID uint) error
	ListCandidates(db *gorm.DB, userID, taskID uint, skip, limit int) ([]dto.CandidateResponse, error)
	AddCandidate(db *gorm.DB, userID, taskID uint, req *dto.CandidateCreate) (*dto.CandidateResponse, error)
	AddCandidatesBatch(db *gorm.DB, userID, taskID uint, req *dto.BatchCandidateCreate) ([]dto.CandidateResponse, error)
}

type TaskServiceImpl struct {
	taskRepo      repositories.TaskRepository
	candidateRepo repositories.CandidateRepository
}

func NewTaskService(taskRepo repositories.TaskRepository, candidateRepo repositories.CandidateRepository) TaskService {
	return &TaskServiceImpl{
		taskRepo:      taskRepo,
		candidateRepo: candidateRepo,
	}
}

func (s *TaskServiceImpl) List(db *gorm.DB, userID uint) ([]dto.TaskResponse, error) {
	tasks, err := s.taskRepo.ListByOwner(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.TaskResponse, 0, len(tasks))
	for i := range tasks {
		count, err := s.taskRepo.CountCandidates(db, tasks[i].ID)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		result = append(result, *dto.NewTaskResponse(&tasks[i], count))
	}
	return result, nil
}

func (s *TaskServiceImpl) Create(db *gorm.DB, userID uint, req *dto.TaskRequest) (*dto.TaskResponse, error) {
	task := &models.Task{
		UserID:         userID,
		TaskName:       req.TaskName,
		JobDescription: req.JobDescription,
	}
	if err := s.taskRepo.Create(db, task); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewTaskResponse(task, 0), nil
}

func (s *TaskServiceImpl) Get(db *gorm.DB, userID, taskID uint) (*dto.TaskResponse, error) {
	task, err := s.findOwnedTask(db, userID, taskID)
	if err != nil {
		return nil, err
	}

	count, err := s.taskRepo.CountCandidates(db, task.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewTaskResponse(task, count), nil
}

func (s *TaskServiceImpl) Update(db *gorm.DB, userID, taskID uint, req *dto.TaskRequest) (*dto.TaskResponse, error) {
	task, err := s.findOwnedTask(db, userID, taskID)
	if err != nil {
		return nil, err
	}

	task.TaskName = req.TaskName
	task.JobDescription = req.JobDescription
	if err := s.taskRepo.Update(db, task); err != nil {
		return nil, apperrors.InternalError(err)
	}

	count, err := s.taskRepo.CountCandidates(db, task.ID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewTaskResponse(task, count), nil
}

func (s *TaskServiceImpl) Delete(db *gorm.DB, userID, taskID uint) error {
	if _, err := s.findOwnedTask(db, userID, taskID); err != nil {
		return err
	}

	if err := s.taskRepo.Delete(db, taskID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *TaskServiceImpl) ListCandidates(db *gorm.DB, userID, taskID uint, skip, limit int) ([]dto.CandidateResponse, error) {
	if _, err := s.findOwnedTask(db, userID, taskID); err != nil {
		return nil, err
	}

	candidates, err := s.candidateRepo.ListByTask(db, taskID, skip, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.CandidateResponse, 0, len(candidates))
	for i := range candidates {
		result = append(result, *dto.NewCandidateResponse(&candidates[i]))
	}
	return result, nil
}

func (s *TaskServiceImpl) AddCandidate(db *gorm.DB, userID, taskID uint, req *dto.CandidateCreate) (*dto.CandidateResponse, error) {
	if _, err := s.findOwnedTask(db, userID, taskID); err != nil {
		return nil, err
	}

	candidate := req.ToModel(taskID)
	if err := s.candidateRepo.Create(db, &candidate); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewCandidateResponse(&candidate), nil
}

func (s *TaskServiceImpl) AddCandidatesBatch(db *gorm.DB, userID, taskID uint, req *dto.BatchCandidateCreate) ([]dto.CandidateResponse, error) {
	if _, err := s.findOwnedTask(db, userID, taskID); err != nil {
		return nil, err
	}

	candidates := make([]models.Candidate, 0, len(req.Candidates))
	for i := range req.Candidates {
		candidates = append(candidates, req.Candidates[i].ToModel(taskID))
	}

	created, err := s.candidateRepo.CreateBatch(db, candidates)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	result := make([]dto.CandidateResponse, 0, len(created))
	for i := range created {
		result = append(result, *dto.NewCandidateResponse(&created[i]))
	}
	return result, nil
}

func (s *TaskServiceImpl) findOwnedTask(db *gorm.DB, userID, taskID uint) (*models.Task, error) {
	task, err := s.taskRepo.FindByIDAndOwner(db, taskID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrTaskNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, apperrors.InternalError(err)
	}
	return task, nil
}
