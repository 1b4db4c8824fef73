package dto

import (
	"time"

	"talentscout_backend/internal/models"
)

// TaskRequest covers both create and update.
type TaskRequest struct {
	TaskName       string `json:"task_name" validate:"required"`
	JobDescription string `json:"job_description" validate:"required"`
}

type TaskResponse struct {
	ID             uint      `json:"id"`
	TaskName       string    `json:"task_name"`
	JobDescription string    `json:"job_description"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
	CandidateCount int64     `json:"candidate_count"`
}

func NewTaskResponse(task *models.Task, candidateCount int64) *TaskResponse {
	return &TaskResponse{
		ID:             task.ID,
		TaskName:       task.TaskName,
		JobDescription: task.JobDescription,
		CreatedAt:      task.CreatedAt,
		UpdatedAt:      task.UpdatedAt,
		CandidateCount: candidateCount,
	}
}

type CandidateCreate struct {
	Name           string `json:"name" validate:"required"`
	Gender         string `json:"gender"`
	Age            *int   `json:"age"`
	Contact        string `json:"contact"`
	Education      string `json:"education"`
	Experience     string `json:"experience"`
	AIScore        *int   `json:"ai_score"`
	SourcePlatform string `json:"source_platform" validate:"required"`
	ResumeText     string `json:"resume_text"`
}

type BatchCandidateCreate struct {
	Candidates []CandidateCreate `json:"candidates" validate:"required,min=1,dive"`
}

// CandidateListQuery bounds pagination: skip >= 0, 1 <= limit <= 100.
type CandidateListQuery struct {
	Skip  int `form:"skip" validate:"min=0"`
	Limit int `form:"limit,default=100" validate:"min=1,max=100"`
}

type CandidateResponse struct {
	ID             uint      `json:"id"`
	TaskID         uint      `json:"task_id"`
	Name           string    `json:"name"`
	Gender         string    `json:"gender,omitempty"`
	Age            *int      `json:"age"`
	Contact        string    `json:"contact,omitempty"`
	Education      string    `json:"education,omitempty"`
	Experience     string    `json:"experience,omitempty"`
	AIScore        *int      `json:"ai_score"`
	SourcePlatform string    `json:"source_platform"`
	ResumeText     string    `json:"resume_text,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

func NewCandidateResponse(c *models.Candidate) *CandidateResponse {
	return &CandidateResponse{
		ID:             c.ID,
		TaskID:         c.TaskID,
		Name:           c.Name,
		Gender:         c.Gender,
		Age:            c.Age,
		Contact:        c.Contact,
		Education:      c.Education,
		Experience:     c.Experience,
		AIScore:        c.AIScore,
		SourcePlatform: c.SourcePlatform,
		ResumeText:     c.ResumeText,
		CreatedAt:      c.CreatedAt,
	}
}

func (c *CandidateCreate) ToModel(taskID uint) models.Candidate {
	return models.Candidate{
		TaskID:         taskID,
		Name:           c.Name,
		Gender:         c.Gender,
		Age:            c.Age,
		Contact:        c.Contact,
		Education:      c.Education,
		Experience:     c.Experience,
		AIScore:        c.AIScore,
		SourcePlatform: c.SourcePlatform,
		ResumeText:     c.ResumeText,
	}
}
