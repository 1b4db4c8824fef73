package models

import "time"

// Task is a job posting owned by a single user.
type Task struct {
	BaseModel
	UserID         uint   `gorm:"not null;index"`
	TaskName       string `gorm:"not null"`
	JobDescription string `gorm:"type:text"`

	// Relations
	Candidates []Candidate `gorm:"foreignKey:TaskID"`
}

// Candidate never exists without its parent task.
type Candidate struct {
	ID             uint   `gorm:"primaryKey"`
	TaskID         uint   `gorm:"not null;index"`
	Name           string `gorm:"not null"`
	Gender         string
	Age            *int
	Contact        string
	Education      string `gorm:"type:text"`
	Experience     string `gorm:"type:text"`
	AIScore        *int
	SourcePlatform string `gorm:"not null"`
	ResumeText     string `gorm:"type:text"`
	CreatedAt      time.Time
}
