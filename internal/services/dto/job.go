package dto

import (
	"time"

	"jobdesk_backend/internal/models"
)

// --- Job Requests ---

type CreateJobRequest struct {
	EmployerID  string   `json:"employer_id" validate:"-"` // Устанавливается сервером
	Title       string   `json:"title" validate:"required,min=3,max=150"`
	Description string   `json:"description" validate:"omitempty,max=10000"`
	Location    string   `json:"location" validate:"omitempty,max=100"`
	Tags        []string `json:"tags" validate:"omitempty,max=20,dive,min=1,max=50"`
}

type UpdateJobRequest struct {
	Title       *string  `json:"title,omitempty" validate:"omitempty,min=3,max=150"`
	Description *string  `json:"description,omitempty" validate:"omitempty,max=10000"`
	Location    *string  `json:"location,omitempty" validate:"omitempty,max=100"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=20,dive,min=1,max=50"`
}

type UpdateJobStatusRequest struct {
	Status models.JobStatus `json:"status" validate:"required,jobstatus"` // Кастомное правило
}

// BrowseJobsRequest - фильтры публичного поиска вакансий
type BrowseJobsRequest struct {
	Title    string `form:"title" validate:"omitempty,max=150"`
	Location string `form:"location" validate:"omitempty,max=100"`
	Page     int    `form:"page" validate:"omitempty,min=1"`
	PageSize int    `form:"page_size" validate:"omitempty,min=1,max=100"`
}

// --- Job Responses ---

type JobResponse struct {
	ID          string           `json:"id"`
	EmployerID  string           `json:"employer_id"`
	Title       string           `json:"title"`
	Description string           `json:"description,omitempty"`
	Location    string           `json:"location,omitempty"`
	Tags        []string         `json:"tags"`
	Status      models.JobStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

type JobListResponse struct {
	Jobs     []JobResponse `json:"jobs"`
	Total    int64         `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

// SavedJobResponse - сохраненная вакансия кандидата
type SavedJobResponse struct {
	JobID   string       `json:"job_id"`
	SavedAt time.Time    `json:"saved_at"`
	Job     *JobResponse `json:"job,omitempty"`
}
