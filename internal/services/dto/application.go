package dto

import (
	"time"

	"jobdesk_backend/internal/models"
)

// --- Application Requests ---

type ApplyRequest struct {
	CandidateID string `json:"candidate_id" validate:"-"` // Устанавливается сервером
	JobID       string `json:"job_id" validate:"-"`       // Устанавливается из URL
	CoverLetter string `json:"cover_letter" validate:"omitempty,max=5000"`
	// Если резюме не прикреплено к запросу, берется из профиля кандидата
	ResumeURL string `json:"resume_url" validate:"-"`
}

// TransitionRequest - запрос смены статуса отклика работодателем
type TransitionRequest struct {
	Status          models.ApplicationStatus `json:"status" validate:"required,appstatus"` // Кастомное правило
	Step            *string                  `json:"step,omitempty" validate:"omitempty,max=200"`
	NextInterviewAt *time.Time               `json:"next_interview_at,omitempty"`
	Message         string                   `json:"message,omitempty" validate:"omitempty,max=2000"`
}

// --- Application Responses ---

type ApplicationResponse struct {
	ID              string                   `json:"id"`
	JobID           string                   `json:"job_id"`
	CandidateID     string                   `json:"candidate_id"`
	Status          models.ApplicationStatus `json:"status"`
	Step            string                   `json:"step,omitempty"`
	ResumeURL       string                   `json:"resume_url,omitempty"`
	CoverLetter     string                   `json:"cover_letter,omitempty"`
	NextInterviewAt *time.Time               `json:"next_interview_at,omitempty"`
	CreatedAt       time.Time                `json:"created_at"`
	UpdatedAt       time.Time                `json:"updated_at"`
	Job             *JobResponse             `json:"job,omitempty"`
}

// MyApplicationsResponse - список откликов кандидата со счетчиками по статусам
type MyApplicationsResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Stats        map[string]int64      `json:"stats"`
	Total        int64                 `json:"total"`
	Page         int                   `json:"page"`
	PageSize     int                   `json:"page_size"`
}

// TimelineEventResponse - одна запись хронологии отклика
type TimelineEventResponse struct {
	ID         string                   `json:"id"`
	Type       models.TimelineEventType `json:"type"`
	FromStatus models.ApplicationStatus `json:"from_status,omitempty"`
	ToStatus   models.ApplicationStatus `json:"to_status,omitempty"`
	Message    string                   `json:"message,omitempty"`
	ActorID    string                   `json:"actor_id,omitempty"`
	CreatedAt  time.Time                `json:"created_at"`
}
