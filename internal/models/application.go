package models

import "time"

// Application - отклик кандидата на вакансию.
// Инвариант: на пару (job_id, candidate_id) существует не более одной строки;
// отозванный отклик реактивируется на месте, а не дублируется.
// Уникальность обеспечивается составным индексом на уровне хранилища,
// а не проверкой read-then-write в коде.
type Application struct {
	BaseModel
	JobID       string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_candidate" json:"job_id"`
	CandidateID string `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_candidate" json:"candidate_id"`

	Status          ApplicationStatus `gorm:"type:varchar(32);not null;default:'applied'" json:"status"`
	Step            string            `json:"step"`
	ResumeURL       string            `json:"resume_url"`
	CoverLetter     string            `json:"cover_letter"`
	NextInterviewAt *time.Time        `json:"next_interview_at,omitempty"`

	// Relations
	Job *Job `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
}

// IsActive: активный отклик - любой, кроме withdrawn
func (a *Application) IsActive() bool {
	return a.Status != ApplicationStatusWithdrawn
}
