package models

// SavedJob - закладка кандидата на вакансию.
// Инвариант: уникальна по паре (candidate_id, job_id); повторное
// сохранение - no-op, а не ошибка.
type SavedJob struct {
	BaseModel
	CandidateID string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_candidate_job" json:"candidate_id"`
	JobID       string `gorm:"type:uuid;not null;uniqueIndex:idx_saved_jobs_candidate_job" json:"job_id"`

	Job *Job `gorm:"foreignKey:JobID;constraint:OnDelete:CASCADE" json:"job,omitempty"`
}
