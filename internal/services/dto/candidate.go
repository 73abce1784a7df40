package dto

import (
	"time"

	"jobdesk_backend/internal/models"
)

// CandidateAggregate - одна строка сводной воронки работодателя.
// Кандидат с несколькими откликами схлопывается в одну строку.
type CandidateAggregate struct {
	CandidateID      string                `json:"candidate_id"`
	Name             string                `json:"name"`
	Status           models.PipelineBucket `json:"status"`
	Skills           []string              `json:"skills"`
	AppliedJobsCount int                   `json:"applied_jobs_count"`
	LastActiveAt     time.Time             `json:"last_active_at"`
}

// CandidateAggregateResponse - сводка по всем кандидатам работодателя
type CandidateAggregateResponse struct {
	Candidates []CandidateAggregate `json:"candidates"`
	Total      int                  `json:"total"`
}
