package services

import (
	"sort"
	"time"

	"jobdesk_backend/internal/models"
	"jobdesk_backend/internal/repositories"
	"jobdesk_backend/internal/services/dto"
	"jobdesk_backend/pkg/apperrors"
)

// CandidateService строит сводную воронку кандидатов работодателя.
// Кандидат, откликнувшийся на несколько вакансий, схлопывается
// в одну строку с наиболее продвинутой стадией.
type CandidateService interface {
	Aggregate(employerID string) (*dto.CandidateAggregateResponse, error)
}

type CandidateServiceImpl struct {
	appRepo repositories.ApplicationRepository
}

func NewCandidateService(appRepo repositories.ApplicationRepository) CandidateService {
	return &CandidateServiceImpl{appRepo: appRepo}
}

// candidateFold - аккумулятор свертки по одному кандидату
type candidateFold struct {
	firstSeen    int
	name         string
	bucket       models.PipelineBucket
	skills       []string
	skillSeen    map[string]bool
	jobs         map[string]bool
	lastActiveAt time.Time
}

func (s *CandidateServiceImpl) Aggregate(employerID string) (*dto.CandidateAggregateResponse, error) {
	rows, err := s.appRepo.AggregationRows(employerID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	folds := make(map[string]*candidateFold)
	order := make([]string, 0)

	for _, row := range rows {
		// Отозванные отклики в воронке не участвуют.
		// Кандидат, у которого все отклики отозваны, в сводку не попадает.
		bucket, ok := models.BucketForStatus(row.Status)
		if !ok {
			continue
		}

		fold, exists := folds[row.CandidateID]
		if !exists {
			fold = &candidateFold{
				firstSeen: len(order),
				name:      row.CandidateName,
				bucket:    bucket,
				skillSeen: make(map[string]bool),
				jobs:      make(map[string]bool),
			}
			folds[row.CandidateID] = fold
			order = append(order, row.CandidateID)
		}

		if fold.name == "" {
			fold.name = row.CandidateName
		}

		// Побеждает стадия с минимальным рангом (дальше по воронке)
		if models.BucketRank(bucket) < models.BucketRank(fold.bucket) {
			fold.bucket = bucket
		}

		for _, skill := range jsonStrings(row.Skills) {
			if !fold.skillSeen[skill] {
				fold.skillSeen[skill] = true
				fold.skills = append(fold.skills, skill)
			}
		}

		fold.jobs[row.JobID] = true

		activity := row.CreatedAt
		if row.NextInterviewAt != nil {
			activity = *row.NextInterviewAt
		}
		if activity.After(fold.lastActiveAt) {
			fold.lastActiveAt = activity
		}
	}

	candidates := make([]dto.CandidateAggregate, 0, len(order))
	for _, candidateID := range order {
		fold := folds[candidateID]
		skills := fold.skills
		if skills == nil {
			skills = []string{}
		}
		candidates = append(candidates, dto.CandidateAggregate{
			CandidateID:      candidateID,
			Name:             fold.name,
			Status:           fold.bucket,
			Skills:           skills,
			AppliedJobsCount: len(fold.jobs),
			LastActiveAt:     fold.lastActiveAt,
		})
	}

	// Свежая активность сверху; при равенстве порядок детерминирован
	// порядком первого появления кандидата.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].LastActiveAt.After(candidates[j].LastActiveAt)
	})

	return &dto.CandidateAggregateResponse{
		Candidates: candidates,
		Total:      len(candidates),
	}, nil
}
