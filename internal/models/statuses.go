package models

type UserRole string
type JobStatus string
type ApplicationStatus string
type TimelineEventType string

const (
	UserRoleCandidate UserRole = "candidate"
	UserRoleEmployer  UserRole = "employer"

	JobStatusDraft  JobStatus = "draft"
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"

	// Канонический словарь статусов отклика.
	ApplicationStatusApplied            ApplicationStatus = "applied"
	ApplicationStatusShortlisted        ApplicationStatus = "shortlisted"
	ApplicationStatusInterviewScheduled ApplicationStatus = "interview_scheduled"
	ApplicationStatusOffered            ApplicationStatus = "offered"
	ApplicationStatusHired              ApplicationStatus = "hired"
	ApplicationStatusRejected           ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn          ApplicationStatus = "withdrawn"

	TimelineEventStatusChanged      TimelineEventType = "status_changed"
	TimelineEventInterviewScheduled TimelineEventType = "interview_scheduled"
	TimelineEventNote               TimelineEventType = "note"
)

// Шаги (человекочитаемый под-статус), которые выставляет DedupGuard
const (
	StepApplicationReceived    = "Application received"
	StepApplicationResubmitted = "Application re-submitted"
	StepApplicationWithdrawn   = "Application withdrawn"
)

var canonicalStatuses = map[ApplicationStatus]bool{
	ApplicationStatusApplied:            true,
	ApplicationStatusShortlisted:        true,
	ApplicationStatusInterviewScheduled: true,
	ApplicationStatusOffered:            true,
	ApplicationStatusHired:              true,
	ApplicationStatusRejected:           true,
	ApplicationStatusWithdrawn:          true,
}

// IsValidApplicationStatus сообщает, входит ли статус в канонический словарь
func IsValidApplicationStatus(s ApplicationStatus) bool {
	return canonicalStatuses[s]
}

// legacyStatuses - словарь старой схемы хранения
// (applied, screening, interview, offer, rejected, hired).
// Строки с такими значениями могли остаться от предыдущей системы,
// на границе они приводятся к каноническому словарю.
var legacyStatuses = map[ApplicationStatus]ApplicationStatus{
	"screening": ApplicationStatusShortlisted,
	"interview": ApplicationStatusInterviewScheduled,
	"offer":     ApplicationStatusOffered,
}

// NormalizeStatus приводит легаси-значение к каноническому.
// Канонические значения проходят без изменений.
func NormalizeStatus(s ApplicationStatus) ApplicationStatus {
	if mapped, ok := legacyStatuses[s]; ok {
		return mapped
	}
	return s
}

func IsValidJobStatus(s JobStatus) bool {
	switch s {
	case JobStatusDraft, JobStatusOpen, JobStatusClosed:
		return true
	}
	return false
}

func IsValidUserRole(r UserRole) bool {
	return r == UserRoleCandidate || r == UserRoleEmployer
}
