package models

// PipelineBucket - одна из пяти грубых стадий воронки,
// используется для агрегации кандидатов между вакансиями.
type PipelineBucket string

const (
	BucketNew       PipelineBucket = "new"
	BucketReviewing PipelineBucket = "reviewing"
	BucketInterview PipelineBucket = "interview"
	BucketHired     PipelineBucket = "hired"
	BucketRejected  PipelineBucket = "rejected"
)

// bucketRanks - фиксированный приоритет стадий: меньше = дальше по воронке.
// При нескольких откликах одного кандидата побеждает стадия с минимальным рангом.
var bucketRanks = map[PipelineBucket]int{
	BucketHired:     0,
	BucketInterview: 1,
	BucketReviewing: 2,
	BucketNew:       3,
	BucketRejected:  4,
}

// BucketRank возвращает ранг стадии
func BucketRank(b PipelineBucket) int {
	return bucketRanks[b]
}

// BucketForStatus отображает статус отклика на стадию воронки.
// Статус предварительно приводится к каноническому словарю.
// Для withdrawn стадии нет: такой отклик не участвует в агрегации.
func BucketForStatus(s ApplicationStatus) (PipelineBucket, bool) {
	switch NormalizeStatus(s) {
	case ApplicationStatusApplied:
		return BucketNew, true
	case ApplicationStatusShortlisted:
		return BucketReviewing, true
	case ApplicationStatusInterviewScheduled, ApplicationStatusOffered:
		return BucketInterview, true
	case ApplicationStatusHired:
		return BucketHired, true
	case ApplicationStatusRejected:
		return BucketRejected, true
	}
	return "", false
}
