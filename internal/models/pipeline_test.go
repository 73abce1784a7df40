package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeStatus(t *testing.T) {
	cases := map[ApplicationStatus]ApplicationStatus{
		"screening":                  ApplicationStatusShortlisted,
		"interview":                  ApplicationStatusInterviewScheduled,
		"offer":                      ApplicationStatusOffered,
		ApplicationStatusApplied:     ApplicationStatusApplied,
		ApplicationStatusHired:       ApplicationStatusHired,
		ApplicationStatus("garbage"): ApplicationStatus("garbage"),
	}

	for in, want := range cases {
		assert.Equal(t, want, NormalizeStatus(in), "input %q", in)
	}
}

func TestBucketForStatus(t *testing.T) {
	cases := map[ApplicationStatus]PipelineBucket{
		ApplicationStatusApplied:            BucketNew,
		ApplicationStatusShortlisted:        BucketReviewing,
		ApplicationStatusInterviewScheduled: BucketInterview,
		ApplicationStatusOffered:            BucketInterview,
		ApplicationStatusHired:              BucketHired,
		ApplicationStatusRejected:           BucketRejected,
		// Легаси-значения тоже находят свою стадию
		"screening": BucketReviewing,
		"interview": BucketInterview,
		"offer":     BucketInterview,
	}

	for status, want := range cases {
		bucket, ok := BucketForStatus(status)
		require.True(t, ok, "status %q", status)
		assert.Equal(t, want, bucket, "status %q", status)
	}
}

func TestBucketForStatus_WithdrawnHasNoBucket(t *testing.T) {
	_, ok := BucketForStatus(ApplicationStatusWithdrawn)
	assert.False(t, ok)
}

func TestBucketRank_HiredWins(t *testing.T) {
	// Меньший ранг = дальше по воронке
	assert.Less(t, BucketRank(BucketHired), BucketRank(BucketInterview))
	assert.Less(t, BucketRank(BucketInterview), BucketRank(BucketReviewing))
	assert.Less(t, BucketRank(BucketReviewing), BucketRank(BucketNew))
	assert.Less(t, BucketRank(BucketNew), BucketRank(BucketRejected))
}

func TestIsValidApplicationStatus(t *testing.T) {
	assert.True(t, IsValidApplicationStatus(ApplicationStatusWithdrawn))
	assert.False(t, IsValidApplicationStatus("screening"))
	assert.True(t, IsValidApplicationStatus(NormalizeStatus("screening")))
}
