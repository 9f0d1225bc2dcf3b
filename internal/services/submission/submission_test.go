// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

package submission_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petervanpercson/buildcored/internal/models"
	"github.com/petervanpercson/buildcored/internal/services/submission"
)

func boolPtr(b bool) *bool { return &b }

func validPayload() *submission.Payload {
	return &submission.Payload{
		Email:             "engineer@example.com",
		FirstAction:       "Read the incident timeline",
		WhyFirst:          "Context before action",
		SecondAction:      "Check the slow query log",
		WhySecond:         "Latency points at the database",
		ThirdAction:       "Add timing metrics",
		SignalsDataFirst:  "p99 latency per endpoint",
		WontDo:            "No blind rollbacks",
		BiggestRisk:       "Chasing a symptom",
		VerifyAndRollback: "Canary deploy, revert on regression",
		WithMoreTime:      "Load-test the fix",
		AttestOriginal:    boolPtr(true),
	}
}

func TestValidate_Success(t *testing.T) {
	log, err := submission.Validate(validPayload())

	require.NoError(t, err)
	assert.Equal(t, "Sharded Hawk #5354", log.Handle)
	assert.Equal(t, models.VisibilityUnlisted, log.Visibility)
	assert.Equal(t, models.StatusSubmitted, log.Status)
	assert.Equal(t, "problem-1", log.PromptID)
	assert.NotEmpty(t, log.PromptText)
	assert.Nil(t, log.RoleTrack)
	assert.Nil(t, log.Seniority)
	assert.Nil(t, log.TimeBudget)
	assert.True(t, log.AttestOriginal)
}

func TestValidate_OptionalMetadataKept(t *testing.T) {
	p := validPayload()
	p.Visibility = models.VisibilityPublic
	p.RoleTrack = "backend"
	p.Seniority = "senior"
	p.TimeBudget = "45m"

	log, err := submission.Validate(p)

	require.NoError(t, err)
	assert.Equal(t, models.VisibilityPublic, log.Visibility)
	require.NotNil(t, log.RoleTrack)
	assert.Equal(t, "backend", *log.RoleTrack)
	require.NotNil(t, log.Seniority)
	assert.Equal(t, "senior", *log.Seniority)
	require.NotNil(t, log.TimeBudget)
	assert.Equal(t, "45m", *log.TimeBudget)
}

func TestValidate_MissingField(t *testing.T) {
	tests := []struct {
		field  string
		mutate func(*submission.Payload)
	}{
		{"email", func(p *submission.Payload) { p.Email = "" }},
		{"first_action", func(p *submission.Payload) { p.FirstAction = "" }},
		{"wont_do", func(p *submission.Payload) { p.WontDo = "" }},
		{"with_more_time", func(p *submission.Payload) { p.WithMoreTime = "" }},
		{"attest_original", func(p *submission.Payload) { p.AttestOriginal = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			p := validPayload()
			tt.mutate(p)

			_, err := submission.Validate(p)

			var verr *submission.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
			assert.Equal(t, "Missing: "+tt.field, verr.Message)
		})
	}
}

func TestValidate_FirstMissingFieldReported(t *testing.T) {
	p := validPayload()
	p.Email = ""
	p.WontDo = ""

	_, err := submission.Validate(p)

	var verr *submission.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "email", verr.Field)
}

func TestValidate_AttestationRequired(t *testing.T) {
	p := validPayload()
	p.AttestOriginal = boolPtr(false)

	_, err := submission.Validate(p)

	var verr *submission.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "attest_original", verr.Field)
	assert.Equal(t, "Must attest original work", verr.Message)
}

func TestValidate_LengthBoundaries(t *testing.T) {
	// Exactly at the limit passes.
	p := validPayload()
	p.WontDo = strings.Repeat("x", 450)
	_, err := submission.Validate(p)
	require.NoError(t, err)

	// One character over fails, naming field and limit.
	p = validPayload()
	p.WontDo = strings.Repeat("x", 451)
	_, err = submission.Validate(p)

	var verr *submission.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "wont_do", verr.Field)
	assert.Equal(t, "wont_do exceeds 450 chars", verr.Message)
}

func TestValidate_LimitsPerField(t *testing.T) {
	tests := []struct {
		field string
		limit int
	}{
		{"first_action", 280},
		{"biggest_risk", 350},
		{"verify_and_rollback", 350},
	}

	for _, tt := range tests {
		t.Run(tt.field, func(t *testing.T) {
			p := validPayload()
			over := strings.Repeat("x", tt.limit+1)
			switch tt.field {
			case "first_action":
				p.FirstAction = over
			case "biggest_risk":
				p.BiggestRisk = over
			case "verify_and_rollback":
				p.VerifyAndRollback = over
			}

			_, err := submission.Validate(p)

			var verr *submission.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidate_UnknownProblem(t *testing.T) {
	p := validPayload()
	p.ProblemID = 42

	_, err := submission.Validate(p)

	var verr *submission.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "problem_id", verr.Field)
}

func TestValidate_KnownProblemSelected(t *testing.T) {
	p := validPayload()
	p.ProblemID = 3

	log, err := submission.Validate(p)

	require.NoError(t, err)
	assert.Equal(t, "problem-3", log.PromptID)
}

func TestValidate_InvalidVisibility(t *testing.T) {
	p := validPayload()
	p.Visibility = "everyone"

	_, err := submission.Validate(p)

	var verr *submission.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "visibility", verr.Field)
}

// countingStore records insert calls and can be told to fail.
type countingStore struct {
	inserts int
	err     error
}

func (s *countingStore) InsertDecisionLog(ctx context.Context, log *models.DecisionLog) error {
	s.inserts++
	return s.err
}

func TestSubmit_Success(t *testing.T) {
	store := &countingStore{}
	svc := submission.NewService(store)

	h, err := svc.Submit(context.Background(), validPayload())

	require.NoError(t, err)
	assert.Equal(t, "Sharded Hawk #5354", h)
	assert.Equal(t, 1, store.inserts)
}

func TestSubmit_InvalidPayloadNeverHitsStore(t *testing.T) {
	store := &countingStore{}
	svc := submission.NewService(store)

	p := validPayload()
	p.AttestOriginal = boolPtr(false)

	_, err := svc.Submit(context.Background(), p)

	require.Error(t, err)
	assert.Equal(t, 0, store.inserts)
}

func TestSubmit_StoreFailureIsFatal(t *testing.T) {
	store := &countingStore{err: errors.New("disk full")}
	svc := submission.NewService(store)

	_, err := svc.Submit(context.Background(), validPayload())

	require.Error(t, err)
	var verr *submission.ValidationError
	assert.False(t, errors.As(err, &verr))
}
