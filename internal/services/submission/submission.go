// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

// Package submission validates incoming decision logs and persists them.
package submission

import (
	"context"
	"fmt"

	"github.com/petervanpercson/buildcored/internal/handle"
	"github.com/petervanpercson/buildcored/internal/models"
	"github.com/petervanpercson/buildcored/internal/problems"
)

// Payload is the typed shape of a submit request. The body is decoded
// into this struct before any field is touched; no duck typing.
// AttestOriginal is a pointer so an explicit false is "present but
// failing attestation" rather than "missing". String values like
// "false" are not coerced.
type Payload struct {
	Email             string `json:"email"`
	ProblemID         int    `json:"problem_id,omitempty"`
	Visibility        string `json:"visibility,omitempty"`
	RoleTrack         string `json:"role_track,omitempty"`
	Seniority         string `json:"seniority,omitempty"`
	TimeBudget        string `json:"time_budget,omitempty"`
	FirstAction       string `json:"first_action"`
	WhyFirst          string `json:"why_first"`
	SecondAction      string `json:"second_action"`
	WhySecond         string `json:"why_second"`
	ThirdAction       string `json:"third_action"`
	SignalsDataFirst  string `json:"signals_data_first"`
	WontDo            string `json:"wont_do"`
	BiggestRisk       string `json:"biggest_risk"`
	VerifyAndRollback string `json:"verify_and_rollback"`
	WithMoreTime      string `json:"with_more_time"`
	AttestOriginal    *bool  `json:"attest_original"`
}

// ValidationError reports the first rule a payload broke, naming the
// offending field. The message text is part of the API contract.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// field returns the value of a named answer field, or the email.
func (p *Payload) field(name string) string {
	switch name {
	case "email":
		return p.Email
	case "first_action":
		return p.FirstAction
	case "why_first":
		return p.WhyFirst
	case "second_action":
		return p.SecondAction
	case "why_second":
		return p.WhySecond
	case "third_action":
		return p.ThirdAction
	case "signals_data_first":
		return p.SignalsDataFirst
	case "wont_do":
		return p.WontDo
	case "biggest_risk":
		return p.BiggestRisk
	case "verify_and_rollback":
		return p.VerifyAndRollback
	case "with_more_time":
		return p.WithMoreTime
	}
	return ""
}

// Validate applies the submission rules in order, first failure wins:
// presence of every required field, then attestation, then per-field
// length budgets. On success it returns a normalized record with
// defaults applied and the handle derived from the email. Email syntax
// is deliberately not checked here; that is client-side UX, not a
// server guarantee.
func Validate(p *Payload) (*models.DecisionLog, error) {
	for _, name := range problems.Required {
		if name == "attest_original" {
			// A literal false is present; only a missing key fails here.
			if p.AttestOriginal == nil {
				return nil, &ValidationError{Field: name, Message: fmt.Sprintf("Missing: %s", name)}
			}
			continue
		}
		if p.field(name) == "" {
			return nil, &ValidationError{Field: name, Message: fmt.Sprintf("Missing: %s", name)}
		}
	}

	// Attestation is a legal gate, not a completeness check.
	if !*p.AttestOriginal {
		return nil, &ValidationError{Field: "attest_original", Message: "Must attest original work"}
	}

	for _, name := range problems.AnswerFields {
		max := problems.Limits[name]
		if value := p.field(name); len([]rune(value)) > max {
			return nil, &ValidationError{Field: name, Message: fmt.Sprintf("%s exceeds %d chars", name, max)}
		}
	}

	problem := problems.Default()
	if p.ProblemID != 0 {
		found, ok := problems.ByID(p.ProblemID)
		if !ok {
			return nil, &ValidationError{Field: "problem_id", Message: fmt.Sprintf("Unknown problem: %d", p.ProblemID)}
		}
		problem = found
	}

	visibility := p.Visibility
	switch visibility {
	case "":
		visibility = models.VisibilityUnlisted
	case models.VisibilityPublic, models.VisibilityUnlisted, models.VisibilityPrivate:
	default:
		return nil, &ValidationError{Field: "visibility", Message: fmt.Sprintf("Invalid visibility: %s", visibility)}
	}

	return &models.DecisionLog{
		Email:             p.Email,
		Handle:            handle.Generate(p.Email),
		Visibility:        visibility,
		RoleTrack:         optional(p.RoleTrack),
		Seniority:         optional(p.Seniority),
		TimeBudget:        optional(p.TimeBudget),
		PromptID:          problem.PromptID(),
		PromptText:        problem.Prompt,
		FirstAction:       p.FirstAction,
		WhyFirst:          p.WhyFirst,
		SecondAction:      p.SecondAction,
		WhySecond:         p.WhySecond,
		ThirdAction:       p.ThirdAction,
		SignalsDataFirst:  p.SignalsDataFirst,
		WontDo:            p.WontDo,
		BiggestRisk:       p.BiggestRisk,
		VerifyAndRollback: p.VerifyAndRollback,
		WithMoreTime:      p.WithMoreTime,
		AttestOriginal:    true,
		Status:            models.StatusSubmitted,
	}, nil
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// Store is the persistence collaborator for submissions.
type Store interface {
	InsertDecisionLog(ctx context.Context, log *models.DecisionLog) error
}

// Service runs the submit pipeline: validate, derive the handle,
// persist. Validation failures never reach the store.
type Service struct {
	store Store
}

// NewService creates a submission service.
func NewService(store Store) *Service {
	return &Service{store: store}
}

// Submit validates the payload and persists the resulting decision log.
// It returns the engineer's handle on success. A store failure is fatal
// to the request.
func (s *Service) Submit(ctx context.Context, p *Payload) (string, error) {
	log, err := Validate(p)
	if err != nil {
		return "", err
	}

	if err := s.store.InsertDecisionLog(ctx, log); err != nil {
		return "", fmt.Errorf("insert decision log: %w", err)
	}

	return log.Handle, nil
}
