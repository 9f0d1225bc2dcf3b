// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

// Package interview handles a company's request to talk to an engineer.
package interview

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/petervanpercson/buildcored/internal/models"
)

// Resolver authenticates a company token.
type Resolver interface {
	Resolve(ctx context.Context, token string) (*models.Company, error)
}

// Store persists interview requests.
type Store interface {
	InsertInterviewRequest(ctx context.Context, req *models.InterviewRequest) error
}

// Notifier delivers the interview request to the operator inbox.
type Notifier interface {
	SendInterviewRequest(ctx context.Context, company *models.Company, engineerHandle string) error
}

// Service coordinates the interview-request flow: authenticate, record,
// notify. The engineer's email never flows through here; the operator
// makes the introduction out of band.
type Service struct {
	gate     Resolver
	store    Store
	notifier Notifier
}

// NewService creates an interview request service.
func NewService(gate Resolver, store Store, notifier Notifier) *Service {
	return &Service{gate: gate, store: store, notifier: notifier}
}

// Request resolves the token, records the request, and notifies the
// operator. The token is resolved before anything is written. A failed
// insert is logged and the notification still goes out; a failed
// notification fails the whole operation.
func (s *Service) Request(ctx context.Context, token, engineerHandle string) error {
	company, err := s.gate.Resolve(ctx, token)
	if err != nil {
		return err
	}

	req := &models.InterviewRequest{
		CompanyToken:   token,
		EngineerHandle: engineerHandle,
	}
	if err := s.store.InsertInterviewRequest(ctx, req); err != nil {
		slog.Error("failed to record interview request",
			"company", company.CompanyName,
			"handle", engineerHandle,
			"error", err,
		)
	}

	if err := s.notifier.SendInterviewRequest(ctx, company, engineerHandle); err != nil {
		return fmt.Errorf("send interview notification: %w", err)
	}

	return nil
}
