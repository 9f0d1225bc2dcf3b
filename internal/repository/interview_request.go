// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"github.com/petervanpercson/buildcored/internal/models"
)

// InsertInterviewRequest appends an interview request. There is no
// uniqueness constraint; a company may request the same handle twice.
func (r *Repository) InsertInterviewRequest(ctx context.Context, req *models.InterviewRequest) error {
	if req.CreatedAt.IsZero() {
		req.CreatedAt = time.Now().UTC()
	}

	res, err := r.db.ExecContext(ctx,
		`INSERT INTO interview_requests (company_token, engineer_handle, created_at) VALUES (?, ?, ?)`,
		req.CompanyToken, req.EngineerHandle, req.CreatedAt)
	if err != nil {
		return err
	}
	if id, err := res.LastInsertId(); err == nil {
		req.ID = id
	}
	return nil
}

// ListInterviewRequests returns all requests, newest first.
func (r *Repository) ListInterviewRequests(ctx context.Context) ([]models.InterviewRequest, error) {
	var reqs []models.InterviewRequest
	err := r.db.SelectContext(ctx, &reqs,
		`SELECT * FROM interview_requests ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	return reqs, nil
}
