// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/petervanpercson/buildcored/internal/models"
)

// CompanyByToken resolves an access token to its company by exact match.
func (r *Repository) CompanyByToken(ctx context.Context, token string) (*models.Company, error) {
	var company models.Company
	err := r.db.GetContext(ctx, &company,
		`SELECT * FROM company_tokens WHERE token = ?`, token)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &company, nil
}

// CreateCompany registers a company and mints its access token. This is
// operator tooling; the request path only ever reads tokens.
func (r *Repository) CreateCompany(ctx context.Context, name, email string) (*models.Company, error) {
	company := &models.Company{
		ID:          uuid.NewString(),
		Token:       uuid.NewString(),
		CompanyName: name,
		Email:       email,
		CreatedAt:   time.Now().UTC(),
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO company_tokens (id, token, company_name, email, created_at) VALUES (?, ?, ?, ?, ?)`,
		company.ID, company.Token, company.CompanyName, company.Email, company.CreatedAt)
	if err != nil {
		return nil, err
	}
	return company, nil
}
