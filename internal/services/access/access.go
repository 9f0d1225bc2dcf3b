// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

// Package access resolves opaque company tokens.
package access

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/petervanpercson/buildcored/internal/models"
	"github.com/petervanpercson/buildcored/internal/repository"
)

// ErrMissingToken means no token was supplied at all.
var ErrMissingToken = errors.New("token required")

// ErrInvalidToken covers unknown tokens and lookup failures alike, so
// callers cannot probe which tokens exist.
var ErrInvalidToken = errors.New("invalid or expired token")

// Store is the token lookup collaborator.
type Store interface {
	CompanyByToken(ctx context.Context, token string) (*models.Company, error)
}

// Gate resolves bearer tokens to companies. Tokens have no expiry; any
// token in the store is valid indefinitely.
type Gate struct {
	store Store
}

// NewGate creates a company access gate.
func NewGate(store Store) *Gate {
	return &Gate{store: store}
}

// Resolve maps a token to its company. An empty token is rejected
// before any store lookup.
func (g *Gate) Resolve(ctx context.Context, token string) (*models.Company, error) {
	if strings.TrimSpace(token) == "" {
		return nil, ErrMissingToken
	}

	company, err := g.store.CompanyByToken(ctx, token)
	if err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			slog.Error("company token lookup failed", "error", err)
		}
		return nil, ErrInvalidToken
	}
	return company, nil
}
