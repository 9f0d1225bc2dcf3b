// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

// Package handlers contains the JSON HTTP handlers.
package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petervanpercson/buildcored/internal/repository"
	"github.com/petervanpercson/buildcored/internal/services/access"
	"github.com/petervanpercson/buildcored/internal/services/interview"
	"github.com/petervanpercson/buildcored/internal/services/submission"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	submissions *submission.Service
	gate        *access.Gate
	interviews  *interview.Service
	repo        *repository.Repository
}

// New creates a new Handlers instance.
func New(submissions *submission.Service, gate *access.Gate, interviews *interview.Service, repo *repository.Repository) *Handlers {
	return &Handlers{
		submissions: submissions,
		gate:        gate,
		interviews:  interviews,
		repo:        repo,
	}
}

// Health returns the health status.
func (h *Handlers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}

// errorBody is the uniform error response shape.
func errorBody(message string) map[string]string {
	return map[string]string{"error": message}
}
