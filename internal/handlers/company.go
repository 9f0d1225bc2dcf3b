// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petervanpercson/buildcored/internal/models"
	"github.com/petervanpercson/buildcored/internal/services/access"
)

type companyViewRequest struct {
	Token string `json:"token"`
}

type companyViewResponse struct {
	Company     string               `json:"company"`
	Submissions []models.DecisionLog `json:"submissions"`
}

// CompanyView lists browsable submissions for a token holder, newest
// first. Submission emails are redacted by the model's JSON shape; the
// company only ever sees handles.
func (h *Handlers) CompanyView(c echo.Context) error {
	var req companyViewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("Invalid request body"))
	}

	company, err := h.gate.Resolve(c.Request().Context(), req.Token)
	if err != nil {
		if errors.Is(err, access.ErrMissingToken) {
			return c.JSON(http.StatusUnauthorized, errorBody("Token required"))
		}
		return c.JSON(http.StatusForbidden, errorBody("Invalid or expired token"))
	}

	submissions, err := h.repo.ListDecisionLogs(c.Request().Context())
	if err != nil {
		slog.Error("failed to list decision logs", "company", company.CompanyName, "error", err)
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to fetch submissions"))
	}

	if submissions == nil {
		submissions = []models.DecisionLog{}
	}

	return c.JSON(http.StatusOK, companyViewResponse{
		Company:     company.CompanyName,
		Submissions: submissions,
	})
}
