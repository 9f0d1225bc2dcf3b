// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petervanpercson/buildcored/internal/services/access"
)

type interviewRequest struct {
	Token  string `json:"token"`
	Handle string `json:"handle"`
}

// RequestInterview records that a company wants to talk to an engineer
// and notifies the operator inbox. Both fields are required up front;
// the token is resolved before anything is written.
func (h *Handlers) RequestInterview(c echo.Context) error {
	var req interviewRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("Invalid request body"))
	}

	if req.Token == "" || req.Handle == "" {
		return c.JSON(http.StatusBadRequest, errorBody("Missing required fields"))
	}

	err := h.interviews.Request(c.Request().Context(), req.Token, req.Handle)
	if err != nil {
		if errors.Is(err, access.ErrMissingToken) || errors.Is(err, access.ErrInvalidToken) {
			return c.JSON(http.StatusForbidden, errorBody("Invalid token"))
		}
		slog.Error("interview request failed", "handle", req.Handle, "error", err)
		return c.JSON(http.StatusInternalServerError, errorBody("Failed to send email"))
	}

	return c.JSON(http.StatusOK, map[string]bool{"success": true})
}
