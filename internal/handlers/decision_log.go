// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/petervanpercson/buildcored/internal/services/submission"
)

// SubmitDecisionLog accepts a decision-log submission and returns the
// engineer's handle. Validation errors name the offending field; store
// failures return a generic 500 with the detail kept server-side.
func (h *Handlers) SubmitDecisionLog(c echo.Context) error {
	var payload submission.Payload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("Invalid request body"))
	}

	handle, err := h.submissions.Submit(c.Request().Context(), &payload)
	if err != nil {
		var verr *submission.ValidationError
		if errors.As(err, &verr) {
			return c.JSON(http.StatusBadRequest, errorBody(verr.Message))
		}
		slog.Error("decision log submission failed", "error", err)
		return c.JSON(http.StatusInternalServerError, errorBody("Submission failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{"handle": handle})
}
