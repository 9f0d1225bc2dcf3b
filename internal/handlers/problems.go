// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/petervanpercson/buildcored/internal/problems"
)

// ListProblems returns the full scenario catalog.
func (h *Handlers) ListProblems(c echo.Context) error {
	return c.JSON(http.StatusOK, problems.All())
}

// GetProblem returns a single scenario by id.
func (h *Handlers) GetProblem(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("Invalid problem id"))
	}

	problem, ok := problems.ByID(id)
	if !ok {
		return c.JSON(http.StatusNotFound, errorBody("Problem not found"))
	}
	return c.JSON(http.StatusOK, problem)
}
