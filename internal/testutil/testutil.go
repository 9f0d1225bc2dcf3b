// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

// Package testutil provides test helpers and fixtures.
package testutil

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github.com/vinovest/sqlx"

	"github.com/petervanpercson/buildcored/internal/database"
	"github.com/petervanpercson/buildcored/internal/handle"
	"github.com/petervanpercson/buildcored/internal/models"
	"github.com/petervanpercson/buildcored/internal/problems"
	"github.com/petervanpercson/buildcored/internal/repository"
)

// NewTestDB creates an in-memory SQLite database for tests, with all
// migrations applied. Returns both the database connection and the
// repository for convenience.
func NewTestDB(t *testing.T) (*sqlx.DB, *repository.Repository) {
	t.Helper()
	db, err := database.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db, repository.New(db)
}

// NewTestCompany registers a company and returns it, token included.
func NewTestCompany(t *testing.T, repo *repository.Repository, name string) *models.Company {
	t.Helper()
	company, err := repo.CreateCompany(context.Background(), name, strings.ToLower(name)+"@example.com")
	require.NoError(t, err)
	return company
}

// SeedDecisionLog persists a minimal valid decision log for the given
// email at the given time.
func SeedDecisionLog(t *testing.T, repo *repository.Repository, email string, createdAt time.Time) *models.DecisionLog {
	t.Helper()
	p := problems.Default()
	log := &models.DecisionLog{
		Email:             email,
		Handle:            handle.Generate(email),
		Visibility:        models.VisibilityUnlisted,
		PromptID:          p.PromptID(),
		PromptText:        p.Prompt,
		FirstAction:       "Read the incident timeline",
		WhyFirst:          "Context before action",
		SecondAction:      "Check the slow query log",
		WhySecond:         "Latency points at the database",
		ThirdAction:       "Add timing metrics",
		SignalsDataFirst:  "p99 latency per endpoint",
		WontDo:            "No blind rollbacks",
		BiggestRisk:       "Chasing a symptom",
		VerifyAndRollback: "Canary deploy, revert on regression",
		WithMoreTime:      "Load-test the fix",
		AttestOriginal:    true,
		Status:            models.StatusSubmitted,
		CreatedAt:         createdAt,
	}
	require.NoError(t, repo.InsertDecisionLog(context.Background(), log))
	return log
}

// SubmissionBody returns a complete, within-limits JSON request body for
// the submit endpoint. Callers mutate it to build invalid variants.
func SubmissionBody(email string) map[string]any {
	return map[string]any{
		"email":               email,
		"first_action":        "Read the incident timeline",
		"why_first":           "Context before action",
		"second_action":       "Check the slow query log",
		"why_second":          "Latency points at the database",
		"third_action":        "Add timing metrics",
		"signals_data_first":  "p99 latency per endpoint",
		"wont_do":             "No blind rollbacks",
		"biggest_risk":        "Chasing a symptom",
		"verify_and_rollback": "Canary deploy, revert on regression",
		"with_more_time":      "Load-test the fix",
		"attest_original":     true,
	}
}

// NewEchoContext creates an Echo context for handler tests.
func NewEchoContext(e *echo.Echo, method, path string, body io.Reader) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return c, rec
}
