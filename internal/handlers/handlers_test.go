// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petervanpercson/buildcored/internal/handlers"
	"github.com/petervanpercson/buildcored/internal/models"
	"github.com/petervanpercson/buildcored/internal/repository"
	"github.com/petervanpercson/buildcored/internal/services/access"
	"github.com/petervanpercson/buildcored/internal/services/interview"
	"github.com/petervanpercson/buildcored/internal/services/submission"
	"github.com/petervanpercson/buildcored/internal/testutil"
)

var handleFormat = regexp.MustCompile(`^[A-Za-z]+ [A-Za-z]+ #\d{4}$`)

// fakeNotifier satisfies interview.Notifier and records sends.
type fakeNotifier struct {
	sends int
	err   error
}

func (n *fakeNotifier) SendInterviewRequest(ctx context.Context, company *models.Company, engineerHandle string) error {
	n.sends++
	return n.err
}

func newTestHandlers(t *testing.T) (*handlers.Handlers, *repository.Repository, *fakeNotifier) {
	t.Helper()
	_, repo := testutil.NewTestDB(t)

	gate := access.NewGate(repo)
	notifier := &fakeNotifier{}
	h := handlers.New(
		submission.NewService(repo),
		gate,
		interview.NewService(gate, repo, notifier),
		repo,
	)
	return h, repo, notifier
}

func jsonBody(t *testing.T, v any) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

func TestHealth(t *testing.T) {
	h, _, _ := newTestHandlers(t)

	e := echo.New()
	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/health", nil)

	require.NoError(t, h.Health(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestSubmitDecisionLog(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	e := echo.New()

	body := testutil.SubmissionBody("a@x.com")
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/submit-decision-log", jsonBody(t, body))

	require.NoError(t, h.SubmitDecisionLog(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Regexp(t, handleFormat, resp["handle"])
	assert.Equal(t, "Replicated Moose #8839", resp["handle"])

	count, err := repo.CountDecisionLogs(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func TestSubmitDecisionLog_ResubmitSameHandleNewRecord(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	e := echo.New()

	var handles []string
	for range 2 {
		c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/submit-decision-log",
			jsonBody(t, testutil.SubmissionBody("a@x.com")))
		require.NoError(t, h.SubmitDecisionLog(c))
		require.Equal(t, http.StatusOK, rec.Code)

		var resp map[string]string
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		handles = append(handles, resp["handle"])
	}

	assert.Equal(t, handles[0], handles[1])

	logs, err := repo.ListDecisionLogs(context.Background())
	require.NoError(t, err)
	require.Len(t, logs, 2)
	assert.NotEqual(t, logs[0].ID, logs[1].ID)
}

func TestSubmitDecisionLog_MissingField(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	e := echo.New()

	body := testutil.SubmissionBody("a@x.com")
	delete(body, "biggest_risk")
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/submit-decision-log", jsonBody(t, body))

	require.NoError(t, h.SubmitDecisionLog(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Missing: biggest_risk")

	count, err := repo.CountDecisionLogs(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}

func TestSubmitDecisionLog_AttestationFalse(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	e := echo.New()

	body := testutil.SubmissionBody("a@x.com")
	body["attest_original"] = false
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/submit-decision-log", jsonBody(t, body))

	require.NoError(t, h.SubmitDecisionLog(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Must attest original work")
}

func TestSubmitDecisionLog_FieldOverLimit(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	e := echo.New()

	body := testutil.SubmissionBody("a@x.com")
	body["first_action"] = strings.Repeat("x", 281)
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/submit-decision-log", jsonBody(t, body))

	require.NoError(t, h.SubmitDecisionLog(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "first_action exceeds 280 chars")
}

func TestSubmitDecisionLog_MalformedBody(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	e := echo.New()

	// A string "false" is not coerced to a boolean; the typed parse
	// rejects the body outright.
	body := strings.NewReader(`{"email":"a@x.com","attest_original":"false"}`)
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/submit-decision-log", body)

	require.NoError(t, h.SubmitDecisionLog(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCompanyView_MissingToken(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/company-view", jsonBody(t, map[string]string{}))

	require.NoError(t, h.CompanyView(c))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "Token required")
}

func TestCompanyView_InvalidToken(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/company-view",
		jsonBody(t, map[string]string{"token": "doesnotexist"}))

	require.NoError(t, h.CompanyView(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid or expired token")
}

func TestCompanyView_ListsNewestFirstAndRedactsEmail(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	e := echo.New()

	company := testutil.NewTestCompany(t, repo, "Acme")
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	testutil.SeedDecisionLog(t, repo, "older@x.com", base)
	testutil.SeedDecisionLog(t, repo, "newer@x.com", base.Add(time.Hour))

	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/company-view",
		jsonBody(t, map[string]string{"token": company.Token}))

	require.NoError(t, h.CompanyView(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Company     string           `json:"company"`
		Submissions []map[string]any `json:"submissions"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.Equal(t, "Acme", resp.Company)
	require.Len(t, resp.Submissions, 2)

	// Newest first, and no email anywhere in the payload.
	first, err := time.Parse(time.RFC3339, resp.Submissions[0]["created_at"].(string))
	require.NoError(t, err)
	second, err := time.Parse(time.RFC3339, resp.Submissions[1]["created_at"].(string))
	require.NoError(t, err)
	assert.True(t, first.After(second))

	assert.NotContains(t, rec.Body.String(), "older@x.com")
	assert.NotContains(t, rec.Body.String(), "newer@x.com")
	_, hasEmail := resp.Submissions[0]["email"]
	assert.False(t, hasEmail)
}

func TestCompanyView_EmptyListIsNotNull(t *testing.T) {
	h, repo, _ := newTestHandlers(t)
	e := echo.New()

	company := testutil.NewTestCompany(t, repo, "Acme")
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/company-view",
		jsonBody(t, map[string]string{"token": company.Token}))

	require.NoError(t, h.CompanyView(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"submissions":[]`)
}

func TestRequestInterview_MissingFields(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	e := echo.New()

	tests := []map[string]string{
		{},
		{"token": "tok"},
		{"handle": "Sharded Hawk #5354"},
	}
	for _, body := range tests {
		c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/request-interview", jsonBody(t, body))
		require.NoError(t, h.RequestInterview(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing required fields")
	}
}

func TestRequestInterview_InvalidToken(t *testing.T) {
	h, _, notifier := newTestHandlers(t)
	e := echo.New()

	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/request-interview",
		jsonBody(t, map[string]string{"token": "doesnotexist", "handle": "Sharded Hawk #5354"}))

	require.NoError(t, h.RequestInterview(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid token")
	assert.Equal(t, 0, notifier.sends)
}

func TestRequestInterview_Success(t *testing.T) {
	h, repo, notifier := newTestHandlers(t)
	e := echo.New()

	company := testutil.NewTestCompany(t, repo, "Acme")
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/request-interview",
		jsonBody(t, map[string]string{"token": company.Token, "handle": "Sharded Hawk #5354"}))

	require.NoError(t, h.RequestInterview(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, 1, notifier.sends)

	reqs, err := repo.ListInterviewRequests(context.Background())
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, "Sharded Hawk #5354", reqs[0].EngineerHandle)
	assert.Equal(t, company.Token, reqs[0].CompanyToken)
}

func TestRequestInterview_NotificationFailure(t *testing.T) {
	h, repo, notifier := newTestHandlers(t)
	notifier.err = errors.New("smtp down")
	e := echo.New()

	company := testutil.NewTestCompany(t, repo, "Acme")
	c, rec := testutil.NewEchoContext(e, http.MethodPost, "/api/request-interview",
		jsonBody(t, map[string]string{"token": company.Token, "handle": "Sharded Hawk #5354"}))

	require.NoError(t, h.RequestInterview(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Failed to send email")

	// The request row was still written before the send was attempted.
	reqs, err := repo.ListInterviewRequests(context.Background())
	require.NoError(t, err)
	assert.Len(t, reqs, 1)
}

func TestListProblems(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/api/problems", nil)

	require.NoError(t, h.ListProblems(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var problems []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &problems))
	assert.Len(t, problems, 10)
}

func TestGetProblem(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/api/problems/1", nil)
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.GetProblem(c))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "payment processing system")
}

func TestGetProblem_NotFound(t *testing.T) {
	h, _, _ := newTestHandlers(t)
	e := echo.New()

	c, rec := testutil.NewEchoContext(e, http.MethodGet, "/api/problems/99", nil)
	c.SetParamNames("id")
	c.SetParamValues("99")

	require.NoError(t, h.GetProblem(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
