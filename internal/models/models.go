// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

// Package models holds the persisted record types.
package models

import (
	"time"
)

// Visibility values for decision logs. Stored as-is; the company view
// filters out private logs at query time.
const (
	VisibilityPublic   = "public"
	VisibilityUnlisted = "unlisted"
	VisibilityPrivate  = "private"
)

// StatusSubmitted is the initial (and currently only) lifecycle status
// of a decision log.
const StatusSubmitted = "submitted"

// DecisionLog is one engineer's answer to a scenario prompt. The email
// is never serialized to JSON; companies only ever see the handle.
type DecisionLog struct { //nolint:govet // fieldalignment not critical for models
	ID                string    `db:"id" json:"id"`
	Email             string    `db:"email" json:"-"`
	Handle            string    `db:"handle" json:"handle"`
	Visibility        string    `db:"visibility" json:"visibility"`
	RoleTrack         *string   `db:"role_track" json:"role_track"`
	Seniority         *string   `db:"seniority" json:"seniority"`
	TimeBudget        *string   `db:"time_budget" json:"time_budget"`
	PromptID          string    `db:"prompt_id" json:"prompt_id"`
	PromptText        string    `db:"prompt_text" json:"prompt_text"`
	FirstAction       string    `db:"first_action" json:"first_action"`
	WhyFirst          string    `db:"why_first" json:"why_first"`
	SecondAction      string    `db:"second_action" json:"second_action"`
	WhySecond         string    `db:"why_second" json:"why_second"`
	ThirdAction       string    `db:"third_action" json:"third_action"`
	SignalsDataFirst  string    `db:"signals_data_first" json:"signals_data_first"`
	WontDo            string    `db:"wont_do" json:"wont_do"`
	BiggestRisk       string    `db:"biggest_risk" json:"biggest_risk"`
	VerifyAndRollback string    `db:"verify_and_rollback" json:"verify_and_rollback"`
	WithMoreTime      string    `db:"with_more_time" json:"with_more_time"`
	AttestOriginal    bool      `db:"attest_original" json:"-"`
	Status            string    `db:"status" json:"status"`
	CreatedAt         time.Time `db:"created_at" json:"created_at"`
}

// Company identifies an access-token holder. The token is an opaque
// bearer credential with no modeled expiry.
type Company struct {
	ID          string    `db:"id" json:"-"`
	Token       string    `db:"token" json:"-"`
	CompanyName string    `db:"company_name" json:"company_name"`
	Email       string    `db:"email" json:"-"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
}

// InterviewRequest records that a company asked to talk to an engineer,
// identified only by handle. Append-only, duplicates allowed.
type InterviewRequest struct {
	ID             int64     `db:"id" json:"id"`
	CompanyToken   string    `db:"company_token" json:"-"`
	EngineerHandle string    `db:"engineer_handle" json:"engineer_handle"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
}
