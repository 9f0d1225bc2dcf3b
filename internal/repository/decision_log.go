// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/petervanpercson/buildcored/internal/models"
)

// InsertDecisionLog persists a validated submission. The id and
// created_at are assigned here; the caller's record is updated in place.
func (r *Repository) InsertDecisionLog(ctx context.Context, log *models.DecisionLog) error {
	if log.ID == "" {
		log.ID = uuid.NewString()
	}
	if log.CreatedAt.IsZero() {
		log.CreatedAt = time.Now().UTC()
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO decision_logs (
			id, email, handle, visibility, role_track, seniority, time_budget,
			prompt_id, prompt_text,
			first_action, why_first, second_action, why_second, third_action,
			signals_data_first, wont_do, biggest_risk, verify_and_rollback, with_more_time,
			attest_original, status, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		log.ID, log.Email, log.Handle, log.Visibility, log.RoleTrack, log.Seniority, log.TimeBudget,
		log.PromptID, log.PromptText,
		log.FirstAction, log.WhyFirst, log.SecondAction, log.WhySecond, log.ThirdAction,
		log.SignalsDataFirst, log.WontDo, log.BiggestRisk, log.VerifyAndRollback, log.WithMoreTime,
		log.AttestOriginal, log.Status, log.CreatedAt)
	return err
}

// ListDecisionLogs returns all browsable submissions, newest first.
// Private logs never reach the company view. Newest-first ordering is a
// contract, not a preference.
func (r *Repository) ListDecisionLogs(ctx context.Context) ([]models.DecisionLog, error) {
	var logs []models.DecisionLog
	err := r.db.SelectContext(ctx, &logs,
		`SELECT * FROM decision_logs WHERE visibility != ? ORDER BY created_at DESC, id`,
		models.VisibilityPrivate)
	if err != nil {
		return nil, err
	}
	return logs, nil
}

// CountDecisionLogs returns the total number of stored submissions,
// including private ones.
func (r *Repository) CountDecisionLogs(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM decision_logs`)
	return count, err
}
