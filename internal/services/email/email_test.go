// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

package email_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petervanpercson/buildcored/internal/config"
	"github.com/petervanpercson/buildcored/internal/models"
	"github.com/petervanpercson/buildcored/internal/services/email"
)

func validSMTPConfig() *config.SMTPConfig {
	return &config.SMTPConfig{
		Host:     "smtp.example.com",
		Port:     587,
		Username: "testuser",
		Password: "testpass",
		From:     "noreply@example.com",
		FromName: "BuildCored",
		TLS:      true,
	}
}

func TestNewService(t *testing.T) {
	svc, err := email.NewService(validSMTPConfig(), "ops@example.com")

	require.NoError(t, err)
	assert.NotNil(t, svc)
}

func TestNewService_MissingHost(t *testing.T) {
	cfg := validSMTPConfig()
	cfg.Host = ""

	_, err := email.NewService(cfg, "ops@example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP host is required")
}

func TestNewService_MissingFrom(t *testing.T) {
	cfg := validSMTPConfig()
	cfg.From = ""

	_, err := email.NewService(cfg, "ops@example.com")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "SMTP from address is required")
}

func TestNewService_MissingAdminEmail(t *testing.T) {
	_, err := email.NewService(validSMTPConfig(), "")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "admin notification address is required")
}

func TestUnconfigured_SendFails(t *testing.T) {
	_, cfgErr := email.NewService(&config.SMTPConfig{}, "")
	require.Error(t, cfgErr)

	n := email.Unconfigured{Err: cfgErr}
	err := n.SendInterviewRequest(context.Background(), &models.Company{CompanyName: "Acme"}, "Sharded Hawk #5354")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "email service not configured")
}
