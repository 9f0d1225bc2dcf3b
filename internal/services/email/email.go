// Copyright 2025 Peter Van Percson
// Licensed under the EUPL-1.2

// Package email sends interview-request notifications over SMTP.
package email

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"github.com/petervanpercson/buildcored/internal/config"
	"github.com/petervanpercson/buildcored/internal/models"
)

// Service delivers notifications to the operator inbox. Interview
// requests are never mailed to the engineer: the platform mediates the
// introduction.
type Service struct {
	cfg        *config.SMTPConfig
	adminEmail string
}

// NewService creates an email service. A missing SMTP host, sender, or
// operator address is a configuration error.
func NewService(cfg *config.SMTPConfig, adminEmail string) (*Service, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("SMTP host is required")
	}
	if cfg.From == "" {
		return nil, fmt.Errorf("SMTP from address is required")
	}
	if adminEmail == "" {
		return nil, fmt.Errorf("admin notification address is required")
	}

	return &Service{
		cfg:        cfg,
		adminEmail: adminEmail,
	}, nil
}

// SendInterviewRequest notifies the operator that a company wants to
// talk to an engineer, identified by handle only.
func (s *Service) SendInterviewRequest(ctx context.Context, company *models.Company, engineerHandle string) error {
	subject, body := interviewRequestMessage(company, engineerHandle, time.Now())
	return s.send(ctx, s.adminEmail, subject, body)
}

// interviewRequestMessage composes the notification. The operator acts
// on this email; it must carry everything needed for the introduction.
func interviewRequestMessage(company *models.Company, engineerHandle string, now time.Time) (subject, body string) {
	subject = fmt.Sprintf("INTERVIEW REQUEST: %s wants %s", company.CompanyName, engineerHandle)
	body = fmt.Sprintf(`<h1>New Interview Request</h1>
<p><strong>Company:</strong> %s (%s)</p>
<p><strong>Engineer:</strong> %s</p>
<p><strong>Time:</strong> %s</p>
<hr />
<p>Action required: Email the engineer and connect them with %s.</p>`,
		company.CompanyName, company.Email, engineerHandle,
		now.UTC().Format(time.RFC1123), company.Email)
	return subject, body
}

// send delivers an email via SMTP using go-mail.
func (s *Service) send(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()

	if s.cfg.FromName != "" {
		if err := msg.FromFormat(s.cfg.FromName, s.cfg.From); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	} else {
		if err := msg.From(s.cfg.From); err != nil {
			return fmt.Errorf("setting from address: %w", err)
		}
	}

	if err := msg.To(to); err != nil {
		return fmt.Errorf("setting to address: %w", err)
	}

	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, body)

	opts := []mail.Option{
		mail.WithPort(s.cfg.Port),
	}

	// Configure TLS based on config and port
	if s.cfg.TLS {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSMandatory))
		// Use implicit TLS (SSL) for port 465, STARTTLS for others
		if s.cfg.Port == 465 {
			opts = append(opts, mail.WithSSL())
		}
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.NoTLS))
	}

	if s.cfg.Username != "" && s.cfg.Password != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(s.cfg.Username),
			mail.WithPassword(s.cfg.Password),
		)
	}

	client, err := mail.NewClient(s.cfg.Host, opts...)
	if err != nil {
		return fmt.Errorf("creating mail client: %w", err)
	}

	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("sending email: %w", err)
	}

	return nil
}

// Unconfigured stands in for the notifier when the server starts
// without mail settings. Every send fails, which surfaces as a 500 on
// the interview-request path, matching the behavior of a misconfigured
// operator address.
type Unconfigured struct {
	Err error
}

// SendInterviewRequest always fails with the configuration error.
func (u Unconfigured) SendInterviewRequest(ctx context.Context, company *models.Company, engineerHandle string) error {
	return fmt.Errorf("email service not configured: %w", u.Err)
}
