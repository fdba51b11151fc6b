// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
)

// SendEmailInput represents the input for sending an email.
type SendEmailInput struct {
	To      string
	Name    string
	Subject string
	HTML    string
	Text    string
}

// SendEmailResult represents the result of sending an email.
type SendEmailResult struct {
	ResendID string
}

// EmailSender defines the interface for sending emails via an external provider.
type EmailSender interface {
	// Send sends an email via the email provider (e.g., Resend).
	Send(ctx context.Context, input SendEmailInput) (*SendEmailResult, error)
}

// EmailService defines the interface for queueing emails.
type EmailService interface {
	// QueueWeeklyReportEmail queues a weekly health report email.
	QueueWeeklyReportEmail(ctx context.Context, input QueueWeeklyReportInput) error
}

// QueueWeeklyReportInput represents the input for queueing a weekly report email.
type QueueWeeklyReportInput struct {
	UserEmail         string
	UserName          string
	AvgSleepHours     float64
	AvgCaloriesBurned float64
	AvgCaloriesEaten  float64
	BMI               float64
	AdviceLines       []string
}
