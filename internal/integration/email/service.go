// Package email provides email sending functionality.
package email

import (
	"context"

	"github.com/health-tracker/backend/internal/application/adapter"
	"github.com/health-tracker/backend/internal/domain/entity"
	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// Service handles email queueing operations.
type Service struct {
	queue      adapter.EmailQueueRepository
	appBaseURL string
}

// NewService creates a new email service.
func NewService(queue adapter.EmailQueueRepository, appBaseURL string) *Service {
	return &Service{
		queue:      queue,
		appBaseURL: appBaseURL,
	}
}

// QueueWeeklyReportEmail queues a weekly health report email.
func (s *Service) QueueWeeklyReportEmail(ctx context.Context, input adapter.QueueWeeklyReportInput) error {
	subject := "Your weekly health report - Health Tracker"

	templateData := map[string]interface{}{
		"user_name":           input.UserName,
		"avg_sleep_hours":     input.AvgSleepHours,
		"avg_calories_burned": input.AvgCaloriesBurned,
		"avg_calories_eaten":  input.AvgCaloriesEaten,
		"bmi":                 input.BMI,
		"advice_lines":        input.AdviceLines,
		"app_url":             s.appBaseURL,
	}

	job := entity.NewEmailJob(
		entity.TemplateWeeklyReport,
		input.UserEmail,
		input.UserName,
		subject,
		templateData,
	)

	if err := s.queue.Create(ctx, job); err != nil {
		return domainerror.NewEmailError(
			domainerror.ErrCodeEmailQueueFailed,
			"failed to queue weekly report email",
			err,
		)
	}

	return nil
}

// Ensure Service implements adapter.EmailService.
var _ adapter.EmailService = (*Service)(nil)
