// Package advice contains the AI health advice use cases.
package advice

import (
	"context"
	"errors"
	"strings"

	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

// friendlyMessages maps advice error codes to user-facing messages.
var friendlyMessages = map[domainerror.AdviceErrorCode]string{
	domainerror.ErrCodeAdviceUnavailable:   "The advice service is temporarily unavailable. Please try again later.",
	domainerror.ErrCodeAdviceNotConfigured: "The advice service is not configured. Please contact support.",
	domainerror.ErrCodeAdviceRateLimited:   "Too many advice requests right now. Please wait a few minutes and try again.",
	domainerror.ErrCodeAdviceTimeout:       "Generating advice took longer than expected. Please try again.",
}

// classifyError converts an AI service error into an AdviceError with a
// stable code and a user-facing message.
func classifyError(err error) *domainerror.AdviceError {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return domainerror.NewAdviceError(
			domainerror.ErrCodeAdviceTimeout,
			friendlyMessages[domainerror.ErrCodeAdviceTimeout],
			err,
		)
	}

	errStr := strings.ToLower(err.Error())

	if strings.Contains(errStr, "rate limit") || strings.Contains(errStr, "quota") ||
		strings.Contains(errStr, "429") || strings.Contains(errStr, "resource exhausted") {
		return domainerror.NewAdviceError(
			domainerror.ErrCodeAdviceRateLimited,
			friendlyMessages[domainerror.ErrCodeAdviceRateLimited],
			err,
		)
	}

	if strings.Contains(errStr, "401") || strings.Contains(errStr, "403") ||
		strings.Contains(errStr, "invalid api key") || strings.Contains(errStr, "unauthorized") ||
		strings.Contains(errStr, "authentication") {
		return domainerror.NewAdviceError(
			domainerror.ErrCodeAdviceNotConfigured,
			friendlyMessages[domainerror.ErrCodeAdviceNotConfigured],
			err,
		)
	}

	return domainerror.NewAdviceError(
		domainerror.ErrCodeAdviceUnavailable,
		friendlyMessages[domainerror.ErrCodeAdviceUnavailable],
		err,
	)
}
