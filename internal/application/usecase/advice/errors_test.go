// Package advice contains the AI health advice use cases.
package advice

import (
	"context"
	"errors"
	"testing"

	domainerror "github.com/health-tracker/backend/internal/domain/error"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name         string
		err          error
		expectedCode domainerror.AdviceErrorCode
	}{
		{
			name:         "context deadline exceeded",
			err:          context.DeadlineExceeded,
			expectedCode: domainerror.ErrCodeAdviceTimeout,
		},
		{
			name:         "context canceled",
			err:          context.Canceled,
			expectedCode: domainerror.ErrCodeAdviceTimeout,
		},
		{
			name:         "rate limit error",
			err:          errors.New("rate limit exceeded"),
			expectedCode: domainerror.ErrCodeAdviceRateLimited,
		},
		{
			name:         "quota error",
			err:          errors.New("quota exceeded for model"),
			expectedCode: domainerror.ErrCodeAdviceRateLimited,
		},
		{
			name:         "429 status code",
			err:          errors.New("HTTP 429: too many requests"),
			expectedCode: domainerror.ErrCodeAdviceRateLimited,
		},
		{
			name:         "resource exhausted",
			err:          errors.New("resource exhausted"),
			expectedCode: domainerror.ErrCodeAdviceRateLimited,
		},
		{
			name:         "401 unauthorized",
			err:          errors.New("401 unauthorized"),
			expectedCode: domainerror.ErrCodeAdviceNotConfigured,
		},
		{
			name:         "invalid api key",
			err:          errors.New("invalid api key provided"),
			expectedCode: domainerror.ErrCodeAdviceNotConfigured,
		},
		{
			name:         "generic failure",
			err:          errors.New("something went wrong"),
			expectedCode: domainerror.ErrCodeAdviceUnavailable,
		},
		{
			name:         "connection refused",
			err:          errors.New("dial tcp: connection refused"),
			expectedCode: domainerror.ErrCodeAdviceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := classifyError(tt.err)

			if result.Code != tt.expectedCode {
				t.Errorf("expected code %s, got %s", tt.expectedCode, result.Code)
			}
			if result.Message == "" {
				t.Error("expected a user-facing message, got empty string")
			}
			if !errors.Is(result, tt.err) {
				t.Error("expected classified error to wrap the original error")
			}
		})
	}
}
