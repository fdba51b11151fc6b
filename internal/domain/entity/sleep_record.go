// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// SleepRecord represents a single sleep session.
type SleepRecord struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	SleepTime     time.Time
	WakeupTime    time.Time
	DurationHours float64
	CreatedAt     time.Time
}

// NewSleepRecord creates a SleepRecord with the duration derived from the
// session timestamps.
func NewSleepRecord(userID uuid.UUID, sleepTime, wakeupTime time.Time) *SleepRecord {
	return &SleepRecord{
		ID:            uuid.New(),
		UserID:        userID,
		SleepTime:     sleepTime,
		WakeupTime:    wakeupTime,
		DurationHours: wakeupTime.Sub(sleepTime).Hours(),
		CreatedAt:     time.Now().UTC(),
	}
}

// SleepDate returns the calendar date the session started on.
func (s *SleepRecord) SleepDate() time.Time {
	return truncateToDate(s.SleepTime)
}

// WakeDate returns the calendar date the user woke up on. A session spanning
// midnight counts entirely toward the wake day.
func (s *SleepRecord) WakeDate() time.Time {
	return truncateToDate(s.WakeupTime)
}

// Overlaps reports whether two sleep sessions share any time interval.
func (s *SleepRecord) Overlaps(other *SleepRecord) bool {
	return s.SleepTime.Before(other.WakeupTime) && other.SleepTime.Before(s.WakeupTime)
}

func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
