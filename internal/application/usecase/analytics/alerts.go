package analytics

import (
	"fmt"
	"time"

	"github.com/health-tracker/backend/internal/domain/entity"
)

// alertWindowDays is how many consecutive days a shortfall must last before
// an alert fires: the reference day plus the two preceding ones.
const alertWindowDays = 3

// EvaluateAlerts checks the three most recent calendar days for persistent
// shortfalls. The sleep alert fires only when every day's total sleep is
// below the target; a single bad night does not. The exercise alert fires
// only when all three days have no exercise at all. A target of zero or less
// skips the sleep rule.
func EvaluateAlerts(sleepRecords []*entity.SleepRecord, exerciseRecords []*entity.ExerciseRecord, targetSleepHours float64, reference time.Time) []string {
	alerts := make([]string, 0, 2)
	refDate := dateOf(reference)

	if targetSleepHours > 0 {
		dailySleep := make(map[string]float64, alertWindowDays)
		for i := 0; i < alertWindowDays; i++ {
			dailySleep[refDate.AddDate(0, 0, -i).Format("2006-01-02")] = 0
		}
		for _, r := range sleepRecords {
			day := r.WakeDate().Format("2006-01-02")
			if _, ok := dailySleep[day]; ok {
				dailySleep[day] += r.DurationHours
			}
		}

		allShort := true
		for _, total := range dailySleep {
			if total >= targetSleepHours {
				allShort = false
				break
			}
		}
		if allShort {
			alerts = append(alerts, fmt.Sprintf(
				"You slept below your %.1f hour target for three days in a row. Try to get more rest.",
				targetSleepHours,
			))
		}
	}

	dailyExercise := make(map[string]float64, alertWindowDays)
	for i := 0; i < alertWindowDays; i++ {
		dailyExercise[refDate.AddDate(0, 0, -i).Format("2006-01-02")] = 0
	}
	for _, r := range exerciseRecords {
		day := r.Date().Format("2006-01-02")
		if _, ok := dailyExercise[day]; ok {
			dailyExercise[day] += r.DurationMinutes
		}
	}

	noExercise := true
	for _, total := range dailyExercise {
		if total > 0 {
			noExercise = false
			break
		}
	}
	if noExercise {
		alerts = append(alerts, "No exercise recorded for three days in a row. A bit of activity helps keep you healthy.")
	}

	return alerts
}
