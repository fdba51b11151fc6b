package analytics

import (
	"github.com/health-tracker/backend/internal/domain/entity"
)

// GoalProgress holds the current value against a target.
type GoalProgress struct {
	Current float64 `json:"current"`
	Target  float64 `json:"target"`
	Percent float64 `json:"percent"`
}

// SleepGoalProgress evaluates average sleep against a target. More sleep is
// better, so progress is current over target.
func SleepGoalProgress(avgSleepHours, targetHours float64) GoalProgress {
	percent := 0.0
	if targetHours > 0 {
		percent = avgSleepHours / targetHours * 100
	}
	return GoalProgress{Current: avgSleepHours, Target: targetHours, Percent: percent}
}

// CalorieGoalProgress evaluates average intake against a target. Eating less
// is better, so progress is target over current. An average of zero scores
// 100: no intake means the budget is untouched.
func CalorieGoalProgress(avgCaloriesEaten, targetIntake float64) GoalProgress {
	percent := 100.0
	if avgCaloriesEaten > 0 {
		percent = targetIntake / avgCaloriesEaten * 100
	}
	return GoalProgress{Current: avgCaloriesEaten, Target: targetIntake, Percent: percent}
}

// ExerciseGoalProgress holds the progress toward one exercise goal.
type ExerciseGoalProgress struct {
	Goal    *entity.ExerciseGoal `json:"goal"`
	Current float64              `json:"current"`
	Target  float64              `json:"target"`
	Percent float64              `json:"percent"`
}

// EvaluateExerciseGoal computes the progress toward an exercise goal over the
// given records. A goal with an exercise type only counts matching sessions.
func EvaluateExerciseGoal(goal *entity.ExerciseGoal, records []*entity.ExerciseRecord) ExerciseGoalProgress {
	relevant := records
	if goal.ExerciseType != nil {
		relevant = make([]*entity.ExerciseRecord, 0, len(records))
		for _, r := range records {
			if r.Type == *goal.ExerciseType {
				relevant = append(relevant, r)
			}
		}
	}

	current := 0.0
	switch goal.GoalType {
	case entity.ExerciseGoalDuration:
		for _, r := range relevant {
			current += r.DurationMinutes
		}
	case entity.ExerciseGoalFrequency:
		current = float64(len(relevant))
	case entity.ExerciseGoalCalories:
		for _, r := range relevant {
			current += r.CaloriesBurned
		}
	}

	percent := 0.0
	if goal.TargetValue > 0 {
		percent = current / goal.TargetValue * 100
	}

	return ExerciseGoalProgress{
		Goal:    goal,
		Current: current,
		Target:  goal.TargetValue,
		Percent: percent,
	}
}
