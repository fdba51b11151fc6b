package analytics

import "fmt"

// Advice lines used by the report synthesizer. The synthesizer is pure and
// idempotent: the same inputs always produce the same lines in the same order.
const (
	adviceNoData = "You have no records from the past week yet. Add some sleep, exercise, or diet entries to generate your health report."

	adviceSleepLow  = "Your weekly average sleep is under 7 hours. Make sure you get enough rest."
	adviceSleepHigh = "Your weekly average sleep is over 9 hours. Unless you are recovering, watch out for oversleeping."
	adviceSleepGood = "Your sleep looks good. Keep it up."

	adviceCalorieSurplus  = "Your daily calorie intake is running above what you burn. Keep an eye on the balance between diet and exercise."
	adviceCalorieDeficit  = "Your daily calorie burn is running above your intake. Make sure you eat enough to keep your energy up."
	adviceCalorieBalanced = "Your calorie intake and burn are roughly balanced. Well done."

	adviceNoExercise = "You have no exercise records from the past week. A moderate workout routine is key to staying healthy."
)

// calorieBalanceBand is the surplus or deficit, in calories per day, beyond
// which intake and burn are no longer considered balanced.
const calorieBalanceBand = 300

// BMI band boundaries.
const (
	bmiUnderweightMax = 18.5
	bmiNormalMax      = 25
	bmiOverweightMax  = 30
)

// SynthesizeReport derives an ordered list of advice lines from trailing-week
// averages. With no records at all it short-circuits to a single prompt to
// add data; the BMI line is appended either way when a BMI is known.
func SynthesizeReport(avgSleepHours, avgCaloriesBurned, avgCaloriesEaten, bmi float64, hasAnyRecords bool) []string {
	advice := make([]string, 0, 4)

	if !hasAnyRecords {
		advice = append(advice, adviceNoData)
	} else {
		switch {
		case avgSleepHours > 0 && avgSleepHours < 7:
			advice = append(advice, adviceSleepLow)
		case avgSleepHours > 9:
			advice = append(advice, adviceSleepHigh)
		default:
			advice = append(advice, adviceSleepGood)
		}

		balance := avgCaloriesEaten - avgCaloriesBurned
		switch {
		case balance > calorieBalanceBand:
			advice = append(advice, adviceCalorieSurplus)
		case balance < -calorieBalanceBand:
			advice = append(advice, adviceCalorieDeficit)
		default:
			advice = append(advice, adviceCalorieBalanced)
		}

		if avgCaloriesBurned == 0 {
			advice = append(advice, adviceNoExercise)
		}
	}

	if bmi > 0 {
		advice = append(advice, bmiAdvice(bmi))
	}

	return advice
}

// bmiAdvice returns the advice line for a BMI value.
func bmiAdvice(bmi float64) string {
	switch {
	case bmi < bmiUnderweightMax:
		return fmt.Sprintf("Your BMI is %.2f, in the underweight range. Pay attention to balanced nutrition.", bmi)
	case bmi < bmiNormalMax:
		return fmt.Sprintf("Your BMI is %.2f, in the normal range. Keep it up!", bmi)
	case bmi < bmiOverweightMax:
		return fmt.Sprintf("Your BMI is %.2f, in the overweight range. Consider adjusting your diet and exercise.", bmi)
	default:
		return fmt.Sprintf("Your BMI is %.2f, in the obese range. Please pay attention to the associated health risks.", bmi)
	}
}
