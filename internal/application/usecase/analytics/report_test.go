package analytics

import (
	"reflect"
	"strings"
	"testing"
)

func TestSynthesizeReportNoData(t *testing.T) {
	advice := SynthesizeReport(0, 0, 0, 0, false)

	if len(advice) != 1 {
		t.Fatalf("expected a single line, got %d: %v", len(advice), advice)
	}
	if advice[0] != adviceNoData {
		t.Errorf("expected the no-data prompt, got %q", advice[0])
	}
}

func TestSynthesizeReportNoDataStillMentionsBMI(t *testing.T) {
	advice := SynthesizeReport(0, 0, 0, 22.5, false)

	if len(advice) != 2 {
		t.Fatalf("expected two lines, got %d: %v", len(advice), advice)
	}
	if !strings.Contains(advice[1], "22.50") {
		t.Errorf("expected a BMI line, got %q", advice[1])
	}
}

func TestSynthesizeReportSleepBands(t *testing.T) {
	tests := []struct {
		name     string
		avgSleep float64
		expected string
	}{
		{name: "under seven hours", avgSleep: 6.5, expected: adviceSleepLow},
		{name: "zero average is not flagged low", avgSleep: 0, expected: adviceSleepGood},
		{name: "exactly seven is fine", avgSleep: 7, expected: adviceSleepGood},
		{name: "exactly nine is fine", avgSleep: 9, expected: adviceSleepGood},
		{name: "over nine hours", avgSleep: 9.5, expected: adviceSleepHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := SynthesizeReport(tt.avgSleep, 500, 500, 0, true)
			if advice[0] != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, advice[0])
			}
		})
	}
}

func TestSynthesizeReportCalorieBalance(t *testing.T) {
	tests := []struct {
		name     string
		eaten    float64
		burned   float64
		expected string
	}{
		{name: "large surplus", eaten: 2500, burned: 2000, expected: adviceCalorieSurplus},
		{name: "exactly 300 surplus is balanced", eaten: 2300, burned: 2000, expected: adviceCalorieBalanced},
		{name: "large deficit", eaten: 1500, burned: 2000, expected: adviceCalorieDeficit},
		{name: "exactly 300 deficit is balanced", eaten: 1700, burned: 2000, expected: adviceCalorieBalanced},
		{name: "even", eaten: 2000, burned: 2000, expected: adviceCalorieBalanced},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := SynthesizeReport(8, tt.burned, tt.eaten, 0, true)
			if advice[1] != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, advice[1])
			}
		})
	}
}

func TestSynthesizeReportExercisePresence(t *testing.T) {
	withExercise := SynthesizeReport(8, 400, 400, 0, true)
	if hasAlertContaining(withExercise, "no exercise records") {
		t.Errorf("did not expect the no-exercise line: %v", withExercise)
	}

	withoutExercise := SynthesizeReport(8, 0, 400, 0, true)
	if withoutExercise[len(withoutExercise)-1] != adviceNoExercise {
		t.Errorf("expected the no-exercise line last, got %v", withoutExercise)
	}
}

func TestSynthesizeReportBMIBands(t *testing.T) {
	tests := []struct {
		name     string
		bmi      float64
		fragment string
	}{
		{name: "underweight", bmi: 17.2, fragment: "underweight"},
		{name: "boundary 18.5 is normal", bmi: 18.5, fragment: "normal"},
		{name: "normal", bmi: 22, fragment: "normal"},
		{name: "boundary 25 is overweight", bmi: 25, fragment: "overweight"},
		{name: "boundary 30 is obese", bmi: 30, fragment: "obese"},
		{name: "obese", bmi: 34.1, fragment: "obese"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			advice := SynthesizeReport(8, 500, 500, tt.bmi, true)
			last := advice[len(advice)-1]
			if !strings.Contains(last, tt.fragment) {
				t.Errorf("expected BMI line with %q, got %q", tt.fragment, last)
			}
		})
	}
}

func TestSynthesizeReportUnknownBMISkipsLine(t *testing.T) {
	advice := SynthesizeReport(8, 500, 500, 0, true)
	for _, line := range advice {
		if strings.Contains(line, "BMI") {
			t.Errorf("did not expect a BMI line: %q", line)
		}
	}
}

func TestSynthesizeReportIdempotent(t *testing.T) {
	first := SynthesizeReport(6.2, 0, 2600, 27.3, true)
	second := SynthesizeReport(6.2, 0, 2600, 27.3, true)

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical output, got %v and %v", first, second)
	}
}
