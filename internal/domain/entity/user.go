// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// Gender represents the user's self-reported gender.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// DefaultWeightKg is used for calorie estimation when the profile has no weight.
const DefaultWeightKg = 60.0

// User represents a user in the Health Tracker system.
type User struct {
	ID           uuid.UUID
	Email        string
	Name         string
	PasswordHash string
	Gender       Gender
	Age          int
	HeightCm     float64
	WeightKg     float64
	BMI          float64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new User with default values.
func NewUser(email, name, passwordHash string) *User {
	now := time.Now().UTC()
	return &User{
		ID:           uuid.New(),
		Email:        email,
		Name:         name,
		PasswordHash: passwordHash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// UpdateProfile sets the body measurements and recomputes BMI.
func (u *User) UpdateProfile(gender Gender, age int, heightCm, weightKg float64) {
	u.Gender = gender
	u.Age = age
	u.HeightCm = heightCm
	u.WeightKg = weightKg
	u.BMI = CalculateBMI(heightCm, weightKg)
	u.UpdatedAt = time.Now().UTC()
}

// EffectiveWeightKg returns the profile weight, falling back to the default
// when the user has not filled in their measurements.
func (u *User) EffectiveWeightKg() float64 {
	if u.WeightKg > 0 {
		return u.WeightKg
	}
	return DefaultWeightKg
}

// CalculateBMI computes the body mass index from height in centimeters and
// weight in kilograms, rounded to two decimal places. Returns 0 when height
// is not positive.
func CalculateBMI(heightCm, weightKg float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	heightM := heightCm / 100
	bmi := weightKg / (heightM * heightM)
	return math.Round(bmi*100) / 100
}
