// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MealType represents which meal a diet record belongs to.
type MealType string

const (
	MealTypeBreakfast MealType = "breakfast"
	MealTypeLunch     MealType = "lunch"
	MealTypeDinner    MealType = "dinner"
	MealTypeSnack     MealType = "snack"
)

// IsValid reports whether the meal type is one of the known values.
func (m MealType) IsValid() bool {
	switch m {
	case MealTypeBreakfast, MealTypeLunch, MealTypeDinner, MealTypeSnack:
		return true
	}
	return false
}

// FoodItem is a catalog entry with calories per 100 grams.
type FoodItem struct {
	Name            string
	CaloriesPer100g decimal.Decimal
}

// foodCatalog holds the built-in per-100g calorie table.
var foodCatalog = map[string]decimal.Decimal{
	"rice":           decimal.NewFromInt(130),
	"steamed bun":    decimal.NewFromInt(223),
	"chicken breast": decimal.NewFromInt(165),
	"beef":           decimal.NewFromInt(250),
	"egg":            decimal.NewFromInt(155),
	"milk":           decimal.NewFromInt(54),
	"apple":          decimal.NewFromInt(52),
	"banana":         decimal.NewFromInt(89),
	"broccoli":       decimal.NewFromInt(55),
	"carrot":         decimal.NewFromInt(41),
}

// LookupFoodItem returns the catalog entry for a food name.
func LookupFoodItem(name string) (FoodItem, bool) {
	kcal, ok := foodCatalog[name]
	if !ok {
		return FoodItem{}, false
	}
	return FoodItem{Name: name, CaloriesPer100g: kcal}, true
}

// CaloriesForPortion computes the calories for a portion in grams.
func (f FoodItem) CaloriesForPortion(portionGrams decimal.Decimal) decimal.Decimal {
	return portionGrams.Div(decimal.NewFromInt(100)).Mul(f.CaloriesPer100g)
}

// DietRecord represents a single food intake entry.
type DietRecord struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	FoodName     string
	MealType     MealType
	PortionGrams decimal.Decimal
	Calories     decimal.Decimal
	EatenAt      time.Time
	CreatedAt    time.Time
}

// NewDietRecord creates a DietRecord.
func NewDietRecord(userID uuid.UUID, foodName string, mealType MealType, portionGrams, calories decimal.Decimal, eatenAt time.Time) *DietRecord {
	return &DietRecord{
		ID:           uuid.New(),
		UserID:       userID,
		FoodName:     foodName,
		MealType:     mealType,
		PortionGrams: portionGrams,
		Calories:     calories,
		EatenAt:      eatenAt,
		CreatedAt:    time.Now().UTC(),
	}
}

// Date returns the calendar date the food was eaten on.
func (d *DietRecord) Date() time.Time {
	return truncateToDate(d.EatenAt)
}
