package main

import (
	"errors"
	"fmt"
	"math"
)

// errInvalidInput is returned for caller-correctable input errors:
// non-positive body metrics or unknown lookup keys. There is no transient
// failure mode anywhere in the calculator, so no error here ever warrants
// a retry.
var errInvalidInput = errors.New("invalid input")

/* ─── Lookup tables ──────────────────────────────────────────────────── */

// activityMultipliers maps activity level strings to their TDEE multiplier.
// This is the single source of truth for valid activity levels — also used
// for request validation and the /api/options listing.
var activityMultipliers = map[string]float64{
	"sedentary":   1.2,
	"light":       1.375,
	"moderate":    1.55,
	"active":      1.725,
	"very_active": 1.9,
}

// goalAdjustments maps a named goal to its daily calorie delta.
// Negative = deficit (weight loss), positive = surplus (weight gain).
// The names encode the implied pace: gentle ≈ 0.5 lb/week, standard ≈ 1 lb/week.
var goalAdjustments = map[string]float64{
	"maintain":      0,
	"lose_gentle":   -250,
	"lose_standard": -500,
	"gain_lean":     250,
	"gain_standard": 500,
}

// macroRatio is a carb/protein/fat calorie split. Every preset must sum to 1.0.
type macroRatio struct {
	Carbs   float64 `json:"carbs"`
	Protein float64 `json:"protein"`
	Fat     float64 `json:"fat"`
}

// macroPresets maps preset names to their C/P/F ratio.
var macroPresets = map[string]macroRatio{
	"balanced":     {Carbs: 0.40, Protein: 0.30, Fat: 0.30},
	"high_protein": {Carbs: 0.30, Protein: 0.40, Fat: 0.30},
	"lower_carb":   {Carbs: 0.35, Protein: 0.30, Fat: 0.35},
	"high_carb":    {Carbs: 0.50, Protein: 0.30, Fat: 0.20},
}

// metValues maps exercise activity names to their MET
// (Metabolic Equivalent of Task) value.
var metValues = map[string]float64{
	"running_slow":      9.8,  // ~10 min/mile
	"running_fast":      12.8, // ~7 min/mile
	"cycling_moderate":  8.0,  // 12-14 mph
	"weightlifting":     6.0,  // vigorous
	"walking_brisk":     3.8,  // 3.5 mph
	"yoga":              2.5,
	"swimming_moderate": 7.0,
}

// Calorie constants.
const (
	minDailyCalories = 1200 // minimum healthy intake; target never goes below
	kcalPerKgFat     = 7700 // approximate energy content of 1 kg body fat
	kcalPerGProtein  = 4    // Atwater factors
	kcalPerGCarbs    = 4
	kcalPerGFat      = 9
)

/* ─── Core types ─────────────────────────────────────────────────────── */

// bodyProfile is the anthropometric input every energy calculation starts
// from. Always metric — unit conversion happens before the profile is built.
type bodyProfile struct {
	WeightKG float64
	HeightCM float64
	Age      int
	Sex      string // "male" or "female"
}

// macroResult is the computed daily calorie target with its macro split.
// All fields are rounded to 1 decimal place. Grams are derived from
// calories via the Atwater factors (4/4/9), never set independently.
type macroResult struct {
	TargetCalories float64 `json:"target_calories"`
	ProteinG       float64 `json:"protein_g"`
	ProteinCal     float64 `json:"protein_cal"`
	CarbsG         float64 `json:"carbs_g"`
	CarbsCal       float64 `json:"carbs_cal"`
	FatG           float64 `json:"fat_g"`
	FatCal         float64 `json:"fat_cal"`
}

// round1 rounds to 1 decimal place, halves away from zero.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

/* ─── Calculator functions ───────────────────────────────────────────── */

// computeBMR computes Basal Metabolic Rate via Mifflin-St Jeor:
// 10*kg + 6.25*cm - 5*age, +5 for male / -161 for female.
// Non-positive weight, height, or age, or an unknown sex, is an input error —
// the formula would happily return a negative "BMR" otherwise.
func computeBMR(p bodyProfile) (float64, error) {
	if p.WeightKG <= 0 || p.HeightCM <= 0 || p.Age <= 0 {
		return 0, fmt.Errorf("%w: weight, height, and age must be positive", errInvalidInput)
	}
	bmr := 10*p.WeightKG + 6.25*p.HeightCM - 5*float64(p.Age)
	switch p.Sex {
	case "male":
		bmr += 5
	case "female":
		bmr -= 161
	default:
		return 0, fmt.Errorf("%w: sex must be male or female", errInvalidInput)
	}
	return bmr, nil
}

// computeTDEE scales BMR by the activity level multiplier. There is no
// default level — an unknown key is an error, not a silent sedentary guess.
func computeTDEE(bmr float64, activityLevel string) (float64, error) {
	mult, ok := activityMultipliers[activityLevel]
	if !ok {
		return 0, fmt.Errorf("%w: unknown activity level %q", errInvalidInput, activityLevel)
	}
	return bmr * mult, nil
}

// computeMacros derives the daily calorie target (TDEE plus goal adjustment,
// never below minDailyCalories) and splits it into macros per the preset.
// Maintenance-only deployments call this with adjustment 0 — same path,
// no separate mode.
//
// The 1200 floor applies even when it silently defeats a requested deficit
// for low-TDEE profiles; that matches the original behavior on purpose.
func computeMacros(tdee, adjustment float64, preset string) (macroResult, error) {
	ratio, ok := macroPresets[preset]
	if !ok {
		return macroResult{}, fmt.Errorf("%w: unknown macro preset %q", errInvalidInput, preset)
	}

	target := tdee + adjustment
	if target < minDailyCalories {
		target = minDailyCalories
	}

	proteinCal := target * ratio.Protein
	carbsCal := target * ratio.Carbs
	fatCal := target * ratio.Fat

	return macroResult{
		TargetCalories: round1(target),
		ProteinG:       round1(proteinCal / kcalPerGProtein),
		ProteinCal:     round1(proteinCal),
		CarbsG:         round1(carbsCal / kcalPerGCarbs),
		CarbsCal:       round1(carbsCal),
		FatG:           round1(fatCal / kcalPerGFat),
		FatCal:         round1(fatCal),
	}, nil
}

// computeWaterIntake returns the recommended daily water intake in liters:
// 35 ml per kg of body weight, rounded to 1 decimal.
func computeWaterIntake(weightKG float64) float64 {
	return round1(weightKG * 35 / 1000)
}

// computeBMI returns Body Mass Index and its category. A non-positive
// height returns (0, "N/A") rather than an error — long-standing contract
// with callers that render the degenerate case instead of failing.
func computeBMI(weightKG, heightCM float64) (float64, string) {
	if heightCM <= 0 {
		return 0, "N/A"
	}
	heightM := heightCM / 100
	bmi := round1(weightKG / (heightM * heightM))

	var category string
	switch {
	case bmi < 18.5:
		category = "Underweight"
	case bmi < 25:
		category = "Healthy Weight"
	case bmi < 30:
		category = "Overweight"
	default:
		category = "Obese"
	}
	return bmi, category
}

// computeGoalTimeline estimates the whole weeks needed to reach a lower
// target weight at the given daily calorie deficit, using 7700 kcal per kg
// of body fat. Returns 0 when there is no deficit or nothing to lose —
// only meaningful for weight-loss goals.
func computeGoalTimeline(currentWeightKG, targetWeightKG, dailyDeficit float64) int {
	if dailyDeficit <= 0 {
		return 0
	}
	kgToLose := currentWeightKG - targetWeightKG
	if kgToLose <= 0 {
		return 0
	}
	totalDays := kgToLose * kcalPerKgFat / dailyDeficit
	return int(math.Ceil(totalDays / 7))
}

// computeExerciseCalories estimates calories burned: MET * kg * hours,
// floored to a whole kcal. Returns ok=false for met == 0 (the "no activity
// selected" sentinel) so callers can tell "not computed" from a genuine
// zero-calorie estimate.
func computeExerciseCalories(met, weightKG, durationMinutes float64) (int, bool) {
	if met == 0 {
		return 0, false
	}
	return int(math.Floor(met * weightKG * durationMinutes / 60)), true
}
