package main

/* ─── Request types ──────────────────────────────────────────────────── */

// planRequest is the request body for POST /api/plan. Body metrics come in
// either unit system: metric requests set weight_kg/height_cm, imperial
// requests set weight_lbs/height_ft/height_in. Pointer fields distinguish
// "not provided" from zero.
type planRequest struct {
	Units string `json:"units"` // "metric" (default) or "imperial"

	WeightKG *float64 `json:"weight_kg"`
	HeightCM *float64 `json:"height_cm"`

	WeightLBS *float64 `json:"weight_lbs"`
	HeightFT  *float64 `json:"height_ft"`
	HeightIN  *float64 `json:"height_in"`

	Age           int    `json:"age" binding:"required,gte=1,lte=120"`
	Sex           string `json:"sex" binding:"required,oneof=male female"`
	ActivityLevel string `json:"activity_level" binding:"required"`
	Goal          string `json:"goal"` // ignored when maintenance_only is set
	MacroPreset   string `json:"macro_preset" binding:"required"`

	// Optional lower target weight for the loss timeline estimate,
	// in the same unit system as the body metrics.
	TargetWeightKG  *float64 `json:"target_weight_kg"`
	TargetWeightLBS *float64 `json:"target_weight_lbs"`
}

// exerciseRequest is the request body for POST /api/exercise.
// An empty activity means "nothing selected" and yields computed=false.
type exerciseRequest struct {
	Activity        string   `json:"activity"`
	DurationMinutes float64  `json:"duration_minutes" binding:"required,gt=0"`
	WeightKG        *float64 `json:"weight_kg"`
	WeightLBS       *float64 `json:"weight_lbs"`
}

/* ─── Response types ─────────────────────────────────────────────────── */

// macroPercent is each macro's share of target calories, in percent.
type macroPercent struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

// planResponse is the full result bundle for POST /api/plan.
// TimelineWeeks is present only for a loss goal with a target weight below
// the current weight; nil means "no timeline", not "zero weeks".
type planResponse struct {
	WeightKG          float64      `json:"weight_kg"`
	HeightCM          float64      `json:"height_cm"`
	BMR               float64      `json:"bmr"`
	TDEE              float64      `json:"tdee"`
	CalorieAdjustment float64      `json:"calorie_adjustment"`
	Macros            macroResult  `json:"macros"`
	MacroPercent      macroPercent `json:"macro_percent"`
	WaterLiters       float64      `json:"water_liters"`
	BMI               float64      `json:"bmi"`
	BMICategory       string       `json:"bmi_category"`
	TimelineWeeks     *int         `json:"timeline_weeks,omitempty"`
	TimelineTargetKG  *float64     `json:"timeline_target_kg,omitempty"`
}

// exerciseResponse is the result for POST /api/exercise. Computed=false
// means no activity was selected — distinct from a real zero-calorie burn.
type exerciseResponse struct {
	Computed       bool    `json:"computed"`
	Activity       string  `json:"activity,omitempty"`
	MET            float64 `json:"met,omitempty"`
	WeightKG       float64 `json:"weight_kg,omitempty"`
	CaloriesBurned int     `json:"calories_burned"`
}

// optionsResponse lists the valid values for every enum input so a client
// can build its selectors. Goals is empty in maintenance-only mode.
type optionsResponse struct {
	ActivityLevels map[string]float64    `json:"activity_levels"`
	Goals          map[string]float64    `json:"goals,omitempty"`
	MacroPresets   map[string]macroRatio `json:"macro_presets"`
	Activities     map[string]float64    `json:"activities"`
}
