package main

import (
	"log"
	"math"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// resolveBodyMetrics extracts metric weight/height from a plan request,
// converting imperial inputs when units == "imperial". Missing fields for
// the selected unit system are reported as a human-readable message.
func resolveBodyMetrics(req *planRequest) (weightKG, heightCM float64, errMsg string) {
	if req.Units == "imperial" {
		if req.WeightLBS == nil || req.HeightFT == nil || req.HeightIN == nil {
			return 0, 0, "imperial requests require weight_lbs, height_ft, and height_in"
		}
		return lbsToKG(*req.WeightLBS), feetInchesToCM(*req.HeightFT, *req.HeightIN), ""
	}
	if req.WeightKG == nil || req.HeightCM == nil {
		return 0, 0, "metric requests require weight_kg and height_cm"
	}
	return *req.WeightKG, *req.HeightCM, ""
}

// resolveTargetWeightKG returns the optional timeline target weight in kg,
// or 0 when none was provided.
func resolveTargetWeightKG(req *planRequest) float64 {
	if req.Units == "imperial" {
		if req.TargetWeightLBS != nil {
			return lbsToKG(*req.TargetWeightLBS)
		}
		return 0
	}
	if req.TargetWeightKG != nil {
		return *req.TargetWeightKG
	}
	return 0
}

// computePlan handles POST /api/plan: the full calculation pipeline.
// BMR → TDEE → goal-adjusted macros, plus water, BMI, and (for loss goals
// with a target weight below current) the estimated timeline.
func (h *Handler) computePlan(c *gin.Context) {
	var req planRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	weightKG, heightCM, errMsg := resolveBodyMetrics(&req)
	if errMsg != "" {
		apiError(c, http.StatusBadRequest, errMsg)
		return
	}

	// Goal adjustment. In maintenance-only deployments the goal input is
	// ignored outright and every plan targets maintenance.
	adjustment := 0.0
	goal := req.Goal
	if h.cfg.Calculator.MaintenanceOnly {
		goal = "maintain"
	} else if goal != "" {
		adj, ok := goalAdjustments[goal]
		if !ok {
			apiError(c, http.StatusBadRequest, "goal must be one of: maintain, lose_gentle, lose_standard, gain_lean, gain_standard")
			return
		}
		adjustment = adj
	}

	profile := bodyProfile{
		WeightKG: weightKG,
		HeightCM: heightCM,
		Age:      req.Age,
		Sex:      req.Sex,
	}

	bmr, err := computeBMR(profile)
	if err != nil {
		apiError(c, http.StatusBadRequest, err.Error())
		return
	}
	tdee, err := computeTDEE(bmr, req.ActivityLevel)
	if err != nil {
		apiError(c, http.StatusBadRequest, "activity_level must be one of: sedentary, light, moderate, active, very_active")
		return
	}
	macros, err := computeMacros(tdee, adjustment, req.MacroPreset)
	if err != nil {
		apiError(c, http.StatusBadRequest, "macro_preset must be one of: balanced, high_protein, lower_carb, high_carb")
		return
	}

	bmi, bmiCategory := computeBMI(weightKG, heightCM)

	resp := planResponse{
		WeightKG:          round1(weightKG),
		HeightCM:          round1(heightCM),
		BMR:               round1(bmr),
		TDEE:              round1(tdee),
		CalorieAdjustment: adjustment,
		Macros:            macros,
		MacroPercent: macroPercent{
			Protein: round1(macros.ProteinCal / macros.TargetCalories * 100),
			Carbs:   round1(macros.CarbsCal / macros.TargetCalories * 100),
			Fat:     round1(macros.FatCal / macros.TargetCalories * 100),
		},
		WaterLiters: computeWaterIntake(weightKG),
		BMI:         bmi,
		BMICategory: bmiCategory,
	}

	// Timeline only applies to loss goals with a real target below the
	// current weight. The deficit used is the goal's adjustment magnitude.
	if strings.HasPrefix(goal, "lose_") {
		if targetKG := resolveTargetWeightKG(&req); targetKG > 0 && targetKG < weightKG {
			weeks := computeGoalTimeline(weightKG, targetKG, math.Abs(adjustment))
			if weeks > 0 {
				rounded := round1(targetKG)
				resp.TimelineWeeks = &weeks
				resp.TimelineTargetKG = &rounded
			}
		}
	}

	log.Printf("[plan] %s computed plan: goal=%s tdee=%.0f target=%.0f", c.GetString("request_id"), goal, tdee, macros.TargetCalories)
	c.JSON(http.StatusOK, resp)
}
