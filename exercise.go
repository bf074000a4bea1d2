package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// estimateExercise handles POST /api/exercise: MET-based calorie burn.
// An empty activity is "nothing selected" and returns computed=false so the
// client can tell that apart from a genuine zero-calorie estimate. An
// activity we have no MET value for is a client error.
func (h *Handler) estimateExercise(c *gin.Context) {
	var req exerciseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	var weightKG float64
	switch {
	case req.WeightKG != nil:
		weightKG = *req.WeightKG
	case req.WeightLBS != nil:
		weightKG = lbsToKG(*req.WeightLBS)
	}
	if weightKG <= 0 {
		apiError(c, http.StatusBadRequest, "weight_kg or weight_lbs must be positive")
		return
	}

	if req.Activity == "" {
		c.JSON(http.StatusOK, exerciseResponse{Computed: false})
		return
	}

	met, ok := metValues[req.Activity]
	if !ok {
		apiError(c, http.StatusBadRequest, "unknown activity; see /api/options for valid names")
		return
	}

	calories, computed := computeExerciseCalories(met, weightKG, req.DurationMinutes)
	if !computed {
		c.JSON(http.StatusOK, exerciseResponse{Computed: false})
		return
	}

	c.JSON(http.StatusOK, exerciseResponse{
		Computed:       true,
		Activity:       req.Activity,
		MET:            met,
		WeightKG:       round1(weightKG),
		CaloriesBurned: calories,
	})
}

// getOptions handles GET /api/options: every valid enum value and its
// associated constant, for client selectors. Goals are omitted in
// maintenance-only mode since the goal input is ignored there.
func (h *Handler) getOptions(c *gin.Context) {
	resp := optionsResponse{
		ActivityLevels: activityMultipliers,
		MacroPresets:   macroPresets,
		Activities:     metValues,
	}
	if !h.cfg.Calculator.MaintenanceOnly {
		resp.Goals = goalAdjustments
	}
	c.JSON(http.StatusOK, resp)
}
