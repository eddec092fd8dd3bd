package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lg/nutrition-calculator-api/internal/nutrition"
)

// getActivityLevels returns the accepted activity tokens in display order.
// GET /api/nutrition/activity-levels.
func (h *Handler) getActivityLevels(c *gin.Context) {
	c.JSON(http.StatusOK, nutrition.ActivityLevels())
}

// postEstimate validates one calculator submission and returns either every
// validation issue (422) or the daily intake estimate (200).
// POST /api/nutrition/estimate. Body is JSON or form fields: height, weight,
// age, activity. Numeric fields may be strings or numbers; anything that is
// not a positive number is reported as an issue, not a 400.
func (h *Handler) postEstimate(c *gin.Context) {
	var body estimateRequest
	if err := c.ShouldBind(&body); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome := nutrition.Submit(body.raw())
	h.metrics.observe(outcome)

	resp := estimateResponse{State: outcome.State, Issues: outcome.Issues, Estimate: outcome.Estimate}
	if outcome.State != nutrition.StateValid {
		c.JSON(http.StatusUnprocessableEntity, resp)
		return
	}
	c.JSON(http.StatusOK, resp)
}
