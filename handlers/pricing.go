package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tidybee/models"
	"tidybee/services/pricing"
	"tidybee/utils"
)

// PricingHandler exposes the pricing engine to the booking form.
type PricingHandler struct {
	Engine pricing.PricingEngine
	Logger *zap.Logger
}

// NewPricingHandler creates a new PricingHandler.
func NewPricingHandler(engine pricing.PricingEngine, logger *zap.Logger) *PricingHandler {
	return &PricingHandler{Engine: engine, Logger: logger}
}

// QuoteHandler computes a price quote for a prospective booking. The response
// carries a quoteId so a debouncing caller can discard superseded results.
func (h *PricingHandler) QuoteHandler(c *gin.Context) {
	var input models.QuoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid quote input", err.Error())
		return
	}
	if input.CleanerID == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid quote input", "cleaner_id is required")
		return
	}

	req := input.ToBookingRequest()
	if req.Hours <= 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid quote input", "hours must be greater than zero")
		return
	}

	result, err := h.Engine.CalculatePrice(req)
	if err != nil {
		if pricing.IsNotFound(err) {
			utils.JSONError(c, http.StatusNotFound, "cleaner has no rate card", err.Error())
			return
		}
		h.Logger.Error("Quote calculation failed",
			zap.String("cleanerId", req.CleanerID),
			zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to calculate price", err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"quoteId": uuid.New().String(),
		"pricing": result,
	})
}
