package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/khabaroff/sitecraft-api/src/response"
	"github.com/khabaroff/sitecraft-api/src/services"
	"github.com/khabaroff/sitecraft-api/src/validation"
)

// PricingHandler serves pricing plans
type PricingHandler struct {
	pricing *services.PricingService
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricing *services.PricingService) *PricingHandler {
	return &PricingHandler{pricing: pricing}
}

// HandleListVisible handles GET /pricing (public)
func (h *PricingHandler) HandleListVisible(c *gin.Context) {
	plans, err := h.pricing.ListVisible(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Pricing packages retrieved successfully", plans)
}

// HandleListAll handles GET /pricing/all
func (h *PricingHandler) HandleListAll(c *gin.Context) {
	plans, err := h.pricing.ListAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "All pricing packages retrieved successfully", plans)
}

// HandleGet handles GET /pricing/:id
func (h *PricingHandler) HandleGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	plan, err := h.pricing.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Pricing package retrieved successfully", plan)
}

// HandleCreate handles POST /pricing
func (h *PricingHandler) HandleCreate(c *gin.Context) {
	var req validation.CreatePricing
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.pricing.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.Created(c, "Pricing package created successfully", plan)
}

// HandleUpdate handles PUT /pricing/:id
func (h *PricingHandler) HandleUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req validation.UpdatePricing
	if !bindJSON(c, &req) {
		return
	}

	plan, err := h.pricing.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Pricing package updated successfully", plan)
}

// HandleToggle handles PATCH /pricing/:id/toggle
func (h *PricingHandler) HandleToggle(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	plan, err := h.pricing.ToggleVisibility(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Pricing visibility toggled successfully", plan)
}

// HandleDelete handles DELETE /pricing/:id
func (h *PricingHandler) HandleDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.pricing.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Pricing package deleted successfully", nil)
}
