package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/khabaroff/sitecraft-api/src/response"
	"github.com/khabaroff/sitecraft-api/src/services"
	"github.com/khabaroff/sitecraft-api/src/validation"
)

// InquiryHandler handles contact-form submissions and their staff management
type InquiryHandler struct {
	inquiries *services.InquiryService
}

// NewInquiryHandler creates a new inquiry handler
func NewInquiryHandler(inquiries *services.InquiryService) *InquiryHandler {
	return &InquiryHandler{inquiries: inquiries}
}

// HandleCreate handles POST /inquiries (public)
func (h *InquiryHandler) HandleCreate(c *gin.Context) {
	var req validation.CreateInquiry
	if !bindJSON(c, &req) {
		return
	}

	inquiry, err := h.inquiries.Create(c.Request.Context(), req)
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Created(c, "Thank you for contacting us! We will get back to you soon.", gin.H{
		"id":    inquiry.ID,
		"name":  inquiry.Name,
		"email": inquiry.Email,
	})
}

// HandleList handles GET /inquiries
func (h *InquiryHandler) HandleList(c *gin.Context) {
	var query validation.ListInquiries
	if !bindQuery(c, &query) {
		return
	}

	items, pagination, err := h.inquiries.List(c.Request.Context(), query.Filter())
	if err != nil {
		_ = c.Error(err)
		return
	}

	response.Paginated(c, "Inquiries retrieved successfully", items, pagination)
}

// HandleStats handles GET /inquiries/stats
func (h *InquiryHandler) HandleStats(c *gin.Context) {
	stats, err := h.inquiries.Stats(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Statistics retrieved successfully", stats)
}

// HandleGet handles GET /inquiries/:id
func (h *InquiryHandler) HandleGet(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	inquiry, err := h.inquiries.GetByID(c.Request.Context(), id)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Inquiry retrieved successfully", inquiry)
}

// HandleUpdate handles PUT /inquiries/:id
func (h *InquiryHandler) HandleUpdate(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req validation.UpdateInquiry
	if !bindJSON(c, &req) {
		return
	}

	inquiry, err := h.inquiries.Update(c.Request.Context(), id, req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Inquiry updated successfully", inquiry)
}

// HandleDelete handles DELETE /inquiries/:id
func (h *InquiryHandler) HandleDelete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}

	if err := h.inquiries.Delete(c.Request.Context(), id); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Inquiry deleted successfully", nil)
}
