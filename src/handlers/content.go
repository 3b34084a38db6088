package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/khabaroff/sitecraft-api/src/response"
	"github.com/khabaroff/sitecraft-api/src/services"
	"github.com/khabaroff/sitecraft-api/src/validation"
)

// ContentHandler serves editable site copy
type ContentHandler struct {
	content *services.ContentService
}

// NewContentHandler creates a new content handler
func NewContentHandler(content *services.ContentService) *ContentHandler {
	return &ContentHandler{content: content}
}

// HandleGetAll handles GET /content
func (h *ContentHandler) HandleGetAll(c *gin.Context) {
	values, err := h.content.GetAll(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Content retrieved successfully", values)
}

// HandleGet handles GET /content/:key
func (h *ContentHandler) HandleGet(c *gin.Context) {
	content, err := h.content.GetByKey(c.Request.Context(), c.Param("key"))
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Content retrieved successfully", content)
}

// HandleUpdate handles PUT /content/:key (create or overwrite)
func (h *ContentHandler) HandleUpdate(c *gin.Context) {
	var req validation.UpdateContent
	if !bindJSON(c, &req) {
		return
	}

	content, err := h.content.Update(c.Request.Context(), c.Param("key"), req)
	if err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Content updated successfully", content)
}

// HandleDelete handles DELETE /content/:key
func (h *ContentHandler) HandleDelete(c *gin.Context) {
	if err := h.content.Delete(c.Request.Context(), c.Param("key")); err != nil {
		_ = c.Error(err)
		return
	}
	response.OK(c, "Content deleted successfully", nil)
}
