// Package response writes the JSON envelope shared by every endpoint.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/khabaroff/sitecraft-api/src/models"
)

// Envelope is the standard API response body.
type Envelope struct {
	Success    bool               `json:"success"`
	Message    string             `json:"message,omitempty"`
	Data       any                `json:"data,omitempty"`
	Errors     []string           `json:"errors,omitempty"`
	Pagination *models.Pagination `json:"pagination,omitempty"`
}

// JSON writes a successful envelope with the given status code.
func JSON(c *gin.Context, status int, message string, data any) {
	c.JSON(status, Envelope{Success: true, Message: message, Data: data})
}

// OK writes a 200 envelope.
func OK(c *gin.Context, message string, data any) {
	JSON(c, http.StatusOK, message, data)
}

// Created writes a 201 envelope.
func Created(c *gin.Context, message string, data any) {
	JSON(c, http.StatusCreated, message, data)
}

// Paginated writes a 200 envelope with top-level pagination.
func Paginated(c *gin.Context, message string, data any, pagination models.Pagination) {
	c.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data, Pagination: &pagination})
}

// Fail writes an error envelope and aborts the handler chain.
func Fail(c *gin.Context, status int, message string, errors []string) {
	c.AbortWithStatusJSON(status, Envelope{Success: false, Message: message, Errors: errors})
}
