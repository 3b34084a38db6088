package models

import (
	"time"

	"github.com/google/uuid"
)

// Inquiry is a contact-form submission from the public site
type Inquiry struct {
	ID         uuid.UUID     `json:"id"`
	Name       string        `json:"name"`
	Email      string        `json:"email"`
	Phone      string        `json:"phone,omitempty"`
	Message    string        `json:"message"`
	SourcePage SourcePage    `json:"sourcePage"`
	Status     InquiryStatus `json:"status"`
	AdminNotes string        `json:"adminNotes,omitempty"`
	CreatedAt  time.Time     `json:"createdAt"`
	UpdatedAt  time.Time     `json:"updatedAt"`
}

// InquiryFilter selects and orders a page of inquiries
type InquiryFilter struct {
	Status    InquiryStatus
	Page      int
	Limit     int
	SortBy    string
	SortOrder string
}

// Offset returns the number of rows to skip for the filter's page
func (f InquiryFilter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return (f.Page - 1) * f.Limit
}

// InquiryStats aggregates inquiry counts
type InquiryStats struct {
	Total    int64                   `json:"total"`
	ByStatus map[InquiryStatus]int64 `json:"byStatus"`
}
