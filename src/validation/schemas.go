package validation

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/khabaroff/sitecraft-api/src/apperrors"
	"github.com/khabaroff/sitecraft-api/src/models"
)

const (
	defaultPage  = 1
	defaultLimit = 20
	maxKeyLength = 100
)

// Login is the body of POST /auth/login
type Login struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (l *Login) Normalize() {
	l.Email = strings.ToLower(strings.TrimSpace(l.Email))
}

// CreateAdmin is the input of the startup admin seed
type CreateAdmin struct {
	Name     string      `json:"name" validate:"required,min=2,max=100"`
	Email    string      `json:"email" validate:"required,email"`
	Password string      `json:"password" validate:"required,min=6"`
	Role     models.Role `json:"role" validate:"required,oneof=admin super-admin"`
}

func (ca *CreateAdmin) Normalize() {
	ca.Name = strings.TrimSpace(ca.Name)
	ca.Email = strings.ToLower(strings.TrimSpace(ca.Email))
	if ca.Role == "" {
		ca.Role = models.RoleAdmin
	}
}

// CreateInquiry is the public contact-form payload
type CreateInquiry struct {
	Name       string            `json:"name" validate:"required,min=2,max=100"`
	Email      string            `json:"email" validate:"required,email"`
	Phone      string            `json:"phone" validate:"omitempty,phone"`
	Message    string            `json:"message" validate:"required,min=10,max=1000"`
	SourcePage models.SourcePage `json:"sourcePage" validate:"required,oneof=home services solutions pricing about contact"`
}

func (ci *CreateInquiry) Normalize() {
	ci.Name = strings.TrimSpace(ci.Name)
	ci.Email = strings.ToLower(strings.TrimSpace(ci.Email))
	ci.Phone = strings.TrimSpace(ci.Phone)
	ci.Message = strings.TrimSpace(ci.Message)
	ci.SourcePage = models.SourcePage(strings.TrimSpace(string(ci.SourcePage)))
	if ci.SourcePage == "" {
		ci.SourcePage = models.SourcePageContact
	}
}

// UpdateInquiry carries the staff-editable inquiry fields. Nil means unchanged.
type UpdateInquiry struct {
	Status     *models.InquiryStatus `json:"status" validate:"omitnil,oneof=new contacted in-progress converted closed"`
	AdminNotes *string               `json:"adminNotes" validate:"omitnil,max=500"`
}

func (ui *UpdateInquiry) Normalize() {
	if ui.Status != nil {
		s := models.InquiryStatus(strings.ToLower(strings.TrimSpace(string(*ui.Status))))
		ui.Status = &s
	}
	if ui.AdminNotes != nil {
		n := strings.TrimSpace(*ui.AdminNotes)
		ui.AdminNotes = &n
	}
}

func (ui *UpdateInquiry) CrossCheck() []string {
	if ui.Status == nil && ui.AdminNotes == nil {
		return []string{"At least one of status or adminNotes must be provided"}
	}
	return nil
}

// ListInquiries is the query string of GET /inquiries
type ListInquiries struct {
	Status    string `form:"status" json:"status" validate:"omitempty,oneof=new contacted in-progress converted closed"`
	Page      int    `form:"page" json:"page" validate:"min=1"`
	Limit     int    `form:"limit" json:"limit" validate:"min=1,max=100"`
	SortBy    string `form:"sortBy" json:"sortBy" validate:"oneof=createdAt updatedAt name email status"`
	SortOrder string `form:"sortOrder" json:"sortOrder" validate:"oneof=asc desc"`
}

func (li *ListInquiries) Normalize() {
	li.Status = strings.TrimSpace(li.Status)
	if li.Page == 0 {
		li.Page = defaultPage
	}
	if li.Limit == 0 {
		li.Limit = defaultLimit
	}
	if li.SortBy = strings.TrimSpace(li.SortBy); li.SortBy == "" {
		li.SortBy = models.SortByCreatedAt
	}
	if li.SortOrder = strings.ToLower(strings.TrimSpace(li.SortOrder)); li.SortOrder == "" {
		li.SortOrder = "desc"
	}
}

// Filter converts the query into a repository filter
func (li ListInquiries) Filter() models.InquiryFilter {
	return models.InquiryFilter{
		Status:    models.InquiryStatus(li.Status),
		Page:      li.Page,
		Limit:     li.Limit,
		SortBy:    li.SortBy,
		SortOrder: li.SortOrder,
	}
}

// UpdateContent is the body of PUT /content/:key
type UpdateContent struct {
	Value       json.RawMessage `json:"value" validate:"required,jsonvalue"`
	Description *string         `json:"description" validate:"omitnil,max=500"`
}

func (uc *UpdateContent) Normalize() {
	var buf bytes.Buffer
	if err := json.Compact(&buf, uc.Value); err == nil {
		uc.Value = buf.Bytes()
	}
	if uc.Description != nil {
		d := strings.TrimSpace(*uc.Description)
		uc.Description = &d
	}
}

// ContentKey canonicalizes a content slot name taken from the URL.
func ContentKey(raw string) (string, error) {
	key := strings.ToLower(strings.TrimSpace(raw))
	switch {
	case key == "":
		return "", apperrors.Validation("Key is required")
	case len(key) > maxKeyLength:
		return "", apperrors.Validation("Key cannot exceed 100 characters")
	}
	return key, nil
}

// CreatePricing is the body of POST /pricing
type CreatePricing struct {
	Name         string   `json:"name" validate:"required,min=2,max=100"`
	PriceRange   string   `json:"priceRange" validate:"required,max=50"`
	Description  string   `json:"description" validate:"max=200"`
	Features     []string `json:"features" validate:"omitempty,dive,max=200"`
	IsVisible    *bool    `json:"isVisible"`
	DisplayOrder *int     `json:"displayOrder" validate:"omitnil,min=0"`
}

func (cp *CreatePricing) Normalize() {
	cp.Name = strings.TrimSpace(cp.Name)
	cp.PriceRange = strings.TrimSpace(cp.PriceRange)
	cp.Description = strings.TrimSpace(cp.Description)
	cp.Features = cleanFeatures(cp.Features)
	if cp.IsVisible == nil {
		visible := true
		cp.IsVisible = &visible
	}
	if cp.DisplayOrder == nil {
		order := 0
		cp.DisplayOrder = &order
	}
}

// UpdatePricing is the body of PUT /pricing/:id. Nil fields are left unchanged.
type UpdatePricing struct {
	Name         *string  `json:"name" validate:"omitnil,min=2,max=100"`
	PriceRange   *string  `json:"priceRange" validate:"omitnil,min=1,max=50"`
	Description  *string  `json:"description" validate:"omitnil,max=200"`
	Features     []string `json:"features" validate:"omitempty,dive,max=200"`
	IsVisible    *bool    `json:"isVisible"`
	DisplayOrder *int     `json:"displayOrder" validate:"omitnil,min=0"`
}

func (up *UpdatePricing) Normalize() {
	trimPtr(up.Name)
	trimPtr(up.PriceRange)
	trimPtr(up.Description)
	if up.Features != nil {
		up.Features = cleanFeatures(up.Features)
	}
}

func (up *UpdatePricing) CrossCheck() []string {
	if up.Name == nil && up.PriceRange == nil && up.Description == nil &&
		up.Features == nil && up.IsVisible == nil && up.DisplayOrder == nil {
		return []string{"At least one field must be provided"}
	}
	return nil
}

// Apply copies the present fields onto p
func (up UpdatePricing) Apply(p *models.Pricing) {
	if up.Name != nil {
		p.Name = *up.Name
	}
	if up.PriceRange != nil {
		p.PriceRange = *up.PriceRange
	}
	if up.Description != nil {
		p.Description = *up.Description
	}
	if up.Features != nil {
		p.Features = up.Features
	}
	if up.IsVisible != nil {
		p.IsVisible = *up.IsVisible
	}
	if up.DisplayOrder != nil {
		p.DisplayOrder = *up.DisplayOrder
	}
}

// cleanFeatures trims entries and drops blanks. Never returns nil.
func cleanFeatures(in []string) []string {
	out := make([]string, 0, len(in))
	for _, f := range in {
		if f = strings.TrimSpace(f); f != "" {
			out = append(out, f)
		}
	}
	return out
}

func trimPtr(s *string) {
	if s != nil {
		*s = strings.TrimSpace(*s)
	}
}
