package models

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Content is a named slot of editable site copy
type Content struct {
	ID          uuid.UUID       `json:"id"`
	Key         string          `json:"key"`
	Value       json.RawMessage `json:"value"`
	Description string          `json:"description,omitempty"`
	Version     int             `json:"version"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}

// Well-known content keys used by the marketing site
const (
	ContentKeyServices  = "services"
	ContentKeyAbout     = "about"
	ContentKeyFooterCTA = "footer_cta"
)
