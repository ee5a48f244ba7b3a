package models

import (
	"time"

	"github.com/google/uuid"
)

// Department is a named organizational bucket. SPOCs reference it by ID;
// departments hold SPOC IDs as weak references, never embedded records.
type Department struct {
	ID          uuid.UUID   `json:"id"`
	Name        string      `json:"name" validate:"required,max=100"`
	Description string      `json:"description" validate:"max=200"`
	Color       string      `json:"color"` // display color, hex
	SPOCIDs     []uuid.UUID `json:"spoc_ids"`
	Active      bool        `json:"active"`
	CreatedAt   time.Time   `json:"created_at"`
}
