package models

import (
	"time"

	"github.com/google/uuid"
)

// SPOC is a single point of contact scoped to one department. Assigned
// groups are back-references by ID, not ownership.
type SPOC struct {
	ID               uuid.UUID   `json:"id"`
	Name             string      `json:"name" validate:"required,max=200"`
	Email            string      `json:"email" validate:"required,email,max=255"`
	Phone            string      `json:"phone" validate:"max=20"`
	DepartmentID     uuid.UUID   `json:"department_id"`
	AssignedGroupIDs []uuid.UUID `json:"assigned_group_ids"`
	CreatedAt        time.Time   `json:"created_at"`
}
