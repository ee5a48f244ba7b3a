package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Capacity bounds for non-leader members of a group.
const (
	MinGroupCapacity = 5
	MaxGroupCapacity = 10
)

// Leader is the snapshot of the group leader captured at registration time.
// The leader is counted separately from the member list.
type Leader struct {
	UID   string `json:"uid"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Group is a team of volunteers rallying under one join code. Members are
// stored in join order; the code is immutable after creation and unique
// across all groups.
type Group struct {
	ID           uuid.UUID   `json:"id"`
	Name         string      `json:"name" validate:"required,max=200"`
	Code         string      `json:"code"`
	Leader       Leader      `json:"leader"`
	Members      []Volunteer `json:"members"`
	CreatedAt    time.Time   `json:"created_at"`
	MaxMembers   int         `json:"max_members" validate:"min=5,max=10"`
	Task         string      `json:"task,omitempty"`
	AssignedTo   string      `json:"assigned_to,omitempty"`
	DepartmentID *uuid.UUID  `json:"department_id,omitempty"`
	SPOCID       *uuid.UUID  `json:"spoc_id,omitempty"`
}

// IsFull reports whether the group has reached its member capacity.
func (g *Group) IsFull() bool {
	return len(g.Members) >= g.MaxMembers
}

// HasEmail reports whether the given email already belongs to the leader or
// an existing member. Comparison is case-insensitive.
func (g *Group) HasEmail(email string) bool {
	if strings.EqualFold(g.Leader.Email, email) {
		return true
	}
	for _, m := range g.Members {
		if strings.EqualFold(m.Email, email) {
			return true
		}
	}
	return false
}

// HeadCount is the total size reported to users: members plus the leader.
func (g *Group) HeadCount() int {
	return len(g.Members) + 1
}
