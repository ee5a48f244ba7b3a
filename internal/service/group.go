package service

import (
	"fmt"
	"time"

	"volunteer-hub-backend/internal/codegen"
	"volunteer-hub-backend/internal/database/models"
	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/logger"
	"volunteer-hub-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// maxCodeAttempts bounds join-code regeneration on collision so allocation
// can never loop forever.
const maxCodeAttempts = 10

// GroupService owns the group lifecycle: creation with a unique join code,
// capacity-bounded joining, task assignment and SPOC linkage.
type GroupService struct {
	repo      repository.GroupRepositoryInterface
	spocRepo  repository.SPOCRepositoryInterface
	validator *validator.Validate
	baseURL   string
	log       *logger.Logger
}

// NewGroupService creates a new group service. baseURL is the public origin
// used to build join URLs.
func NewGroupService(repo repository.GroupRepositoryInterface, spocRepo repository.SPOCRepositoryInterface, validator *validator.Validate, baseURL string) *GroupService {
	return &GroupService{
		repo:      repo,
		spocRepo:  spocRepo,
		validator: validator,
		baseURL:   baseURL,
		log:       logger.WithComponent("groups"),
	}
}

// CreateGroupRequest represents the request to register a group. The leader
// must already have completed the verification workflow.
type CreateGroupRequest struct {
	Name       string           `json:"name" validate:"required,min=1,max=200"`
	MaxMembers int              `json:"max_members" validate:"required"`
	Leader     models.Volunteer `json:"leader"`
}

// JoinGroupRequest represents a verified volunteer joining by code
type JoinGroupRequest struct {
	Code   string           `json:"code" validate:"required"`
	Member models.Volunteer `json:"member"`
}

// AssignTaskRequest represents a task assignment for a group
type AssignTaskRequest struct {
	Task       string `json:"task" validate:"required,max=500"`
	AssignedBy string `json:"assigned_by"`
}

// GroupResponse represents the response for group operations
type GroupResponse struct {
	ID            uuid.UUID          `json:"id"`
	Name          string             `json:"name"`
	Code          string             `json:"code"`
	FormattedCode string             `json:"formatted_code"`
	JoinURL       string             `json:"join_url"`
	Leader        models.Leader      `json:"leader"`
	Members       []models.Volunteer `json:"members"`
	MemberCount   int                `json:"member_count"`
	HeadCount     int                `json:"head_count"`
	MaxMembers    int                `json:"max_members"`
	CreatedAt     time.Time          `json:"created_at"`
	Task          string             `json:"task,omitempty"`
	AssignedTo    string             `json:"assigned_to,omitempty"`
	DepartmentID  *uuid.UUID         `json:"department_id,omitempty"`
	SPOCID        *uuid.UUID         `json:"spoc_id,omitempty"`
}

// GroupListResponse represents a list of groups
type GroupListResponse struct {
	Groups []GroupResponse `json:"groups"`
	Total  int             `json:"total"`
}

// Create registers a new group for a fully verified leader. The join code
// is generated and checked against the persisted collection, regenerating on
// collision with a bounded number of attempts.
func (s *GroupService) Create(req *CreateGroupRequest) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if req.MaxMembers < models.MinGroupCapacity || req.MaxMembers > models.MaxGroupCapacity {
		return nil, apperrors.ErrInvalidCapacity
	}
	if !req.Leader.FullyVerified() {
		return nil, apperrors.ErrLeaderNotVerified
	}

	code, err := s.allocateCode()
	if err != nil {
		return nil, err
	}

	group := &models.Group{
		ID:   uuid.New(),
		Name: req.Name,
		Code: code,
		Leader: models.Leader{
			UID:   req.Leader.UID,
			Name:  req.Leader.Name,
			Email: req.Leader.Email,
			Phone: req.Leader.Phone,
		},
		Members:    []models.Volunteer{},
		CreatedAt:  time.Now(),
		MaxMembers: req.MaxMembers,
	}

	if err := s.repo.Create(group); err != nil {
		return nil, fmt.Errorf("failed to create group: %w", err)
	}

	s.log.WithFields(map[string]interface{}{"group_id": group.ID, "code": group.Code}).Info("group created")
	return s.toResponse(group), nil
}

// ResolveByCode finds a group by join code. Input is normalized (hyphens
// stripped, upper-cased) before the exact match against canonical codes.
func (s *GroupService) ResolveByCode(input string) (*GroupResponse, error) {
	group, err := s.resolve(input)
	if err != nil {
		return nil, err
	}
	return s.toResponse(group), nil
}

// Join appends a fully verified volunteer to the group behind the code.
// Failures (invalid code, group full, duplicate email) never mutate the
// group; the duplicate check covers the leader as well as the members.
func (s *GroupService) Join(req *JoinGroupRequest) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}
	if !req.Member.FullyVerified() {
		return nil, apperrors.ErrMemberNotVerified
	}

	group, err := s.resolve(req.Code)
	if err != nil {
		return nil, err
	}
	if group.IsFull() {
		return nil, apperrors.ErrGroupFull
	}
	if group.HasEmail(req.Member.Email) {
		return nil, apperrors.ErrDuplicateEmail
	}

	member := req.Member
	if member.JoinedAt.IsZero() {
		member.JoinedAt = time.Now()
	}
	group.Members = append(group.Members, member)

	if err := s.repo.Update(group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	s.log.WithFields(map[string]interface{}{"group_id": group.ID, "member_uid": member.UID}).Info("member joined group")
	return s.toResponse(group), nil
}

// AssignTask overwrites the group's task and assignment source. The
// operation is idempotent and unauthenticated: the managing surface this
// backs has no auth model.
func (s *GroupService) AssignTask(id uuid.UUID, req *AssignTaskRequest) (*GroupResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	group, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	group.Task = req.Task
	assignedBy := req.AssignedBy
	if assignedBy == "" {
		assignedBy = "self"
	}
	group.AssignedTo = assignedBy

	if err := s.repo.Update(group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	return s.toResponse(group), nil
}

// AssignSPOC links a group to a SPOC and the SPOC's department. The SPOC
// side keeps a back-reference by ID only.
func (s *GroupService) AssignSPOC(id uuid.UUID, spocID uuid.UUID) (*GroupResponse, error) {
	group, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	spoc, err := s.spocRepo.GetByID(spocID)
	if err != nil {
		return nil, err
	}

	group.SPOCID = &spoc.ID
	group.DepartmentID = &spoc.DepartmentID
	if err := s.repo.Update(group); err != nil {
		return nil, fmt.Errorf("failed to update group: %w", err)
	}

	assigned := false
	for _, gid := range spoc.AssignedGroupIDs {
		if gid == group.ID {
			assigned = true
			break
		}
	}
	if !assigned {
		spoc.AssignedGroupIDs = append(spoc.AssignedGroupIDs, group.ID)
		if err := s.spocRepo.Update(spoc); err != nil {
			return nil, fmt.Errorf("failed to update SPOC: %w", err)
		}
	}

	return s.toResponse(group), nil
}

// GetByID retrieves a group by ID
func (s *GroupService) GetByID(id uuid.UUID) (*GroupResponse, error) {
	group, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.toResponse(group), nil
}

// GetAll retrieves all groups
func (s *GroupService) GetAll() (*GroupListResponse, error) {
	groups, err := s.repo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to get groups: %w", err)
	}

	responses := make([]GroupResponse, len(groups))
	for i := range groups {
		responses[i] = *s.toResponse(&groups[i])
	}

	return &GroupListResponse{
		Groups: responses,
		Total:  len(responses),
	}, nil
}

// JoinURL builds the canonical join URL for a code; the query parameter
// carries the unformatted code.
func (s *GroupService) JoinURL(code string) string {
	return fmt.Sprintf("%s/join?code=%s", s.baseURL, code)
}

func (s *GroupService) resolve(input string) (*models.Group, error) {
	if !codegen.IsValidCode(input) {
		return nil, apperrors.ErrInvalidCode
	}

	group, err := s.repo.GetByCode(codegen.Normalize(input))
	if err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCode
		}
		return nil, fmt.Errorf("failed to resolve group: %w", err)
	}
	return group, nil
}

func (s *GroupService) allocateCode() (string, error) {
	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code := codegen.GenerateJoinCode()
		exists, err := s.repo.CodeExists(code)
		if err != nil {
			return "", fmt.Errorf("failed to check code uniqueness: %w", err)
		}
		if !exists {
			return code, nil
		}
	}
	return "", apperrors.ErrCodeAllocationFailed
}

func (s *GroupService) toResponse(group *models.Group) *GroupResponse {
	return &GroupResponse{
		ID:            group.ID,
		Name:          group.Name,
		Code:          group.Code,
		FormattedCode: codegen.FormatCode(group.Code),
		JoinURL:       s.JoinURL(group.Code),
		Leader:        group.Leader,
		Members:       group.Members,
		MemberCount:   len(group.Members),
		HeadCount:     group.HeadCount(),
		MaxMembers:    group.MaxMembers,
		CreatedAt:     group.CreatedAt,
		Task:          group.Task,
		AssignedTo:    group.AssignedTo,
		DepartmentID:  group.DepartmentID,
		SPOCID:        group.SPOCID,
	}
}
