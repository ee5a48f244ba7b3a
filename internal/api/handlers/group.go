package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "volunteer-hub-backend/internal/errors"
	"volunteer-hub-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// GroupHandler handles HTTP requests for the group lifecycle. Creation and
// joining both take a completed verification session instead of raw volunteer
// data, so an unverified caller can never enter a group.
type GroupHandler struct {
	service      service.GroupServiceInterface
	verification service.VerificationServiceInterface
	qr           service.QRServiceInterface
}

// NewGroupHandler creates a new group handler
func NewGroupHandler(service service.GroupServiceInterface, verification service.VerificationServiceInterface, qr service.QRServiceInterface) *GroupHandler {
	return &GroupHandler{
		service:      service,
		verification: verification,
		qr:           qr,
	}
}

// CreateGroupPayload is the HTTP request body for group creation
type CreateGroupPayload struct {
	Name           string    `json:"name" binding:"required"`
	MaxMembers     int       `json:"max_members" binding:"required"`
	VerificationID uuid.UUID `json:"verification_id" binding:"required"`
}

// JoinGroupPayload is the HTTP request body for joining a group
type JoinGroupPayload struct {
	Code           string    `json:"code" binding:"required"`
	VerificationID uuid.UUID `json:"verification_id" binding:"required"`
}

// AssignSPOCPayload is the HTTP request body for SPOC assignment
type AssignSPOCPayload struct {
	SPOCID uuid.UUID `json:"spoc_id" binding:"required"`
}

// CreateGroup registers a new group
// @Summary Create a group
// @Description Register a new group led by the volunteer behind a completed verification session
// @Tags groups
// @Accept json
// @Produce json
// @Param group body CreateGroupPayload true "Group details"
// @Success 201 {object} service.GroupResponse "Group created"
// @Failure 400 {object} ErrorResponse "Invalid request or leader not verified"
// @Failure 404 {object} ErrorResponse "Verification session not found"
// @Router /groups [post]
func (h *GroupHandler) CreateGroup(c *gin.Context) {
	var payload CreateGroupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	leader, err := h.verification.Result(payload.VerificationID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	group, err := h.service.Create(&service.CreateGroupRequest{
		Name:       payload.Name,
		MaxMembers: payload.MaxMembers,
		Leader:     *leader,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	// The session is spent once the group exists
	_ = h.verification.Consume(payload.VerificationID)

	c.JSON(http.StatusCreated, group)
}

// GetGroups returns all groups
// @Summary List groups
// @Description Get every registered group
// @Tags groups
// @Accept json
// @Produce json
// @Success 200 {object} service.GroupListResponse "List of groups"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /groups [get]
func (h *GroupHandler) GetGroups(c *gin.Context) {
	groups, err := h.service.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, groups)
}

// GetGroup returns a single group by ID
// @Summary Get group by ID
// @Description Get a group by its identifier
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Success 200 {object} service.GroupResponse "Group details"
// @Failure 400 {object} ErrorResponse "Invalid group ID"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /groups/{id} [get]
func (h *GroupHandler) GetGroup(c *gin.Context) {
	id, ok := h.groupID(c)
	if !ok {
		return
	}

	group, err := h.service.GetByID(id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// ResolveGroup finds a group by join code
// @Summary Resolve group by code
// @Description Look up a group by its join code; hyphens and case are ignored
// @Tags groups
// @Accept json
// @Produce json
// @Param code path string true "Join code"
// @Success 200 {object} service.GroupResponse "Group details"
// @Failure 404 {object} ErrorResponse "Invalid or unknown code"
// @Router /groups/by-code/{code} [get]
func (h *GroupHandler) ResolveGroup(c *gin.Context) {
	group, err := h.service.ResolveByCode(c.Param("code"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// JoinGroup adds a verified volunteer to a group
// @Summary Join a group
// @Description Add the volunteer behind a completed verification session to the group behind the code
// @Tags groups
// @Accept json
// @Produce json
// @Param join body JoinGroupPayload true "Join details"
// @Success 200 {object} service.GroupResponse "Updated group"
// @Failure 400 {object} ErrorResponse "Member not verified"
// @Failure 404 {object} ErrorResponse "Invalid or unknown code"
// @Failure 409 {object} ErrorResponse "Group full or duplicate email"
// @Router /groups/join [post]
func (h *GroupHandler) JoinGroup(c *gin.Context) {
	var payload JoinGroupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.verification.Result(payload.VerificationID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	group, err := h.service.Join(&service.JoinGroupRequest{
		Code:   payload.Code,
		Member: *member,
	})
	if err != nil {
		h.renderError(c, err)
		return
	}

	// The session is spent once the volunteer is in the group
	_ = h.verification.Consume(payload.VerificationID)

	c.JSON(http.StatusOK, group)
}

// AssignTask sets the group's task
// @Summary Assign a task
// @Description Overwrite the group's task and assignment source
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param task body service.AssignTaskRequest true "Task details"
// @Success 200 {object} service.GroupResponse "Updated group"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /groups/{id}/task [put]
func (h *GroupHandler) AssignTask(c *gin.Context) {
	id, ok := h.groupID(c)
	if !ok {
		return
	}

	var req service.AssignTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.service.AssignTask(id, &req)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// AssignSPOC links the group to a SPOC
// @Summary Assign a SPOC
// @Description Link the group to a SPOC and the SPOC's department
// @Tags groups
// @Accept json
// @Produce json
// @Param id path string true "Group ID (UUID)"
// @Param spoc body AssignSPOCPayload true "SPOC assignment"
// @Success 200 {object} service.GroupResponse "Updated group"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Group or SPOC not found"
// @Router /groups/{id}/spoc [put]
func (h *GroupHandler) AssignSPOC(c *gin.Context) {
	id, ok := h.groupID(c)
	if !ok {
		return
	}

	var payload AssignSPOCPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	group, err := h.service.AssignSPOC(id, payload.SPOCID)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, group)
}

// GroupQR renders the group's join URL as a QR code
// @Summary Group join QR code
// @Description Render the group's join URL as a PNG QR code in the organization's brand colors
// @Tags groups
// @Produce png
// @Param id path string true "Group ID (UUID)"
// @Param size query int false "Image size in pixels" default(256)
// @Success 200 {string} binary "PNG image"
// @Failure 400 {object} ErrorResponse "Invalid group ID or size"
// @Failure 404 {object} ErrorResponse "Group not found"
// @Router /groups/{id}/qr [get]
func (h *GroupHandler) GroupQR(c *gin.Context) {
	id, ok := h.groupID(c)
	if !ok {
		return
	}

	group, err := h.service.GetByID(id)
	if err != nil {
		h.renderError(c, err)
		return
	}

	size := service.DefaultQRSize
	if raw := c.Query("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid size", "field": "size"})
			return
		}
	}

	png, err := h.qr.Encode(group.JoinURL, size)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "image/png", png)
}

func (h *GroupHandler) groupID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid group ID"})
		return uuid.Nil, false
	}
	return id, true
}

func (h *GroupHandler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrInvalidCode):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "field": "code"})
	case apperrors.IsNotFound(err):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrGroupFull), errors.Is(err, apperrors.ErrDuplicateEmail):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidCapacity),
		errors.Is(err, apperrors.ErrLeaderNotVerified),
		errors.Is(err, apperrors.ErrMemberNotVerified),
		errors.Is(err, apperrors.ErrVerificationIncomplete):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case apperrors.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
