package repository

import (
	"volunteer-hub-backend/internal/database/models"

	apperrors "volunteer-hub-backend/internal/errors"

	"github.com/google/uuid"
)

// GroupRepository handles persistence for groups. Every mutation reads the
// full snapshot, applies the change, and writes the snapshot back.
type GroupRepository struct {
	store Store
}

// NewGroupRepository creates a new group repository
func NewGroupRepository(store Store) *GroupRepository {
	return &GroupRepository{store: store}
}

// Create appends a new group to the collection. Join-code uniqueness is the
// group service's responsibility; this layer only persists.
func (r *GroupRepository) Create(group *models.Group) error {
	groups, err := readSnapshot[models.Group](r.store, CollectionGroups)
	if err != nil {
		return err
	}
	groups = append(groups, *group)
	return writeSnapshot(r.store, CollectionGroups, groups)
}

// GetByID retrieves a group by ID
func (r *GroupRepository) GetByID(id uuid.UUID) (*models.Group, error) {
	groups, err := readSnapshot[models.Group](r.store, CollectionGroups)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].ID == id {
			return &groups[i], nil
		}
	}
	return nil, apperrors.ErrGroupNotFound
}

// GetByCode retrieves a group by its canonical join code. The caller is
// expected to normalize user input first; stored codes are canonical.
func (r *GroupRepository) GetByCode(code string) (*models.Group, error) {
	groups, err := readSnapshot[models.Group](r.store, CollectionGroups)
	if err != nil {
		return nil, err
	}
	for i := range groups {
		if groups[i].Code == code {
			return &groups[i], nil
		}
	}
	return nil, apperrors.ErrGroupNotFound
}

// GetAll retrieves all groups in creation order
func (r *GroupRepository) GetAll() ([]models.Group, error) {
	return readSnapshot[models.Group](r.store, CollectionGroups)
}

// Update replaces the stored group that has the same ID
func (r *GroupRepository) Update(group *models.Group) error {
	groups, err := readSnapshot[models.Group](r.store, CollectionGroups)
	if err != nil {
		return err
	}
	for i := range groups {
		if groups[i].ID == group.ID {
			groups[i] = *group
			return writeSnapshot(r.store, CollectionGroups, groups)
		}
	}
	return apperrors.ErrGroupNotFound
}

// CodeExists reports whether any stored group already uses the given code
func (r *GroupRepository) CodeExists(code string) (bool, error) {
	groups, err := readSnapshot[models.Group](r.store, CollectionGroups)
	if err != nil {
		return false, err
	}
	for i := range groups {
		if groups[i].Code == code {
			return true, nil
		}
	}
	return false, nil
}
