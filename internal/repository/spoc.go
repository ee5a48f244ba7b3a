package repository

import (
	"strings"

	"volunteer-hub-backend/internal/database/models"

	apperrors "volunteer-hub-backend/internal/errors"

	"github.com/google/uuid"
)

// SPOCRepository handles persistence for single points of contact
type SPOCRepository struct {
	store Store
}

// NewSPOCRepository creates a new SPOC repository
func NewSPOCRepository(store Store) *SPOCRepository {
	return &SPOCRepository{store: store}
}

// Create appends a new SPOC to the collection
func (r *SPOCRepository) Create(spoc *models.SPOC) error {
	spocs, err := readSnapshot[models.SPOC](r.store, CollectionSPOCs)
	if err != nil {
		return err
	}
	spocs = append(spocs, *spoc)
	return writeSnapshot(r.store, CollectionSPOCs, spocs)
}

// GetByID retrieves a SPOC by ID
func (r *SPOCRepository) GetByID(id uuid.UUID) (*models.SPOC, error) {
	spocs, err := readSnapshot[models.SPOC](r.store, CollectionSPOCs)
	if err != nil {
		return nil, err
	}
	for i := range spocs {
		if spocs[i].ID == id {
			return &spocs[i], nil
		}
	}
	return nil, apperrors.ErrSPOCNotFound
}

// GetByEmail retrieves a SPOC by email, case-insensitively
func (r *SPOCRepository) GetByEmail(email string) (*models.SPOC, error) {
	spocs, err := readSnapshot[models.SPOC](r.store, CollectionSPOCs)
	if err != nil {
		return nil, err
	}
	for i := range spocs {
		if strings.EqualFold(spocs[i].Email, email) {
			return &spocs[i], nil
		}
	}
	return nil, apperrors.ErrSPOCNotFound
}

// GetByDepartmentID retrieves all SPOCs scoped to a department
func (r *SPOCRepository) GetByDepartmentID(departmentID uuid.UUID) ([]models.SPOC, error) {
	spocs, err := readSnapshot[models.SPOC](r.store, CollectionSPOCs)
	if err != nil {
		return nil, err
	}
	var scoped []models.SPOC
	for i := range spocs {
		if spocs[i].DepartmentID == departmentID {
			scoped = append(scoped, spocs[i])
		}
	}
	return scoped, nil
}

// GetAll retrieves all SPOCs in creation order
func (r *SPOCRepository) GetAll() ([]models.SPOC, error) {
	return readSnapshot[models.SPOC](r.store, CollectionSPOCs)
}

// Update replaces the stored SPOC that has the same ID
func (r *SPOCRepository) Update(spoc *models.SPOC) error {
	spocs, err := readSnapshot[models.SPOC](r.store, CollectionSPOCs)
	if err != nil {
		return err
	}
	for i := range spocs {
		if spocs[i].ID == spoc.ID {
			spocs[i] = *spoc
			return writeSnapshot(r.store, CollectionSPOCs, spocs)
		}
	}
	return apperrors.ErrSPOCNotFound
}

// Delete removes a SPOC from the collection
func (r *SPOCRepository) Delete(id uuid.UUID) error {
	spocs, err := readSnapshot[models.SPOC](r.store, CollectionSPOCs)
	if err != nil {
		return err
	}
	for i := range spocs {
		if spocs[i].ID == id {
			spocs = append(spocs[:i], spocs[i+1:]...)
			return writeSnapshot(r.store, CollectionSPOCs, spocs)
		}
	}
	return apperrors.ErrSPOCNotFound
}
