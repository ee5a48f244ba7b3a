package repository

import (
	"strings"

	"volunteer-hub-backend/internal/database/models"

	apperrors "volunteer-hub-backend/internal/errors"

	"github.com/google/uuid"
)

// DepartmentRepository handles persistence for departments
type DepartmentRepository struct {
	store Store
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(store Store) *DepartmentRepository {
	return &DepartmentRepository{store: store}
}

// Create appends a new department to the collection
func (r *DepartmentRepository) Create(department *models.Department) error {
	departments, err := readSnapshot[models.Department](r.store, CollectionDepartments)
	if err != nil {
		return err
	}
	departments = append(departments, *department)
	return writeSnapshot(r.store, CollectionDepartments, departments)
}

// GetByID retrieves a department by ID
func (r *DepartmentRepository) GetByID(id uuid.UUID) (*models.Department, error) {
	departments, err := readSnapshot[models.Department](r.store, CollectionDepartments)
	if err != nil {
		return nil, err
	}
	for i := range departments {
		if departments[i].ID == id {
			return &departments[i], nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

// GetByName retrieves a department by name, case-insensitively
func (r *DepartmentRepository) GetByName(name string) (*models.Department, error) {
	departments, err := readSnapshot[models.Department](r.store, CollectionDepartments)
	if err != nil {
		return nil, err
	}
	for i := range departments {
		if strings.EqualFold(departments[i].Name, name) {
			return &departments[i], nil
		}
	}
	return nil, apperrors.ErrDepartmentNotFound
}

// GetAll retrieves all departments in creation order
func (r *DepartmentRepository) GetAll() ([]models.Department, error) {
	return readSnapshot[models.Department](r.store, CollectionDepartments)
}

// Update replaces the stored department that has the same ID
func (r *DepartmentRepository) Update(department *models.Department) error {
	departments, err := readSnapshot[models.Department](r.store, CollectionDepartments)
	if err != nil {
		return err
	}
	for i := range departments {
		if departments[i].ID == department.ID {
			departments[i] = *department
			return writeSnapshot(r.store, CollectionDepartments, departments)
		}
	}
	return apperrors.ErrDepartmentNotFound
}

// Delete removes a department from the collection
func (r *DepartmentRepository) Delete(id uuid.UUID) error {
	departments, err := readSnapshot[models.Department](r.store, CollectionDepartments)
	if err != nil {
		return err
	}
	for i := range departments {
		if departments[i].ID == id {
			departments = append(departments[:i], departments[i+1:]...)
			return writeSnapshot(r.store, CollectionDepartments, departments)
		}
	}
	return apperrors.ErrDepartmentNotFound
}
