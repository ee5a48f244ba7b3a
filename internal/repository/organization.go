package repository

import (
	"encoding/json"
	"fmt"

	"volunteer-hub-backend/internal/database/models"
)

// OrganizationRepository handles the singleton organization settings record.
// Unlike the other collections this one holds a single object, not a slice.
type OrganizationRepository struct {
	store Store
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(store Store) *OrganizationRepository {
	return &OrganizationRepository{store: store}
}

// Get returns the organization settings, falling back to defaults when
// nothing has been configured yet.
func (r *OrganizationRepository) Get() (*models.Organization, error) {
	data, err := r.store.Read(CollectionOrganization)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		org := models.DefaultOrganization()
		return &org, nil
	}
	var org models.Organization
	if err := json.Unmarshal(data, &org); err != nil {
		return nil, fmt.Errorf("decode collection %q: %w", CollectionOrganization, err)
	}
	return &org, nil
}

// Save replaces the organization settings record
func (r *OrganizationRepository) Save(org *models.Organization) error {
	data, err := json.Marshal(org)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", CollectionOrganization, err)
	}
	return r.store.Write(CollectionOrganization, data)
}
