package repository

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"volunteer-hub-backend/internal/database/models"

	"gorm.io/gorm"
)

// Collection names. Each logical collection is an independent named store.
const (
	CollectionGroups       = "groups"
	CollectionDepartments  = "departments"
	CollectionSPOCs        = "spocs"
	CollectionOrganization = "organization"
)

// Store is the persisted collection substrate: whole-snapshot reads and
// writes keyed by collection name. A missing collection reads as nil data
// with no error. There is no locking and no compare-and-swap; concurrent
// writers can overwrite each other. That mirrors the single-user design this
// tool was built around and is accepted, documented behavior.
type Store interface {
	Read(name string) ([]byte, error)
	Write(name string, data []byte) error
	List() ([]string, error)
}

// GormStore persists collections to Postgres, one row per collection with
// the snapshot as JSONB.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore creates a new Postgres-backed store
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Read returns the snapshot for a collection, or nil if it was never written
func (s *GormStore) Read(name string) ([]byte, error) {
	var collection models.Collection
	err := s.db.First(&collection, "name = ?", name).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("read collection %q: %w", name, err)
	}
	return collection.Data, nil
}

// Write replaces the snapshot for a collection
func (s *GormStore) Write(name string, data []byte) error {
	collection := models.Collection{
		Name:      name,
		Data:      json.RawMessage(data),
		UpdatedAt: time.Now(),
	}
	err := s.db.Save(&collection).Error
	if err != nil {
		return fmt.Errorf("write collection %q: %w", name, err)
	}
	return nil
}

// List returns the names of all collections that have been written
func (s *GormStore) List() ([]string, error) {
	var names []string
	err := s.db.Model(&models.Collection{}).Order("name").Pluck("name", &names).Error
	if err != nil {
		return nil, fmt.Errorf("list collections: %w", err)
	}
	return names, nil
}

// MemoryStore is an in-memory Store used by tests and by deployments that do
// not need durability. The mutex only guards the map itself; snapshot
// read-modify-write cycles are still unsynchronized, as with every other
// Store implementation.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryStore creates a new in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Read returns the snapshot for a collection, or nil if it was never written
func (s *MemoryStore) Read(name string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.data[name]
	if !ok {
		return nil, nil
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Write replaces the snapshot for a collection
func (s *MemoryStore) Write(name string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	snapshot := make([]byte, len(data))
	copy(snapshot, data)
	s.data[name] = snapshot
	return nil
}

// List returns the names of all collections that have been written
func (s *MemoryStore) List() ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.data))
	for name := range s.data {
		names = append(names, name)
	}
	return names, nil
}

// readSnapshot decodes a collection snapshot into a slice of records. A
// collection that was never written decodes as an empty slice.
func readSnapshot[T any](store Store, name string) ([]T, error) {
	data, err := store.Read(name)
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return []T{}, nil
	}
	var records []T
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("decode collection %q: %w", name, err)
	}
	return records, nil
}

// writeSnapshot encodes and replaces a collection snapshot.
func writeSnapshot[T any](store Store, name string, records []T) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("encode collection %q: %w", name, err)
	}
	return store.Write(name, data)
}
