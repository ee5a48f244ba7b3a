package models

import (
	"encoding/json"
	"time"
)

// Collection is the persistence row backing one logical collection. The
// whole collection is stored as a single JSON snapshot, mirroring the
// key-value substrate this tool was designed around: every mutation reads
// the full snapshot, applies the change, and writes it back.
type Collection struct {
	Name      string          `json:"name" gorm:"primaryKey;size:64"`
	Data      json.RawMessage `json:"data" gorm:"type:jsonb"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// TableName returns the table name for Collection.
func (Collection) TableName() string {
	return "collections"
}
