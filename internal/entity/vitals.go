package entity

import (
	"time"

	"github.com/google/uuid"
)

// VitalsEntry is a manually entered reading. At least one of BP, sugar
// or weight is present (enforced at the handler, not the schema).
type VitalsEntry struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_vitals_user_created,priority:1" json:"userId"`

	BP     string   `gorm:"column:bp" json:"bp,omitempty"`         // e.g. "120/80"
	Sugar  *float64 `gorm:"column:sugar" json:"sugar,omitempty"`   // mg/dL
	Weight *float64 `gorm:"column:weight" json:"weight,omitempty"` // kg
	Notes  string   `gorm:"column:notes" json:"notes,omitempty"`

	RecordedAt time.Time `gorm:"column:recorded_at;not null" json:"date"`
	CreatedAt  time.Time `gorm:"not null;index:idx_vitals_user_created,priority:2" json:"createdAt"`
}

func (VitalsEntry) TableName() string { return "vitals_entries" }
