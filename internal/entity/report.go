package entity

import (
	"time"

	"github.com/google/uuid"
)

// Report is a user-uploaded medical document plus its storage location
// and metadata. Read-only after creation except deletion.
type Report struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index:idx_reports_user_created,priority:1" json:"userId"`

	// StorageURL is the durable object-store URL; immutable once set.
	StorageURL string `gorm:"column:storage_url;not null" json:"fileUrl"`
	// StorageKey is the object key used for download and best-effort delete.
	StorageKey string `gorm:"column:storage_key;not null" json:"-"`

	FileType         string    `gorm:"column:file_type;not null;default:'pdf'" json:"fileType"`
	ReportName       string    `gorm:"column:report_name;not null" json:"reportName"`
	FamilyMemberName string    `gorm:"column:family_member_name;not null;default:'Self'" json:"familyMemberName"`
	ReportDate       time.Time `gorm:"column:report_date;not null" json:"date"`

	CreatedAt time.Time `gorm:"not null;index:idx_reports_user_created,priority:2" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (Report) TableName() string { return "reports" }
