package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account holder. The password hash never leaves the server.
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	FullName     string    `gorm:"column:full_name;not null" json:"fullName"`
	Email        string    `gorm:"column:email;not null;uniqueIndex" json:"email"`
	PhoneNumber  string    `gorm:"column:phone_number;not null" json:"phoneNumber"`
	PasswordHash string    `gorm:"column:password_hash;not null" json:"-"`

	FamilyMembers []FamilyMember `gorm:"foreignKey:UserID;references:ID" json:"familyMembers,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (User) TableName() string { return "users" }

// FamilyMember is an owned sub-record of a user profile.
type FamilyMember struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID   uuid.UUID `gorm:"type:uuid;not null;index" json:"userId"`
	Name     string    `gorm:"column:name;not null" json:"name"`
	Relation string    `gorm:"column:relation;not null" json:"relation"`
	Age      int       `gorm:"column:age" json:"age,omitempty"`
	Gender   string    `gorm:"column:gender" json:"gender,omitempty"`

	CreatedAt time.Time `gorm:"not null" json:"createdAt"`
	UpdatedAt time.Time `gorm:"not null" json:"updatedAt"`
}

func (FamilyMember) TableName() string { return "family_members" }
