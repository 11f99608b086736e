package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BaseModel provides common fields for all models with UUID primary keys
type BaseModel struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate sets the UUID if not already set
func (base *BaseModel) BeforeCreate(tx *gorm.DB) error {
	if base.ID == uuid.Nil {
		base.ID = uuid.New()
	}
	return nil
}

// GetID returns the primary key
func (base *BaseModel) GetID() uuid.UUID {
	return base.ID
}

// SetID overrides the primary key
func (base *BaseModel) SetID(id uuid.UUID) {
	base.ID = id
}

// Identifiable is implemented by every model embedding BaseModel
type Identifiable interface {
	GetID() uuid.UUID
	SetID(id uuid.UUID)
}
