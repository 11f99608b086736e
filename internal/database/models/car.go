package models

import (
	"github.com/google/uuid"
)

// Car is an entry vehicle owned by a team and homologated in a class
type Car struct {
	BaseModel
	Make    string     `json:"make" gorm:"size:40;not null"`
	Model   string     `json:"model" gorm:"size:40;not null"`
	ClassID *uuid.UUID `json:"class_id" gorm:"type:uuid;index"`
	TeamID  *uuid.UUID `json:"team_id" gorm:"type:uuid;index"`

	// Relationships
	Class   *Class       `json:"class,omitempty" gorm:"foreignKey:ClassID;constraint:OnDelete:SET NULL"`
	Team    *Team        `json:"team,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Results []RaceResult `json:"results,omitempty" gorm:"foreignKey:CarID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Car
func (Car) TableName() string {
	return "cars"
}
