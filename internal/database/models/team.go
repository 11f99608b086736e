package models

import (
	"github.com/google/uuid"
)

// Team represents a racing team with its business address, cars and drivers
type Team struct {
	BaseModel
	Name              string      `json:"name" gorm:"size:150;not null"`
	Nationality       Nationality `json:"nationality" gorm:"size:20;not null;default:'USA';check:chk_teams_nationality,nationality IN ('USA', 'Viet Nam')"`
	BusinessAddressID *uuid.UUID  `json:"business_address_id" gorm:"type:uuid;index"`

	// Relationships
	BusinessAddress *Address `json:"business_address,omitempty" gorm:"foreignKey:BusinessAddressID;constraint:OnDelete:SET NULL"`
	Cars            []Car    `json:"cars,omitempty" gorm:"foreignKey:TeamID;constraint:OnDelete:SET NULL"`
	Drivers         []Driver `json:"drivers,omitempty" gorm:"many2many:team_drivers;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Team
func (Team) TableName() string {
	return "teams"
}
