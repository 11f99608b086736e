package models

import (
	"github.com/google/uuid"
)

// Driver represents a racing driver
type Driver struct {
	BaseModel
	FirstName           string      `json:"first_name" gorm:"size:50;not null"`
	LastName            string      `json:"last_name" gorm:"size:50;not null"`
	Nationality         Nationality `json:"nationality" gorm:"size:20;not null;default:'USA';check:chk_drivers_nationality,nationality IN ('USA', 'Viet Nam')"`
	HomeAddressID       *uuid.UUID  `json:"home_address_id" gorm:"type:uuid;index"`
	ManagementAddressID *uuid.UUID  `json:"management_address_id" gorm:"type:uuid;index"`

	// Relationships
	HomeAddress       *Address     `json:"home_address,omitempty" gorm:"foreignKey:HomeAddressID;constraint:OnDelete:SET NULL"`
	ManagementAddress *Address     `json:"management_address,omitempty" gorm:"foreignKey:ManagementAddressID;constraint:OnDelete:SET NULL"`
	Teams             []Team       `json:"teams,omitempty" gorm:"many2many:team_drivers;constraint:OnDelete:CASCADE"`
	Results           []RaceResult `json:"results,omitempty" gorm:"foreignKey:DriverID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for Driver
func (Driver) TableName() string {
	return "drivers"
}
