package models

import (
	"github.com/google/uuid"
)

// RaceResult is one car/driver entry in a race. (car, race, driver) is unique.
type RaceResult struct {
	BaseModel
	CarNumber         int  `json:"car_number" gorm:"not null"`
	StartingPosition  int  `json:"starting_position" gorm:"not null"`
	FinishingPosition int  `json:"finishing_position" gorm:"not null"`
	IsFinished        bool `json:"is_finished" gorm:"not null;default:false"`

	CarID    *uuid.UUID `json:"car_id" gorm:"type:uuid;uniqueIndex:idx_race_result_entry"`
	RaceID   *uuid.UUID `json:"race_id" gorm:"type:uuid;uniqueIndex:idx_race_result_entry"`
	DriverID *uuid.UUID `json:"driver_id" gorm:"type:uuid;uniqueIndex:idx_race_result_entry"`
	ClassID  *uuid.UUID `json:"class_id" gorm:"type:uuid;index"`

	// Relationships
	Car    *Car    `json:"car,omitempty" gorm:"foreignKey:CarID;constraint:OnDelete:SET NULL"`
	Race   *Race   `json:"race,omitempty" gorm:"foreignKey:RaceID;constraint:OnDelete:CASCADE"`
	Driver *Driver `json:"driver,omitempty" gorm:"foreignKey:DriverID;constraint:OnDelete:SET NULL"`
	Class  *Class  `json:"class,omitempty" gorm:"foreignKey:ClassID;constraint:OnDelete:SET NULL"`
}

// TableName returns the table name for RaceResult
func (RaceResult) TableName() string {
	return "race_results"
}
