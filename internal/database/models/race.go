package models

// Race is a single event; deleting it removes its results
type Race struct {
	BaseModel
	Name string `json:"name" gorm:"size:100;not null"`

	// Relationships
	Classes []Class      `json:"classes,omitempty" gorm:"many2many:race_classes;constraint:OnDelete:CASCADE"`
	Results []RaceResult `json:"results,omitempty" gorm:"foreignKey:RaceID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for Race
func (Race) TableName() string {
	return "races"
}
