package models

// Class is a racing class such as GT3 or LMP2
type Class struct {
	BaseModel
	Name string `json:"name" gorm:"size:50;not null"`
}

// TableName returns the table name for Class
func (Class) TableName() string {
	return "classes"
}
