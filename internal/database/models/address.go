package models

// Address is a postal address referenced by teams and drivers
type Address struct {
	BaseModel
	Name    string `json:"name" gorm:"size:150;not null"`
	Street  string `json:"street" gorm:"size:150;not null"`
	Street2 string `json:"street2" gorm:"size:150"`
	City    string `json:"city" gorm:"size:40;not null"`
	State   string `json:"state" gorm:"size:40;not null"`
	Zip     string `json:"zip" gorm:"size:10;not null"`
	Country string `json:"country" gorm:"size:40;not null"`
}

// TableName returns the table name for Address
func (Address) TableName() string {
	return "addresses"
}
