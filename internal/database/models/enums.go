package models

// Nationality is the closed set of nationalities a team or driver can carry
type Nationality string

const (
	NationalityUSA     Nationality = "USA"
	NationalityVietNam Nationality = "Viet Nam"
)

// DefaultNationality is applied when a payload leaves nationality empty
const DefaultNationality = NationalityUSA

// IsValid checks if the Nationality is valid
func (n Nationality) IsValid() bool {
	switch n {
	case NationalityUSA, NationalityVietNam:
		return true
	}
	return false
}

// OrDefault returns n, or DefaultNationality when n is empty
func (n Nationality) OrDefault() Nationality {
	if n == "" {
		return DefaultNationality
	}
	return n
}
