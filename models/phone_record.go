package models

type PhoneRecord struct {
	Name      string `json:"name"`
	Phone     string `json:"phone"`
	LastLogin string `json:"lastLogin"`
}
