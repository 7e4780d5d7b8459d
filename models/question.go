package models

type Question struct {
	ID       string  `json:"id"`
	Question string  `json:"question"`
	Answer   *string `json:"answer"`
	Date     string  `json:"date"`
}
