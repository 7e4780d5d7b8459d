package models

// AnswerTypeQuestion and AnswerTypeMedia discriminate whether a student
// answered a posted question or reacted to an uploaded media item.
const (
	AnswerTypeQuestion = "question"
	AnswerTypeMedia    = "media"
)

type StudentAnswer struct {
	ID          string `json:"id"`
	QuestionID  string `json:"questionId"`
	StudentPin  string `json:"studentPin"`
	StudentName string `json:"studentName"`
	Answer      string `json:"answer"`
	Type        string `json:"type"`
	Date        string `json:"date"`
}
