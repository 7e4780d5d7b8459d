package store

import "dailyquiz/models"

type SubmitAnswerRequest struct {
	QuestionID  string `json:"questionId"`
	StudentPin  string `json:"studentPin"`
	StudentName string `json:"studentName"`
	Answer      string `json:"answer"`
	Type        string `json:"type"`
}

// Answers returns every student answer in insertion order.
func (s *Store) Answers() []models.StudentAnswer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.StudentAnswer, len(s.answers))
	copy(out, s.answers)
	return out
}

// AnswersByQuestion returns the answers submitted for one question.
func (s *Store) AnswersByQuestion(questionID string) []models.StudentAnswer {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := []models.StudentAnswer{}
	for _, a := range s.answers {
		if a.QuestionID == questionID {
			out = append(out, a)
		}
	}
	return out
}

// SubmitAnswer appends a student answer. A student may answer a given
// question once per submission type; a repeat of the same
// (questionId, studentPin, type) triple is rejected without mutation.
// The questionId is deliberately not checked against the question
// collection: answers may reference questions that were reset away.
func (s *Store) SubmitAnswer(req *SubmitAnswerRequest) (models.StudentAnswer, error) {
	if req.QuestionID == "" || req.StudentPin == "" || req.StudentName == "" || req.Answer == "" {
		return models.StudentAnswer{}, validationErr("All fields are required")
	}

	answerType := req.Type
	if answerType == "" {
		answerType = models.AnswerTypeQuestion
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.answers {
		if a.QuestionID == req.QuestionID && a.StudentPin == req.StudentPin && a.Type == answerType {
			return models.StudentAnswer{}, ErrDuplicateSubmission
		}
	}

	answer := models.StudentAnswer{
		ID:          newID(),
		QuestionID:  req.QuestionID,
		StudentPin:  req.StudentPin,
		StudentName: req.StudentName,
		Answer:      req.Answer,
		Type:        answerType,
		Date:        s.now(),
	}
	s.answers = append(s.answers, answer)

	return answer, nil
}
