package store

import "dailyquiz/models"

type CreateQuestionRequest struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Questions returns every question in insertion order.
func (s *Store) Questions() []models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Question, len(s.questions))
	copy(out, s.questions)
	return out
}

// CreateQuestion appends a new question with no answer yet. When the request
// carries an answer and a previous question exists, the answer is revealed on
// the most recent existing question first: the teacher posts the next
// question and the previous one's answer in a single call.
func (s *Store) CreateQuestion(req *CreateQuestionRequest) (models.Question, error) {
	if req.Question == "" {
		return models.Question{}, validationErr("Question is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if req.Answer != "" && len(s.questions) > 0 {
		answer := req.Answer
		s.questions[len(s.questions)-1].Answer = &answer
	}

	question := models.Question{
		ID:       newID(),
		Question: req.Question,
		Answer:   nil,
		Date:     s.now(),
	}
	s.questions = append(s.questions, question)

	return question, nil
}

// QuestionByID returns the question with the given id, or ErrNotFound.
func (s *Store) QuestionByID(id string) (models.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, q := range s.questions {
		if q.ID == id {
			return q, nil
		}
	}
	return models.Question{}, ErrNotFound
}

// UpdateQuestionAnswer overwrites the answer of the question with the given
// id, regardless of any previous value.
func (s *Store) UpdateQuestionAnswer(id, answer string) (models.Question, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.questions {
		if s.questions[i].ID == id {
			s.questions[i].Answer = &answer
			return s.questions[i], nil
		}
	}
	return models.Question{}, ErrNotFound
}

// ResetQuestions clears the question collection only.
func (s *Store) ResetQuestions() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions = nil
}
