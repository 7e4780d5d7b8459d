package store

import "dailyquiz/models"

// Stats is the aggregate view over all four collections.
type Stats struct {
	TotalQuestions     int     `json:"totalQuestions"`
	TotalAnswers       int     `json:"totalAnswers"`
	TotalMedia         int     `json:"totalMedia"`
	TotalStudents      int     `json:"totalStudents"`
	UniqueStudents     int     `json:"uniqueStudents"`
	LatestQuestionDate *string `json:"latestQuestionDate"`
	LatestMediaDate    *string `json:"latestMediaDate"`
	QuestionAnswers    int     `json:"questionAnswers"`
	MediaAnswers       int     `json:"mediaAnswers"`
}

// Stats computes the aggregation on demand; nothing is cached.
//
// uniqueStudents counts distinct pins seen in answers and may differ from
// totalStudents, since students can answer without registering a phone.
func (s *Store) Stats() Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := Stats{
		TotalQuestions: len(s.questions),
		TotalAnswers:   len(s.answers),
		TotalMedia:     len(s.media),
		TotalStudents:  len(s.phones),
	}

	pins := make(map[string]struct{})
	for _, a := range s.answers {
		pins[a.StudentPin] = struct{}{}
		if a.Type == models.AnswerTypeMedia {
			stats.MediaAnswers++
		} else {
			stats.QuestionAnswers++
		}
	}
	stats.UniqueStudents = len(pins)

	if n := len(s.questions); n > 0 {
		date := s.questions[n-1].Date
		stats.LatestQuestionDate = &date
	}
	if n := len(s.media); n > 0 {
		date := s.media[n-1].Date
		stats.LatestMediaDate = &date
	}

	return stats
}
