package store

import "dailyquiz/models"

type RegisterPhoneRequest struct {
	Pin   string `json:"pin"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// Phones returns the full pin to record mapping.
func (s *Store) Phones() map[string]models.PhoneRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make(map[string]models.PhoneRecord, len(s.phones))
	for pin, record := range s.phones {
		out[pin] = record
	}
	return out
}

// RegisterPhone upserts the record under the student's pin. Registering an
// existing pin overwrites the previous record; no history is kept.
func (s *Store) RegisterPhone(req *RegisterPhoneRequest) error {
	if req.Pin == "" || req.Name == "" || req.Phone == "" {
		return validationErr("All fields are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.phones[req.Pin] = models.PhoneRecord{
		Name:      req.Name,
		Phone:     req.Phone,
		LastLogin: s.now(),
	}
	return nil
}
