package store

import (
	"crypto/subtle"
	"sync"
	"time"

	"dailyquiz/models"

	"github.com/rs/xid"
)

// dateLayout mirrors the short localized form shown to students,
// e.g. "2/1/2026, 1:05:09 pm".
const dateLayout = "2/1/2006, 3:04:05 pm"

// Store holds every collection in process memory. All data lives and dies
// with the process; ResetAll is the only way to clear everything at once.
//
// Handlers run on concurrent goroutines, so every operation takes the mutex
// and is atomic from any caller's point of view.
type Store struct {
	mu sync.RWMutex

	questions []models.Question
	answers   []models.StudentAnswer
	media     []models.MediaItem
	phones    map[string]models.PhoneRecord

	resetPassword string
	loc           *time.Location
}

func New(resetPassword string, loc *time.Location) *Store {
	if loc == nil {
		loc = time.UTC
	}
	return &Store{
		phones:        make(map[string]models.PhoneRecord),
		resetPassword: resetPassword,
		loc:           loc,
	}
}

// newID returns an opaque, sortable id. Clients treat ids as strings only.
func newID() string {
	return xid.New().String()
}

func (s *Store) now() string {
	return time.Now().In(s.loc).Format(dateLayout)
}

// ResetAll clears all four collections together. The confirmation value must
// match the configured reset password exactly; on mismatch nothing changes.
func (s *Store) ResetAll(confirmPassword string) error {
	if subtle.ConstantTimeCompare([]byte(confirmPassword), []byte(s.resetPassword)) != 1 {
		return ErrForbidden
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.questions = nil
	s.answers = nil
	s.media = nil
	s.phones = make(map[string]models.PhoneRecord)

	return nil
}

// Counts reports the size of each collection, used by the health endpoint.
type Counts struct {
	Questions int `json:"questions"`
	Answers   int `json:"answers"`
	Media     int `json:"media"`
	Students  int `json:"students"`
}

func (s *Store) Counts() Counts {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return Counts{
		Questions: len(s.questions),
		Answers:   len(s.answers),
		Media:     len(s.media),
		Students:  len(s.phones),
	}
}
