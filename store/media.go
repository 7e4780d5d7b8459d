package store

import "dailyquiz/models"

type UploadMediaRequest struct {
	Type     string `json:"type"`
	Data     string `json:"data"`
	FileName string `json:"fileName"`
	Opinion  string `json:"opinion"`
}

// Media returns every media item in insertion order.
func (s *Store) Media() []models.MediaItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.MediaItem, len(s.media))
	copy(out, s.media)
	return out
}

// UploadMedia appends a media item. The payload is stored inline, typically
// base64 image or audio data.
func (s *Store) UploadMedia(req *UploadMediaRequest) (models.MediaItem, error) {
	if req.Type == "" || req.Data == "" || req.FileName == "" || req.Opinion == "" {
		return models.MediaItem{}, validationErr("All fields are required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := models.MediaItem{
		ID:       newID(),
		Type:     req.Type,
		Data:     req.Data,
		FileName: req.FileName,
		Opinion:  req.Opinion,
		Date:     s.now(),
	}
	s.media = append(s.media, item)

	return item, nil
}

// LatestMedia returns the most recently uploaded item.
func (s *Store) LatestMedia() (models.MediaItem, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.media) == 0 {
		return models.MediaItem{}, ErrNotFound
	}
	return s.media[len(s.media)-1], nil
}

// DeleteMedia removes the item with the given id.
func (s *Store) DeleteMedia(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, m := range s.media {
		if m.ID == id {
			s.media = append(s.media[:i], s.media[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}
