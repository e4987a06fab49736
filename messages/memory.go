package messages

import (
	"context"
	"slices"
	"sync"

	"medivance-backend/models"
)

var _ Repository = (*MemoryRepository)(nil)

type MemoryRepository struct {
	mu       sync.RWMutex
	messages map[int64]models.ContactMessage
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{messages: make(map[int64]models.ContactMessage)}
}

func (r *MemoryRepository) ListAll(_ context.Context) ([]models.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.ContactMessage, 0, len(r.messages))
	for _, m := range r.messages {
		out = append(out, m)
	}
	slices.SortFunc(out, newestFirst)
	return out, nil
}

func (r *MemoryRepository) Find(_ context.Context, id int64) (*models.ContactMessage, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.messages[id]
	if !ok {
		return nil, ErrMessageNotFound
	}
	return &m, nil
}

func (r *MemoryRepository) Insert(_ context.Context, m *models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.messages[m.ID]; ok {
		return ErrDuplicateID
	}
	r.messages[m.ID] = *m
	return nil
}

func (r *MemoryRepository) Replace(_ context.Context, m *models.ContactMessage) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.messages[m.ID]; !ok {
		return ErrMessageNotFound
	}
	r.messages[m.ID] = *m
	return nil
}

func (r *MemoryRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.messages[id]; !ok {
		return ErrMessageNotFound
	}
	delete(r.messages, id)
	return nil
}
