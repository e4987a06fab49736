package messages

import (
	"context"
	"errors"

	"medivance-backend/models"
)

var (
	ErrMessageNotFound = errors.New("message not found")
	ErrDuplicateID     = errors.New("message id already exists")
	ErrInvalidStatus   = errors.New("message status must be unread, read or replied")
	ErrInvalidPriority = errors.New("message priority must be low, medium or high")
	ErrMailerMissing   = errors.New("no mailer configured for replies")
	ErrReplyNotSent    = errors.New("failed to send reply")
)

// Repository persists contact messages. ListAll returns the inbox newest first.
type Repository interface {
	ListAll(ctx context.Context) ([]models.ContactMessage, error)
	Find(ctx context.Context, id int64) (*models.ContactMessage, error)
	Insert(ctx context.Context, m *models.ContactMessage) error
	Replace(ctx context.Context, m *models.ContactMessage) error
	Delete(ctx context.Context, id int64) error
}

// newestFirst orders by createdAt descending, then id descending.
func newestFirst(a, b models.ContactMessage) int {
	switch {
	case a.CreatedAt > b.CreatedAt:
		return -1
	case a.CreatedAt < b.CreatedAt:
		return 1
	case a.ID > b.ID:
		return -1
	case a.ID < b.ID:
		return 1
	}
	return 0
}
