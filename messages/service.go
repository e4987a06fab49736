// Package messages is the admin inbox for submissions of the public contact form.
package messages

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"medivance-backend/events"
	"medivance-backend/ids"
	"medivance-backend/models"
)

// Mailer delivers an admin reply to the sender of a message.
type Mailer interface {
	SendReply(ctx context.Context, to, subject, body string) error
}

// Summary holds the inbox counters shown on the messages dashboard.
type Summary struct {
	Total        int `json:"total"`
	Unread       int `json:"unread"`
	Replied      int `json:"replied"`
	HighPriority int `json:"highPriority"`
}

type Service struct {
	repo       Repository
	ids        ids.Generator
	dispatcher events.Dispatcher
	mailer     Mailer
	now        func() time.Time
}

func NewService(repo Repository, idGen ids.Generator, dispatcher events.Dispatcher, mailer Mailer) *Service {
	return &Service{
		repo:       repo,
		ids:        idGen,
		dispatcher: dispatcher,
		mailer:     mailer,
		now:        time.Now,
	}
}

func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Seed inserts messages that are not stored yet.
func (s *Service) Seed(ctx context.Context, seed []models.ContactMessage) error {
	for _, m := range seed {
		if _, err := s.repo.Find(ctx, m.ID); err == nil {
			continue
		} else if !errors.Is(err, ErrMessageNotFound) {
			return err
		}
		if err := s.repo.Insert(ctx, &m); err != nil {
			return fmt.Errorf("failed to seed message %d: %w", m.ID, err)
		}
	}
	return nil
}

// Receive stores a contact form submission as an unread, medium priority message.
func (s *Service) Receive(ctx context.Context, in models.ContactPayload) (*models.ContactMessage, error) {
	today := s.today()
	msg := &models.ContactMessage{
		ID:          s.ids.NextID(),
		Name:        strings.TrimSpace(in.Name),
		Email:       strings.TrimSpace(in.Email),
		Phone:       strings.TrimSpace(in.Phone),
		Company:     strings.TrimSpace(in.Company),
		Country:     strings.TrimSpace(in.Country),
		InquiryType: strings.TrimSpace(in.InquiryType),
		Subject:     strings.TrimSpace(in.Subject),
		Message:     in.Message,
		Status:      models.MessageUnread,
		Priority:    models.PriorityMedium,
		CreatedAt:   today,
		UpdatedAt:   today,
	}
	if msg.InquiryType == "" {
		msg.InquiryType = "general"
	}
	if err := s.repo.Insert(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to store message: %w", err)
	}
	s.dispatch(MessageReceived{MessageID: msg.ID, Email: msg.Email, Subject: msg.Subject})
	return msg, nil
}

func (s *Service) List(ctx context.Context) ([]models.ContactMessage, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) Search(ctx context.Context, c Criteria) ([]models.ContactMessage, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(all, c), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.ContactMessage, error) {
	return s.repo.Find(ctx, id)
}

// Open returns a message for viewing and marks it read if it was unread.
func (s *Service) Open(ctx context.Context, id int64) (*models.ContactMessage, error) {
	msg, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if msg.Status != models.MessageUnread {
		return msg, nil
	}
	msg.Status = models.MessageRead
	msg.UpdatedAt = s.today()
	if err := s.repo.Replace(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to mark message read: %w", err)
	}
	return msg, nil
}

// Update changes status and/or priority.
func (s *Service) Update(ctx context.Context, id int64, upd models.MessageUpdate) (*models.ContactMessage, error) {
	if upd.Status != nil && !validStatus(*upd.Status) {
		return nil, ErrInvalidStatus
	}
	if upd.Priority != nil && !validPriority(*upd.Priority) {
		return nil, ErrInvalidPriority
	}
	msg, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	if upd.Status == nil && upd.Priority == nil {
		return msg, nil
	}
	if upd.Status != nil {
		msg.Status = *upd.Status
	}
	if upd.Priority != nil {
		msg.Priority = *upd.Priority
	}
	msg.UpdatedAt = s.today()
	if err := s.repo.Replace(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to update message: %w", err)
	}
	return msg, nil
}

// Reply mails body to the sender and marks the message replied. Nothing changes if mailing fails.
func (s *Service) Reply(ctx context.Context, id int64, body string) (*models.ContactMessage, error) {
	if s.mailer == nil {
		return nil, ErrMailerMissing
	}
	msg, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	subject := "Re: " + msg.Subject
	if msg.Subject == "" {
		subject = "Re: Your inquiry"
	}
	if err := s.mailer.SendReply(ctx, msg.Email, subject, body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrReplyNotSent, err)
	}

	msg.Status = models.MessageReplied
	msg.UpdatedAt = s.today()
	if err := s.repo.Replace(ctx, msg); err != nil {
		return nil, fmt.Errorf("failed to update message: %w", err)
	}
	s.dispatch(MessageReplied{MessageID: msg.ID, Email: msg.Email})
	return msg, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.dispatch(MessageDeleted{MessageID: id})
	return nil
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return Summary{}, err
	}
	sum := Summary{Total: len(all)}
	for _, m := range all {
		switch m.Status {
		case models.MessageUnread:
			sum.Unread++
		case models.MessageReplied:
			sum.Replied++
		}
		if m.Priority == models.PriorityHigh {
			sum.HighPriority++
		}
	}
	return sum, nil
}

func (s *Service) today() string {
	return s.now().Format(models.DateLayout)
}

func (s *Service) dispatch(e events.Event) {
	if err := s.dispatcher.Dispatch(e); err != nil {
		zap.L().Warn("failed to dispatch message event", zap.String("event", e.Type()), zap.Error(err))
	}
}

func validStatus(status string) bool {
	switch status {
	case models.MessageUnread, models.MessageRead, models.MessageReplied:
		return true
	}
	return false
}

func validPriority(priority string) bool {
	switch priority {
	case models.PriorityLow, models.PriorityMedium, models.PriorityHigh:
		return true
	}
	return false
}
