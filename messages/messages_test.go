package messages

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"medivance-backend/events"
	"medivance-backend/models"
)

func inbox() []models.ContactMessage {
	return []models.ContactMessage{
		{ID: 1, Name: "Dr. John Smith", Email: "john.smith@hospital.com", InquiryType: "product",
			Subject: "Bulk Order Inquiry for Antibiotics", Status: models.MessageUnread, Priority: models.PriorityHigh,
			CreatedAt: "2024-01-21", UpdatedAt: "2024-01-21"},
		{ID: 2, Name: "Sarah Johnson", Email: "sarah.j@pharmatech.com", InquiryType: "business",
			Subject: "Partnership Opportunity", Status: models.MessageRead, Priority: models.PriorityMedium,
			CreatedAt: "2024-01-20", UpdatedAt: "2024-01-21"},
		{ID: 3, Name: "Dr. Maria Rodriguez", Email: "maria.rodriguez@clinic.com", InquiryType: "medical",
			Subject: "Product Information Request", Status: models.MessageUnread, Priority: models.PriorityMedium,
			CreatedAt: "2024-01-19", UpdatedAt: "2024-01-19"},
	}
}

func messageIDs(list []models.ContactMessage) []int64 {
	out := make([]int64, 0, len(list))
	for _, m := range list {
		out = append(out, m.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	t.Run("QueryMatchesNameEmailOrSubject", func(t *testing.T) {
		require.Equal(t, []int64{1}, messageIDs(Filter(inbox(), Criteria{Query: "SMITH"})))
		require.Equal(t, []int64{2}, messageIDs(Filter(inbox(), Criteria{Query: "pharmatech"})))
		require.Equal(t, []int64{3}, messageIDs(Filter(inbox(), Criteria{Query: "information request"})))
	})

	t.Run("SelectorsCombine", func(t *testing.T) {
		got := Filter(inbox(), Criteria{Status: models.MessageUnread, Priority: models.PriorityMedium})
		require.Equal(t, []int64{3}, messageIDs(got))

		got = Filter(inbox(), Criteria{Status: models.FilterAll, Priority: models.FilterAll, InquiryType: "business"})
		require.Equal(t, []int64{2}, messageIDs(got))
	})

	t.Run("EmptyResultIsNotNil", func(t *testing.T) {
		got := Filter(inbox(), Criteria{Status: models.MessageReplied})
		require.NotNil(t, got)
		require.Empty(t, got)
	})
}

func TestService(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T, mailer Mailer) (*Service, *mockEventDispatcher) {
		t.Helper()
		dispatcher := &mockEventDispatcher{}
		svc := NewService(NewMemoryRepository(), &sequenceIDs{next: 500}, dispatcher, mailer)
		svc.SetClock(func() time.Time { return time.Date(2024, 2, 1, 10, 0, 0, 0, time.UTC) })
		require.NoError(t, svc.Seed(ctx, inbox()))
		return svc, dispatcher
	}

	t.Run("List_NewestFirst", func(t *testing.T) {
		svc, _ := newService(t, nil)
		_, err := svc.Receive(ctx, models.ContactPayload{Name: "Ana", Email: "ana@example.com", Message: "Hi"})
		require.NoError(t, err)

		all, err := svc.List(ctx)
		require.NoError(t, err)
		require.Equal(t, []int64{500, 1, 2, 3}, messageIDs(all))
	})

	t.Run("Receive_StoresUnreadMedium", func(t *testing.T) {
		svc, dispatcher := newService(t, nil)
		msg, err := svc.Receive(ctx, models.ContactPayload{
			Name: " Ana Lima ", Email: "ana@example.com", Subject: "Samples", Message: "Please send samples",
		})
		require.NoError(t, err)
		require.Equal(t, "Ana Lima", msg.Name)
		require.Equal(t, models.MessageUnread, msg.Status)
		require.Equal(t, models.PriorityMedium, msg.Priority)
		require.Equal(t, "general", msg.InquiryType)
		require.Equal(t, "2024-02-01", msg.CreatedAt)

		require.Len(t, dispatcher.events, 1)
		event, ok := dispatcher.events[0].(MessageReceived)
		require.True(t, ok)
		require.Equal(t, msg.ID, event.MessageID)
	})

	t.Run("Open_MarksUnreadAsRead", func(t *testing.T) {
		svc, _ := newService(t, nil)
		msg, err := svc.Open(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, models.MessageRead, msg.Status)
		require.Equal(t, "2024-02-01", msg.UpdatedAt)

		stored, err := svc.Get(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, models.MessageRead, stored.Status)

		msg, err = svc.Open(ctx, 2)
		require.NoError(t, err)
		require.Equal(t, "2024-01-21", msg.UpdatedAt)
	})

	t.Run("Update_ValidatesValues", func(t *testing.T) {
		svc, _ := newService(t, nil)
		bad := "archived"
		_, err := svc.Update(ctx, 1, models.MessageUpdate{Status: &bad})
		require.ErrorIs(t, err, ErrInvalidStatus)
		_, err = svc.Update(ctx, 1, models.MessageUpdate{Priority: &bad})
		require.ErrorIs(t, err, ErrInvalidPriority)

		high := models.PriorityHigh
		msg, err := svc.Update(ctx, 3, models.MessageUpdate{Priority: &high})
		require.NoError(t, err)
		require.Equal(t, models.PriorityHigh, msg.Priority)
		require.Equal(t, models.MessageUnread, msg.Status)

		_, err = svc.Update(ctx, 99, models.MessageUpdate{Priority: &high})
		require.ErrorIs(t, err, ErrMessageNotFound)
	})

	t.Run("Update_EmptyChangesNothing", func(t *testing.T) {
		svc, _ := newService(t, nil)
		before, err := svc.Get(ctx, 2)
		require.NoError(t, err)
		require.NotEqual(t, "2024-02-01", before.UpdatedAt)

		msg, err := svc.Update(ctx, 2, models.MessageUpdate{})
		require.NoError(t, err)
		require.Equal(t, before, msg)

		after, err := svc.Get(ctx, 2)
		require.NoError(t, err)
		require.Equal(t, before, after)

		_, err = svc.Update(ctx, 99, models.MessageUpdate{})
		require.ErrorIs(t, err, ErrMessageNotFound)
	})

	t.Run("Reply_MailsAndMarksReplied", func(t *testing.T) {
		mailer := &mockMailer{}
		svc, dispatcher := newService(t, mailer)

		msg, err := svc.Reply(ctx, 2, "Happy to meet next week.")
		require.NoError(t, err)
		require.Equal(t, models.MessageReplied, msg.Status)
		require.Equal(t, []sentMail{{
			to:      "sarah.j@pharmatech.com",
			subject: "Re: Partnership Opportunity",
			body:    "Happy to meet next week.",
		}}, mailer.sent)

		require.Len(t, dispatcher.events, 1)
		_, ok := dispatcher.events[0].(MessageReplied)
		require.True(t, ok)
	})

	t.Run("Reply_FailureLeavesMessageUntouched", func(t *testing.T) {
		svc, dispatcher := newService(t, &mockMailer{err: errors.New("smtp down")})
		_, err := svc.Reply(ctx, 1, "hello")
		require.ErrorIs(t, err, ErrReplyNotSent)
		require.ErrorContains(t, err, "smtp down")

		stored, err := svc.Get(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, models.MessageUnread, stored.Status)
		require.Empty(t, dispatcher.events)

		svc, _ = newService(t, nil)
		_, err = svc.Reply(ctx, 1, "hello")
		require.ErrorIs(t, err, ErrMailerMissing)
	})

	t.Run("Delete", func(t *testing.T) {
		svc, dispatcher := newService(t, nil)
		require.NoError(t, svc.Delete(ctx, 2))
		require.ErrorIs(t, svc.Delete(ctx, 2), ErrMessageNotFound)
		require.Len(t, dispatcher.events, 1)
	})

	t.Run("Summary", func(t *testing.T) {
		svc, _ := newService(t, &mockMailer{})
		_, err := svc.Reply(ctx, 3, "done")
		require.NoError(t, err)

		sum, err := svc.Summary(ctx)
		require.NoError(t, err)
		require.Equal(t, Summary{Total: 3, Unread: 1, Replied: 1, HighPriority: 1}, sum)
	})

	t.Run("Seed_IsIdempotent", func(t *testing.T) {
		svc, _ := newService(t, nil)
		require.NoError(t, svc.Seed(ctx, inbox()))
		all, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, 3)
	})
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, inbox()))

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 4)
	require.Equal(t, []string{
		"id", "name", "email", "phone", "company", "country", "inquiry_type",
		"subject", "message", "status", "priority", "created_at", "updated_at",
	}, records[0])
	require.Equal(t, "Dr. John Smith", records[1][1])
	require.Equal(t, "high", records[1][10])
}

type sentMail struct {
	to, subject, body string
}

type mockMailer struct {
	sent []sentMail
	err  error
}

func (m *mockMailer) SendReply(_ context.Context, to, subject, body string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, sentMail{to: to, subject: subject, body: body})
	return nil
}

type sequenceIDs struct {
	next int64
}

func (s *sequenceIDs) NextID() int64 {
	id := s.next
	s.next++
	return id
}

var _ events.Dispatcher = (*mockEventDispatcher)(nil)

type mockEventDispatcher struct {
	events []events.Event
}

func (m *mockEventDispatcher) Dispatch(e events.Event) error {
	m.events = append(m.events, e)
	return nil
}
