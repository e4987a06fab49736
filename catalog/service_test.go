package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"medivance-backend/events"
	"medivance-backend/models"
)

func TestService(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T) (*Service, *MemoryRepository, *mockEventDispatcher) {
		t.Helper()
		repo := NewMemoryRepository()
		dispatcher := &mockEventDispatcher{}
		svc := NewService(repo, &sequenceIDs{next: 1000}, dispatcher)
		svc.SetClock(fixedClock("2024-02-01"))
		require.NoError(t, svc.Seed(ctx, sampleCatalog()))
		return svc, repo, dispatcher
	}

	validInput := models.ProductInput{
		Name:     "  Cefixime 200mg ",
		Category: models.CategoryAntibiotics,
		Type:     models.TypeCapsules,
		Strength: "200mg",
	}

	t.Run("Seed_KeepsOrderAndDefaults", func(t *testing.T) {
		svc, _, _ := newService(t)

		all, err := svc.List(ctx)
		require.NoError(t, err)
		require.Equal(t, productIDs(sampleCatalog()), productIDs(all))
		for _, p := range all {
			require.Equal(t, "2024-02-01", p.CreatedAt)
			require.GreaterOrEqual(t, p.UpdatedAt, p.CreatedAt)
		}
	})

	t.Run("Seed_IsIdempotent", func(t *testing.T) {
		svc, _, _ := newService(t)
		require.NoError(t, svc.Seed(ctx, sampleCatalog()))

		all, err := svc.List(ctx)
		require.NoError(t, err)
		require.Len(t, all, len(sampleCatalog()))
	})

	t.Run("Seed_RejectsDuplicateIDs", func(t *testing.T) {
		svc := NewService(NewMemoryRepository(), &sequenceIDs{}, events.Discard{})
		err := svc.Seed(ctx, []models.Product{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}})
		require.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("Create_AssignsIDDatesAndDispatches", func(t *testing.T) {
		svc, repo, dispatcher := newService(t)

		product, err := svc.Create(ctx, validInput)
		require.NoError(t, err)
		require.Equal(t, int64(1000), product.ID)
		require.Equal(t, "Cefixime 200mg", product.Name)
		require.Equal(t, models.StatusActive, product.Status)
		require.Equal(t, "2024-02-01", product.CreatedAt)
		require.Equal(t, "2024-02-01", product.UpdatedAt)

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Equal(t, product.ID, all[len(all)-1].ID)

		require.Len(t, dispatcher.events, 1)
		event, ok := dispatcher.events[0].(ProductCreated)
		require.True(t, ok)
		require.Equal(t, product.ID, event.ProductID)
	})

	t.Run("Create_ValidatesInput", func(t *testing.T) {
		svc, _, dispatcher := newService(t)

		in := validInput
		in.Name = "   "
		_, err := svc.Create(ctx, in)
		require.ErrorIs(t, err, ErrProductNameRequired)

		in = validInput
		in.Category = "vaccines"
		_, err = svc.Create(ctx, in)
		require.ErrorIs(t, err, ErrInvalidCategory)

		in = validInput
		in.Type = ""
		_, err = svc.Create(ctx, in)
		require.ErrorIs(t, err, ErrTypeRequired)

		in = validInput
		in.Status = "archived"
		_, err = svc.Create(ctx, in)
		require.ErrorIs(t, err, ErrInvalidStatus)

		require.Empty(t, dispatcher.events)
	})

	t.Run("Update_MergesPartialFieldsAndRefreshesDate", func(t *testing.T) {
		svc, _, dispatcher := newService(t)
		svc.SetClock(fixedClock("2024-03-10"))

		dosage := "1 tablet twice daily"
		status := models.StatusInactive
		updated, err := svc.Update(ctx, 21, models.ProductUpdate{Dosage: &dosage, Status: &status})
		require.NoError(t, err)
		require.Equal(t, "Ibuprofen 400mg", updated.Name)
		require.Equal(t, dosage, updated.Dosage)
		require.Equal(t, models.StatusInactive, updated.Status)
		require.Equal(t, "2024-02-01", updated.CreatedAt)
		require.Equal(t, "2024-03-10", updated.UpdatedAt)

		stored, err := svc.Get(ctx, 21)
		require.NoError(t, err)
		require.Equal(t, dosage, stored.Dosage)

		require.Len(t, dispatcher.events, 1)
		event, ok := dispatcher.events[0].(ProductUpdated)
		require.True(t, ok)
		require.Equal(t, "Ibuprofen 400mg", event.OldName)
	})

	t.Run("Update_NeverMovesUpdatedAtBeforeCreatedAt", func(t *testing.T) {
		svc, _, _ := newService(t)
		svc.SetClock(fixedClock("2023-12-31"))

		name := "Ibuprofen 200mg"
		updated, err := svc.Update(ctx, 21, models.ProductUpdate{Name: &name})
		require.NoError(t, err)
		require.Equal(t, updated.CreatedAt, updated.UpdatedAt)
	})

	t.Run("Update_KeepsPositionInCatalog", func(t *testing.T) {
		svc, _, _ := newService(t)
		name := "Renamed"
		_, err := svc.Update(ctx, 2, models.ProductUpdate{Name: &name})
		require.NoError(t, err)

		all, err := svc.List(ctx)
		require.NoError(t, err)
		require.Equal(t, productIDs(sampleCatalog()), productIDs(all))
	})

	t.Run("Update_FailsOnInvalidOrMissing", func(t *testing.T) {
		svc, _, dispatcher := newService(t)

		bad := "vaccines"
		_, err := svc.Update(ctx, 1, models.ProductUpdate{Category: &bad})
		require.ErrorIs(t, err, ErrInvalidCategory)

		_, err = svc.Update(ctx, 9999, models.ProductUpdate{})
		require.ErrorIs(t, err, ErrProductNotFound)
		require.Empty(t, dispatcher.events)
	})

	t.Run("Delete_RemovesPermanently", func(t *testing.T) {
		svc, _, dispatcher := newService(t)

		require.NoError(t, svc.Delete(ctx, 41))
		_, err := svc.Get(ctx, 41)
		require.ErrorIs(t, err, ErrProductNotFound)

		require.ErrorIs(t, svc.Delete(ctx, 41), ErrProductNotFound)
		require.Len(t, dispatcher.events, 1)
		_, ok := dispatcher.events[0].(ProductDeleted)
		require.True(t, ok)
	})

	t.Run("Search_SeesAdminChanges", func(t *testing.T) {
		svc, _, _ := newService(t)
		in := validInput
		in.Description = "Third-generation cephalosporin"
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)

		got, err := svc.Search(ctx, Criteria{Query: "cephalosporin"})
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "Cefixime 200mg", got[0].Name)
	})

	t.Run("Counts", func(t *testing.T) {
		svc, _, _ := newService(t)
		total, active, categories, err := svc.Counts(ctx)
		require.NoError(t, err)
		require.Equal(t, 7, total)
		require.Equal(t, 6, active)
		require.Equal(t, 4, categories)
	})
}

func TestMemoryRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("ListAll_ReturnsCopy", func(t *testing.T) {
		repo := NewMemoryRepository()
		require.NoError(t, repo.Insert(ctx, &models.Product{ID: 1, Name: "A"}))

		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		all[0].Name = "changed"

		p, err := repo.Find(ctx, 1)
		require.NoError(t, err)
		require.Equal(t, "A", p.Name)
	})

	t.Run("Insert_RejectsDuplicate", func(t *testing.T) {
		repo := NewMemoryRepository()
		require.NoError(t, repo.Insert(ctx, &models.Product{ID: 1}))
		require.ErrorIs(t, repo.Insert(ctx, &models.Product{ID: 1}), ErrDuplicateID)
	})

	t.Run("Replace_FailsOnMissing", func(t *testing.T) {
		repo := NewMemoryRepository()
		require.ErrorIs(t, repo.Replace(ctx, &models.Product{ID: 5}), ErrProductNotFound)
	})
}

func fixedClock(date string) func() time.Time {
	ts, err := time.Parse(models.DateLayout, date)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return ts }
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
