// Package catalog owns the product collection: persistence, search and admin mutations.
package catalog

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

// Service is the single source of truth for product data. The public catalog and the admin
// panel both go through the same instance.
type Service struct {
	repo       Repository
	ids        ids.Generator
	dispatcher events.Dispatcher
	now        func() time.Time
}

func NewService(repo Repository, idGen ids.Generator, dispatcher events.Dispatcher) *Service {
	return &Service{
		repo:       repo,
		ids:        idGen,
		dispatcher: dispatcher,
		now:        time.Now,
	}
}

// SetClock replaces the clock used for createdAt/updatedAt stamps.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Seed loads the initial catalog. Products whose id is already stored are left untouched, so
// seeding a persistent store twice is harmless. Duplicate ids inside seed itself are rejected.
func (s *Service) Seed(ctx context.Context, seed []models.Product) error {
	seen := make(map[int64]bool, len(seed))
	for _, p := range seed {
		if seen[p.ID] {
			return fmt.Errorf("seed product %d: %w", p.ID, ErrDuplicateID)
		}
		seen[p.ID] = true
	}

	today := s.today()
	for _, p := range seed {
		if _, err := s.repo.Find(ctx, p.ID); err == nil {
			continue
		} else if !errors.Is(err, ErrProductNotFound) {
			return err
		}
		if p.Status == "" {
			p.Status = models.StatusActive
		}
		if p.CreatedAt == "" {
			p.CreatedAt = today
		}
		if p.UpdatedAt < p.CreatedAt {
			p.UpdatedAt = p.CreatedAt
		}
		if err := s.repo.Insert(ctx, &p); err != nil {
			return fmt.Errorf("failed to seed product %d: %w", p.ID, err)
		}
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]models.Product, error) {
	return s.repo.ListAll(ctx)
}

// Search runs the filter engine over the current catalog.
func (s *Service) Search(ctx context.Context, c Criteria) ([]models.Product, error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return Filter(all, c), nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.Product, error) {
	return s.repo.Find(ctx, id)
}

func (s *Service) Create(ctx context.Context, in models.ProductInput) (*models.Product, error) {
	today := s.today()
	product := &models.Product{
		ID:          s.ids.NextID(),
		Name:        strings.TrimSpace(in.Name),
		Category:    in.Category,
		Type:        strings.TrimSpace(in.Type),
		Description: in.Description,
		Indication:  in.Indication,
		Dosage:      in.Dosage,
		Packaging:   in.Packaging,
		Strength:    in.Strength,
		Image:       strings.TrimSpace(in.Image),
		Status:      in.Status,
		CreatedAt:   today,
		UpdatedAt:   today,
	}
	if product.Status == "" {
		product.Status = models.StatusActive
	}
	if err := validate(product); err != nil {
		return nil, err
	}

	if err := s.repo.Insert(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to store product: %w", err)
	}

	s.dispatch(ProductCreated{ProductID: product.ID, Name: product.Name})
	return product, nil
}

// Update merges the provided fields into the stored product and refreshes updatedAt.
func (s *Service) Update(ctx context.Context, id int64, upd models.ProductUpdate) (*models.Product, error) {
	product, err := s.repo.Find(ctx, id)
	if err != nil {
		return nil, err
	}
	oldName := product.Name

	setString(&product.Name, upd.Name, true)
	setString(&product.Category, upd.Category, false)
	setString(&product.Type, upd.Type, true)
	setString(&product.Description, upd.Description, false)
	setString(&product.Indication, upd.Indication, false)
	setString(&product.Dosage, upd.Dosage, false)
	setString(&product.Packaging, upd.Packaging, false)
	setString(&product.Strength, upd.Strength, false)
	setString(&product.Image, upd.Image, true)
	setString(&product.Status, upd.Status, false)
	if err := validate(product); err != nil {
		return nil, err
	}

	product.UpdatedAt = s.today()
	if product.UpdatedAt < product.CreatedAt {
		product.UpdatedAt = product.CreatedAt
	}

	if err := s.repo.Replace(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.dispatch(ProductUpdated{ProductID: product.ID, OldName: oldName, NewName: product.Name})
	return product, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.dispatch(ProductDeleted{ProductID: id})
	return nil
}

// Counts returns the total, active and distinct-category counts for the dashboard.
func (s *Service) Counts(ctx context.Context) (total, active, categories int, err error) {
	all, err := s.repo.ListAll(ctx)
	if err != nil {
		return 0, 0, 0, err
	}
	seen := make(map[string]bool)
	for _, p := range all {
		if p.Status == models.StatusActive {
			active++
		}
		seen[p.Category] = true
	}
	return len(all), active, len(seen), nil
}

func (s *Service) today() string {
	return s.now().Format(models.DateLayout)
}

func (s *Service) dispatch(e events.Event) {
	if err := s.dispatcher.Dispatch(e); err != nil {
		zap.L().Warn("failed to dispatch catalog event", zap.String("event", e.Type()), zap.Error(err))
	}
}

func validate(p *models.Product) error {
	if p.Name == "" {
		return ErrProductNameRequired
	}
	if !models.IsKnownCategory(p.Category) {
		return fmt.Errorf("%w: %q", ErrInvalidCategory, p.Category)
	}
	if p.Type == "" {
		return ErrTypeRequired
	}
	if p.Status != models.StatusActive && p.Status != models.StatusInactive {
		return ErrInvalidStatus
	}
	return nil
}

func setString(dst *string, src *string, trim bool) {
	if src == nil {
		return
	}
	if trim {
		*dst = strings.TrimSpace(*src)
		return
	}
	*dst = *src
}
