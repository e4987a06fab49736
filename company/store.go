// Package company keeps the editable "About" content: profile texts, leadership and facilities.
package company

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"medivance-backend/ids"
	"medivance-backend/models"
)

var (
	ErrMemberNotFound   = errors.New("leadership member not found")
	ErrFacilityNotFound = errors.New("facility not found")
	ErrInvalidProfile   = errors.New("mission and vision are required")
	ErrInvalidMember    = errors.New("name and position are required")
	ErrInvalidFacility  = errors.New("location is required and employees cannot be negative")
)

const saveTimeout = 5 * time.Second

// Profile is the public view of the company page.
type Profile struct {
	Info       models.CompanyInfo        `json:"info" yaml:"info" bson:"info"`
	Leadership []models.LeadershipMember `json:"leadership" yaml:"leadership" bson:"leadership"`
	Facilities []models.Facility         `json:"facilities" yaml:"facilities" bson:"facilities"`
}

// Store holds the company profile in memory. All getters return copies. With a Snapshotter
// attached, every change is saved before it becomes visible.
type Store struct {
	mu      sync.RWMutex
	ids     ids.Generator
	profile Profile
	snap    Snapshotter
}

func NewStore(idGen ids.Generator, seed Profile) *Store {
	return &Store{ids: idGen, profile: cloneProfile(seed)}
}

// Attach loads the stored profile from snap in place of the seed. When nothing is stored yet
// the seed is saved instead.
func (s *Store) Attach(ctx context.Context, snap Snapshotter) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := snap.Load(ctx)
	switch {
	case err == nil:
		s.profile = cloneProfile(*stored)
	case errors.Is(err, ErrNoSnapshot):
		if err := snap.Save(ctx, cloneProfile(s.profile)); err != nil {
			return fmt.Errorf("failed to save company profile: %w", err)
		}
	default:
		return err
	}
	s.snap = snap
	return nil
}

func (s *Store) Profile() Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneProfile(s.profile)
}

func (s *Store) Info() models.CompanyInfo {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneInfo(s.profile.Info)
}

// UpdateInfo replaces the profile texts. Blank values are dropped from the values list.
func (s *Store) UpdateInfo(info models.CompanyInfo) (models.CompanyInfo, error) {
	info.Mission = strings.TrimSpace(info.Mission)
	info.Vision = strings.TrimSpace(info.Vision)
	if info.Mission == "" || info.Vision == "" {
		return models.CompanyInfo{}, ErrInvalidProfile
	}
	values := make([]string, 0, len(info.Values))
	for _, v := range info.Values {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	info.Values = values

	s.mu.Lock()
	defer s.mu.Unlock()
	next := cloneProfile(s.profile)
	next.Info = cloneInfo(info)
	if err := s.commit(next); err != nil {
		return models.CompanyInfo{}, err
	}
	return info, nil
}

func (s *Store) AddMember(m models.LeadershipMember) (models.LeadershipMember, error) {
	if err := validateMember(&m); err != nil {
		return models.LeadershipMember{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.ids.NextID()
	next := cloneProfile(s.profile)
	next.Leadership = append(next.Leadership, m)
	if err := s.commit(next); err != nil {
		return models.LeadershipMember{}, err
	}
	return m, nil
}

func (s *Store) UpdateMember(id int64, m models.LeadershipMember) (models.LeadershipMember, error) {
	if err := validateMember(&m); err != nil {
		return models.LeadershipMember{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.profile.Leadership, func(x models.LeadershipMember) bool { return x.ID == id })
	if i < 0 {
		return models.LeadershipMember{}, ErrMemberNotFound
	}
	m.ID = id
	next := cloneProfile(s.profile)
	next.Leadership[i] = m
	if err := s.commit(next); err != nil {
		return models.LeadershipMember{}, err
	}
	return m, nil
}

func (s *Store) DeleteMember(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.profile.Leadership, func(x models.LeadershipMember) bool { return x.ID == id })
	if i < 0 {
		return ErrMemberNotFound
	}
	next := cloneProfile(s.profile)
	next.Leadership = slices.Delete(next.Leadership, i, i+1)
	return s.commit(next)
}

func (s *Store) AddFacility(f models.Facility) (models.Facility, error) {
	if err := validateFacility(&f); err != nil {
		return models.Facility{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	f.ID = s.ids.NextID()
	next := cloneProfile(s.profile)
	next.Facilities = append(next.Facilities, f)
	if err := s.commit(next); err != nil {
		return models.Facility{}, err
	}
	return f, nil
}

func (s *Store) UpdateFacility(id int64, f models.Facility) (models.Facility, error) {
	if err := validateFacility(&f); err != nil {
		return models.Facility{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.profile.Facilities, func(x models.Facility) bool { return x.ID == id })
	if i < 0 {
		return models.Facility{}, ErrFacilityNotFound
	}
	f.ID = id
	next := cloneProfile(s.profile)
	next.Facilities[i] = f
	if err := s.commit(next); err != nil {
		return models.Facility{}, err
	}
	return f, nil
}

func (s *Store) DeleteFacility(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.profile.Facilities, func(x models.Facility) bool { return x.ID == id })
	if i < 0 {
		return ErrFacilityNotFound
	}
	next := cloneProfile(s.profile)
	next.Facilities = slices.Delete(next.Facilities, i, i+1)
	return s.commit(next)
}

// commit saves next through the snapshotter, if any, and then makes it current. Callers hold mu.
func (s *Store) commit(next Profile) error {
	if s.snap != nil {
		ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
		defer cancel()
		if err := s.snap.Save(ctx, next); err != nil {
			return fmt.Errorf("failed to save company profile: %w", err)
		}
	}
	s.profile = next
	return nil
}

func validateMember(m *models.LeadershipMember) error {
	m.Name = strings.TrimSpace(m.Name)
	m.Position = strings.TrimSpace(m.Position)
	if m.Name == "" || m.Position == "" {
		return ErrInvalidMember
	}
	return nil
}

func validateFacility(f *models.Facility) error {
	f.Location = strings.TrimSpace(f.Location)
	if f.Location == "" || f.Employees < 0 {
		return ErrInvalidFacility
	}
	return nil
}

func cloneInfo(info models.CompanyInfo) models.CompanyInfo {
	info.Values = append([]string{}, info.Values...)
	return info
}

func cloneProfile(p Profile) Profile {
	return Profile{
		Info:       cloneInfo(p.Info),
		Leadership: append([]models.LeadershipMember{}, p.Leadership...),
		Facilities: append([]models.Facility{}, p.Facilities...),
	}
}
