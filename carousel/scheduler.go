// Package carousel cycles an index over a fixed-length slide sequence on a timer.
package carousel

import (
	"errors"
	"sync"
	"time"
)

var (
	ErrEmpty           = errors.New("carousel has no slides")
	ErrIndexOutOfRange = errors.New("slide index out of range")
	ErrClosed          = errors.New("carousel is closed")
)

// DefaultInterval is the delay between automatic advances.
const DefaultInterval = 3 * time.Second

// State is a snapshot of the scheduler.
type State struct {
	CurrentIndex int  `json:"currentIndex"`
	Length       int  `json:"length"`
	IsPlaying    bool `json:"isPlaying"`
	IsHovered    bool `json:"isHovered"`
}

// Scheduler advances CurrentIndex every interval while playing and not hovered.
//
// Each change of the playing or hovered flag cancels the running tick goroutine and arms a new
// one, so the first advance after a change happens a full interval later. Manual navigation
// leaves the running timer alone.
type Scheduler struct {
	mu       sync.Mutex
	length   int
	interval time.Duration
	current  int
	playing  bool
	hovered  bool
	closed   bool

	stop chan struct{}
	done chan struct{}

	onAdvance func(State)
}

// New builds a stopped scheduler over length slides.
func New(length int, interval time.Duration) (*Scheduler, error) {
	if length <= 0 {
		return nil, ErrEmpty
	}
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{length: length, interval: interval}, nil
}

// OnAdvance registers fn to be called after every automatic advance. fn runs on the tick
// goroutine and must not change the playing or hovered flags.
func (s *Scheduler) OnAdvance(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onAdvance = fn
}

func (s *Scheduler) Start() error {
	return s.update(func(_, hovered bool) (bool, bool) { return true, hovered })
}

func (s *Scheduler) Stop() error {
	return s.update(func(_, hovered bool) (bool, bool) { return false, hovered })
}

// Pause marks the carousel as hovered. The index holds until Resume.
func (s *Scheduler) Pause() error {
	return s.update(func(playing, _ bool) (bool, bool) { return playing, true })
}

func (s *Scheduler) Resume() error {
	return s.update(func(playing, _ bool) (bool, bool) { return playing, false })
}

// Toggle flips the playing flag.
func (s *Scheduler) Toggle() error {
	return s.update(func(playing, hovered bool) (bool, bool) { return !playing, hovered })
}

func (s *Scheduler) Next() (int, error) {
	return s.step(1)
}

func (s *Scheduler) Prev() (int, error) {
	return s.step(-1)
}

// JumpTo sets the index directly. i must be within [0, length).
func (s *Scheduler) JumpTo(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	if i < 0 || i >= s.length {
		return ErrIndexOutOfRange
	}
	s.current = i
	return nil
}

func (s *Scheduler) Current() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *Scheduler) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// Close cancels the tick goroutine and waits for it to exit. Later calls are no-ops.
func (s *Scheduler) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.playing = false
	done := s.disarm()
	s.mu.Unlock()

	if done != nil {
		<-done
	}
}

func (s *Scheduler) step(delta int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return s.current, ErrClosed
	}
	s.current = (s.current + delta + s.length) % s.length
	return s.current, nil
}

// update applies fn to the flags and re-arms the timer when either flag changed.
func (s *Scheduler) update(fn func(playing, hovered bool) (bool, bool)) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrClosed
	}
	playing, hovered := fn(s.playing, s.hovered)
	if playing == s.playing && hovered == s.hovered {
		s.mu.Unlock()
		return nil
	}
	s.playing, s.hovered = playing, hovered
	done := s.disarm()
	if s.playing && !s.hovered {
		s.arm()
	}
	s.mu.Unlock()

	if done != nil {
		<-done
	}
	return nil
}

// arm starts a tick goroutine. Callers hold mu.
func (s *Scheduler) arm() {
	stop := make(chan struct{})
	done := make(chan struct{})
	s.stop, s.done = stop, done
	go s.run(stop, done)
}

// disarm signals the running tick goroutine and returns its done channel, or nil when none runs.
// Callers hold mu and must wait on the channel after releasing it.
func (s *Scheduler) disarm() chan struct{} {
	if s.stop == nil {
		return nil
	}
	close(s.stop)
	done := s.done
	s.stop, s.done = nil, nil
	return done
}

func (s *Scheduler) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-ticker.C:
			s.tick(stop)
		}
	}
}

func (s *Scheduler) tick(stop <-chan struct{}) {
	s.mu.Lock()
	select {
	case <-stop:
		s.mu.Unlock()
		return
	default:
	}
	if !s.playing || s.hovered {
		s.mu.Unlock()
		return
	}
	s.current = (s.current + 1) % s.length
	state, fn := s.snapshot(), s.onAdvance
	s.mu.Unlock()

	if fn != nil {
		fn(state)
	}
}

func (s *Scheduler) snapshot() State {
	return State{
		CurrentIndex: s.current,
		Length:       s.length,
		IsPlaying:    s.playing,
		IsHovered:    s.hovered,
	}
}
