package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/timeflux/internal/client/models"
	"github.com/dmitrijs2005/timeflux/internal/client/repositories/kv"
	"github.com/dmitrijs2005/timeflux/internal/common"
	"github.com/dmitrijs2005/timeflux/internal/logging"
	"github.com/dmitrijs2005/timeflux/internal/timex"
)

// EventService owns the CRUD lifecycle of user-created events. Every
// mutation persists the full updated list before returning, so a subsequent
// Load never observes a partial write.
type EventService interface {
	// Load returns the persisted custom events. A corrupt list is logged
	// and recovered as empty.
	Load(ctx context.Context) []models.Event

	// Add creates a custom event. Title and date are required; timeOfDay
	// defaults to midnight when empty. Returns common.ErrValidation for
	// bad input, with nothing persisted.
	Add(ctx context.Context, title, date, timeOfDay, color string) (*models.Event, error)

	// Remove deletes the event with the given id and reports whether a
	// removal occurred. Removing an absent id is a no-op, not an error.
	Remove(ctx context.Context, id string) (bool, error)
}

type eventService struct {
	store kv.Store
	clock timex.Clock
	log   logging.Logger

	mu     sync.Mutex
	events []models.Event
	loaded bool
}

func NewEventService(store kv.Store, clock timex.Clock, log logging.Logger) EventService {
	return &eventService{store: store, clock: clock, log: log}
}

func (s *eventService) Load(ctx context.Context) []models.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	out := make([]models.Event, len(s.events))
	copy(out, s.events)
	return out
}

// ensureLoaded reads the persisted list once. Caller must hold s.mu.
func (s *eventService) ensureLoaded(ctx context.Context) {
	if s.loaded {
		return
	}
	s.loaded = true
	s.events = []models.Event{}

	raw, ok, err := s.store.Get(common.KeyCustomEvents)
	if err != nil {
		s.log.Error(ctx, "reading custom events", "error", err)
		return
	}
	if !ok {
		return
	}

	var events []models.Event
	if err := json.Unmarshal([]byte(raw), &events); err != nil {
		s.log.Error(ctx, "custom event list corrupt, starting empty",
			"error", fmt.Errorf("%w: %w", common.ErrStoreCorrupt, err))
		return
	}
	// Records written before createdAt existed unmarshal with the zero
	// default; nothing else to backfill.
	s.events = events
}

func (s *eventService) Add(ctx context.Context, title, date, timeOfDay, color string) (*models.Event, error) {
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}
	if date == "" {
		return nil, fmt.Errorf("%w: date is required", common.ErrValidation)
	}
	target, err := models.ComposeTarget(date, timeOfDay)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrValidation, err)
	}

	event := models.Event{
		ID:        "custom-" + uuid.NewString(),
		Title:     title,
		Date:      target,
		Kind:      models.KindCustom,
		Color:     color,
		CreatedAt: s.clock.Now().UnixMilli(),
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	s.events = append(s.events, event)
	if err := s.persist(); err != nil {
		// No partial state: forget the event we failed to persist.
		s.events = s.events[:len(s.events)-1]
		return nil, fmt.Errorf("persisting custom events: %w", err)
	}
	return &event, nil
}

func (s *eventService) Remove(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ensureLoaded(ctx)

	kept := s.events[:0:0]
	for _, e := range s.events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	if len(kept) == len(s.events) {
		return false, nil
	}

	prev := s.events
	s.events = kept
	if err := s.persist(); err != nil {
		s.events = prev
		return false, fmt.Errorf("persisting custom events: %w", err)
	}
	return true, nil
}

// persist writes the full list synchronously. Caller must hold s.mu.
func (s *eventService) persist() error {
	raw, err := json.Marshal(s.events)
	if err != nil {
		return fmt.Errorf("marshalling custom events: %w", err)
	}
	return s.store.Set(common.KeyCustomEvents, string(raw))
}
