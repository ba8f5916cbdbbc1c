package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"slices"
	"strings"
	"sync"
	"time"

	"calendar-planner/internal/calendar"
	"calendar-planner/internal/model"
	"calendar-planner/internal/repository"
)

// Storage keys of the two collections.
const (
	EventsKey = "calendar-events"
	TasksKey  = "calendar-tasks"
)

// Snapshot is an immutable view of both collections after a mutation.
// Consumers must not modify the slices.
type Snapshot struct {
	Events []model.Event
	Tasks  []model.Task
}

// Progress counts completed tasks.
type Progress struct {
	Completed int
	Total     int
}

// Percent returns the completed share in the range 0..100.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return p.Completed * 100 / p.Total
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the time source used for ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDGenerator overrides id generation.
func WithIDGenerator(gen func(time.Time) string) Option {
	return func(s *Store) { s.newID = gen }
}

// Store owns the event and task collections and mirrors every mutation to
// the key-value backend before committing it in memory.
type Store struct {
	kv    repository.KV
	now   func() time.Time
	newID func(time.Time) string

	mu          sync.Mutex
	events      []model.Event
	tasks       []model.Task
	subscribers map[int]func(Snapshot)
	nextSub     int
}

func New(kv repository.KV, opts ...Option) *Store {
	s := &Store{
		kv:          kv,
		now:         time.Now,
		newID:       NewID,
		events:      []model.Event{},
		tasks:       []model.Task{},
		subscribers: make(map[int]func(Snapshot)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load rehydrates both collections. A missing or unparsable entry yields an
// empty collection; backend failures are returned.
func (s *Store) Load(ctx context.Context) error {
	events, err := loadCollection[model.Event](ctx, s.kv, EventsKey)
	if err != nil {
		return err
	}
	tasks, err := loadCollection[model.Task](ctx, s.kv, TasksKey)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.events = events
	s.tasks = tasks
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	log.Printf("[info] store loaded events=%d tasks=%d", len(events), len(tasks))
	publish(subs, snap)
	return nil
}

// Save writes both collections to the backend.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := saveCollection(ctx, s.kv, EventsKey, s.events); err != nil {
		return err
	}
	return saveCollection(ctx, s.kv, TasksKey, s.tasks)
}

// Subscribe registers fn to receive a snapshot after every committed
// mutation. The returned func removes the subscription.
func (s *Store) Subscribe(fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextSub
	s.nextSub++
	s.subscribers[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.subscribers, id)
	}
}

// Snapshot returns the current collections.
func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap, _ := s.snapshotLocked()
	return snap
}

// Events returns a copy of the event collection in insertion order.
func (s *Store) Events() []model.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.events)
}

// Event looks up a single event.
func (s *Store) Event(id string) (model.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.events, func(e model.Event) bool { return e.ID == id })
	if i < 0 {
		return model.Event{}, false
	}
	return s.events[i], true
}

// EventsOn returns the events on day, sorted by start time.
func (s *Store) EventsOn(day time.Time) []model.Event {
	return EventsOn(s.Events(), day)
}

// AddEvent validates in, assigns a fresh id and appends the event.
func (s *Store) AddEvent(ctx context.Context, in model.EventInput) (model.Event, error) {
	if err := in.Validate(); err != nil {
		return model.Event{}, err
	}

	s.mu.Lock()
	ev := in.Build(s.newID(s.now()))
	next := append(slices.Clone(s.events), ev)
	if err := s.commitEventsLocked(ctx, next); err != nil {
		s.mu.Unlock()
		return model.Event{}, err
	}
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	log.Printf("[info] event created id=%s date=%s", ev.ID, ev.Date.Format(calendar.DayLayout))
	publish(subs, snap)
	return ev, nil
}

// UpdateEvent replaces the event with the given id, keeping the id. It
// reports false without writing anything when no event matches.
func (s *Store) UpdateEvent(ctx context.Context, id string, in model.EventInput) (bool, error) {
	if err := in.Validate(); err != nil {
		return false, err
	}

	s.mu.Lock()
	i := slices.IndexFunc(s.events, func(e model.Event) bool { return e.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	next := slices.Clone(s.events)
	next[i] = in.Build(id)
	if err := s.commitEventsLocked(ctx, next); err != nil {
		s.mu.Unlock()
		return false, err
	}
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	log.Printf("[info] event updated id=%s", id)
	publish(subs, snap)
	return true, nil
}

// DeleteEvent removes the event with the given id. Unknown ids are a no-op.
func (s *Store) DeleteEvent(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	next := slices.DeleteFunc(slices.Clone(s.events), func(e model.Event) bool { return e.ID == id })
	if len(next) == len(s.events) {
		s.mu.Unlock()
		return false, nil
	}
	if err := s.commitEventsLocked(ctx, next); err != nil {
		s.mu.Unlock()
		return false, err
	}
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	log.Printf("[info] event deleted id=%s", id)
	publish(subs, snap)
	return true, nil
}

// Tasks returns a copy of the task collection in insertion order.
func (s *Store) Tasks() []model.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.tasks)
}

func (s *Store) Task(id string) (model.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	i := slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		return model.Task{}, false
	}
	return s.tasks[i], true
}

// AddTask validates in, assigns a fresh id and appends the task.
func (s *Store) AddTask(ctx context.Context, in model.TaskInput) (model.Task, error) {
	if err := in.Validate(); err != nil {
		return model.Task{}, err
	}

	s.mu.Lock()
	task := in.Build(s.newID(s.now()))
	next := append(slices.Clone(s.tasks), task)
	if err := s.commitTasksLocked(ctx, next); err != nil {
		s.mu.Unlock()
		return model.Task{}, err
	}
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	log.Printf("[info] task created id=%s", task.ID)
	publish(subs, snap)
	return task, nil
}

// ToggleTask flips the completed flag of the matching task and nothing else.
func (s *Store) ToggleTask(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	i := slices.IndexFunc(s.tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		s.mu.Unlock()
		return false, nil
	}
	next := slices.Clone(s.tasks)
	next[i].Completed = !next[i].Completed
	completed := next[i].Completed
	if err := s.commitTasksLocked(ctx, next); err != nil {
		s.mu.Unlock()
		return false, err
	}
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	log.Printf("[info] task toggled id=%s completed=%t", id, completed)
	publish(subs, snap)
	return true, nil
}

// DeleteTask removes the task with the given id. Unknown ids are a no-op.
func (s *Store) DeleteTask(ctx context.Context, id string) (bool, error) {
	s.mu.Lock()
	next := slices.DeleteFunc(slices.Clone(s.tasks), func(t model.Task) bool { return t.ID == id })
	if len(next) == len(s.tasks) {
		s.mu.Unlock()
		return false, nil
	}
	if err := s.commitTasksLocked(ctx, next); err != nil {
		s.mu.Unlock()
		return false, err
	}
	snap, subs := s.snapshotLocked()
	s.mu.Unlock()

	log.Printf("[info] task deleted id=%s", id)
	publish(subs, snap)
	return true, nil
}

// Progress counts completed tasks against all tasks.
func (s *Store) Progress() Progress {
	s.mu.Lock()
	defer s.mu.Unlock()
	return ProgressOf(s.tasks)
}

func ProgressOf(tasks []model.Task) Progress {
	p := Progress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			p.Completed++
		}
	}
	return p
}

// EventsOn filters events to those on day and sorts them by start time.
// "HH:MM" is fixed width, so string order is time order.
func EventsOn(events []model.Event, day time.Time) []model.Event {
	out := make([]model.Event, 0)
	for _, ev := range events {
		if calendar.SameDay(ev.Date, day) {
			out = append(out, ev)
		}
	}
	slices.SortStableFunc(out, func(a, b model.Event) int {
		return strings.Compare(a.StartTime, b.StartTime)
	})
	return out
}

func (s *Store) commitEventsLocked(ctx context.Context, next []model.Event) error {
	if err := saveCollection(ctx, s.kv, EventsKey, next); err != nil {
		return err
	}
	s.events = next
	return nil
}

func (s *Store) commitTasksLocked(ctx context.Context, next []model.Task) error {
	if err := saveCollection(ctx, s.kv, TasksKey, next); err != nil {
		return err
	}
	s.tasks = next
	return nil
}

func (s *Store) snapshotLocked() (Snapshot, []func(Snapshot)) {
	snap := Snapshot{Events: slices.Clone(s.events), Tasks: slices.Clone(s.tasks)}
	subs := make([]func(Snapshot), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		subs = append(subs, fn)
	}
	return snap, subs
}

// publish runs outside the lock so subscribers may read the store.
func publish(subs []func(Snapshot), snap Snapshot) {
	for _, fn := range subs {
		fn(snap)
	}
}

func loadCollection[T any](ctx context.Context, kv repository.KV, key string) ([]T, error) {
	payload, err := kv.Get(ctx, key)
	if errors.Is(err, repository.ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(payload, &items); err != nil {
		log.Printf("[warn] discard unparsable %s: %v", key, err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func saveCollection[T any](ctx context.Context, kv repository.KV, key string, items []T) error {
	payload, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal %s: %w", key, err)
	}
	if err := kv.Put(ctx, key, payload); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}
