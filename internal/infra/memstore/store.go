// Package memstore provides the in-memory working set of tasks.
package memstore

import (
	"sync"

	"github.com/runoshun/todo/internal/domain"
)

// Ensure Store implements domain.TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

// Store holds tasks in insertion order.
// Returned tasks are the stored records; callers mutate them in place.
type Store struct {
	index map[int]*domain.Task
	tasks []*domain.Task
	mu    sync.RWMutex
}

// New creates a Store seeded with tasks, typically the result of a load.
// A task whose id is already taken is renumbered above the current
// maximum so that no record is lost.
func New(tasks []*domain.Task) *Store {
	s := &Store{index: make(map[int]*domain.Task, len(tasks))}
	next := domain.NextID(tasks)
	for _, t := range tasks {
		if _, dup := s.index[t.ID]; dup {
			t.ID = next
			next++
		}
		s.index[t.ID] = t
		s.tasks = append(s.tasks, t)
	}
	return s
}

// Get returns the task with the given id, or nil.
func (s *Store) Get(id int) *domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.index[id]
}

// All returns every task in insertion order.
func (s *Store) All() []*domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Add appends a task.
func (s *Store) Add(task *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, dup := s.index[task.ID]; dup {
		return domain.ErrDuplicateID
	}
	s.index[task.ID] = task
	s.tasks = append(s.tasks, task)
	return nil
}

// Update applies fields to the task with the given id.
// Returns false if the task does not exist.
func (s *Store) Update(id int, fields domain.TaskFields) (*domain.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.index[id]
	if !ok {
		return nil, false
	}
	fields.Apply(t)
	return t, true
}

// Remove deletes the task with the given id.
func (s *Store) Remove(id int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.index[id]; !ok {
		return false
	}
	delete(s.index, id)
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			break
		}
	}
	return true
}

// MarkDone transitions the task to done.
// A missing id returns (nil, nil).
func (s *Store) MarkDone(id int) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.index[id]
	if !ok {
		return nil, nil
	}
	if err := t.MarkDone(); err != nil {
		return t, err
	}
	return t, nil
}

// Undo transitions the task back to pending.
// A missing id returns (nil, nil).
func (s *Store) Undo(id int) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.index[id]
	if !ok {
		return nil, nil
	}
	if err := t.Undo(); err != nil {
		return t, err
	}
	return t, nil
}

// Query returns the tasks matching q in q's sort order.
func (s *Store) Query(q domain.TaskQuery) []*domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return q.Apply(s.tasks)
}

// NextID returns one more than the largest id held, or 1 when empty.
func (s *Store) NextID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return domain.NextID(s.tasks)
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.tasks)
}
