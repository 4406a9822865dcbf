package usecase

import (
	"time"

	"github.com/runoshun/todo/internal/domain"
	"github.com/runoshun/todo/internal/infra/memstore"
	"github.com/runoshun/todo/internal/testutil"
)

var testNow = time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

// testEnv wires the use cases against an in-memory store and fakes.
type testEnv struct {
	store   *memstore.Store
	file    *testutil.MockTaskFile
	sched   *testutil.FakeScheduler
	tracker *Tracker
	logger  *testutil.MockLogger
	clock   *testutil.MockClock
}

func newTestEnv(tasks ...*domain.Task) *testEnv {
	store := memstore.New(tasks)
	file := testutil.NewMockTaskFile()
	sched := testutil.NewFakeScheduler()
	logger := &testutil.MockLogger{}
	return &testEnv{
		store:   store,
		file:    file,
		sched:   sched,
		tracker: NewTracker(store, file, sched, logger),
		logger:  logger,
		clock:   &testutil.MockClock{NowTime: testNow},
	}
}

// ticks advances the fake scheduler by n tick intervals.
func (e *testEnv) ticks(n int) {
	e.sched.Advance(time.Duration(n) * domain.TickInterval)
}

func pendingTask(id int, title string) *domain.Task {
	return &domain.Task{
		ID:        id,
		Title:     title,
		Status:    domain.StatusPending,
		Priority:  domain.PriorityLow,
		CreatedAt: testNow.Add(time.Duration(id) * time.Minute),
	}
}

func doneTask(id int, title string) *domain.Task {
	t := pendingTask(id, title)
	t.Status = domain.StatusDone
	return t
}

func ptr[T any](v T) *T {
	return &v
}
