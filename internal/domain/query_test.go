package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func queryFixture() []*Task {
	base := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	return []*Task{
		{ID: 1, Title: "Write report", Description: "quarterly numbers", Priority: PriorityHigh, Status: StatusPending, CreatedAt: base},
		{ID: 2, Title: "Buy milk", Priority: PriorityLow, Status: StatusDone, CreatedAt: base.Add(time.Hour)},
		{ID: 3, Title: "Call bank", Description: "about the REPORT fee", Priority: PriorityHigh, Status: StatusPending, CreatedAt: base.Add(2 * time.Hour)},
	}
}

func ids(tasks []*Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestTaskQuery_Apply_StatusAndPriority(t *testing.T) {
	tasks := queryFixture()

	newest := TaskQuery{Status: StatusFilterPending, Priority: PriorityFilterHigh}.Apply(tasks)
	assert.Equal(t, []int{3, 1}, ids(newest))

	oldest := TaskQuery{Status: StatusFilterPending, Priority: PriorityFilterHigh, Order: SortOldest}.Apply(tasks)
	assert.Equal(t, []int{1, 3}, ids(oldest))
}

func TestTaskQuery_Apply_Search(t *testing.T) {
	tasks := queryFixture()

	tests := []struct {
		search string
		want   []int
	}{
		{"", []int{3, 2, 1}},
		{"report", []int{3, 1}},
		{"  MILK ", []int{2}},
		{"quarterly", []int{1}},
		{"nothing", []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.search, func(t *testing.T) {
			got := TaskQuery{Search: tt.search}.Apply(tasks)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestTaskQuery_Apply_StableOnTies(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	tasks := []*Task{
		{ID: 1, CreatedAt: at},
		{ID: 2, CreatedAt: at},
		{ID: 3, CreatedAt: at},
	}

	assert.Equal(t, []int{1, 2, 3}, ids(TaskQuery{Order: SortNewest}.Apply(tasks)))
	assert.Equal(t, []int{1, 2, 3}, ids(TaskQuery{Order: SortOldest}.Apply(tasks)))
}

func TestTaskQuery_Apply_DoesNotMutateInput(t *testing.T) {
	tasks := queryFixture()

	_ = TaskQuery{Order: SortNewest}.Apply(tasks)

	assert.Equal(t, []int{1, 2, 3}, ids(tasks))
}

func TestParseFilters(t *testing.T) {
	sf, err := ParseStatusFilter("")
	require.NoError(t, err)
	assert.Equal(t, StatusFilterAll, sf)

	sf, err = ParseStatusFilter("Done")
	require.NoError(t, err)
	assert.Equal(t, StatusFilterDone, sf)

	_, err = ParseStatusFilter("archived")
	assert.ErrorIs(t, err, ErrInvalidStatusFilter)

	pf, err := ParsePriorityFilter("medium")
	require.NoError(t, err)
	assert.Equal(t, PriorityFilterMedium, pf)

	_, err = ParsePriorityFilter("urgent")
	assert.ErrorIs(t, err, ErrInvalidPriorityFilter)

	so, err := ParseSortOrder("")
	require.NoError(t, err)
	assert.Equal(t, SortNewest, so)
	assert.Equal(t, SortOldest, so.Toggle())

	_, err = ParseSortOrder("random")
	assert.ErrorIs(t, err, ErrInvalidSortOrder)
}
