package task

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleList() *List {
	l := NewList(nil)
	l.Add(NewTodo("read book"))
	l.Add(NewDeadline("submit report", time.Date(2024, 12, 1, 18, 0, 0, 0, time.Local)))
	l.Add(NewTodo("return Book"))
	return l
}

func TestNewTaskStartsNotDone(t *testing.T) {
	l := NewList(nil)
	l.Add(NewTodo("read book"))

	assert.Equal(t, 1, l.Len())
	assert.False(t, l.Tasks()[0].Done)
	assert.Equal(t, KindTodo, l.Tasks()[0].Kind)
}

func TestConstructorsSetKindFields(t *testing.T) {
	due := time.Date(2024, 12, 1, 18, 0, 0, 0, time.Local)
	from := time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local)
	to := time.Date(2024, 1, 5, 18, 0, 0, 0, time.Local)

	d := NewDeadline("submit report", due)
	require.NotNil(t, d.Due)
	assert.True(t, d.Due.Equal(due))
	assert.Nil(t, d.From)

	e := NewEvent("trip", from, to)
	require.NotNil(t, e.From)
	require.NotNil(t, e.To)
	assert.True(t, e.From.Equal(from))
	assert.True(t, e.To.Equal(to))
	assert.Nil(t, e.Due)
}

func TestMarkUnmarkIdempotent(t *testing.T) {
	l := sampleList()
	tk, err := l.At(1)
	require.NoError(t, err)

	l.Mark(tk)
	l.Mark(tk)
	assert.True(t, l.Tasks()[0].Done)

	l.Unmark(tk)
	assert.False(t, l.Tasks()[0].Done)
}

func TestDeleteShiftsFollowingTasks(t *testing.T) {
	l := sampleList()
	second := l.Tasks()[1]

	removed, err := l.Delete(1)
	require.NoError(t, err)

	assert.Equal(t, "read book", removed.Description)
	assert.Equal(t, 2, l.Len())
	assert.Equal(t, second.Description, l.Tasks()[0].Description)
}

func TestDeleteOutOfRange(t *testing.T) {
	l := sampleList()

	_, err := l.Delete(0)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	_, err = l.Delete(4)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	assert.Equal(t, 3, l.Len())
}

func TestAtOutOfRange(t *testing.T) {
	l := NewList(nil)
	_, err := l.At(1)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestFindIsCaseInsensitiveAndNonMutating(t *testing.T) {
	l := sampleList()

	got := l.Find("BOOK")
	require.Equal(t, 2, got.Len())
	assert.Equal(t, "read book", got.Tasks()[0].Description)
	assert.Equal(t, "return Book", got.Tasks()[1].Description)

	// source untouched, original order preserved
	assert.Equal(t, 3, l.Len())
	assert.Equal(t, "submit report", l.Tasks()[1].Description)
}

func TestFindNoMatchesReturnsEmptyList(t *testing.T) {
	l := sampleList()
	assert.True(t, l.Find("laundry").IsEmpty())
}
