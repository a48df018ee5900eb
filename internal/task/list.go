package task

import (
	"errors"
	"strings"
)

// ErrIndexOutOfRange reports a 1-based index outside [1, Len()].
var ErrIndexOutOfRange = errors.New("index out of range")

// List is an ordered, mutable collection of tasks. Indexes exposed to
// callers are 1-based; storage is 0-based. Not safe for concurrent use.
type List struct {
	tasks []Task
}

func NewList(tasks []Task) *List {
	if tasks == nil {
		tasks = []Task{}
	}
	return &List{tasks: tasks}
}

// Add appends t to the end of the list.
func (l *List) Add(t Task) {
	l.tasks = append(l.tasks, t)
}

// At returns a pointer to the task at the given 1-based index.
func (l *List) At(oneBased int) (*Task, error) {
	if oneBased < 1 || oneBased > len(l.tasks) {
		return nil, ErrIndexOutOfRange
	}
	return &l.tasks[oneBased-1], nil
}

// Mark sets the task done. Marking an already-done task is a no-op.
func (l *List) Mark(t *Task) {
	t.Done = true
}

// Unmark clears the done flag.
func (l *List) Unmark(t *Task) {
	t.Done = false
}

// Delete removes the task at the given 1-based index and returns it.
// Tasks after it shift down by one position.
func (l *List) Delete(oneBased int) (Task, error) {
	if oneBased < 1 || oneBased > len(l.tasks) {
		return Task{}, ErrIndexOutOfRange
	}
	i := oneBased - 1
	removed := l.tasks[i]
	l.tasks = append(l.tasks[:i], l.tasks[i+1:]...)
	return removed, nil
}

// Find returns a new list with every task whose description contains
// keyword, case-insensitively, in original order. The receiver is not
// modified.
func (l *List) Find(keyword string) *List {
	needle := strings.ToLower(keyword)
	out := NewList(nil)
	for _, t := range l.tasks {
		if strings.Contains(strings.ToLower(t.Description), needle) {
			out.Add(t)
		}
	}
	return out
}

func (l *List) Len() int { return len(l.tasks) }

func (l *List) IsEmpty() bool { return len(l.tasks) == 0 }

// Tasks returns the underlying slice in display order. Callers use it
// for persistence and rendering and must not reorder it.
func (l *List) Tasks() []Task { return l.tasks }
