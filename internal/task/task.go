package task

import "time"

// Kind discriminates the three task variants.
type Kind string

const (
	KindTodo     Kind = "todo"
	KindDeadline Kind = "deadline"
	KindEvent    Kind = "event"
)

// Task is the domain model for a single entry.
// Date fields are set at construction and never mutated afterwards;
// only Done changes over a task's lifetime, via List.Mark/Unmark.
type Task struct {
	Kind        Kind       `json:"kind"`
	Description string     `json:"description"`
	Done        bool       `json:"done"`
	Due         *time.Time `json:"due,omitempty"`
	From        *time.Time `json:"from,omitempty"`
	To          *time.Time `json:"to,omitempty"`
}

// NewTodo builds a plain to-do. Callers validate the description first.
func NewTodo(description string) Task {
	return Task{Kind: KindTodo, Description: description}
}

func NewDeadline(description string, due time.Time) Task {
	return Task{Kind: KindDeadline, Description: description, Due: &due}
}

// NewEvent does not require from to precede to; both orderings are accepted.
func NewEvent(description string, from, to time.Time) Task {
	return Task{Kind: KindEvent, Description: description, From: &from, To: &to}
}
