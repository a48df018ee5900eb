// Package command is the interpreter core: it parses free-form input
// lines into typed commands and applies them to a task list.
package command

import "time"

// Command is the closed set of things a user can ask for. Each verb
// gets its own type carrying already-validated, typed arguments, so the
// interpreter switches over types instead of comparing strings twice.
type Command interface {
	isCommand()
}

// Nop is a blank input line. Executing it produces nothing.
type Nop struct{}

// Bye ends the session with a farewell.
type Bye struct{}

// ListAll renders the whole collection.
type ListAll struct{}

// Mark sets the task at Index (1-based) to done.
type Mark struct {
	Index int
}

// Unmark clears the done flag on the task at Index (1-based).
type Unmark struct {
	Index int
}

// Delete removes the task at Index (1-based).
type Delete struct {
	Index int
}

// Find searches descriptions for Keyword, case-insensitively.
type Find struct {
	Keyword string
}

// AddTodo creates a plain to-do.
type AddTodo struct {
	Description string
}

// AddDeadline creates a task due at a single point in time.
type AddDeadline struct {
	Description string
	Due         time.Time
}

// AddEvent creates a task spanning From to To. No ordering between the
// two is enforced.
type AddEvent struct {
	Description string
	From        time.Time
	To          time.Time
}

func (Nop) isCommand()         {}
func (Bye) isCommand()         {}
func (ListAll) isCommand()     {}
func (Mark) isCommand()        {}
func (Unmark) isCommand()      {}
func (Delete) isCommand()      {}
func (Find) isCommand()        {}
func (AddTodo) isCommand()     {}
func (AddDeadline) isCommand() {}
func (AddEvent) isCommand()    {}
