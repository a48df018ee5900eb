package command

import (
	"errors"
	"fmt"

	"github.com/idilsaglam/taskline/internal/render"
	"github.com/idilsaglam/taskline/internal/task"
)

// Store is the persistence gateway the interpreter writes through.
// Save receives the full collection after every mutating command;
// overwrite semantics, not append.
type Store interface {
	Load() ([]task.Task, error)
	Save([]task.Task) error
}

// Interpreter applies commands to one task list for the process
// lifetime. It is stateless across calls: every Execute is an
// independent transaction against the list and the store.
type Interpreter struct {
	list  *task.List
	store Store
}

func NewInterpreter(list *task.List, store Store) *Interpreter {
	return &Interpreter{list: list, store: store}
}

// List exposes the collection for read-only callers (the session shell
// shows counts). Mutation goes through Execute only.
func (in *Interpreter) List() *task.List { return in.list }

// Handle parses and executes one input line.
func (in *Interpreter) Handle(raw string) (string, error) {
	cmd, err := Parse(raw)
	if err != nil {
		return "", err
	}
	return in.Execute(cmd)
}

// Execute runs one command and returns its rendered result. Domain
// errors come back as *Error; storage failures come back wrapped, with
// the in-memory mutation already applied (the next successful save
// rewrites the whole file).
func (in *Interpreter) Execute(cmd Command) (string, error) {
	switch c := cmd.(type) {
	case Nop:
		return "", nil

	case Bye:
		return render.Goodbye(), nil

	case ListAll:
		return render.TaskList(in.list), nil

	case Mark:
		t, err := in.taskAt(c.Index)
		if err != nil {
			return "", err
		}
		in.list.Mark(t)
		if err := in.persist(); err != nil {
			return "", err
		}
		return render.Marked(*t), nil

	case Unmark:
		t, err := in.taskAt(c.Index)
		if err != nil {
			return "", err
		}
		in.list.Unmark(t)
		if err := in.persist(); err != nil {
			return "", err
		}
		return render.Unmarked(*t), nil

	case Delete:
		// Deleting from an empty list is a benign no-op, not an error.
		if in.list.IsEmpty() {
			return "", nil
		}
		removed, err := in.list.Delete(c.Index)
		if err != nil {
			return "", errOutOfRange(c.Index, in.list.Len())
		}
		if err := in.persist(); err != nil {
			return "", err
		}
		return render.Deleted(removed, in.list.Len()), nil

	case Find:
		matches := in.list.Find(c.Keyword)
		if matches.IsEmpty() {
			return "", errNoMatch(c.Keyword)
		}
		return render.Found(matches), nil

	case AddTodo:
		return in.add(task.NewTodo(c.Description))

	case AddDeadline:
		return in.add(task.NewDeadline(c.Description, c.Due))

	case AddEvent:
		return in.add(task.NewEvent(c.Description, c.From, c.To))
	}
	return "", fmt.Errorf("unhandled command type %T", cmd)
}

func (in *Interpreter) add(t task.Task) (string, error) {
	in.list.Add(t)
	if err := in.persist(); err != nil {
		return "", err
	}
	return render.Added(t, in.list.Len()), nil
}

func (in *Interpreter) taskAt(index int) (*task.Task, error) {
	t, err := in.list.At(index)
	if errors.Is(err, task.ErrIndexOutOfRange) {
		return nil, errOutOfRange(index, in.list.Len())
	}
	return t, err
}

func (in *Interpreter) persist() error {
	if err := in.store.Save(in.list.Tasks()); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	return nil
}
