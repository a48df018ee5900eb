package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/idilsaglam/taskline/internal/task"
)

func TestMain(m *testing.M) {
	SetPlain()
	m.Run()
}

func TestLineTodo(t *testing.T) {
	assert.Equal(t, "[T][ ] read book", Line(task.NewTodo("read book")))

	done := task.NewTodo("read book")
	done.Done = true
	assert.Equal(t, "[T][X] read book", Line(done))
}

func TestLineDeadline(t *testing.T) {
	d := task.NewDeadline("submit report", time.Date(2024, 12, 1, 18, 0, 0, 0, time.Local))
	assert.Equal(t, "[D][ ] submit report (by: Dec 1 2024, 6:00pm)", Line(d))
}

func TestLineEvent(t *testing.T) {
	e := task.NewEvent("trip",
		time.Date(2024, 1, 1, 9, 0, 0, 0, time.Local),
		time.Date(2024, 1, 5, 18, 0, 0, 0, time.Local))
	assert.Equal(t, "[E][ ] trip (from: Jan 1 2024, 9:00am to: Jan 5 2024, 6:00pm)", Line(e))
}

func TestTaskListNumbersFromOne(t *testing.T) {
	l := task.NewList(nil)
	l.Add(task.NewTodo("read book"))
	l.Add(task.NewTodo("do laundry"))

	out := TaskList(l)
	assert.Contains(t, out, "1. [T][ ] read book")
	assert.Contains(t, out, "2. [T][ ] do laundry")
}

func TestTaskListEmpty(t *testing.T) {
	assert.Contains(t, TaskList(task.NewList(nil)), "empty")
}

func TestAddedCountsTasks(t *testing.T) {
	out := Added(task.NewTodo("read book"), 1)
	assert.Contains(t, out, "read book")
	assert.Contains(t, out, "1 task in the list")

	out = Added(task.NewTodo("do laundry"), 2)
	assert.Contains(t, out, "2 tasks in the list")
}

func TestErrorRenderings(t *testing.T) {
	assert.Contains(t, DomainError("no such task"), "no such task")
	assert.Contains(t, Fault("storage broke"), "storage broke")
}
