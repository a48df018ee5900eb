// Package render is the presentation gateway: pure functions from
// domain values to display strings. No I/O happens here.
package render

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/taskline/internal/dates"
	"github.com/idilsaglam/taskline/internal/task"
)

func Greeting() string {
	return titleStyle.Render("Hello, I'm taskline.") + "\n" +
		mutedStyle.Render("Try `todo read book`, `list`, or `bye` when you're done.")
}

func Goodbye() string {
	return "Bye. Hope to see you again soon!"
}

// Line renders a single task without its list number, e.g.
//
//	[D][ ] submit report (by: Dec 1 2024, 6:00pm)
func Line(t task.Task) string {
	tag := "T"
	switch t.Kind {
	case task.KindDeadline:
		tag = "D"
	case task.KindEvent:
		tag = "E"
	}
	box := " "
	if t.Done {
		box = "X"
	}
	line := fmt.Sprintf("[%s][%s] %s", tag, box, t.Description)
	switch t.Kind {
	case task.KindDeadline:
		if t.Due != nil {
			line += mutedStyle.Render(fmt.Sprintf(" (by: %s)", dates.Format(*t.Due)))
		}
	case task.KindEvent:
		if t.From != nil && t.To != nil {
			line += mutedStyle.Render(fmt.Sprintf(" (from: %s to: %s)", dates.Format(*t.From), dates.Format(*t.To)))
		}
	}
	return line
}

func numbered(l *task.List) string {
	lines := make([]string, 0, l.Len())
	for i, t := range l.Tasks() {
		lines = append(lines, fmt.Sprintf("%s %s", mutedStyle.Render(fmt.Sprintf("%d.", i+1)), Line(t)))
	}
	return strings.Join(lines, "\n")
}

func TaskList(l *task.List) string {
	if l.IsEmpty() {
		return mutedStyle.Render("Your list is empty.")
	}
	return accentStyle.Render("Here is everything on your list:") + "\n" + numbered(l)
}

// Found renders the result of a find. Callers guarantee matches is
// non-empty; an empty result is a no-match error, not a rendering.
func Found(matches *task.List) string {
	return accentStyle.Render("Here is what matches:") + "\n" + numbered(matches)
}

func Added(t task.Task, total int) string {
	return successStyle.Render("Got it, I've added this task:") + "\n  " + Line(t) + "\n" + countLine(total)
}

func Marked(t task.Task) string {
	return successStyle.Render("Nice, I've marked this task as done:") + "\n  " + Line(t)
}

func Unmarked(t task.Task) string {
	return warnStyle.Render("Okay, this task is not done yet:") + "\n  " + Line(t)
}

func Deleted(t task.Task, total int) string {
	return warnStyle.Render("Noted, I've removed this task:") + "\n  " + Line(t) + "\n" + countLine(total)
}

func countLine(total int) string {
	noun := "tasks"
	if total == 1 {
		noun = "task"
	}
	return mutedStyle.Render(fmt.Sprintf("Now you have %d %s in the list.", total, noun))
}

// DomainError styles an invalid-input message. The message itself comes
// from the command layer's error taxonomy.
func DomainError(msg string) string {
	return errorStyle.Render("✖ ") + msg
}

// Fault styles an infrastructure failure message. Callers log the
// underlying cause; users only see this text.
func Fault(msg string) string {
	return errorStyle.Render("✖ " + msg)
}
