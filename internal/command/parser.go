package command

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/idilsaglam/taskline/internal/dates"
)

// Argument markers for the add commands. Matched as literal tokens by
// scanMarker, not by splitting on a pattern.
const (
	byMarker   = "/by "
	fromMarker = "/from "
	toMarker   = "/to "
)

// Parse turns one raw input line into a typed Command. A blank line
// parses to Nop. Validation happens in a fixed order: verb recognized,
// required arguments present, marker structure correct, date-times
// parseable, indexes numeric. Bounds checks against the collection
// happen later, in Execute.
func Parse(raw string) (Command, error) {
	line := strings.TrimSpace(raw)
	if line == "" {
		return Nop{}, nil
	}

	verb, rest := splitVerb(line)
	verb = strings.ToLower(verb)

	switch verb {
	case "bye":
		return Bye{}, nil
	case "list":
		return ListAll{}, nil
	case "mark":
		i, err := parseIndex(verb, rest)
		if err != nil {
			return nil, err
		}
		return Mark{Index: i}, nil
	case "unmark":
		i, err := parseIndex(verb, rest)
		if err != nil {
			return nil, err
		}
		return Unmark{Index: i}, nil
	case "delete":
		i, err := parseIndex(verb, rest)
		if err != nil {
			return nil, err
		}
		return Delete{Index: i}, nil
	case "find":
		if rest == "" {
			return nil, errEmptyArgs(verb)
		}
		return Find{Keyword: rest}, nil
	case "todo":
		if rest == "" {
			return nil, errEmptyArgs(verb)
		}
		return AddTodo{Description: rest}, nil
	case "deadline":
		return parseDeadline(rest)
	case "event":
		return parseEvent(rest)
	}
	return nil, errUnknown(verb)
}

// splitVerb cuts the line at the first whitespace run.
func splitVerb(line string) (verb, rest string) {
	i := strings.IndexFunc(line, unicode.IsSpace)
	if i < 0 {
		return line, ""
	}
	return line[:i], strings.TrimSpace(line[i:])
}

func parseIndex(verb, rest string) (int, error) {
	if rest == "" {
		return 0, errEmptyArgs(verb)
	}
	n, err := strconv.Atoi(rest)
	if err != nil {
		return 0, errNonNumeric(rest)
	}
	return n, nil
}

func parseDeadline(rest string) (Command, error) {
	if rest == "" {
		return nil, errEmptyArgs("deadline")
	}
	desc, when, ok := scanMarker(rest, byMarker)
	if !ok {
		return nil, errGrammar("a deadline looks like `deadline <description> /by <date-time>`.")
	}
	if desc == "" {
		return nil, errGrammar("this deadline has no description before the /by.")
	}
	due, err := dates.Parse(when)
	if err != nil {
		return nil, errDate(err)
	}
	return AddDeadline{Description: desc, Due: due}, nil
}

func parseEvent(rest string) (Command, error) {
	if rest == "" {
		return nil, errEmptyArgs("event")
	}
	desc, afterFrom, ok := scanMarker(rest, fromMarker)
	if !ok {
		return nil, errGrammar("an event looks like `event <description> /from <date-time> /to <date-time>`.")
	}
	fromText, toText, ok := scanMarker(afterFrom, toMarker)
	if !ok {
		return nil, errGrammar("this event is missing its /to part.")
	}
	if desc == "" {
		return nil, errGrammar("this event has no description before the /from.")
	}
	from, err := dates.Parse(fromText)
	if err != nil {
		return nil, errDate(err)
	}
	to, err := dates.Parse(toText)
	if err != nil {
		return nil, errDate(err)
	}
	return AddEvent{Description: desc, From: from, To: to}, nil
}

// scanMarker locates the first occurrence of marker and slices the text
// around it, trimming both sides. ok is false when the marker is absent.
func scanMarker(s, marker string) (before, after string, ok bool) {
	i := strings.Index(s, marker)
	if i < 0 {
		return "", "", false
	}
	return strings.TrimSpace(s[:i]), strings.TrimSpace(s[i+len(marker):]), true
}
