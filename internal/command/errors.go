package command

import "fmt"

// ErrorKind classifies invalid user input. These are expected,
// recoverable conditions and part of the interpreter's contract;
// infrastructure faults (storage I/O) are ordinary wrapped errors and
// never carry this type.
type ErrorKind int

const (
	UnknownCommand ErrorKind = iota
	EmptyArguments
	MalformedGrammar
	NonNumericIndex
	IndexOutOfRange
	NoMatch
	DateParse
)

// Error is a domain error: invalid input with a message fit to show the
// user as-is. Never a stack trace, never a parser diagnostic.
type Error struct {
	Kind ErrorKind
	msg  string
	err  error
}

func (e *Error) Error() string { return e.msg }

func (e *Error) Unwrap() error { return e.err }

func errUnknown(verb string) *Error {
	return &Error{
		Kind: UnknownCommand,
		msg:  fmt.Sprintf("I don't know the command %q. I understand: list, todo, deadline, event, mark, unmark, delete, find, bye.", verb),
	}
}

func errEmptyArgs(verb string) *Error {
	return &Error{
		Kind: EmptyArguments,
		msg:  fmt.Sprintf("the %s command needs some details after it.", verb),
	}
}

func errGrammar(msg string) *Error {
	return &Error{Kind: MalformedGrammar, msg: msg}
}

func errNonNumeric(arg string) *Error {
	return &Error{
		Kind: NonNumericIndex,
		msg:  fmt.Sprintf("%q is not a task number.", arg),
	}
}

func errOutOfRange(index, size int) *Error {
	return &Error{
		Kind: IndexOutOfRange,
		msg:  fmt.Sprintf("there is no task %d; the list has %d.", index, size),
	}
}

func errNoMatch(keyword string) *Error {
	return &Error{
		Kind: NoMatch,
		msg:  fmt.Sprintf("no task matches %q. Mind trying another word?", keyword),
	}
}

// errDate hides the time package's diagnostic behind a generic hint;
// cause stays attached for logging.
func errDate(cause error) *Error {
	return &Error{
		Kind: DateParse,
		msg:  "I couldn't read that date. Check your date details; I expect something like 2024-12-01 1800.",
		err:  cause,
	}
}
