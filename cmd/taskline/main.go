package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/taskline/internal/command"
	"github.com/idilsaglam/taskline/internal/config"
	"github.com/idilsaglam/taskline/internal/render"
	"github.com/idilsaglam/taskline/internal/repl"
	"github.com/idilsaglam/taskline/internal/store/jsonstore"
	"github.com/idilsaglam/taskline/internal/task"
)

func main() {
	// Root flags (apply to every mode)
	plain := flag.Bool("plain", false, "disable styled output")
	flag.Parse()

	if *plain {
		render.SetPlain()
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, render.Fault("bad configuration: "+err.Error()))
		os.Exit(1)
	}

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(cfg.LogLevel).
		With().Timestamp().Logger()

	store := jsonstore.New(cfg.DataPath, logger)
	tasks, err := store.Load()
	if err != nil {
		logger.Error().Err(err).Msg("load tasks")
		fmt.Fprintln(os.Stderr, render.Fault("I couldn't read your task file. Fix or remove it and try again."))
		os.Exit(1)
	}

	interp := command.NewInterpreter(task.NewList(tasks), store)

	// No args: interactive session. Args: run them as one command line.
	args := flag.Args()
	if len(args) == 0 {
		if err := repl.Run(interp); err != nil {
			logger.Error().Err(err).Msg("session")
			os.Exit(1)
		}
		return
	}
	os.Exit(runOnce(interp, strings.Join(args, " "), logger))
}

// runOnce executes a single command line and returns an exit code
// (0 ok, 1 fault, 2 invalid input).
func runOnce(interp *command.Interpreter, line string, logger zerolog.Logger) int {
	out, err := interp.Handle(line)
	if err != nil {
		var derr *command.Error
		if errors.As(err, &derr) {
			fmt.Fprintln(os.Stderr, render.DomainError(derr.Error()))
			return 2
		}
		logger.Error().Err(err).Msg("command failed")
		fmt.Fprintln(os.Stderr, render.Fault("I couldn't save your tasks. Your change was not written to disk."))
		return 1
	}
	if out != "" {
		fmt.Println(out)
	}
	return 0
}
