package main

import (
	"fmt"
	"io"
	"os"

	"github.com/cockroachdb/errors"
	flag "github.com/spf13/pflag"
	"go.uber.org/dig"
	"go.uber.org/zap"

	"github.com/Mearkatz/beetle-nonzero/logger"
)

var (
	// ErrUnknownCommand is returned if the command is not known.
	ErrUnknownCommand = errors.New("unknown command")
	// ErrUnknownDomain is returned if the configured domain is not known.
	ErrUnknownDomain = errors.New("unknown domain")
	// ErrUnknownOperator is returned if the operator of the calc command is not known.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrInvalidArguments is returned if a command got the wrong number of arguments.
	ErrInvalidArguments = errors.New("invalid arguments")
)

const usageText = `Usage: nonzero [flags] <command>

Commands:
  inspect <value>                  prints the properties of a value
  range <start> <stop>             prints the values of the range from start to stop
  calc <lhs> <+|-|*|/> <rhs>       applies an arithmetic operator

Flags:
`

// App executes a single command against the configured domain.
type App struct {
	params  *Parameters
	handler handler
	log     *zap.Logger
	out     io.Writer
}

type appDeps struct {
	dig.In

	Params *Parameters
	Log    *zap.Logger
	Out    io.Writer
}

func newApp(deps appDeps) (*App, error) {
	h, exists := handlers[deps.Params.Domain]
	if !exists {
		return nil, errors.Wrapf(ErrUnknownDomain, "%q", deps.Params.Domain)
	}

	return &App{
		params:  deps.Params,
		handler: h,
		log:     deps.Log.Named("nonzero"),
		out:     deps.Out,
	}, nil
}

// Run executes the given command.
func (a *App) Run(args []string) error {
	if len(args) == 0 {
		return errors.Wrap(ErrInvalidArguments, "no command given")
	}

	command, commandArgs := args[0], args[1:]
	a.log.Debug("running command", zap.String("command", command), zap.Strings("args", commandArgs), zap.String("domain", a.params.Domain))

	switch command {
	case "inspect":
		if len(commandArgs) != 1 {
			return errors.Wrap(ErrInvalidArguments, "usage: inspect <value>")
		}

		return a.handler.inspect(a.out, commandArgs[0])

	case "range":
		if len(commandArgs) != 2 {
			return errors.Wrap(ErrInvalidArguments, "usage: range <start> <stop>")
		}

		printed, truncated, err := a.handler.iterate(a.out, commandArgs[0], commandArgs[1], a.params.Range)
		if err != nil {
			return err
		}
		if truncated {
			a.log.Warn("range output truncated", zap.Uint("printed", printed), zap.Stringer("limit", a.params.Range.Limit))
		}

		return nil

	case "calc":
		if len(commandArgs) != 3 {
			return errors.Wrap(ErrInvalidArguments, "usage: calc <lhs> <+|-|*|/> <rhs>")
		}

		return a.handler.calc(a.out, commandArgs[0], commandArgs[1], commandArgs[2])

	default:
		return errors.Wrapf(ErrUnknownCommand, "%q", command)
	}
}

// run parses the arguments, assembles the App in a dig container and executes the requested command.
func run(args []string, out io.Writer) error {
	flagSet := newFlagSet()
	flagSet.Usage = func() {
		fmt.Fprint(os.Stderr, usageText)
		flagSet.PrintDefaults()
	}

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}

		return err
	}

	container := dig.New()

	for _, constructor := range []any{
		func() *flag.FlagSet { return flagSet },
		func() io.Writer { return out },
		loadConfiguration,
		loadParameters,
		logger.NewRootLoggerFromConfiguration,
		newApp,
	} {
		if err := container.Provide(constructor); err != nil {
			return errors.Wrap(err, "unable to provide dependency")
		}
	}

	return dig.RootCause(container.Invoke(func(app *App, log *zap.Logger) error {
		defer func() { _ = log.Sync() }()

		return app.Run(flagSet.Args())
	}))
}
