package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/urfave/cli/v3"
	"github.com/vk/nutshell/internal/app"
	"github.com/vk/nutshell/internal/ctxlog"
	"github.com/vk/nutshell/internal/events"
	"github.com/vk/nutshell/internal/presenter"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &ExitError{Code: 2, Message: err.Error()}
}

// Exit codes are decided by the caller, never by the cli package itself.
func ignoreExitError(context.Context, *cli.Command, error) {}

// streams are the process's standard streams. Logs go to errW so they do
// not mix with command output.
type streams struct {
	in   io.Reader
	outW io.Writer
	errW io.Writer
}

// Run parses args (including the program name) and runs the selected command.
func Run(ctx context.Context, args []string, in io.Reader, outW, errW io.Writer) error {
	slog.Debug("CLI parser started.")
	return newCommand(streams{in: in, outW: outW, errW: errW}).Run(ctx, args)
}

func newCommand(s streams) *cli.Command {
	return &cli.Command{
		Name:            "nutshell",
		Usage:           "hooks talk: slide deck, example catalog and presenter sync",
		HideHelpCommand: true,
		Reader:          s.in,
		Writer:          s.outW,
		ErrWriter:       s.errW,
		OnUsageError:    usageError,
		ExitErrHandler:  ignoreExitError,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "deck", Sources: cli.EnvVars("NUTSHELL_DECK"), Aliases: []string{"d"}, Usage: "load slide documents from `DIR` instead of the built-in deck"},
			&cli.StringFlag{Name: "events-url", Sources: cli.EnvVars("NUTSHELL_EVENTS_URL"), Value: events.DefaultURL, Usage: "`URL` of the JSON event list shown by the remote examples"},
			&cli.DurationFlag{Name: "fetch-timeout", Sources: cli.EnvVars("NUTSHELL_FETCH_TIMEOUT"), Value: app.DefaultFetchTimeout, Usage: "request timeout for the event list, 0 disables it"},
			&cli.StringFlag{Name: "storybook-url", Sources: cli.EnvVars("NUTSHELL_STORYBOOK_URL"), Usage: "link stories to a Storybook at `URL` instead of the built-in catalog"},
			&cli.StringFlag{Name: "log-format", Sources: cli.EnvVars("NUTSHELL_LOG_FORMAT"), Value: "text", Usage: "log output format: text or json"},
			&cli.StringFlag{Name: "log-level", Sources: cli.EnvVars("NUTSHELL_LOG_LEVEL"), Value: "info", Usage: "logging level: debug, info, warn or error"},
		},
		Commands: []*cli.Command{
			{
				Name:         "serve",
				Usage:        "Serves the deck, the catalog and the presenter hub over HTTP",
				OnUsageError: usageError,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "addr", Sources: cli.EnvVars("NUTSHELL_ADDR"), Aliases: []string{"a"}, Value: app.DefaultAddr, Usage: "listen on `ADDRESS`"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withApp(cmd, s, func(a *app.App) error { return a.Serve(ctx) })
				},
			},
			{
				Name:         "present",
				Usage:        "Presents the deck in the terminal",
				OnUsageError: usageError,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withApp(cmd, s, func(a *app.App) error { return a.Present(ctx, s.in, s.outW) })
				},
			},
			{
				Name:         "list",
				Usage:        "Lists the stories and the deck outline",
				OnUsageError: usageError,
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return withApp(cmd, s, func(a *app.App) error { return a.List(s.outW) })
				},
			},
			{
				Name:         "follow",
				Usage:        "Follows a presenter running serve and prints every step shown",
				OnUsageError: usageError,
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "url", Aliases: []string{"u"}, Value: "http://localhost" + app.DefaultAddr, Usage: "`URL` of the presenter's server"},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					cfg, err := configFrom(cmd)
					if err != nil {
						return err
					}
					ctx = ctxlog.WithLogger(ctx, app.NewLogger(cfg, s.errW))
					return presenter.Follow(ctx, cmd.String("url"), func(f presenter.Frame) {
						fmt.Fprintf(s.outW, "%s\n\n", f)
					})
				},
			},
		},
	}
}

// configFrom builds the application configuration from the parsed flags.
func configFrom(cmd *cli.Command) (*app.Config, error) {
	cfg, err := app.NewConfig(app.Config{
		DeckPath:     cmd.String("deck"),
		Addr:         cmd.String("addr"),
		EventsURL:    cmd.String("events-url"),
		FetchTimeout: cmd.Duration("fetch-timeout"),
		StorybookURL: cmd.String("storybook-url"),
		LogFormat:    cmd.String("log-format"),
		LogLevel:     cmd.String("log-level"),
	})
	if err != nil {
		return nil, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, nil
}

func withApp(cmd *cli.Command, s streams, fn func(a *app.App) error) error {
	cfg, err := configFrom(cmd)
	if err != nil {
		return err
	}
	a, err := app.NewApp(s.errW, cfg, nil)
	if err != nil {
		return err
	}
	defer a.Close()
	return fn(a)
}
