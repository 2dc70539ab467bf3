package app

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/rbright/layoutcheck/internal/check"
	"github.com/rbright/layoutcheck/internal/cli"
	"github.com/rbright/layoutcheck/internal/config"
	"github.com/rbright/layoutcheck/internal/doctor"
	"github.com/rbright/layoutcheck/internal/i3ipc"
	"github.com/rbright/layoutcheck/internal/logging"
	"github.com/rbright/layoutcheck/internal/proc"
	"github.com/rbright/layoutcheck/internal/version"
)

const binaryName = "layoutcheck"

// exitUsage covers bad arguments and bad configuration. Exit 1 stays reserved
// for an unreachable window manager (and doctor failures).
const exitUsage = 2

// Runner executes one CLI invocation. Nil collaborators are built from config.
type Runner struct {
	Stdout io.Writer
	Stderr io.Writer

	Workspaces check.WorkspaceSource
	Processes  proc.Lister
	WM         doctor.WindowManager
}

// Execute runs one invocation with the production collaborators.
func Execute(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := Runner{Stdout: stdout, Stderr: stderr}
	return r.Execute(ctx, args)
}

func (r Runner) Execute(ctx context.Context, args []string) int {
	exitCode := 0
	cmd := cli.NewRootCommand(binaryName, version.String(), r.run, &exitCode)
	cmd.SetArgs(args)
	cmd.SetOut(r.Stdout)
	cmd.SetErr(r.Stderr)

	if ran, err := cmd.ExecuteContextC(ctx); err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n\n", err)
		fmt.Fprint(r.Stderr, ran.UsageString())
		return exitUsage
	}
	return exitCode
}

func (r Runner) run(ctx context.Context, parsed cli.Parsed) int {
	if parsed.Command == cli.CommandVersion {
		fmt.Fprintln(r.Stdout, version.String())
		return 0
	}

	cfgLoaded, err := config.Load(parsed.ConfigPath)
	if err != nil {
		fmt.Fprintf(r.Stderr, "error: %v\n", err)
		return exitUsage
	}

	logRuntime, err := logging.New(cfgLoaded.Config.Log.Level)
	if err != nil {
		fmt.Fprintf(r.Stderr, "warning: logging disabled: %v\n", err)
		logRuntime = logging.Disabled()
	}
	defer func() { _ = logRuntime.Close() }()
	logger := logRuntime.Logger

	for _, w := range cfgLoaded.Warnings {
		logger.Warn().Str("message", w.Message).Msg("config warning")
		// A missing default config is the normal case; only an explicit path is worth flagging.
		if !cfgLoaded.Exists && parsed.ConfigPath == "" {
			continue
		}
		fmt.Fprintf(r.Stderr, "warning: %s\n", w.Message)
	}

	logger.Info().
		Str("command", string(parsed.Command)).
		Str("config", cfgLoaded.Path).
		Bool("config_exists", cfgLoaded.Exists).
		Str("log", logRuntime.Path).
		Msg("command start")

	source := i3ipc.Source{SocketPath: cfgLoaded.Config.WM.SocketPath, Timeout: cfgLoaded.Config.WM.Timeout}

	switch parsed.Command {
	case cli.CommandDoctor:
		return r.commandDoctor(ctx, cfgLoaded, source)
	case cli.CommandCheck:
		return r.commandCheck(ctx, cfgLoaded.Config, source, logger)
	default:
		fmt.Fprintf(r.Stderr, "error: unsupported command %q\n", parsed.Command)
		return exitUsage
	}
}

func (r Runner) commandCheck(ctx context.Context, cfg config.Config, source i3ipc.Source, logger zerolog.Logger) int {
	workspaces := r.Workspaces
	if workspaces == nil {
		workspaces = source
	}

	lister := r.Processes
	if lister == nil {
		var err error
		lister, err = proc.New(cfg.Companion.Backend)
		if err != nil {
			fmt.Fprintf(r.Stderr, "error: %v\n", err)
			return exitUsage
		}
	}

	runner := check.Runner{
		Workspaces: workspaces,
		Processes:  lister,
		Pattern:    cfg.Companion.Pattern,
		Paths: check.Paths{
			I3Config: cfg.Paths.I3Config,
			Script:   cfg.Paths.Script,
		},
		Out:    r.Stdout,
		Logger: logger,
	}
	return runner.Run(ctx)
}

func (r Runner) commandDoctor(ctx context.Context, cfgLoaded config.Loaded, source i3ipc.Source) int {
	wm := r.WM
	if wm == nil {
		wm = source
	}

	report := doctor.Run(ctx, cfgLoaded, wm)
	fmt.Fprintln(r.Stdout, report.String())
	if report.OK() {
		return 0
	}
	return 1
}
