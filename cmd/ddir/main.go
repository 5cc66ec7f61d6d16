package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ddir"
	"github.com/fwojciec/ddir/fs"
	ddirslog "github.com/fwojciec/ddir/slog"
	"github.com/fwojciec/ddir/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errHelp) {
			fmt.Fprintf(os.Stderr, "%s: %s\n", errLabel("Err"), err)
		}
		os.Exit(1)
	}
}

// errHelp signals that usage was printed and the run should exit non-zero
// without an additional error message.
var errHelp = errors.New("help requested")

// Main represents the program.
type Main struct {
	// Configuration normally loaded from the environment by Run. Set it
	// before calling Run to bypass the environment, as end-to-end tests do.
	Config *Config

	// SQLite database, open only when the configuration selects one.
	DB *sqlite.DB

	// Collaborators wired by Run, exposed for end-to-end testing.
	Store    ddir.DescriberStore
	Resolver ddir.PathResolver
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	// Create Kong parser with dependency binding
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ddir"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help before parsing so it works without any configuration.
	if len(args) == 0 || isHelp(args[0]) {
		_, _ = parser.Parse([]string{"--help"})
		return errHelp
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return ddir.Errorf(ddir.EINVALID, "invalid argument list")
	}

	config := m.Config
	if config == nil {
		config, err = ConfigFromEnv()
		if err != nil {
			return err
		}
		m.Config = config
	}

	// Wire the store selected by the configuration
	var store ddir.DescriberStore
	if config.DBPath != "" {
		m.DB = sqlite.NewDB(config.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintln(stderr, "Hint: Set DDIR_DB to use a different database path")
			return fmt.Errorf("failed to open database at %q: %w", config.DBPath, err)
		}
		defer m.Close()
		store = sqlite.NewStore(m.DB)
	} else {
		store = fs.NewStore(config.ConfigFile())
	}

	var resolver ddir.PathResolver = fs.NewResolver()

	if config.Debug {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		store = ddirslog.NewLoggingStore(store, logger)
		resolver = ddirslog.NewLoggingResolver(resolver, logger)
	}

	m.Store = store
	m.Resolver = resolver
	deps.Store = store
	deps.Resolver = resolver

	return kongCtx.Run(deps)
}

// isHelp reports whether arg asks for usage.
func isHelp(arg string) bool {
	return arg == "help" || arg == "--help" || arg == "-h"
}
