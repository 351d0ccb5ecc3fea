package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"golang.org/x/time/rate"

	"github.com/mwalczak/linktray"
	"github.com/mwalczak/linktray/clipboard"
	"github.com/mwalczak/linktray/rod"
	linkslog "github.com/mwalczak/linktray/slog"
	"github.com/mwalczak/linktray/sqlite"
	"github.com/mwalczak/linktray/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Config file path override. Set before calling Run().
	ConfigPath string

	// SQLite session database used by the store.
	DB *sqlite.DB

	// Store for end-to-end testing.
	Store linktray.LinkStore
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
	cfg, err := yaml.LoadConfig(m.ConfigPath)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if os.Getenv("LINKTRAY_DEBUG") != "" {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Initialize dependencies struct for Kong binding
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
		Config: cfg,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("linktray"),
		kong.Description("Session-scoped link capture for a running browser."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags using Kong
	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'linktray --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open the session store
	dbPath := sessionDBPath(cfg)
	m.DB = sqlite.NewDB(dbPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: set LINKTRAY_DATA to use a different session directory\n")
		return fmt.Errorf("failed to open session store at %q: %w", dbPath, err)
	}
	defer m.Close()

	m.Store = linkslog.NewLoggingStore(sqlite.NewLinkService(m.DB), logger)
	deps.DB = m.DB
	deps.Store = m.Store
	deps.Clip = clipboard.New()

	// Browser access is only needed when capturing
	if cmd == "capture" {
		accessor, err := rod.NewAccessor(cfg.ControlURL)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: start your browser with --remote-debugging-port and set LINKTRAY_BROWSER")
			return fmt.Errorf("failed to reach browser: %w", err)
		}
		defer accessor.Close()

		deps.Pages = rod.NewLoggingAccessor(accessor, logger)
		deps.Capturer = &linktray.Capturer{
			Pages:   deps.Pages,
			Store:   deps.Store,
			Logger:  logger,
			Limiter: rate.NewLimiter(rate.Limit(5), 1),
		}
	}

	return kongCtx.Run(deps)
}

// sessionDBPath places the session store in a directory the OS clears
// between logins, so a new session starts with an empty list.
func sessionDBPath(cfg *linktray.Config) string {
	dir := cfg.DataDir
	if dir == "" {
		if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
			dir = filepath.Join(runtimeDir, "linktray")
		} else {
			dir = filepath.Join(os.TempDir(), "linktray")
		}
	}
	_ = os.MkdirAll(dir, 0o700)
	return filepath.Join(dir, "session.db")
}
