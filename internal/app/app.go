package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/five82/roster/internal/config"
	"github.com/five82/roster/internal/directory"
	"github.com/five82/roster/internal/logging"
	"github.com/five82/roster/internal/logtail"
	"github.com/five82/roster/internal/prefs"
	"github.com/five82/roster/internal/ui"
)

// ErrNotLoggedIn is returned by Run when the session flag is not set.
var ErrNotLoggedIn = errors.New("not logged in")

// Options configure the roster application. Non-zero Endpoint and PageSize
// override the config file and environment.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/roster/prefs.toml
	Endpoint   string
	PageSize   int
	Verbose    bool
}

// Session is everything Run wires up before the UI starts.
type Session struct {
	Config config.Config
	Prefs  prefs.Prefs
	Logger *zap.Logger
	Client *directory.Client
}

// Prepare checks the session flag, then loads config, builds the logger
// and the directory client. Nothing is created when the user is logged out.
// The caller owns Logger and must Sync it.
func Prepare(opts Options) (Session, error) {
	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return Session{}, fmt.Errorf("load prefs: %w", err)
	}
	if !userPrefs.LoggedIn {
		return Session{}, ErrNotLoggedIn
	}

	cfg, err := resolveConfig(opts)
	if err != nil {
		return Session{}, err
	}

	logger, err := logging.New(logging.Options{Path: cfg.LogFile, Verbose: opts.Verbose})
	if err != nil {
		return Session{}, fmt.Errorf("init logger: %w", err)
	}

	client, err := directory.NewClient(cfg.Endpoint, logger)
	if err != nil {
		_ = logger.Sync()
		return Session{}, fmt.Errorf("init directory client: %w", err)
	}

	logger.Info("session started",
		zap.String("endpoint", client.Endpoint()),
		zap.Int("page_size", cfg.PageSize),
		zap.String("theme", userPrefs.Theme),
	)
	return Session{Config: cfg, Prefs: userPrefs, Logger: logger, Client: client}, nil
}

// Run boots the roster TUI until the user quits or the context is
// cancelled. It returns ErrNotLoggedIn before doing any work when the
// session flag is unset.
func Run(ctx context.Context, opts Options) error {
	sess, err := Prepare(opts)
	if err != nil {
		return err
	}
	defer func() { _ = sess.Logger.Sync() }()

	err = ui.Run(ui.Options{
		Context:   ctx,
		Fetcher:   sess.Client,
		PageSize:  sess.Config.PageSize,
		ThemeName: sess.Prefs.Theme,
		PrefsPath: opts.PrefsPath,
		Logger:    sess.Logger,
	})
	if err != nil {
		sess.Logger.Error("ui exited", zap.Error(err))
		return fmt.Errorf("run ui: %w", err)
	}
	sess.Logger.Info("session ended")
	return nil
}

// Login sets the session flag. Other preferences are kept.
func Login(prefsPath string) error {
	if _, err := prefs.Update(prefsPath, func(p *prefs.Prefs) { p.LoggedIn = true }); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}

// Logout clears the session flag.
func Logout(prefsPath string) error {
	if _, err := prefs.Update(prefsPath, func(p *prefs.Prefs) { p.LoggedIn = false }); err != nil {
		return fmt.Errorf("save prefs: %w", err)
	}
	return nil
}

// TailLogs returns the last n lines of the configured log file.
func TailLogs(opts Options, n int) ([]string, error) {
	cfg, err := resolveConfig(opts)
	if err != nil {
		return nil, err
	}
	return logtail.Read(cfg.LogFile, n)
}

// resolveConfig loads the config file and environment, then applies
// command-line overrides.
func resolveConfig(opts Options) (config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if v := strings.TrimSpace(opts.Endpoint); v != "" {
		cfg.Endpoint = v
	}
	if opts.PageSize > 0 {
		cfg.PageSize = opts.PageSize
	}
	return cfg, nil
}
