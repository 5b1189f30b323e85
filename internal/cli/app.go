// Package cli wires the jumpkey command line to the application layer.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/jumpkey/internal/application/port"
	"github.com/bnema/jumpkey/internal/application/usecase"
	"github.com/bnema/jumpkey/internal/cli/styles"
	"github.com/bnema/jumpkey/internal/domain/build"
	"github.com/bnema/jumpkey/internal/infrastructure/config"
	"github.com/bnema/jumpkey/internal/infrastructure/desktop"
	"github.com/bnema/jumpkey/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/jumpkey/internal/infrastructure/x11"
	"github.com/bnema/jumpkey/internal/logging"
)

// Options are the global command line flags.
type Options struct {
	ConfigFile string
	LogLevel   string
	// FileLog enables the rotated log file when the config asks for it.
	FileLog bool
}

// App holds CLI dependencies.
type App struct {
	Config    *config.Manager
	Theme     *styles.Theme
	Render    *styles.Renderer
	BuildInfo build.Info

	ctx        context.Context
	logCleanup func()
	journalDB  *sqlite.LazyDB
	session    *x11.Session
}

// NewApp loads the configuration and sets up logging.
func NewApp(opts Options) (*App, error) {
	var managerOpts []config.Option
	if opts.ConfigFile != "" {
		managerOpts = append(managerOpts, config.WithConfigFile(opts.ConfigFile))
	}

	mgr, err := config.NewManager(managerOpts...)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	level := cfg.Logging.Level
	if opts.LogLevel != "" {
		level = opts.LogLevel
	}
	logCfg := logging.Config{
		Level:      logging.ParseLevel(level),
		Format:     cfg.Logging.Format,
		TimeFormat: "15:04:05",
	}

	logger := logging.New(logCfg)
	logCleanup := func() {}
	if opts.FileLog && cfg.Logging.EnableFileLog {
		fileLogger, cleanup, fileErr := logging.NewWithFile(logCfg, cfg.Logging.LogDir, cfg.Logging.MaxAge)
		logger, logCleanup = fileLogger, cleanup
		if fileErr != nil {
			logger.Warn().Err(fileErr).Msg("file logging disabled")
		}
	}

	theme := styles.NewTheme()
	return &App{
		Config:     mgr,
		Theme:      theme,
		Render:     styles.NewRenderer(theme),
		ctx:        logging.WithContext(context.Background(), logger),
		logCleanup: logCleanup,
	}, nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// Catalog returns the installed-application catalog.
func (a *App) Catalog() port.ApplicationCatalog {
	return desktop.NewCatalog()
}

// Session connects to the X server on first use.
func (a *App) Session() (*x11.Session, error) {
	if a.session != nil {
		return a.session, nil
	}
	s, err := x11.Connect()
	if err != nil {
		return nil, err
	}
	a.session = s
	return s, nil
}

// FocusUseCase builds the press handler against the live session without a
// journal, so diagnostics never show up in history.
func (a *App) FocusUseCase() (*usecase.FocusShortcutUseCase, error) {
	s, err := a.Session()
	if err != nil {
		return nil, err
	}
	windows := x11.NewWindowSystem(s)
	catalog := a.Catalog()
	return usecase.NewFocusShortcutUseCase(
		usecase.NewResolveWindowsUseCase(catalog, windows),
		usecase.NewExecuteActionUseCase(windows, catalog),
		windows,
		nil,
	), nil
}

// JournalUseCase opens the activation journal.
func (a *App) JournalUseCase() (*usecase.JournalUseCase, error) {
	cfg := a.Config.Get()
	if !cfg.Journal.Enabled {
		return nil, fmt.Errorf("the activation journal is disabled ([journal] enabled = false)")
	}
	if a.journalDB == nil {
		a.journalDB = sqlite.NewLazyDB(cfg.Journal.Path)
	}
	return usecase.NewJournalUseCase(sqlite.NewLazyJournalRepository(a.journalDB)), nil
}

// Close releases all resources.
func (a *App) Close() error {
	var err error
	if a.session != nil {
		a.session.Close()
	}
	if a.journalDB != nil {
		err = a.journalDB.Close()
	}
	if a.logCleanup != nil {
		a.logCleanup()
	}
	return err
}
