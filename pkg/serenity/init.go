// Package serenity wires the wellness app core together: the resource
// catalog, the theme-aware selector, the navigation registry and the screens.
//
// Init builds an App from Options. The App hands out screen dependencies and
// routers, and can walk a whole session headlessly from a script of inputs.
package serenity

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/serenity-wellness/serenity/pkg/serenity/catalog"
	"github.com/serenity-wellness/serenity/pkg/serenity/constants"
	"github.com/serenity-wellness/serenity/pkg/serenity/i18n"
	"github.com/serenity-wellness/serenity/pkg/serenity/internal"
	"github.com/serenity-wellness/serenity/pkg/serenity/metrics"
	"github.com/serenity-wellness/serenity/pkg/serenity/router"
	"github.com/serenity-wellness/serenity/pkg/serenity/screens"
	"github.com/serenity-wellness/serenity/pkg/serenity/theme"
)

// Options configures Init.
type Options struct {
	Theme        string                // Initial theme, "light" or "dark"
	Assets       fs.FS                 // Asset tree; manifests and globs are read from it
	ManifestPath string                // Manifest inside Assets; empty uses the embedded manifest
	Locale       string                // BCP 47 language for titles and labels
	LogPath      string                // Full path for log file including filename (creates parent directories)
	LogLevel     string                // Application log level ("debug", "info", "warn", "error")
	Metrics      prometheus.Registerer // Registry for resolution and navigation counters; nil disables them
	Audio        screens.AudioEngine   // Sleep sound playback; nil logs instead
}

// ApplyEnv overrides fields from the environment variables named in
// constants. Unset variables leave fields untouched.
func (o Options) ApplyEnv() Options {
	if v, ok := os.LookupEnv(constants.ThemeEnvVar); ok {
		o.Theme = v
	}
	if v, ok := os.LookupEnv(constants.ManifestEnvVar); ok {
		o.ManifestPath = v
	}
	if v, ok := os.LookupEnv(constants.LocaleEnvVar); ok {
		o.Locale = v
	}
	if v, ok := os.LookupEnv(constants.LogLevelEnvVar); ok {
		o.LogLevel = v
	}
	return o
}

// App is an initialised core. Catalog, Selector and Registry are read-only
// after Init and may be shared; Appearance is owned by the UI thread.
type App struct {
	Catalog    *catalog.Catalog
	Selector   *theme.Selector
	Appearance *theme.Appearance
	Registry   *router.Registry
	Metrics    *metrics.Collector

	audio screens.AudioEngine
}

// Init builds an App. Configuration mistakes return errors wrapping
// ErrInvalidOption; unreadable manifests and refused metric registrations
// return an InfrastructureError.
func Init(options Options) (*App, error) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}
	if options.LogLevel != "" {
		internal.SetRawLogLevel(options.LogLevel)
	}
	if constants.IsDevMode() {
		internal.SetInternalLogLevel(slog.LevelDebug)
	}

	initialTheme, err := catalog.ParseTheme(options.Theme)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidOption, err)
	}

	cat, err := loadCatalog(options)
	if err != nil {
		return nil, err
	}

	registry, err := screens.NewRegistry()
	if err != nil {
		return nil, NewInfrastructureError("build_registry", err)
	}

	if err := i18n.Init(options.Locale); err != nil {
		return nil, NewInfrastructureError("load_locales", err)
	}

	app := &App{
		Catalog:    cat,
		Appearance: theme.NewAppearance(initialTheme),
		Registry:   registry,
		audio:      options.Audio,
	}

	var observers []theme.Observer
	if options.Metrics != nil {
		collector, err := metrics.New(options.Metrics)
		if err != nil {
			return nil, NewInfrastructureError("register_metrics", err)
		}
		app.Metrics = collector
		observers = append(observers, collector)
	}
	app.Selector = theme.NewSelector(cat, observers...)

	internal.GetLogger().Debug("Serenity initialised",
		"theme", initialTheme.String(),
		"manifest", options.ManifestPath,
		"language", i18n.Language().String(),
		"resources", cat.Len(),
	)
	return app, nil
}

func loadCatalog(options Options) (*catalog.Catalog, error) {
	if options.ManifestPath == "" {
		cat, err := catalog.FromManifest(catalog.DefaultManifest(), options.Assets)
		if err != nil {
			return nil, NewInfrastructureError("load_manifest", err)
		}
		return cat, nil
	}

	if options.Assets == nil {
		return nil, fmt.Errorf("%w: manifest %q needs an asset filesystem", ErrInvalidOption, options.ManifestPath)
	}
	cat, err := catalog.Load(options.Assets, options.ManifestPath, options.Assets)
	if err != nil {
		return nil, NewInfrastructureError("load_manifest", err)
	}
	return cat, nil
}

// Deps returns the collaborators screens are mounted with.
func (a *App) Deps() screens.Deps {
	return screens.Deps{
		Selector:   a.Selector,
		Appearance: a.Appearance,
		Registry:   a.Registry,
		Audio:      a.audio,
	}
}

// NewRouter creates a router delivering to host, observed by the metrics
// collector when one is configured.
func (a *App) NewRouter(host router.Host) *router.Router {
	r := router.New(host)
	if a.Metrics != nil {
		r.Observe(a.Metrics)
	}
	return r
}

// Start returns the request that opens the app.
func (a *App) Start() router.Request {
	return a.Registry.Navigate(screens.Onboarding, nil)
}

// Walk runs a session on a fresh Stack from start, feeding screens from in
// and showing them on view. Running out of input ends the walk early without
// error; the returned stack shows where it stopped.
func (a *App) Walk(start router.Request, in screens.InputSource, view screens.View) (*router.Stack, error) {
	stack := router.NewStack()
	r := screens.Register(a.NewRouter(stack), a.Deps(), in, view)

	err := r.Run(start)
	if errors.Is(err, io.EOF) {
		internal.GetLogger().Debug("Walk ran out of input", "stack", stack.Screens())
		return stack, nil
	}
	return stack, err
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}
