// Package main provides the serenity binary: a command line front end to
// the app core for resolving assets, listing the catalog, walking screen
// flows headlessly and opening the desktop preview.
package main

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"runtime"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/serenity-wellness/serenity/pkg/serenity"
	"github.com/spf13/cobra"
)

const (
	Version = "0.1.0"
	appName = "serenity"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()
	defer serenity.Close()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are shared by every subcommand.
type globalFlags struct {
	theme     string
	assetsDir string
	manifest  string
	locale    string
	logLevel  string
	logPath   string
	envFile   string
}

// options builds Init options. Environment variables override flag
// defaults; flags set on the command line override both.
func (g *globalFlags) options(cmd *cobra.Command) serenity.Options {
	opts := serenity.Options{
		Theme:        g.theme,
		ManifestPath: g.manifest,
		Locale:       g.locale,
		LogPath:      g.logPath,
		LogLevel:     g.logLevel,
		Assets:       g.assets(),
	}.ApplyEnv()

	flags := cmd.Flags()
	if flags.Changed("theme") {
		opts.Theme = g.theme
	}
	if flags.Changed("manifest") {
		opts.ManifestPath = g.manifest
	}
	if flags.Changed("locale") {
		opts.Locale = g.locale
	}
	if flags.Changed("log-level") {
		opts.LogLevel = g.logLevel
	}
	return opts
}

// assets returns the asset tree, or nil when none was given.
func (g *globalFlags) assets() fs.FS {
	if g.assetsDir == "" {
		return nil
	}
	return os.DirFS(g.assetsDir)
}

func (g *globalFlags) init(cmd *cobra.Command, metrics prometheus.Registerer) (*serenity.App, error) {
	opts := g.options(cmd)
	opts.Metrics = metrics
	return serenity.Init(opts)
}

func rootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Wellness app flow and resource core",
		Long: `Serenity resolves theme-aware assets for the wellness app, validates
navigation between its screens and walks screen flows.

Configuration comes from flags, then from the environment (SERENITY_THEME,
SERENITY_MANIFEST, SERENITY_LOCALE, LOG_LEVEL), which may be loaded from a
.env file.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			err := godotenv.Load(g.envFile)
			if level := g.options(cmd).LogLevel; level != "" {
				serenity.SetRawLogLevel(level)
			}
			logEnvFile(serenity.GetLogger(), g.envFile, err)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&g.theme, "theme", "light", "Theme (light, dark)")
	flags.StringVar(&g.assetsDir, "assets", "", "Asset directory; manifests and globs are read from it")
	flags.StringVar(&g.manifest, "manifest", "", "Manifest path inside the asset directory (default: embedded)")
	flags.StringVar(&g.locale, "locale", "en", "Language for titles and labels")
	flags.StringVar(&g.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	flags.StringVar(&g.logPath, "log-path", "", "Also write logs to this file")
	flags.StringVar(&g.envFile, "env-file", ".env", "Environment file to load")

	cmd.AddCommand(
		resolveCmd(g),
		variantsCmd(g),
		walkCmd(g),
		metricsCmd(g),
		previewCmd(g),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}

// logEnvFile records the outcome of loading the .env file. A missing file is
// normal and only logged at debug level.
func logEnvFile(logger *slog.Logger, path string, err error) {
	if err != nil {
		logger.Debug("failed to load .env file", "path", path, "error", err)
		return
	}
	logger.Debug("Loaded .env file", "path", path)
}
