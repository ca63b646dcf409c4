package app

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/mzsombor/wishlet/internal/catalog"
	"github.com/mzsombor/wishlet/internal/config"
	"github.com/mzsombor/wishlet/internal/prefs"
	"github.com/mzsombor/wishlet/internal/ui"
	"github.com/mzsombor/wishlet/internal/wishlist"
)

// Options configure the wishlet application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/wishlet/prefs.toml
	APIURL     string // overrides the configured catalog base URL when set
}

// Run boots the wishlet TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if opts.APIURL != "" {
		cfg.APIURL = opts.APIURL
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	logger := newLogger(cfg.LogPath())

	client, err := catalog.NewClient(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("init catalog client: %w", err)
	}

	store := wishlist.New(cfg.WishlistPath(), logger)

	logger.Info().Str("api_url", cfg.APIURL).Str("data_dir", cfg.DataDir).Msg("starting wishlet")

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		Logger:    logger,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
		APIURL:    cfg.APIURL,
	}
	return ui.Run(uiOpts)
}

// newLogger opens the debug log file. The TUI owns the terminal, so
// diagnostics never go to stderr; when the file cannot be opened logging
// is disabled entirely.
func newLogger(path string) zerolog.Logger {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerolog.Nop()
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return zerolog.Nop()
	}
	return zerolog.New(file).With().Timestamp().Logger()
}
