package app

import (
	"context"
	"fmt"

	"techstore/internal/auth"
	"techstore/internal/cart"
	"techstore/internal/catalog"
	"techstore/internal/config"
	"techstore/internal/prefs"
	"techstore/internal/ui"
	"techstore/internal/wishlist"
)

// Options configure the TechStore application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/techstore/config.toml
	PrefsPath  string // empty uses default ~/.config/techstore/prefs.toml
}

// Run boots the TechStore TUI until the user exits or the context is
// cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	cat, err := loadCatalog(cfg)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}

	uiOpts := ui.Options{
		Context:   ctx,
		Catalog:   cat,
		Cart:      cart.NewStore(),
		Wishlist:  wishlist.NewStore(),
		Session:   auth.NewSession(),
		Config:    &cfg,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}

// loadCatalog reads the configured catalog file, or falls back to the
// builtin product set when none is configured.
func loadCatalog(cfg config.Config) (*catalog.Catalog, error) {
	if cfg.CatalogPath == "" {
		return catalog.Builtin(), nil
	}
	return catalog.Load(cfg.CatalogPath)
}
