// Package app provides the orchestration layer for the TechStore
// application.
//
// # Overview
//
// This package wires together configuration, the product catalog, the
// cart, wishlist, and session stores, and the UI to create the complete
// TechStore TUI experience. It serves as the composition root where all
// dependencies are initialized and connected.
//
// # Architecture
//
// The app package follows a simple initialization pattern:
//
//  1. Load configuration from ~/.config/techstore/config.toml
//  2. Load user preferences (theme) from ~/.config/techstore/prefs.toml
//  3. Load the product catalog from the configured TOML file, or fall
//     back to the builtin product set
//  4. Create the cart, wishlist, and session stores
//  5. Start the TUI and block until the user exits or the context cancels
//
// # Error Handling
//
// Fatal errors (returned from Run):
//
//   - Configuration file present but invalid
//   - Configured catalog file missing or invalid
//
// Recoverable degradations:
//
//   - Missing configuration file falls back to defaults
//   - Missing or malformed preferences fall back to the default theme
//
// # Design Rationale
//
// All business logic lives in the domain packages (catalog, cart,
// wishlist, auth, ui). The app package simply connects these pieces with
// sensible defaults for the single-user, in-process storefront.
package app
