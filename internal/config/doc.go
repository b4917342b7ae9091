// Package config handles loading the storefront configuration file.
//
// # Overview
//
// Techstore runs entirely from a built-in product fixture and sensible
// defaults, so the config file is optional. When present it lets an
// operator point the catalog at an external TOML file and tune the
// presentation-level numbers used by the cart summary and the browse
// filters.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/techstore/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing, missing fields keep
//     their defaults
//
// Unlike a missing file, an unreadable or invalid file is an error:
// half-applied operator intent is worse than no file at all.
//
// # Configuration Fields
//
//   - catalog_path: external catalog TOML (empty: built-in fixture)
//   - tax_rate: order summary tax rate (default 0.08)
//   - max_price: ceiling the browse price bands scale from (default 2000)
//   - suggestion_limit: search type-ahead cap (default 5)
//   - trending: terms shown under an empty search box
package config
