// Package config handles loading and parsing the wishlet configuration file.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/wishlet/config.toml (default)
//  3. If the config file doesn't exist, fall back to hardcoded defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// A file that exists but fails to parse is an error: silently ignoring a
// config the user wrote on purpose hides typos.
//
// # Default Values
//
//   - Config file: ~/.config/wishlet/config.toml
//   - Catalog API: https://fakestoreapi.com
//   - Data directory: ~/.local/share/wishlet
//   - Wishlist snapshot: <data_dir>/wishlist.json
//   - Debug log: <data_dir>/wishlet.log
//
// # TOML Format
//
// Example config.toml:
//
//	api_url = "https://fakestoreapi.com"
//	data_dir = "~/.local/share/wishlet"
//
// Paths support ~ expansion.
package config
