// Package app provides the orchestration layer for the wishlet application.
//
// # Overview
//
// This package wires together configuration, the catalog client, the
// wishlist store, and the UI. It serves as the composition root where all
// dependencies are initialized and connected; nothing here holds state of
// its own.
//
// # Initialization Order
//
//	┌──────────────┐
//	│   Run()      │
//	└──────┬───────┘
//	       │
//	       ├─────> config.Load()        Read ~/.config/wishlet/config.toml
//	       ├─────> prefs.Load()         Read theme preference
//	       ├─────> newLogger()          Open <data_dir>/wishlet.log
//	       ├─────> catalog.NewClient()  Create HTTP client
//	       ├─────> wishlist.New()       Unhydrated store
//	       └─────> ui.Run()             Start TUI (blocks)
//
// The store is constructed here and injected into the UI; there is exactly
// one instance per running application and no package-level globals.
// Hydration of the persisted wishlist runs from inside ui.Run, after the
// Bubble Tea program exists to receive the store's change notifications.
//
// # Error Policy
//
// Run returns an error only for startup wiring problems (unreadable
// config, malformed API URL). Once the UI is running, catalog and storage
// failures degrade to messages or empty state and never unwind the stack.
package app
