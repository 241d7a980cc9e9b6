// Package config loads roster's settings.
//
// # Resolution Order
//
// Values are layered, later layers winning:
//
//  1. Built-in defaults
//  2. The TOML file (explicit path, or ~/.config/roster/config.toml)
//  3. ROSTER_* environment variables
//  4. Command-line flags, applied by the caller
//
// A missing config file is not an error. Blank strings and non-positive
// page sizes fall back to the defaults.
//
// # Default Values
//
//   - Config file: ~/.config/roster/config.toml
//   - Endpoint: https://dummyjson.com/users
//   - Page size: 6
//   - Log file: ~/.local/state/roster/roster.log
//
// # TOML Format
//
//	endpoint = "https://dummyjson.com/users"
//	page_size = 6
//	log_file = "~/.local/state/roster/roster.log"
//
// # Environment
//
//	ROSTER_ENDPOINT    overrides endpoint
//	ROSTER_PAGE_SIZE   overrides page_size
//	ROSTER_LOG_FILE    overrides log_file
//
// Tilde expansion applies to the config path and log_file.
package config
