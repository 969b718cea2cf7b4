// Package file provides file-based implementations of driven port interfaces.
// These adapters persist data to the local filesystem.
//
// Adapters:
//   - ConfigStore: TOML-based configuration storage
//   - EnvOverlay: environment variable overrides on top of any ConfigStore
//   - LoadDotEnv: .env loading into the process environment
package file
