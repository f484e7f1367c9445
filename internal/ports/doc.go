// Package ports defines the interfaces that connect the application layer
// to infrastructure adapters.
//
// # Port Interfaces
//
//   - [AssetSource]: Resolves a sound channel name to an audio file and reads it
//   - [AssetStore]: Persists fragments and the reference index
//   - [CatalogRepository]: Loads, saves and locks music.json
//   - [Prompter]: Asks the user yes/no questions
//
// The application layer (internal/app) depends only on these interfaces.
// Infrastructure adapters (internal/adapters/fs, internal/prompt) implement
// them against the file system and the terminal.
package ports
