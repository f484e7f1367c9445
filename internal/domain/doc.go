// Package domain contains the core entities and value objects shared by
// the assetconv and musiclist commands.
//
// This package has no dependencies on infrastructure concerns (file system,
// logging, terminal I/O) and contains only data types and their invariants.
//
// # Entities
//
//   - [Slice]: One contiguous byte range inside a packed fragment
//   - [Reference]: The ordered slices that rebuild one asset
//   - [References]: The reference index written to assets.json
//   - [Music]: One catalog entry, a song folder and its charts
//   - [Chart]: Metadata of a single bmson chart
//   - [Catalog]: The music.json document
package domain
