// Package gamedata provides embedded game data and utilities for loading it.
package gamedata

import "embed"

// dataFS carries the JSON definition files into the binary, so a built
// game never depends on files lying around on disk.
//
//go:embed *.json
var dataFS embed.FS
