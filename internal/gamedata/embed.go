// Package gamedata holds the documents compiled into the binary and the
// small value types (colors, action kinds) those documents are written in.
package gamedata

import "embed"

// DefaultConfigFile is the built-in settings document.
const DefaultConfigFile = "default_config.json"

//go:embed default_config.json
var dataFS embed.FS
