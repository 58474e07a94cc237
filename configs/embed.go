// Package configs embeds the default physics tuning and level layouts.
package configs

import "embed"

// FS holds physics.yaml and levels/*.yaml
//
//go:embed physics.yaml levels/*.yaml
var FS embed.FS
