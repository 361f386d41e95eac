// Package migrations embeds the curator database schema.
package migrations

import "embed"

// FS holds the golang-migrate SQL files at its root.
//
//go:embed *.sql
var FS embed.FS
