// Package migrations embeds the versioned SQL schema.
package migrations

import "embed"

// FS holds the golang-migrate files, named <version>_<title>.<up|down>.sql
//
//go:embed *.sql
var FS embed.FS
