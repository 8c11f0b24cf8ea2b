// Package migrations embeds the SQL migrations applied by goose at startup
// of the postgres storage backend.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
