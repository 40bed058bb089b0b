// Package migrations embeds the goose migration files so the binary and the
// e2e harness apply the same schema.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
