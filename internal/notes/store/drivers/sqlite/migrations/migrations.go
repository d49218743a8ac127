package migrations

import "embed"

// Migrations holds the schema for the sqlite driver.
//
//go:embed *.sql
var Migrations embed.FS
