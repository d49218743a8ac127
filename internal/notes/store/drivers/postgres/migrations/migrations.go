package migrations

import "embed"

// Migrations holds the schema for the postgres driver.
//
//go:embed *.sql
var Migrations embed.FS
