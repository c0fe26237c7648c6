// Package migrations embeds the schema migration files for the restkata
// database. The CLI's migrate command and the test harnesses all run goose
// against this embedded filesystem, so a deployed binary never depends on
// .sql files being present on disk.
package migrations

import "embed"

// FS holds every *.sql file in this directory, embedded at compile time.
// Hand it to goose.NewProvider together with goose.DialectPostgres.
//
//go:embed *.sql
var FS embed.FS
