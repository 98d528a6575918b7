package migrations

import "embed"

// FS holds the SQL migrations applied by internal/db.Migrate through the
// golang-migrate iofs source.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the binary expects.
const Version = 1
