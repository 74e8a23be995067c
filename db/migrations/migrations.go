package migrations

import "embed"

// FS embeds the SQL migration files stored in this directory. They are
// read by golang-migrate through the iofs source driver.
//
//go:embed *.sql
var FS embed.FS

// Version is the schema version the service migrates to on startup.
const Version = 1
