// Package db ships the SQL schema so binaries and tests do not depend on the working directory.
package db

import "embed"

//go:embed migrations/*.sql
var Migrations embed.FS
