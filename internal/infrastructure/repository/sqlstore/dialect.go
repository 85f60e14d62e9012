package sqlstore

import (
	"fmt"
	"strings"

	qb "github.com/riskibarqy/fantasy-football/internal/platform/querybuilder"
)

// Dialect captures what differs between the supported database/sql drivers.
type Dialect struct {
	Driver      string
	Placeholder qb.PlaceholderFormat
}

const (
	DriverPostgres = "postgres"
	DriverPGX      = "pgx"
	DriverSQLite   = "sqlite"
)

func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(strings.TrimSpace(driver)) {
	case DriverPostgres:
		return Dialect{Driver: DriverPostgres, Placeholder: qb.Dollar}, nil
	case DriverPGX:
		return Dialect{Driver: DriverPGX, Placeholder: qb.Dollar}, nil
	case DriverSQLite:
		return Dialect{Driver: DriverSQLite, Placeholder: qb.Question}, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported sql driver %q", driver)
	}
}

// DBSystem is the OpenTelemetry db.system value for the driver.
func (d Dialect) DBSystem() string {
	if d.Driver == DriverSQLite {
		return "sqlite"
	}
	return "postgresql"
}
