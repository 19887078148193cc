package database

import (
	"embed"
	"errors"
	"fmt"

	"storefront/pkg/utils"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

// Direction of a migration run
type Direction string

const (
	Up   Direction = "up"
	Down Direction = "down"
)

// Migrate applies or rolls back the embedded schema migrations.
func Migrate(config utils.DatabaseConfig, direction Direction, log *zap.Logger) error {
	source, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return fmt.Errorf("open migrations: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, ConnString("pgx5", config))
	if err != nil {
		return fmt.Errorf("init migrate: %w", err)
	}
	defer m.Close()

	switch direction {
	case Up:
		err = m.Up()
	case Down:
		err = m.Down()
	default:
		return fmt.Errorf("unknown migration direction %q", direction)
	}

	if errors.Is(err, migrate.ErrNoChange) {
		log.Info("Schema already up to date", zap.String("direction", string(direction)))
		return nil
	}
	if err != nil {
		return fmt.Errorf("migrate %s: %w", direction, err)
	}

	version, dirty, _ := m.Version()
	log.Info("Migrations applied",
		zap.String("direction", string(direction)),
		zap.Uint("version", version),
		zap.Bool("dirty", dirty),
	)
	return nil
}
