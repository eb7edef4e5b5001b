package postgres

import (
	"errors"
	"fmt"
	"strings"

	migrate "github.com/golang-migrate/migrate/v4"
	// Blank imports: registran el driver pgx/v5 y la fuente file para golang-migrate.
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

// RunMigrations aplica las migraciones SQL pendientes del directorio dado.
// Un esquema ya al día no es un error.
func RunMigrations(dsn, dir string) error {
	// golang-migrate selecciona el driver pgx/v5 por el esquema de la URL.
	url := strings.Replace(dsn, "postgres://", "pgx5://", 1)
	url = strings.Replace(url, "postgresql://", "pgx5://", 1)

	m, err := migrate.New("file://"+dir, url)
	if err != nil {
		return fmt.Errorf("abrir migraciones: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("aplicar migraciones: %w", err)
	}
	return nil
}
