package db

import (
	"errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	"campaign-hub/db/migrations"
)

// Migrate brings the schema at addr to migrations.Version. A database left
// dirty by a failed migration is reported instead of being touched.
func Migrate(addr string) error {
	return migrateTo(addr, migrations.Version)
}

// Rollback reverts every migration.
func Rollback(addr string) error {
	mg, closeFn, err := newMigrator(addr)
	if err != nil {
		return err
	}
	defer closeFn()

	if err = mg.Down(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func migrateTo(addr string, version uint) error {
	mg, closeFn, err := newMigrator(addr)
	if err != nil {
		return err
	}
	defer closeFn()

	_, dirty, err := mg.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return err
	}
	if dirty {
		return errors.New("database is in dirty state")
	}

	if err = mg.Migrate(version); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func newMigrator(addr string) (*migrate.Migrate, func(), error) {
	driver, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return nil, nil, err
	}
	mg, err := migrate.NewWithSourceInstance("iofs", driver, addr)
	if err != nil {
		_ = driver.Close()
		return nil, nil, err
	}
	return mg, func() { _, _ = mg.Close() }, nil
}
