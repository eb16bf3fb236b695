package repository

import (
	"errors"
	"fmt"

	mysqldrv "github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned when no row has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidReference is returned when a write points at a cliente,
	// pedido or producto that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
	// ErrNoRowsAffected means a write statement completed without touching
	// exactly one row.
	ErrNoRowsAffected = errors.New("unexpected number of rows affected")
)

// StorageError wraps any failure coming from the database driver.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error { return e.Err }

// classify turns a gorm/driver error into one of the repository errors.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if isForeignKeyViolation(err) {
		return fmt.Errorf("%s: %w", op, ErrInvalidReference)
	}
	return &StorageError{Op: op, Err: err}
}

func isForeignKeyViolation(err error) bool {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var myErr *mysqldrv.MySQLError
	if errors.As(err, &myErr) {
		// 1452: child row references a missing parent.
		return myErr.Number == 1452
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}
