package db

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
)

var (
	// ErrNotFound is returned when a query matches no rows.
	ErrNotFound = errors.New("db: record not found")

	// ErrDuplicateEntry is returned on unique constraint violations.
	ErrDuplicateEntry = errors.New("db: duplicate entry")

	// ErrForeignKey is returned when a foreign key constraint is violated.
	ErrForeignKey = errors.New("db: foreign key violation")
)

func IsNotFound(err error) bool       { return errors.Is(err, ErrNotFound) }
func IsDuplicateEntry(err error) bool { return errors.Is(err, ErrDuplicateEntry) }
func IsForeignKey(err error) bool     { return errors.Is(err, ErrForeignKey) }

// Map translates raw driver errors into the package sentinels so
// callers can branch with errors.Is instead of driver type assertions.
// Unrecognized errors pass through unchanged.
func Map(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}

	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case 1062: // ER_DUP_ENTRY
			return fmt.Errorf("%w: %v", ErrDuplicateEntry, err)
		case 1216, 1217, 1452: // referenced row missing or still referenced
			return fmt.Errorf("%w: %v", ErrForeignKey, err)
		}
		return err
	}

	// sqlite (test driver) reports constraint failures as strings only.
	s := err.Error()
	switch {
	case strings.Contains(s, "UNIQUE constraint failed"):
		return fmt.Errorf("%w: %v", ErrDuplicateEntry, err)
	case strings.Contains(s, "FOREIGN KEY constraint failed"):
		return fmt.Errorf("%w: %v", ErrForeignKey, err)
	}

	return err
}
