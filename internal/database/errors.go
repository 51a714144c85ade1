package database

import (
	"errors"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"

	mysqlDuplicateEntry    = 1062
	mysqlRowIsReferenced   = 1451
	mysqlNoReferencedRow   = 1452
	sqliteUniqueFailed     = "UNIQUE constraint failed: "
	sqliteForeignKeyFailed = "FOREIGN KEY constraint failed"
)

// IsUniqueViolation reports whether err came from a unique index rejecting a write.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgUniqueViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlDuplicateEntry
	}
	return strings.Contains(err.Error(), sqliteUniqueFailed)
}

// IsForeignKeyViolation reports whether err came from a foreign key check,
// either a RESTRICT delete or an insert pointing at a missing row.
func IsForeignKeyViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == mysqlRowIsReferenced || myErr.Number == mysqlNoReferencedRow
	}
	return strings.Contains(err.Error(), sqliteForeignKeyFailed)
}

// ViolatedConstraint resolves a uniqueness violation to its registry entry.
func ViolatedConstraint(err error) (Constraint, bool) {
	if !IsUniqueViolation(err) {
		return Constraint{}, false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return lookupByName(pgErr.ConstraintName)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		// Duplicate entry 'x' for key 'table.index_name'
		msg := myErr.Message
		if i := strings.LastIndex(msg, "for key '"); i >= 0 {
			key := strings.TrimSuffix(msg[i+len("for key '"):], "'")
			if dot := strings.LastIndex(key, "."); dot >= 0 {
				key = key[dot+1:]
			}
			return lookupByName(key)
		}
		return Constraint{}, false
	}

	return lookupSQLite(err.Error())
}

func lookupByName(name string) (Constraint, bool) {
	for _, c := range Constraints {
		if c.Name == name {
			return c, true
		}
	}
	return Constraint{}, false
}

// SQLite reports "UNIQUE constraint failed: table.col1, table.col2" or, for
// expression indexes, "UNIQUE constraint failed: index 'name'".
func lookupSQLite(msg string) (Constraint, bool) {
	i := strings.Index(msg, sqliteUniqueFailed)
	if i < 0 {
		return Constraint{}, false
	}
	detail := msg[i+len(sqliteUniqueFailed):]
	if j := strings.Index(detail, " ("); j >= 0 {
		detail = detail[:j]
	}
	detail = strings.TrimSpace(detail)

	if strings.HasPrefix(detail, "index '") {
		return lookupByName(strings.TrimSuffix(strings.TrimPrefix(detail, "index '"), "'"))
	}

	var table string
	var columns []string
	for _, part := range strings.Split(detail, ",") {
		part = strings.TrimSpace(part)
		dot := strings.Index(part, ".")
		if dot < 0 {
			return Constraint{}, false
		}
		table = part[:dot]
		columns = append(columns, part[dot+1:])
	}

	for _, c := range Constraints {
		if c.Table == table && sameColumns(c.Columns, columns) {
			return c, true
		}
	}
	return Constraint{}, false
}

func sameColumns(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
