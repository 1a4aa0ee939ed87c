package db

import (
	"database/sql"
	"errors"

	"orgchart/internal/contract"
	"orgchart/internal/domain"

	"github.com/go-sql-driver/mysql"
)

// MySQL server error numbers the store translates.
const (
	ErDupEntry         = 1062
	ErRowIsReferenced  = 1451
	ErNoReferencedRow  = 1452
	ErRowIsReferenced2 = 1217
	ErNoReferencedRow2 = 1216
)

// NullIfZero stores optional references as NULL instead of 0.
func NullIfZero(id *int64) any {
	if id == nil || *id <= 0 {
		return nil
	}
	return *id
}

// Int64Ptr converts a scanned nullable id back to a pointer.
func Int64Ptr(n sql.NullInt64) *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}

// OrderClause renders ORDER BY/LIMIT/OFFSET for a resolved page. The sort
// field comes from a whitelist, so it is safe to splice in.
func OrderClause(page contract.PageQuery, tableAlias string) string {
	col := page.SortField
	if tableAlias != "" {
		col = tableAlias + "." + col
	}
	return " ORDER BY " + col + " " + page.SortOrder.SQL() + " LIMIT ? OFFSET ?"
}

// TranslateError converts driver errors into domain errors so callers can
// classify them. Unknown errors pass through unchanged.
func TranslateError(err error, resource string) error {
	if err == nil {
		return nil
	}
	var me *mysql.MySQLError
	if !errors.As(err, &me) {
		return err
	}
	switch me.Number {
	case ErDupEntry:
		return domain.ConflictError{Resource: resource, Err: err}
	case ErRowIsReferenced, ErRowIsReferenced2:
		return domain.ReferenceError{Resource: resource, Msg: resource + " is still referenced", Err: err}
	case ErNoReferencedRow, ErNoReferencedRow2:
		return domain.ReferenceError{Resource: resource, Msg: resource + " references a missing row", Err: err}
	default:
		return err
	}
}
