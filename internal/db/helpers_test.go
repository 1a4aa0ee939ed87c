package db

import (
	"database/sql"
	"errors"
	"testing"

	"orgchart/internal/contract"
	"orgchart/internal/domain"

	"github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	page := contract.PageQuery{Offset: 5, Limit: 10, SortField: "name", SortOrder: contract.SortDesc}
	assert.Equal(t, " ORDER BY name DESC LIMIT ? OFFSET ?", OrderClause(page, ""))
	assert.Equal(t, " ORDER BY p.name DESC LIMIT ? OFFSET ?", OrderClause(page, "p"))
}

func TestNullIfZero(t *testing.T) {
	zero, seven := int64(0), int64(7)
	assert.Nil(t, NullIfZero(nil))
	assert.Nil(t, NullIfZero(&zero))
	assert.Equal(t, int64(7), NullIfZero(&seven))
}

func TestInt64Ptr(t *testing.T) {
	assert.Nil(t, Int64Ptr(sql.NullInt64{}))
	if p := Int64Ptr(sql.NullInt64{Int64: 4, Valid: true}); assert.NotNil(t, p) {
		assert.Equal(t, int64(4), *p)
	}
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, TranslateError(nil, "job"))

	plain := errors.New("bad connection")
	assert.Equal(t, plain, TranslateError(plain, "job"))

	dup := TranslateError(&mysql.MySQLError{Number: ErDupEntry, Message: "Duplicate entry"}, "job")
	assert.True(t, domain.IsConflict(dup))
	assert.Equal(t, "job already exists", dup.Error())

	ref := TranslateError(&mysql.MySQLError{Number: ErNoReferencedRow}, "person")
	assert.True(t, domain.IsReference(ref))
	assert.Equal(t, "person references a missing row", ref.Error())

	used := TranslateError(&mysql.MySQLError{Number: ErRowIsReferenced}, "department")
	assert.True(t, domain.IsReference(used))

	other := &mysql.MySQLError{Number: 1205}
	assert.Equal(t, error(other), TranslateError(other, "job"))
}
