package contract

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
	"testing"

	"orgchart/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFieldsAllMissing(t *testing.T) {
	got := ValidateFields(map[string]string{}, []string{"username", "password"})
	assert.False(t, got.Valid())
	assert.Equal(t, []string{"username", "password"}, got.Missing)
}

func TestValidateFieldsBlankCountsAsMissing(t *testing.T) {
	got := ValidateFields(map[string]string{"username": "a", "password": ""}, []string{"username", "password"})
	assert.Equal(t, []string{"password"}, got.Missing)
}

func TestValidateFieldsIgnoresExtraKeysAndKeepsOrder(t *testing.T) {
	payload := map[string]string{"title": "", "extra": "", "name": "x"}
	got := ValidateFields(payload, []string{"title", "name", "code"})
	assert.Equal(t, []string{"title", "code"}, got.Missing)

	ok := ValidateFields(map[string]string{"name": "Eng", "other": ""}, []string{"name"})
	assert.True(t, ok.Valid())
	assert.Empty(t, ok.Missing)
}

func TestValidateFieldsNoRequiredIsValid(t *testing.T) {
	assert.True(t, ValidateFields(nil, nil).Valid())
}

func TestValidateFieldsIdempotent(t *testing.T) {
	payload := map[string]string{"first_name": "Ada", "last_name": ""}
	required := []string{"first_name", "last_name", "hire_date"}
	assert.Equal(t, ValidateFields(payload, required), ValidateFields(payload, required))
}

func TestClassifyLookup(t *testing.T) {
	boom := errors.New("connection reset")

	got := ClassifyLookup("dept", true, boom)
	assert.Equal(t, LookupStoreError, got.Kind)
	assert.ErrorIs(t, got.Err, boom)
	assert.Equal(t, OutcomeStoreError, got.Outcome())

	got = ClassifyLookup("dept", true, nil)
	assert.Equal(t, LookupFound, got.Kind)
	assert.Equal(t, "dept", got.Resource)
	assert.Equal(t, OutcomeSuccess, got.Outcome())

	got = ClassifyLookup("", false, nil)
	assert.Equal(t, LookupNotFound, got.Kind)
	assert.Equal(t, OutcomeNotFound, got.Outcome())
}

func TestClassifyLookupConcurrent(t *testing.T) {
	const workers = 64
	var wg sync.WaitGroup
	results := make([]LookupOutcome[int], workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			var err error
			if i%3 == 2 {
				err = fmt.Errorf("store %d", i)
			}
			results[i] = ClassifyLookup(i, i%3 == 0, err)
		}(i)
	}
	wg.Wait()

	for i, r := range results {
		switch i % 3 {
		case 0:
			require.Equal(t, LookupFound, r.Kind)
			require.Equal(t, i, r.Resource)
		case 1:
			require.Equal(t, LookupNotFound, r.Kind)
		case 2:
			require.Equal(t, LookupStoreError, r.Kind)
			require.EqualError(t, r.Err, fmt.Sprintf("store %d", i))
		}
	}
}

func TestResolvePageDefaults(t *testing.T) {
	got := ResolvePage("", "", "", "", []string{"id", "name"})
	assert.Equal(t, DefaultPage(), got)
}

func TestResolvePageFallbacks(t *testing.T) {
	got := ResolvePage("-5", "0", "bogus", "DESC", []string{"id", "name"})
	assert.Equal(t, PageQuery{Offset: 0, Limit: 25, SortField: "id", SortOrder: SortDesc}, got)
}

func TestResolvePageValidInput(t *testing.T) {
	got := ResolvePage("40", "10", "name", "asc", []string{"id", "name"})
	assert.Equal(t, PageQuery{Offset: 40, Limit: 10, SortField: "name", SortOrder: SortAsc}, got)
}

func TestResolvePageIndependentFields(t *testing.T) {
	got := ResolvePage("abc", "7", "", "Desc", []string{"id", "title"})
	assert.Equal(t, 0, got.Offset)
	assert.Equal(t, 7, got.Limit)
	assert.Equal(t, "id", got.SortField)
	assert.Equal(t, SortDesc, got.SortOrder)

	got = ResolvePage("3", "-1", "title", "descending", []string{"id", "title"})
	assert.Equal(t, 3, got.Offset)
	assert.Equal(t, 25, got.Limit)
	assert.Equal(t, "title", got.SortField)
	assert.Equal(t, SortAsc, got.SortOrder)
}

func TestResolvePageIdempotent(t *testing.T) {
	allowed := []string{"id", "name"}
	assert.Equal(t, ResolvePage("2", "x", "name", "DESC", allowed), ResolvePage("2", "x", "name", "DESC", allowed))
}

func TestSortOrderSQL(t *testing.T) {
	assert.Equal(t, "ASC", SortAsc.SQL())
	assert.Equal(t, "DESC", SortDesc.SQL())
	assert.Equal(t, "ASC", SortOrder("").SQL())
}

func TestStatusForTable(t *testing.T) {
	cases := []struct {
		op      Operation
		outcome Outcome
		want    int
	}{
		{OpCreate, OutcomeSuccess, http.StatusCreated},
		{OpCreate, OutcomeMissingFields, http.StatusBadRequest},
		{OpCreate, OutcomeDuplicate, http.StatusBadRequest},
		{OpCreate, OutcomeStoreError, http.StatusInternalServerError},
		{OpList, OutcomeSuccess, http.StatusOK},
		{OpList, OutcomeStoreError, http.StatusInternalServerError},
		{OpReadOne, OutcomeSuccess, http.StatusOK},
		{OpReadOne, OutcomeNotFound, http.StatusNotFound},
		{OpUpdate, OutcomeSuccess, http.StatusNoContent},
		{OpUpdate, OutcomeNotFound, http.StatusNotFound},
		{OpUpdate, OutcomeMissingFields, http.StatusBadRequest},
		{OpDelete, OutcomeSuccess, http.StatusNoContent},
		{OpDelete, OutcomeNotFound, http.StatusNotFound},
		{OpLogin, OutcomeSuccess, http.StatusOK},
		{OpLogin, OutcomeMissingFields, http.StatusBadRequest},
		{OpLogin, OutcomeNotFound, http.StatusBadRequest},
		{OpLogin, OutcomeUnauthorized, http.StatusUnauthorized},
		{OpRegister, OutcomeSuccess, http.StatusCreated},
		{OpRegister, OutcomeMissingFields, http.StatusBadRequest},
		{OpRegister, OutcomeDuplicate, http.StatusBadRequest},
	}
	for _, tc := range cases {
		t.Run(string(tc.op)+"/"+tc.outcome.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, StatusFor(tc.op, tc.outcome))
		})
	}
}

func TestStatusForIsTotal(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, StatusFor(OpDelete, OutcomeStoreError))
	assert.Equal(t, http.StatusBadRequest, StatusFor(OpUpdate, OutcomeInvalidReference))
	assert.Equal(t, http.StatusOK, StatusFor(Operation("export"), OutcomeSuccess))
	assert.Equal(t, http.StatusInternalServerError, StatusFor(OpList, Outcome(99)))
}

func TestOutcomeOfDomainErrors(t *testing.T) {
	assert.Equal(t, OutcomeSuccess, OutcomeOf(nil))
	assert.Equal(t, OutcomeMissingFields, OutcomeOf(domain.ValidationError{Msg: "missing fields"}))
	assert.Equal(t, OutcomeNotFound, OutcomeOf(fmt.Errorf("load: %w", domain.NotFoundError{Resource: "job"})))
	assert.Equal(t, OutcomeDuplicate, OutcomeOf(domain.ConflictError{Msg: "username is taken"}))
	assert.Equal(t, OutcomeInvalidReference, OutcomeOf(domain.ReferenceError{Resource: "person"}))
	assert.Equal(t, OutcomeUnauthorized, OutcomeOf(domain.UnauthorizedError{}))
	assert.Equal(t, OutcomeStoreError, OutcomeOf(errors.New("dial tcp: refused")))
}

func TestFailHidesStoreCause(t *testing.T) {
	r := Fail[int](errors.New("dial tcp 10.0.0.1:3306: refused"))
	assert.Equal(t, OutcomeStoreError, r.Outcome)
	assert.Equal(t, "database error", r.Message)
	assert.Equal(t, http.StatusInternalServerError, r.Status(OpList))

	r = Fail[int](domain.NotFoundError{Resource: "department"})
	assert.Equal(t, "department not found", r.Message)
	assert.Equal(t, http.StatusNotFound, r.Status(OpReadOne))
}

func TestFailHidesInternalCause(t *testing.T) {
	r := Fail[int](domain.InternalError{Msg: "sign token", Err: errors.New("key is invalid")})
	assert.Equal(t, OutcomeStoreError, r.Outcome)
	assert.Equal(t, "internal error", r.Message)
	assert.Equal(t, http.StatusInternalServerError, r.Status(OpLogin))
}

func TestRequireFields(t *testing.T) {
	assert.NoError(t, RequireFields(map[string]string{"name": "Ops"}, []string{"name"}))

	err := RequireFields(map[string]string{}, []string{"name"})
	var verr domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{"name"}, verr.Fields)
	assert.Equal(t, "missing fields", err.Error())
}
