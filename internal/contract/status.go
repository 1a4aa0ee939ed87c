package contract

import "net/http"

// Operation names an endpoint verb.
type Operation string

const (
	OpCreate   Operation = "create"
	OpList     Operation = "list"
	OpReadOne  Operation = "read_one"
	OpUpdate   Operation = "update"
	OpDelete   Operation = "delete"
	OpLogin    Operation = "login"
	OpRegister Operation = "register"
)

// Outcome is the transport-independent classification of a request.
type Outcome int

const (
	// OutcomeSuccess covers valid+stored, found, listed and credentials match.
	OutcomeSuccess Outcome = iota
	OutcomeMissingFields
	OutcomeDuplicate
	OutcomeInvalidReference
	OutcomeNotFound
	OutcomeUnauthorized
	OutcomeStoreError
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSuccess:
		return "success"
	case OutcomeMissingFields:
		return "missing_fields"
	case OutcomeDuplicate:
		return "duplicate"
	case OutcomeInvalidReference:
		return "invalid_reference"
	case OutcomeNotFound:
		return "not_found"
	case OutcomeUnauthorized:
		return "unauthorized"
	case OutcomeStoreError:
		return "store_error"
	default:
		return "unknown"
	}
}

var successStatus = map[Operation]int{
	OpCreate:   http.StatusCreated,
	OpList:     http.StatusOK,
	OpReadOne:  http.StatusOK,
	OpUpdate:   http.StatusNoContent,
	OpDelete:   http.StatusNoContent,
	OpLogin:    http.StatusOK,
	OpRegister: http.StatusCreated,
}

type tableKey struct {
	op      Operation
	outcome Outcome
}

// overrides holds the rows that differ from the outcome defaults.
var overrides = map[tableKey]int{
	// an unknown username on login is reported as bad input, not 404
	{OpLogin, OutcomeNotFound}: http.StatusBadRequest,
}

var outcomeDefault = map[Outcome]int{
	OutcomeMissingFields:    http.StatusBadRequest,
	OutcomeDuplicate:        http.StatusBadRequest,
	OutcomeInvalidReference: http.StatusBadRequest,
	OutcomeNotFound:         http.StatusNotFound,
	OutcomeUnauthorized:     http.StatusUnauthorized,
	OutcomeStoreError:       http.StatusInternalServerError,
}

// StatusFor returns the HTTP status for an operation outcome. It is total:
// unknown operations succeed with 200 and unknown outcomes map to 500.
func StatusFor(op Operation, outcome Outcome) int {
	if code, ok := overrides[tableKey{op, outcome}]; ok {
		return code
	}
	if outcome == OutcomeSuccess {
		if code, ok := successStatus[op]; ok {
			return code
		}
		return http.StatusOK
	}
	if code, ok := outcomeDefault[outcome]; ok {
		return code
	}
	return http.StatusInternalServerError
}
