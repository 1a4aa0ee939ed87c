package contract

// LookupKind tags a LookupOutcome.
type LookupKind int

const (
	LookupFound LookupKind = iota
	LookupNotFound
	LookupStoreError
)

func (k LookupKind) String() string {
	switch k {
	case LookupFound:
		return "found"
	case LookupNotFound:
		return "not_found"
	case LookupStoreError:
		return "store_error"
	default:
		return "unknown"
	}
}

// LookupOutcome is the classified result of a single-row store lookup.
// Resource is only meaningful when Kind is LookupFound, Err only when Kind
// is LookupStoreError.
type LookupOutcome[T any] struct {
	Kind     LookupKind
	Resource T
	Err      error
}

// ClassifyLookup turns a (resource, found, err) triple into a LookupOutcome.
// A store error wins over everything else.
func ClassifyLookup[T any](resource T, found bool, err error) LookupOutcome[T] {
	if err != nil {
		return LookupOutcome[T]{Kind: LookupStoreError, Err: err}
	}
	if !found {
		return LookupOutcome[T]{Kind: LookupNotFound}
	}
	return LookupOutcome[T]{Kind: LookupFound, Resource: resource}
}

// Outcome maps the lookup onto the endpoint outcome taxonomy.
func (l LookupOutcome[T]) Outcome() Outcome {
	switch l.Kind {
	case LookupFound:
		return OutcomeSuccess
	case LookupNotFound:
		return OutcomeNotFound
	default:
		return OutcomeStoreError
	}
}
