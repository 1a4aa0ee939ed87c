package contract

// ValidationOutcome is the result of ValidateFields. A nil or empty Missing
// means the payload is valid.
type ValidationOutcome struct {
	Missing []string
}

// Valid reports whether no required field was missing.
func (v ValidationOutcome) Valid() bool {
	return len(v.Missing) == 0
}

// ValidateFields lists every required field that is absent from payload or
// equal to "", preserving the order of required. Other keys are ignored.
func ValidateFields(payload map[string]string, required []string) ValidationOutcome {
	var missing []string
	for _, name := range required {
		if v, ok := payload[name]; !ok || v == "" {
			missing = append(missing, name)
		}
	}
	return ValidationOutcome{Missing: missing}
}
