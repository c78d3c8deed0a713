package proposal

import "fmt"

// StructuralError reports input the engine refuses to compute over: a line
// item whose quantity or price is not usable for arithmetic, or a pagination
// capacity below one. Malformed optional fields degrade gracefully elsewhere;
// these fail fast instead of silently coercing to zero.
type StructuralError struct {
	Field  string
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("structural error: %s: %s", e.Field, e.Reason)
}

// ValidationError blocks a save when required identity fields are missing.
// Violations maps field name to a short reason code.
type ValidationError struct {
	Violations map[string]string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %d field(s)", len(e.Violations))
}
