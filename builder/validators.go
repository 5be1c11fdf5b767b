// Package builder provides validation helpers to enforce parameter
// contracts in constructors.
package builder

// validateParts checks that no count is negative and that at least one
// component is requested.
// Complexity: O(1) time and space.
func validateParts(method string, p Parts) error {
	if p.Resistors < 0 || p.Capacitors < 0 || p.Inductors < 0 {
		return builderErrorf(method, ErrTooFewParts,
			"counts must be ≥ 0, got R=%d C=%d L=%d", p.Resistors, p.Capacitors, p.Inductors)
	}
	if p.Total() < 1 {
		return builderErrorf(method, ErrTooFewParts, "need at least 1 part, got 0")
	}

	return nil
}
